package audio

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// convertToWAV shells out to ffmpeg to transcode inputPath into an
// intermediate WAV file, preserving the source sample rate and channel
// layout so the normal decode path can take over. The caller removes
// the returned file.
func convertToWAV(inputPath string) (string, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return "", formatError("ffmpeg is required for this audio format but was not found on PATH", err)
	}

	outPath := filepath.Join(os.TempDir(), uuid.New().String()+".wav")

	// -vn drops any video stream (webm recordings often carry one),
	// pcm_s16le keeps the intermediate lossless for the decoder.
	cmd := exec.Command("ffmpeg",
		"-i", inputPath,
		"-vn",
		"-c:a", "pcm_s16le",
		"-y",
		outPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(outPath)
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", formatError(fmt.Sprintf("failed to convert audio file (ffmpeg: %s)", lastLine(stderrStr)), err)
		}
		return "", formatError("failed to convert audio file", err)
	}

	return outPath, nil
}

// lastLine trims ffmpeg's banner noise down to the line that usually
// names the actual failure.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
