package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	goawav "github.com/go-audio/wav"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	beepwav "github.com/gopxl/beep/wav"
)

// TargetSampleRate is the fixed output rate the recognizer expects.
const TargetSampleRate = 16000

// resampleQuality trades CPU for interpolation accuracy; 4 is beep's
// recommended middle ground.
const resampleQuality = 4

// Normalize decodes inputPath, downmixes to mono, resamples to
// TargetSampleRate, peak-normalizes the amplitude, and writes the
// result to outPath as 16-bit PCM WAV. All failures are FormatErrors.
func Normalize(inputPath, outPath string) error {
	samples, err := decodeMono(inputPath)
	if err != nil {
		return err
	}

	if err := peakNormalize(samples); err != nil {
		return err
	}

	return writeWAV16(outPath, samples)
}

// decodeMono returns the mono waveform at TargetSampleRate. Containers
// beep cannot read natively go straight to the ffmpeg fallback; every
// other format tries beep first and falls back on failure.
func decodeMono(path string) ([]float64, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".m4a" || ext == ".webm" {
		return decodeViaFFmpeg(path)
	}

	samples, err := decodeNative(path, ext)
	if err != nil {
		return decodeViaFFmpeg(path)
	}
	return samples, nil
}

func decodeViaFFmpeg(path string) ([]float64, error) {
	wavPath, err := convertToWAV(path)
	if err != nil {
		return nil, err
	}
	defer os.Remove(wavPath)

	return decodeNative(wavPath, ".wav")
}

func decodeNative(path, ext string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, formatError("failed to open audio file", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = beepwav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, formatError(fmt.Sprintf("unsupported audio format %q", ext), nil)
	}
	if err != nil {
		f.Close()
		return nil, formatError("failed to decode audio file", err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != TargetSampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, TargetSampleRate, streamer)
	}

	// beep hands out interleaved stereo pairs regardless of the source
	// channel count; averaging the pair is the mono downmix for both
	// mono and stereo sources.
	var mono []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := src.Stream(buf)
		for i := 0; i < n; i++ {
			mono = append(mono, (buf[i][0]+buf[i][1])/2)
		}
		if !ok {
			break
		}
	}

	if err := streamer.Err(); err != nil {
		return nil, formatError("failed to read audio stream", err)
	}
	return mono, nil
}

// peakNormalize scales samples in place so the peak absolute amplitude
// is 1.0. An all-zero signal is unusable input, not a numerical edge
// case, and is rejected.
func peakNormalize(samples []float64) error {
	var peak float64
	for _, v := range samples {
		if a := abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return formatError("audio file contains only silence", nil)
	}
	for i := range samples {
		samples[i] /= peak
	}
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func writeWAV16(path string, samples []float64) error {
	out, err := os.Create(path)
	if err != nil {
		return formatError("failed to create output WAV", err)
	}
	defer out.Close()

	enc := goawav.NewEncoder(out, TargetSampleRate, 16, 1, 1)

	data := make([]int, len(samples))
	for i, v := range samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		data[i] = int(v * 32767)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: TargetSampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		enc.Close()
		return formatError("failed to encode WAV", err)
	}
	if err := enc.Close(); err != nil {
		return formatError("failed to finalize WAV", err)
	}
	return nil
}
