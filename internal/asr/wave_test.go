package asr

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/Shahnasha/audio-summarizer/internal/audio"
)

func writeTestWAV(t *testing.T, path string, sampleRate, bitDepth, numChans int, data []int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, numChans, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: numChans, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
}

func TestOpenWaveRejectsStereo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeTestWAV(t, path, audio.TargetSampleRate, 16, 2, make([]int, 800))

	_, err := openWave(path, audio.TargetSampleRate)
	if err == nil {
		t.Fatal("expected error for stereo WAV")
	}
	var wfe *WaveFormatError
	if !errors.As(err, &wfe) {
		t.Fatalf("error type = %T, want *WaveFormatError", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "mono") || !strings.Contains(msg, "2 channels") {
		t.Errorf("message %q should name mono and the actual channel count", msg)
	}
}

func TestOpenWaveRejectsWrongRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast.wav")
	writeTestWAV(t, path, 44100, 16, 1, make([]int, 400))

	_, err := openWave(path, audio.TargetSampleRate)
	var wfe *WaveFormatError
	if !errors.As(err, &wfe) {
		t.Fatalf("error = %v, want *WaveFormatError", err)
	}
	if !strings.Contains(err.Error(), "44100Hz") {
		t.Errorf("message %q should name the actual rate", err.Error())
	}
}

func TestOpenWaveRejectsWrongBitDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep.wav")
	writeTestWAV(t, path, audio.TargetSampleRate, 24, 1, make([]int, 400))

	_, err := openWave(path, audio.TargetSampleRate)
	var wfe *WaveFormatError
	if !errors.As(err, &wfe) {
		t.Fatalf("error = %v, want *WaveFormatError", err)
	}
	if !strings.Contains(err.Error(), "3 bytes") {
		t.Errorf("message %q should name the actual sample width", err.Error())
	}
}

func TestReadChunkLittleEndian(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeTestWAV(t, path, audio.TargetSampleRate, 16, 1, []int{0, 1, -1, 32767, -32768})

	wf, err := openWave(path, audio.TargetSampleRate)
	if err != nil {
		t.Fatalf("openWave: %v", err)
	}
	defer wf.Close()

	chunk, err := wf.readChunk()
	if err != nil {
		t.Fatalf("readChunk: %v", err)
	}
	want := []byte{
		0x00, 0x00,
		0x01, 0x00,
		0xff, 0xff,
		0xff, 0x7f,
		0x00, 0x80,
	}
	if len(chunk) != len(want) {
		t.Fatalf("chunk length = %d, want %d", len(chunk), len(want))
	}
	for i := range want {
		if chunk[i] != want[i] {
			t.Errorf("byte %d = %#x, want %#x", i, chunk[i], want[i])
		}
	}

	next, err := wf.readChunk()
	if err != nil {
		t.Fatalf("readChunk at EOF: %v", err)
	}
	if next != nil {
		t.Errorf("expected nil chunk at end of stream, got %d bytes", len(next))
	}
}
