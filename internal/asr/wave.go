package asr

import (
	"encoding/binary"
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// chunkFrames is how many frames are fed to the recognizer per read.
const chunkFrames = 4000

// waveReader wraps a go-audio WAV decoder behind the strict
// preconditions the recognizer requires: mono, 16-bit, 16 kHz.
type waveReader struct {
	f   *os.File
	dec *wav.Decoder
	buf *goaudio.IntBuffer
}

func openWave(path string, wantRate int) (*waveReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}

	if dec.NumChans != 1 {
		f.Close()
		return nil, &WaveFormatError{
			Want: "mono (1 channel)",
			Got:  fmt.Sprintf("%d channels", dec.NumChans),
		}
	}
	if dec.BitDepth != 16 {
		f.Close()
		return nil, &WaveFormatError{
			Want: "16-bit (2 bytes)",
			Got:  fmt.Sprintf("%d bytes", dec.BitDepth/8),
		}
	}
	if int(dec.SampleRate) != wantRate {
		f.Close()
		return nil, &WaveFormatError{
			Want: fmt.Sprintf("%dHz", wantRate),
			Got:  fmt.Sprintf("%dHz", dec.SampleRate),
		}
	}

	return &waveReader{
		f:   f,
		dec: dec,
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{NumChannels: 1, SampleRate: int(dec.SampleRate)},
			Data:   make([]int, chunkFrames),
		},
	}, nil
}

// readChunk returns up to chunkFrames frames as little-endian int16
// bytes, or nil at end of stream.
func (w *waveReader) readChunk() ([]byte, error) {
	n, err := w.dec.PCMBuffer(w.buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV frames: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	out := make([]byte, n*2)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(w.buf.Data[i])))
	}
	return out, nil
}

func (w *waveReader) Close() error {
	return w.f.Close()
}
