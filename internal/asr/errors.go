package asr

import "fmt"

// WaveFormatError reports a waveform precondition violation, carrying
// the expected and actual values so the client sees exactly what was
// wrong with the file.
type WaveFormatError struct {
	Want string
	Got  string
}

func (e *WaveFormatError) Error() string {
	return fmt.Sprintf("WAV must be %s, got %s", e.Want, e.Got)
}
