package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/Shahnasha/audio-summarizer/config"
	"github.com/Shahnasha/audio-summarizer/internal/summarize"
	"github.com/Shahnasha/audio-summarizer/models"
)

// Normalizer converts an uploaded audio file into a mono 16 kHz PCM16
// WAV at outPath.
type Normalizer interface {
	Normalize(inputPath, outPath string) error
}

// Recognizer transcribes a normalized WAV into a flat transcript and
// ordered timestamped segments.
type Recognizer interface {
	Transcribe(wavPath string) (string, []models.Segment, error)
}

// ApplicationHandler holds shared dependencies for handlers. The
// interfaces decouple the HTTP layer from the concrete pipeline so
// tests can substitute stubs.
type ApplicationHandler struct {
	Normalizer Normalizer
	Recognizer Recognizer
	Embedder   summarize.Embedder
	Logger     *logrus.Logger
	Cfg        *config.Config
}

// NewApplicationHandler creates an ApplicationHandler with the given
// dependencies.
func NewApplicationHandler(n Normalizer, r Recognizer, e summarize.Embedder, log *logrus.Logger, cfg *config.Config) *ApplicationHandler {
	return &ApplicationHandler{
		Normalizer: n,
		Recognizer: r,
		Embedder:   e,
		Logger:     log,
		Cfg:        cfg,
	}
}
