package asr

import (
	"fmt"

	vosk "github.com/alphacep/vosk-api/go"

	"github.com/Shahnasha/audio-summarizer/internal/audio"
	"github.com/Shahnasha/audio-summarizer/models"
)

// Recognizer runs offline speech recognition against a Vosk model
// loaded once at startup. The model handle is read-only after load and
// safe to share; each Transcribe call builds its own recognizer state.
type Recognizer struct {
	model *vosk.VoskModel
}

// NewRecognizer loads the Vosk model from modelPath. Load failure is a
// startup-fatal condition for the caller.
func NewRecognizer(modelPath string) (*Recognizer, error) {
	vosk.SetLogLevel(-1)

	model, err := vosk.NewModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load Vosk model from %s: %w", modelPath, err)
	}
	return &Recognizer{model: model}, nil
}

// Transcribe streams the WAV at wavPath through the recognizer in
// fixed-size chunks and returns the flat transcript plus the ordered
// word-timestamped segments.
func (r *Recognizer) Transcribe(wavPath string) (string, []models.Segment, error) {
	wf, err := openWave(wavPath, audio.TargetSampleRate)
	if err != nil {
		return "", nil, err
	}
	defer wf.Close()

	rec, err := vosk.NewRecognizer(r.model, float64(audio.TargetSampleRate))
	if err != nil {
		return "", nil, fmt.Errorf("failed to create recognizer: %w", err)
	}
	defer rec.Free()
	rec.SetWords(1)

	var segments []models.Segment
	for {
		chunk, err := wf.readChunk()
		if err != nil {
			return "", nil, err
		}
		if chunk == nil {
			break
		}

		if rec.AcceptWaveform(chunk) != 0 {
			if seg, ok := segmentFromResult(rec.Result()); ok {
				segments = append(segments, seg)
			}
		}
	}

	if seg, ok := segmentFromResult(rec.FinalResult()); ok {
		segments = append(segments, seg)
	}

	return joinTranscript(segments), segments, nil
}

// Close releases the model.
func (r *Recognizer) Close() {
	if r.model != nil {
		r.model.Free()
	}
}
