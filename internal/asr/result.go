package asr

import (
	"encoding/json"
	"strings"

	"github.com/Shahnasha/audio-summarizer/models"
)

// voskResult mirrors the JSON the recognizer emits for one utterance.
// The per-word list is only present when word timing was requested and
// the utterance decoded cleanly.
type voskResult struct {
	Text   string     `json:"text"`
	Result []voskWord `json:"result"`
}

type voskWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Conf  float64 `json:"conf"`
}

// segmentFromResult converts one recognizer result JSON into a Segment.
// Returns ok=false when the utterance text is empty after trimming.
func segmentFromResult(raw string) (models.Segment, bool) {
	var res voskResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return models.Segment{}, false
	}

	text := strings.TrimSpace(res.Text)
	if text == "" {
		return models.Segment{}, false
	}

	seg := models.Segment{Text: text}
	if len(res.Result) > 0 {
		start := res.Result[0].Start
		end := res.Result[len(res.Result)-1].End
		seg.Start = &start
		seg.End = &end
	}
	return seg, true
}

// joinTranscript builds the flat transcript from segments in emission
// order.
func joinTranscript(segments []models.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, strings.TrimSpace(s.Text))
	}
	return strings.Join(parts, " ")
}
