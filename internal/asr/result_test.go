package asr

import (
	"testing"

	"github.com/Shahnasha/audio-summarizer/models"
)

func TestSegmentFromResultWithTiming(t *testing.T) {
	raw := `{"result":[
		{"conf":0.98,"start":0.33,"end":0.81,"word":"hello"},
		{"conf":0.95,"start":0.84,"end":1.20,"word":"world"}
	],"text":" hello world "}`

	seg, ok := segmentFromResult(raw)
	if !ok {
		t.Fatal("expected a segment")
	}
	if seg.Text != "hello world" {
		t.Errorf("text = %q, want trimmed %q", seg.Text, "hello world")
	}
	if seg.Start == nil || *seg.Start != 0.33 {
		t.Errorf("start = %v, want 0.33 (first word)", seg.Start)
	}
	if seg.End == nil || *seg.End != 1.20 {
		t.Errorf("end = %v, want 1.20 (last word)", seg.End)
	}
}

func TestSegmentFromResultWithoutWordList(t *testing.T) {
	seg, ok := segmentFromResult(`{"text":"flush text"}`)
	if !ok {
		t.Fatal("expected a segment")
	}
	if seg.Start != nil || seg.End != nil {
		t.Errorf("timing = (%v, %v), want absent without per-word results", seg.Start, seg.End)
	}
}

func TestSegmentFromResultDropsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty text", `{"text":""}`},
		{"whitespace text", `{"text":"   "}`},
		{"malformed json", `{not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := segmentFromResult(tt.raw); ok {
				t.Error("expected no segment")
			}
		})
	}
}

func TestJoinTranscript(t *testing.T) {
	segs := []models.Segment{
		{Text: "first utterance"},
		{Text: "  second utterance "},
		{Text: "third"},
	}
	got := joinTranscript(segs)
	want := "first utterance second utterance third"
	if got != want {
		t.Errorf("transcript = %q, want %q", got, want)
	}

	if got := joinTranscript(nil); got != "" {
		t.Errorf("empty segments transcript = %q, want empty", got)
	}
}
