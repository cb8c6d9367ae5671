package textstats

import (
	"strings"
	"testing"

	"github.com/Shahnasha/audio-summarizer/models"
)

func segWithEnd(text string, end float64) models.Segment {
	return models.Segment{Text: text, End: &end}
}

func TestComputeStatsBasic(t *testing.T) {
	transcript := "This is great. It works well. Testing now."
	segments := []models.Segment{segWithEnd("this is great", 2.5), segWithEnd("it works well testing now", 6.04)}

	stats := ComputeStats(transcript, segments)

	if stats.WordCount != 8 {
		t.Errorf("word_count = %d, want 8", stats.WordCount)
	}
	if stats.SentenceCount != 3 {
		t.Errorf("sentence_count = %d, want 3", stats.SentenceCount)
	}
	if stats.CharCount != len(transcript) {
		t.Errorf("char_count = %d, want %d", stats.CharCount, len(transcript))
	}
	if stats.DurationSec != 6.0 {
		t.Errorf("duration_sec = %v, want 6.0 (end rounded to 1 decimal)", stats.DurationSec)
	}
}

func TestComputeStatsSentenceCountMinimumOne(t *testing.T) {
	stats := ComputeStats("no terminator in sight", nil)
	if stats.SentenceCount != 1 {
		t.Errorf("sentence_count = %d, want 1", stats.SentenceCount)
	}
}

func TestComputeStatsDurationWithoutTiming(t *testing.T) {
	segments := []models.Segment{{Text: "untimed utterance"}}
	stats := ComputeStats("untimed utterance", segments)
	if stats.DurationSec != 0 {
		t.Errorf("duration_sec = %v, want 0 when last segment has no end", stats.DurationSec)
	}
}

func TestComputeStatsReadingTimeMinimum(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       int
	}{
		{"single word", "hello", 1},
		{"short transcript", "just a few words here", 1},
		{"four hundred words", strings.Repeat("word ", 400), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(tt.transcript, nil)
			if stats.ReadingTimeMin != tt.want {
				t.Errorf("reading_time_min = %d, want %d", stats.ReadingTimeMin, tt.want)
			}
			if stats.ReadingTimeMin < 1 {
				t.Error("reading_time_min must never drop below 1")
			}
		})
	}
}

func TestRoundMB(t *testing.T) {
	if got := RoundMB(1024 * 1024); got != 1.0 {
		t.Errorf("RoundMB(1MiB) = %v, want 1.0", got)
	}
	if got := RoundMB(1536 * 1024); got != 1.5 {
		t.Errorf("RoundMB(1.5MiB) = %v, want 1.5", got)
	}
	if got := RoundMB(0); got != 0 {
		t.Errorf("RoundMB(0) = %v, want 0", got)
	}
}
