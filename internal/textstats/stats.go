package textstats

import (
	"math"
	"regexp"
	"strings"

	"github.com/Shahnasha/audio-summarizer/models"
)

var sentenceEndPattern = regexp.MustCompile(`[.!?]+`)

// readingWordsPerMinute is the assumed silent-reading pace.
const readingWordsPerMinute = 200

// ComputeStats derives descriptive statistics from the transcript and
// its segments. DurationSec comes from the last segment's end time and
// is understated when trailing segments carry no timing.
func ComputeStats(transcript string, segments []models.Segment) models.Stats {
	wordCount := len(strings.Fields(transcript))

	sentenceCount := len(sentenceEndPattern.FindAllString(transcript, -1))
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	var durationSec float64
	if len(segments) > 0 {
		if end := segments[len(segments)-1].End; end != nil {
			durationSec = *end
		}
	}

	readingTime := int(math.Round(float64(wordCount) / readingWordsPerMinute))
	if readingTime < 1 {
		readingTime = 1
	}

	return models.Stats{
		WordCount:      wordCount,
		SentenceCount:  sentenceCount,
		CharCount:      len(transcript),
		DurationSec:    math.Round(durationSec*10) / 10,
		ReadingTimeMin: readingTime,
	}
}

// RoundMB converts a byte count to megabytes at 2 decimal places.
func RoundMB(sizeBytes int64) float64 {
	return math.Round(float64(sizeBytes)/(1024*1024)*100) / 100
}
