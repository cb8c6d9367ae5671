package models

// Segment represents a single recognized utterance. Start and End are
// word-level timestamps in seconds; they are omitted when the recognizer
// produced no per-word breakdown for the utterance.
type Segment struct {
	Text  string   `json:"text"`
	Start *float64 `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`
}

// Highlight is a sentence selected by the extractive summarizer along
// with its relevance score. Highlights are ordered by descending score.
type Highlight struct {
	Sentence string  `json:"sentence"`
	Score    float64 `json:"score"`
}

// Keyword is a transcript token with its frequency count.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Stats holds descriptive statistics derived from the transcript.
type Stats struct {
	WordCount      int     `json:"word_count"`
	SentenceCount  int     `json:"sentence_count"`
	CharCount      int     `json:"char_count"`
	DurationSec    float64 `json:"duration_sec"`
	ReadingTimeMin int     `json:"reading_time_min"`
	FileSizeMB     float64 `json:"file_size_mb"`
}
