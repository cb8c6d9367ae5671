package models

// ProcessResponse is the full result document for one processed upload.
// Segments is capped by the handler before the response is sent.
type ProcessResponse struct {
	Transcript string      `json:"transcript"`
	Summary    string      `json:"summary"`
	Highlights []Highlight `json:"highlights"`
	Keywords   []Keyword   `json:"keywords"`
	Stats      Stats       `json:"stats"`
	Segments   []Segment   `json:"segments"`
}

// ErrorResponse is the body for every non-200 response.
type ErrorResponse struct {
	Error string `json:"error"`
}
