package audio

import "fmt"

// FormatError indicates the uploaded audio could not be decoded,
// resampled, or encoded. Handlers map it to a client error.
type FormatError struct {
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatError(msg string, err error) *FormatError {
	return &FormatError{Msg: msg, Err: err}
}
