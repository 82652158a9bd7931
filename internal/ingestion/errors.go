package ingestion

import "fmt"

// FileError is returned when an input file cannot be read
type FileError struct {
	Path    string
	Message string
	Cause   error
}

func (e *FileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Cause
}

// ExtractionError is returned when the extraction service fails or answers
// with something that is not the expected JSON
type ExtractionError struct {
	Kind    string // "resume" or "job description"
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction: %s", e.Kind, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
