package merge

import (
	"errors"
	"fmt"
)

// ErrReplaceNotConfirmed is returned when replace mode would discard existing
// entries and the caller has not confirmed
var ErrReplaceNotConfirmed = errors.New("replace not confirmed")

// ReplaceError names the profile collection whose replace was refused
type ReplaceError struct {
	Collection string
	Existing   int
	Cause      error
}

func (e *ReplaceError) Error() string {
	return fmt.Sprintf("%s: replacing %d existing entries: %v", e.Collection, e.Existing, e.Cause)
}

func (e *ReplaceError) Unwrap() error {
	return e.Cause
}
