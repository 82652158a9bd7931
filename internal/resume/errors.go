package resume

import (
	"fmt"

	"github.com/jonathan/cv-tracker/internal/types"
)

// SerializeError wraps a failure to write a document in its origin format
type SerializeError struct {
	Origin types.Origin
	Cause  error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("failed to serialize %s résumé: %v", e.Origin, e.Cause)
}

func (e *SerializeError) Unwrap() error {
	return e.Cause
}
