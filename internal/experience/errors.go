// Package experience converts between the editor and profile shapes of
// résumé entries and loads profile files.
package experience

import "fmt"

// LoadError reports a profile file that could not be read or written.
type LoadError struct {
	Path  string
	Op    string // read, decode, encode, write
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("profile %s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NormalizationError reports an enum value that cannot be mapped onto
// its closed set.
type NormalizationError struct {
	Collection string
	Index      int
	Value      string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("%s[%d]: invalid value %q", e.Collection, e.Index, e.Value)
}
