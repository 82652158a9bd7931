// Package merge imports parsed entries into an existing profile without
// duplicating what is already there.
package merge

import (
	"strings"

	"github.com/jonathan/cv-tracker/internal/textutil"
)

// Mode selects add or replace semantics for a collection
type Mode string

const (
	// ModeAdd prepends incoming entries that are not already present
	ModeAdd Mode = "add"
	// ModeReplace discards existing entries in favour of incoming ones
	ModeReplace Mode = "replace"
)

// ParseMode parses "add" or "replace"; the empty string means add
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAdd:
		return ModeAdd, true
	case ModeReplace:
		return ModeReplace, true
	}
	return "", false
}

// Options controls a single merge
type Options struct {
	Mode Mode
	// Confirmed must be set for a replace that discards existing entries
	Confirmed bool
}

// KeyFunc returns the identity of an entry. An empty key means the entry has
// no identity and is never treated as a duplicate.
type KeyFunc[T any] func(T) string

// Merge combines existing and incoming. Neither input is modified.
//
// Replace returns incoming as-is, but only when existing is empty or the
// caller confirmed. Add returns the incoming entries whose key is absent from
// existing and from earlier incoming entries, followed by all of existing.
func Merge[T any](existing, incoming []T, key KeyFunc[T], opts Options) ([]T, error) {
	if opts.Mode == ModeReplace {
		if len(existing) > 0 && !opts.Confirmed {
			return nil, ErrReplaceNotConfirmed
		}
		return append(make([]T, 0, len(incoming)), incoming...), nil
	}

	seen := make(map[string]bool, len(existing)+len(incoming))
	for _, e := range existing {
		if k := key(e); k != "" {
			seen[k] = true
		}
	}

	out := make([]T, 0, len(existing)+len(incoming))
	for _, in := range incoming {
		k := key(in)
		if k != "" {
			if seen[k] {
				continue
			}
			seen[k] = true
		}
		out = append(out, in)
	}
	return append(out, existing...), nil
}

// StringKey folds a plain string, for merging skill-name lists
func StringKey(s string) string {
	return textutil.Fold(s)
}

// Strings merges plain string lists with case-insensitive dedup
func Strings(existing, incoming []string, opts Options) ([]string, error) {
	return Merge(existing, incoming, StringKey, opts)
}

// compositeKey joins folded parts; all-empty parts yield no identity
func compositeKey(parts ...string) string {
	folded := make([]string, len(parts))
	empty := true
	for i, p := range parts {
		folded[i] = textutil.Fold(p)
		if folded[i] != "" {
			empty = false
		}
	}
	if empty {
		return ""
	}
	return strings.Join(folded, "|")
}
