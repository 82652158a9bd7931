// Package uncertainty tracks fields the importers could not fill with confidence.
// A marker lives until a human edits the flagged field.
package uncertainty

import "github.com/jonathan/cv-tracker/internal/types"

type key struct {
	entry int
	field string
}

// Tracker is an immutable set of uncertainty markers. Methods that change it
// return a new Tracker; the receiver is never modified.
type Tracker struct {
	items  []types.Uncertainty
	edited map[key]bool
}

// New returns a tracker holding items, in order
func New(items []types.Uncertainty) Tracker {
	return Tracker{items: append([]types.Uncertainty(nil), items...)}
}

// Items returns a copy of the markers
func (t Tracker) Items() []types.Uncertainty {
	out := make([]types.Uncertainty, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of markers
func (t Tracker) Len() int {
	return len(t.items)
}

// Flagged reports whether the field of entry i carries a marker
func (t Tracker) Flagged(entry int, field string) bool {
	for _, u := range t.items {
		if u.EntryIndex == entry && u.Field == field {
			return true
		}
	}
	return false
}

// RecordEdit clears exactly the (entry, field) marker. Other fields of the
// same entry stay flagged, and the pair is never flagged again by Add.
func (t Tracker) RecordEdit(entry int, field string) Tracker {
	k := key{entry: entry, field: field}
	next := Tracker{
		items:  make([]types.Uncertainty, 0, len(t.items)),
		edited: make(map[key]bool, len(t.edited)+1),
	}
	for e := range t.edited {
		next.edited[e] = true
	}
	next.edited[k] = true
	for _, u := range t.items {
		if u.EntryIndex != entry || u.Field != field {
			next.items = append(next.items, u)
		}
	}
	return next
}

// Add appends a marker unless the field was already edited or is already flagged
func (t Tracker) Add(u types.Uncertainty) Tracker {
	if t.edited[key{entry: u.EntryIndex, field: u.Field}] || t.Flagged(u.EntryIndex, u.Field) {
		return t
	}
	return Tracker{items: append(t.Items(), u), edited: t.edited}
}
