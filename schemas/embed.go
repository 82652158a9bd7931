// Package schemas holds the JSON Schemas for the interchange formats.
package schemas

import _ "embed"

// CanonicalCV is the schema of the canonical JSON résumé
//
//go:embed canonical_cv.schema.json
var CanonicalCV []byte

// Profile is the schema of a stored profile
//
//go:embed profile.schema.json
var Profile []byte
