package experience

import (
	"encoding/json"
	"os"

	"github.com/jonathan/cv-tracker/internal/types"
)

// LoadProfile loads a profile from a JSON file
func LoadProfile(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Op: "read", Cause: err}
	}

	var profile types.Profile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, &LoadError{Path: path, Op: "decode", Cause: err}
	}
	return &profile, nil
}

// WriteProfile writes a profile as indented JSON
func WriteProfile(path string, profile *types.Profile) error {
	content, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return &LoadError{Path: path, Op: "encode", Cause: err}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return &LoadError{Path: path, Op: "write", Cause: err}
	}
	return nil
}
