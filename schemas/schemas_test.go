package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"canonical_cv.schema.json",
		"profile.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v map[string]interface{}
			err = json.Unmarshal(data, &v)
			require.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", v["$schema"])
		})
	}
}

func TestEmbeddedSchemasMatchFiles(t *testing.T) {
	for file, embedded := range map[string][]byte{
		"canonical_cv.schema.json": CanonicalCV,
		"profile.schema.json":      Profile,
	} {
		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Equal(t, data, embedded, file)
	}
}
