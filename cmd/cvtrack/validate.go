package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/cv-tracker/internal/schemas"
	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a schema",
	Long:  "Validate a canonical résumé or a profile against the built-in schemas, or any document against --schema. Profiles are also checked for enum, email and URL constraints.",
	RunE:  runValidate,
}

var (
	validateJSONPath   string
	validateSchemaPath string
	validateKind       string
)

func init() {
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "JSON document to validate (required)")
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "JSON schema file (overrides --kind)")
	validateCmd.Flags().StringVar(&validateKind, "kind", "cv", "Built-in schema: cv or profile")

	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}
	rootCmd.AddCommand(validateCmd)
}

// validateDocument checks data against the built-in schema for kind
func validateDocument(kind string, data []byte) error {
	switch kind {
	case "cv":
		return schemas.ValidateCanonicalCV(data)
	case "profile":
		if err := schemas.ValidateProfile(data); err != nil {
			return err
		}
		var p types.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("failed to decode profile: %w", err)
		}
		return p.Validate()
	}
	return fmt.Errorf("unknown kind %q (want cv or profile)", kind)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if validateSchemaPath != "" {
		err = schemas.ValidateJSON(validateSchemaPath, validateJSONPath)
	} else {
		data, readErr := os.ReadFile(validateJSONPath)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", validateJSONPath, readErr)
		}
		err = validateDocument(validateKind, data)
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Validation failed:")
		for _, fe := range validationErr.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("%s does not match the schema", validateJSONPath)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}
