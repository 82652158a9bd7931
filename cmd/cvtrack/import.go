package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/cv-tracker/internal/db"
	"github.com/jonathan/cv-tracker/internal/experience"
	"github.com/jonathan/cv-tracker/internal/ingestion"
	"github.com/jonathan/cv-tracker/internal/llm"
	"github.com/jonathan/cv-tracker/internal/merge"
	"github.com/jonathan/cv-tracker/internal/observability"
	"github.com/jonathan/cv-tracker/internal/resume"
	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Extract a résumé with the LLM and store or merge it",
	Long: `Send a résumé (text, markdown or HTML) to the extraction service and turn the
answer into a text-format résumé. Fields the service was unsure about are listed
on stderr. The result is written to --out, saved as a record with --save, and
merged into --profile in add mode when given.`,
	RunE: runImport,
}

var (
	importInput   string
	importOutput  string
	importProfile string
	importSave    bool
	importAPIKey  string
)

func init() {
	importCmd.Flags().StringVarP(&importInput, "in", "i", "", "Résumé file, or - for stdin (required)")
	importCmd.Flags().StringVarP(&importOutput, "out", "o", "", "Write the serialized résumé here (default stdout)")
	importCmd.Flags().StringVarP(&importProfile, "profile", "p", "", "Profile JSON file to merge the import into")
	importCmd.Flags().BoolVar(&importSave, "save", false, "Save the résumé as a new record in the database")
	importCmd.Flags().StringVar(&importAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	if err := importCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	rootCmd.AddCommand(importCmd)
}

// newLLMClient creates the extraction client from flags and config
func newLLMClient(ctx context.Context, flagKey string) (llm.Client, error) {
	apiKey := flagKey
	if apiKey == "" {
		apiKey = appConfig.APIKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}
	cfg := llm.DefaultConfig()
	if appConfig.Model != "" {
		cfg = cfg.WithModel(llm.TierStandard, appConfig.Model)
	}
	return llm.NewClient(ctx, cfg, apiKey)
}

// connectDB opens the configured database
func connectDB(ctx context.Context) (*db.DB, error) {
	if appConfig.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	database, err := db.Connect(ctx, appConfig.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// extractDocument runs the extraction service over text
func extractDocument(ctx context.Context, client llm.Client, text string) (*resume.Document, error) {
	extracted, err := ingestion.ExtractResume(ctx, client, text)
	if err != nil {
		return nil, err
	}
	doc := resume.FromExtraction(extracted)
	doc.EnsureIDs()
	return doc, nil
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	text, err := readInput(importInput)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, importAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	logger.Debug("extracting résumé", "file", importInput, "chars", len(text))
	doc, err := extractDocument(ctx, client, text)
	if err != nil {
		return fmt.Errorf("failed to extract résumé: %w", err)
	}
	if doc.NothingExtracted() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: the extraction service returned no entries\n")
	}
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintParsedCV(importInput, doc.Origin, &doc.Content, doc.Uncertainties.Items())
	} else {
		for _, u := range doc.Uncertainties.Items() {
			fmt.Fprintf(cmd.ErrOrStderr(), "Check entry %d %s: %s\n", u.EntryIndex, u.Field, u.Reason)
		}
	}

	serialized, err := doc.Serialize(nil)
	if err != nil {
		return err
	}

	if importSave {
		database, err := connectDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		rec := &db.CVRecord{ID: uuid.New(), Origin: doc.Origin, Content: serialized}
		if err := database.SaveCVRecord(ctx, rec); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved record %s\n", rec.ID)
	}

	if importProfile != "" {
		existing, err := experience.LoadProfile(importProfile)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		incoming := experience.ProfileFromCV(doc.Content)
		for _, name := range doc.Certifications {
			incoming.Certifications = append(incoming.Certifications, types.Certification{Name: name})
		}
		experience.NormalizeSkills(incoming)
		merged, err := merge.MergeProfile(existing, incoming, merge.Plan{})
		if err != nil {
			return err
		}
		if err := experience.WriteProfile(importProfile, merged); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Merged into %s\n", importProfile)
	}

	return writeOutput(cmd.OutOrStdout(), importOutput, serialized)
}
