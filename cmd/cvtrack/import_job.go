package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/cv-tracker/internal/fetch"
	"github.com/jonathan/cv-tracker/internal/ingestion"
	"github.com/jonathan/cv-tracker/internal/observability"
	"github.com/spf13/cobra"
)

var importJobCmd = &cobra.Command{
	Use:   "import-job",
	Short: "Extract a job posting into structured JSON",
	Long:  "Send a job posting (a file, stdin, or a URL) to the extraction service and print the structured description. A salary the service missed is read from the text.",
	RunE:  runImportJob,
}

var (
	jobInput   string
	jobURL     string
	jobBrowser bool
	jobOutput  string
	jobSave    bool
	jobAPIKey  string
)

func init() {
	importJobCmd.Flags().StringVarP(&jobInput, "in", "i", "", "Job posting file, or - for stdin")
	importJobCmd.Flags().StringVar(&jobURL, "url", "", "Job posting URL")
	importJobCmd.Flags().BoolVar(&jobBrowser, "browser", false, "Render the posting in headless Chrome when the page has little text")
	importJobCmd.Flags().StringVarP(&jobOutput, "out", "o", "", "Output JSON file (default stdout)")
	importJobCmd.Flags().BoolVar(&jobSave, "save", false, "Save the description in the database")
	importJobCmd.Flags().StringVar(&jobAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	importJobCmd.MarkFlagsOneRequired("in", "url")
	importJobCmd.MarkFlagsMutuallyExclusive("in", "url")
	rootCmd.AddCommand(importJobCmd)
}

func runImportJob(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	text, source, err := jobPostingText(cmd)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, jobAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	jd, err := ingestion.ExtractJobDescription(ctx, client, text)
	if err != nil {
		return fmt.Errorf("failed to extract job description: %w", err)
	}

	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintJobDescription(jd)
	}

	if jobSave {
		database, err := connectDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		id, err := database.SaveJobDescription(ctx, source, jd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved job description %s\n", id)
	}

	out, err := json.MarshalIndent(jd, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), jobOutput, string(out)+"\n")
}

// jobPostingText returns the posting text and the source recorded with it.
func jobPostingText(cmd *cobra.Command) (string, string, error) {
	if jobURL == "" {
		text, err := readInput(jobInput)
		return text, jobInput, err
	}

	p, err := fetch.JobPosting(cmd.Context(), jobURL, fetch.Options{Browser: jobBrowser, Logger: logger})
	if err != nil {
		return "", "", err
	}
	if p.Rendered {
		fmt.Fprintf(cmd.ErrOrStderr(), "Rendered %s in headless browser\n", jobURL)
	}
	return p.Text, p.URL, nil
}
