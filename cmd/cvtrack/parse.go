package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jonathan/cv-tracker/internal/observability"
	"github.com/jonathan/cv-tracker/internal/resume"
	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Parse résumés into the editor shape",
	Long:  "Parse one or more résumés (canonical JSON, markdown text or HTML) and print the structured content with its uncertainty markers. Files are parsed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseOutDir   string
	parseSections bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutDir, "out-dir", "o", "", "Write one <name>.parsed.json per input instead of printing")
	parseCmd.Flags().BoolVar(&parseSections, "sections", false, "Include the raw lines of each recognised section (text inputs only)")
	rootCmd.AddCommand(parseCmd)
}

// parsedFile is the JSON view of one parsed input
type parsedFile struct {
	File             string              `json:"file"`
	Origin           types.Origin        `json:"origin"`
	Content          types.CVContent     `json:"content"`
	Uncertainties    []types.Uncertainty `json:"uncertainties"`
	NothingExtracted bool                `json:"nothingExtracted"`
	Certifications   []string            `json:"certifications,omitempty"`
	Sections         map[string][]string `json:"sections,omitempty"`
}

// parseFiles parses paths concurrently and returns results in input order.
// withSections adds the raw section split of text inputs.
func parseFiles(ctx context.Context, parser *resume.Parser, paths []string, withSections bool) ([]parsedFile, error) {
	results := make([]parsedFile, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := readInput(path)
			if err != nil {
				return err
			}
			doc := parser.Parse(content)
			results[i] = parsedFile{
				File:             path,
				Origin:           doc.Origin,
				Content:          doc.Content,
				Uncertainties:    doc.Uncertainties.Items(),
				NothingExtracted: doc.NothingExtracted(),
				Certifications:   doc.Certifications,
			}
			if withSections && doc.Origin == types.OriginText {
				results[i].Sections = parser.Sections(content)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	parser, err := newParser()
	if err != nil {
		return err
	}

	results, err := parseFiles(cmd.Context(), parser, args, parseSections)
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(cmd.ErrOrStderr())
	for _, r := range results {
		logger.Debug("parsed", "file", r.File, "origin", r.Origin, "experiences", len(r.Content.Experiences), "uncertainties", len(r.Uncertainties))
		if verbose {
			printer.PrintParsedCV(r.File, r.Origin, &r.Content, r.Uncertainties)
		}
		if r.NothingExtracted {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: nothing could be extracted from %s\n", r.File)
		}
	}

	if parseOutDir == "" {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if err := os.MkdirAll(parseOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, r := range results {
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		name := strings.TrimSuffix(filepath.Base(r.File), filepath.Ext(r.File)) + ".parsed.json"
		dest := filepath.Join(parseOutDir, name)
		if err := os.WriteFile(dest, out, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Parsed %s -> %s\n", r.File, dest)
	}
	return nil
}
