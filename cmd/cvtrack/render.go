package main

import (
	"fmt"

	"github.com/jonathan/cv-tracker/internal/rendering"
	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Serialize a résumé back to its format, or convert it",
	Long:  "Parse a résumé and write it back in the format it came in, or in the format given by --to. JSON output reuses the skill bucket sizes of the input when the skill count is unchanged.",
	RunE:  runRender,
}

var (
	renderInput    string
	renderOutput   string
	renderTo       string
	renderTemplate string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Résumé file, or - for stdin (required)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output file (default stdout)")
	renderCmd.Flags().StringVar(&renderTo, "to", "", "Output format: json or text (default: input format)")
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "Markdown template for text output (overrides config)")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	parser, err := newParser()
	if err != nil {
		return err
	}
	content, err := readInput(renderInput)
	if err != nil {
		return err
	}

	doc := parser.Parse(content)
	if renderTo != "" {
		origin, err := parseOrigin(renderTo)
		if err != nil {
			return err
		}
		if origin != doc.Origin {
			logger.Debug("converting", "from", doc.Origin, "to", origin)
			doc = doc.Convert(origin)
		}
	}

	tmpl := renderTemplate
	if tmpl == "" {
		tmpl = appConfig.Template
	}

	var out string
	if doc.Origin == types.OriginText && tmpl != "" {
		out, err = rendering.RenderMarkdownTemplate(doc.Content, tmpl)
	} else {
		out, err = doc.Serialize(bucketStrategy(doc))
	}
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), renderOutput, out)
}
