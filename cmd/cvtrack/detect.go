package main

import (
	"fmt"

	"github.com/jonathan/cv-tracker/internal/parsing"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect FILE...",
	Short: "Report whether each résumé is canonical JSON or free-form text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		content, err := readInput(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, parsing.DetectFormat(content))
	}
	return nil
}
