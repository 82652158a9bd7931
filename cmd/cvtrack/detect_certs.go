package main

import (
	"fmt"

	"github.com/jonathan/cv-tracker/internal/certs"
	"github.com/jonathan/cv-tracker/internal/experience"
	"github.com/jonathan/cv-tracker/internal/merge"
	"github.com/spf13/cobra"
)

var detectCertsCmd = &cobra.Command{
	Use:   "detect-certs",
	Short: "Find certifications mentioned in a profile's free text",
	RunE:  runDetectCerts,
}

var (
	certsProfilePath string
	certsApply       bool
)

func init() {
	detectCertsCmd.Flags().StringVarP(&certsProfilePath, "profile", "p", "", "Profile JSON file (required)")
	detectCertsCmd.Flags().BoolVar(&certsApply, "apply", false, "Add the detected certifications to the profile file")

	if err := detectCertsCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	rootCmd.AddCommand(detectCertsCmd)
}

func runDetectCerts(cmd *cobra.Command, _ []string) error {
	profile, err := experience.LoadProfile(certsProfilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	found := certs.Detect(certs.ProfileText(profile), profile.Certifications)
	if len(found) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No new certifications found")
		return nil
	}
	for _, c := range found {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Name, c.Issuer)
	}
	if !certsApply {
		return nil
	}

	profile.Certifications, err = merge.Merge(profile.Certifications, found, merge.CertificationKey, merge.Options{Mode: merge.ModeAdd})
	if err != nil {
		return err
	}
	if err := experience.WriteProfile(certsProfilePath, profile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d certifications to %s\n", len(found), certsProfilePath)
	return nil
}
