package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/cv-tracker/internal/experience"
	"github.com/jonathan/cv-tracker/internal/merge"
	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge a résumé or profile into an existing profile",
	Long: `Merge imported data into a profile JSON file without duplicating entries.
Each collection is merged in add mode unless a replace is requested for it.
A replace that discards existing entries must be confirmed with --confirm.`,
	RunE: runMerge,
}

var (
	mergeProfilePath string
	mergeFromCV      string
	mergeFromProfile string
	mergeOutput      string
	mergeConfirm     bool
	mergeModes       = map[string]*string{}
)

// mergeCollections are the profile collections that take a mode flag
var mergeCollections = []string{"experiences", "education", "skills", "languages", "links", "certifications"}

func init() {
	mergeCmd.Flags().StringVarP(&mergeProfilePath, "profile", "p", "", "Profile JSON file to merge into (required)")
	mergeCmd.Flags().StringVar(&mergeFromCV, "cv", "", "Résumé file to import")
	mergeCmd.Flags().StringVar(&mergeFromProfile, "from-profile", "", "Profile JSON file to import")
	mergeCmd.Flags().StringVarP(&mergeOutput, "out", "o", "", "Output file (default: overwrite --profile)")
	mergeCmd.Flags().BoolVar(&mergeConfirm, "confirm", false, "Confirm replacing existing entries")
	for _, name := range mergeCollections {
		mergeModes[name] = mergeCmd.Flags().String(name, "add", "Merge mode for "+name+": add or replace")
	}

	if err := mergeCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	rootCmd.AddCommand(mergeCmd)
}

// buildPlan turns per-collection mode strings into a merge plan
func buildPlan(modes map[string]string, confirmed bool) (merge.Plan, error) {
	plan := merge.Plan{Confirmed: confirmed}
	targets := map[string]*merge.Mode{
		"experiences":    &plan.Experiences,
		"education":      &plan.Education,
		"skills":         &plan.Skills,
		"languages":      &plan.Languages,
		"links":          &plan.Links,
		"certifications": &plan.Certifications,
	}
	for name, raw := range modes {
		dst, ok := targets[name]
		if !ok {
			return merge.Plan{}, fmt.Errorf("unknown collection %q", name)
		}
		mode, ok := merge.ParseMode(raw)
		if !ok {
			return merge.Plan{}, fmt.Errorf("invalid mode %q for %s (want add or replace)", raw, name)
		}
		*dst = mode
	}
	return plan, nil
}

// profileFromResume parses a résumé file into an import candidate profile
func profileFromResume(path string) (*types.Profile, error) {
	parser, err := newParser()
	if err != nil {
		return nil, err
	}
	content, err := readInput(path)
	if err != nil {
		return nil, err
	}
	doc := parser.Parse(content)
	if doc.NothingExtracted() {
		return nil, fmt.Errorf("nothing could be extracted from %s", path)
	}

	p := experience.ProfileFromCV(doc.Content)
	for _, name := range doc.Certifications {
		p.Certifications = append(p.Certifications, types.Certification{Name: name})
	}
	experience.NormalizeSkills(p)
	experience.TrimAchievements(p)
	return p, nil
}

func runMerge(cmd *cobra.Command, _ []string) error {
	if (mergeFromCV == "") == (mergeFromProfile == "") {
		return fmt.Errorf("exactly one of --cv or --from-profile must be provided")
	}

	modes := make(map[string]string, len(mergeModes))
	for name, v := range mergeModes {
		modes[name] = *v
	}
	plan, err := buildPlan(modes, mergeConfirm)
	if err != nil {
		return err
	}

	existing, err := experience.LoadProfile(mergeProfilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	var incoming *types.Profile
	if mergeFromCV != "" {
		incoming, err = profileFromResume(mergeFromCV)
	} else {
		incoming, err = experience.LoadProfile(mergeFromProfile)
		if err == nil {
			err = experience.NormalizeProfile(incoming)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to load import: %w", err)
	}

	merged, err := merge.MergeProfile(existing, incoming, plan)
	if err != nil {
		if errors.Is(err, merge.ErrReplaceNotConfirmed) {
			return fmt.Errorf("%w (rerun with --confirm)", err)
		}
		return err
	}

	out := mergeOutput
	if out == "" {
		out = mergeProfilePath
	}
	if err := experience.WriteProfile(out, merged); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Merged profile: %d experiences, %d education, %d skills, %d certifications\n",
		len(merged.Experiences), len(merged.Education), len(merged.Skills), len(merged.Certifications))
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", out)
	return nil
}
