package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/recommend"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/spf13/cobra"
)

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		profilePath    string
		limit          int
		includeApplied bool
		format         string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend jobs for a user profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := loadProfile(profilePath)
			if err != nil {
				return err
			}

			e, err := opts.openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			ropts := recommend.Options{
				Limit:          e.cfg.Recommend.DefaultLimit,
				ExcludeApplied: !includeApplied,
			}
			if limit > 0 {
				ropts.Limit = min(limit, e.cfg.Recommend.MaxLimit)
			}

			recs := e.engine().Recommend(cmd.Context(), profile, ropts)
			resp := types.RecommendResponse{Count: len(recs), Data: recs}
			return writeOutput(cmd.OutOrStdout(), format, resp, func() {
				observability.NewPrinter(cmd.OutOrStdout()).PrintRecommendations(recs)
			})
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Path to a user profile JSON file (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max recommendations (default: recommend.default_limit)")
	cmd.Flags().BoolVar(&includeApplied, "include-applied", false, "Keep jobs the profile already applied to")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text or json")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

// loadProfile reads a user profile, validating it against the profile schema
// and its field constraints.
func loadProfile(path string) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	if err := schemas.ValidateUserProfile(data); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", path, err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &profile, nil
}
