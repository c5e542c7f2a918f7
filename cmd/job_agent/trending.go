package main

import (
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/search"
	"github.com/spf13/cobra"
)

func newTrendingCmd(opts *rootOptions) *cobra.Command {
	var (
		limit     int
		timeframe int
		algorithm string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "List trending jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if limit <= 0 {
				limit = e.cfg.Trending.Limit
			}
			if timeframe <= 0 {
				timeframe = e.cfg.Trending.TimeframeDays
			}

			resp, err := e.searchService().Trending(cmd.Context(), search.TrendingOptions{
				Limit:         limit,
				TimeframeDays: timeframe,
				Algorithm:     algorithm,
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, resp, func() {
				observability.NewPrinter(cmd.OutOrStdout()).PrintTrending(resp)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Max jobs (default: trending.limit)")
	cmd.Flags().IntVar(&timeframe, "timeframe", 0, "Window in days (default: trending.timeframe_days)")
	cmd.Flags().StringVar(&algorithm, "algorithm", search.AlgorithmHybrid, "popularity, engagement or hybrid")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text or json")
	return cmd
}
