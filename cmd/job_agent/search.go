package main

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/search"
	"github.com/spf13/cobra"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var (
		page   int
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search jobs by keyword or natural-language query",
		Long:  "Search the configured corpus. Queries that read as requests (\"find remote react jobs\") are parsed and ranked by relevance; anything else is matched as a keyword.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			resp, err := e.searchService().Search(cmd.Context(), search.Params{
				Search: strings.Join(args, " "),
				Page:   page,
				Limit:  limit,
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, resp, func() {
				observability.NewPrinter(cmd.OutOrStdout()).PrintSearchResults(resp)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Results page (1-based)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (default: search.page_size)")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text or json")
	return cmd
}
