package main

import (
	"github.com/jonathan/job-matcher/internal/mcptools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the job tools over MCP on stdio",
		Long:  "Run a Model Context Protocol server on stdin/stdout exposing parse_query, search_jobs, recommend_jobs and trending_jobs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			tools := mcptools.New(e.searchService(), e.engine(), e.logger)
			return server.ServeStdio(tools.NewServer("job-matcher", version))
		},
	}
}
