package main

import (
	"github.com/jonathan/job-matcher/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes REST endpoints for query parsing, job search, trending jobs and recommendations.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if cmd.Flags().Changed("port") {
				e.cfg.Server.Port = port
			}

			srv := server.New(server.Config{
				Port:                  e.cfg.Server.Port,
				RecommendDefaultLimit: e.cfg.Recommend.DefaultLimit,
				RecommendMaxLimit:     e.cfg.Recommend.MaxLimit,
				TrendingLimit:         e.cfg.Trending.Limit,
				TrendingTimeframeDays: e.cfg.Trending.TimeframeDays,
			}, e.searchService(), e.engine(), e.logger)

			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides server.port)")
	return cmd
}
