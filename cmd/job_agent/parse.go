package main

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/parsing"
	"github.com/spf13/cobra"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <query>",
		Short: "Parse a natural-language job query into structured intent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			parsed := parsing.NewQueryParser(log).Parse(strings.Join(args, " "))
			return writeOutput(cmd.OutOrStdout(), format, parsed, func() {
				observability.NewPrinter(cmd.OutOrStdout()).PrintParsedQuery(parsed)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text or json")
	return cmd
}
