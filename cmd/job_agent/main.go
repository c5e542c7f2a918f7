// Package main provides the entry point for the job-matcher CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app     = "job_agent"
	version = "0.1.0"
)

// rootOptions carries the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	flags      *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{flags: viper.New()}

	cmd := &cobra.Command{
		Use:           app,
		Short:         "Job search and recommendation engine",
		Long:          "job_agent parses natural-language job queries, searches a job corpus and recommends jobs for a user profile, from the command line, over HTTP or as MCP tools.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "a config file, JSON or YAML (default: built-in defaults plus JOB_MATCHER_* env)")
	cmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	cmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	_ = opts.flags.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	_ = opts.flags.BindPFlag("json", cmd.PersistentFlags().Lookup("json"))

	cmd.AddCommand(
		newServeCmd(opts),
		newParseCmd(opts),
		newSearchCmd(opts),
		newRecommendCmd(opts),
		newTrendingCmd(opts),
		newSeedCmd(opts),
		newMigrateCmd(opts),
		newMCPCmd(opts),
	)
	return cmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
