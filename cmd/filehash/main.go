package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/filehash/internal/cli"
	"github.com/CodexForgeBR/filehash/internal/config"
	"github.com/CodexForgeBR/filehash/internal/exitcode"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()
	code := exitcode.Success

	rootCmd := &cobra.Command{
		Use:     "filehash [flags] <file>...",
		Short:   "Compute and verify file digests",
		Long:    "filehash reads files in bounded chunks and prints their digest as lowercase hex.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags after parsing
			if err := cli.ValidateFlags(cmd, cfg, args); err != nil {
				return err
			}
			code = cli.Execute(cmd, cfg, args, os.Stdout)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, cfg)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
	os.Exit(code)
}
