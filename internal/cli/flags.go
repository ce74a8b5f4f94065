// Package cli provides flag binding, validation and the run loop for the
// filehash CLI.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/filehash/internal/config"
	"github.com/CodexForgeBR/filehash/internal/filehash"
)

// BindFlags registers all CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check flag combinations.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Digest
	flags.StringVarP(&cfg.Algorithm, "algorithm", "a", filehash.DefaultAlgorithm, "Hash algorithm (see --list-algorithms)")
	flags.IntVarP(&cfg.BufferSize, "buffer-size", "b", filehash.DefaultBufferSize, "Read buffer size in bytes")

	// Verification
	flags.StringVar(&cfg.Expect, "expect", "", "Expected hex digest of the single FILE argument")
	flags.StringVarP(&cfg.CheckFile, "check", "c", "", "Verify digests listed in FILE (md5sum format)")

	// Configuration & output
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print debug output to stderr")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&cfg.ListAlgorithms, "list-algorithms", "l", false, "List supported algorithms and exit")
}

// ValidateFlags checks for invalid flag and argument combinations after
// parsing. Values that config files can still change are checked later by
// ValidateConfig.
func ValidateFlags(cmd *cobra.Command, cfg *config.Config, args []string) error {
	if cfg.ListAlgorithms {
		return nil
	}

	if cfg.CheckFile != "" && len(args) > 0 {
		return fmt.Errorf("--check and FILE arguments are mutually exclusive")
	}
	if cfg.CheckFile != "" && cfg.Expect != "" {
		return fmt.Errorf("--check and --expect are mutually exclusive")
	}
	if cfg.CheckFile == "" && len(args) == 0 {
		return fmt.Errorf("at least one FILE argument is required")
	}
	if cmd.Flags().Changed("expect") && len(args) != 1 {
		return fmt.Errorf("--expect requires exactly one FILE argument, got %d", len(args))
	}

	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	return nil
}

// ValidateConfig checks the merged configuration. Errors wrap the filehash
// sentinels so they map onto exit codes.
func ValidateConfig(cfg *config.Config) error {
	if cfg.BufferSize < 1 {
		return fmt.Errorf("%w: buffer size must be at least 1, got %d", filehash.ErrInvalidArgument, cfg.BufferSize)
	}
	if _, _, err := filehash.Lookup(cfg.Algorithm); err != nil {
		return fmt.Errorf("--algorithm: %w", err)
	}
	return nil
}

// BuildCLIOverrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// ensuring config file values are not accidentally overridden by default values.
func BuildCLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	if cmd.Flags().Changed("algorithm") {
		overrides["ALGORITHM"] = cfg.Algorithm
	}
	if cmd.Flags().Changed("buffer-size") {
		overrides["BUFFER_SIZE"] = strconv.Itoa(cfg.BufferSize)
	}
	if cmd.Flags().Changed("verbose") {
		overrides["VERBOSE"] = strconv.FormatBool(cfg.Verbose)
	}
	if cmd.Flags().Changed("no-color") {
		overrides["NO_COLOR"] = strconv.FormatBool(cfg.NoColor)
	}

	return overrides
}
