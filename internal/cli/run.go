package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/filehash/internal/config"
	"github.com/CodexForgeBR/filehash/internal/exitcode"
	"github.com/CodexForgeBR/filehash/internal/filehash"
	"github.com/CodexForgeBR/filehash/internal/logging"
	"github.com/CodexForgeBR/filehash/internal/parser"
)

var (
	okColor     = color.New(color.FgGreen).SprintFunc()
	failedColor = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Runner hashes files sequentially and writes results to Out. Diagnostics
// go through the logging package.
type Runner struct {
	Computer *filehash.Computer
	Out      io.Writer
}

// NewRunner returns a Runner over the OS filesystem.
func NewRunner(out io.Writer) *Runner {
	return &Runner{Computer: filehash.NewComputer(nil), Out: out}
}

// Run executes the mode selected by cfg and returns the process exit code.
func (r *Runner) Run(cfg *config.Config, files []string) int {
	switch {
	case cfg.ListAlgorithms:
		return r.listAlgorithms()
	case cfg.CheckFile != "":
		return r.check(cfg)
	default:
		return r.hashFiles(cfg, files)
	}
}

func (r *Runner) listAlgorithms() int {
	for _, name := range filehash.SupportedAlgorithms() {
		suffix := ""
		if name == filehash.DefaultAlgorithm {
			suffix = " (default)"
		}
		fmt.Fprintln(r.Out, name+suffix)
	}
	return exitcode.Success
}

func (r *Runner) digest(cfg *config.Config, path string) (string, error) {
	logging.Debug(fmt.Sprintf("hashing %s with %s (buffer %s)", path, cfg.Algorithm, logging.FormatSize(int64(cfg.BufferSize))))
	return r.Computer.ComputeHex(filehash.Request{
		Path:       path,
		Algorithm:  cfg.Algorithm,
		BufferSize: cfg.BufferSize,
	})
}

func (r *Runner) hashFiles(cfg *config.Config, files []string) int {
	code := exitcode.Success
	expect := strings.ToLower(strings.TrimSpace(cfg.Expect))

	for _, path := range files {
		sum, err := r.digest(cfg, path)
		if err != nil {
			logging.Error(err.Error())
			code = exitcode.Worst(code, exitcode.FromError(err))
			continue
		}
		fmt.Fprintf(r.Out, "%s  %s\n", sum, path)

		if expect != "" && sum != expect {
			err := fmt.Errorf("%s: %w: got %s, want %s", path, exitcode.ErrMismatch, sum, expect)
			logging.Error(err.Error())
			code = exitcode.Worst(code, exitcode.FromError(err))
		}
	}
	return code
}

func (r *Runner) check(cfg *config.Config) int {
	list, err := parser.ParseChecklistFile(cfg.CheckFile)
	if err != nil {
		logging.Error(err.Error())
		return exitcode.IOFailure
	}
	if len(list.Malformed) > 0 {
		logging.Warn(fmt.Sprintf("%s: %d line(s) improperly formatted", cfg.CheckFile, len(list.Malformed)))
	}
	if len(list.Entries) == 0 {
		logging.Error(fmt.Sprintf("%s: no properly formatted digest lines found", cfg.CheckFile))
		return exitcode.Error
	}

	code := exitcode.Success
	failed := 0
	for _, entry := range list.Entries {
		sum, err := r.digest(cfg, entry.Path)
		switch {
		case err != nil:
			logging.Error(err.Error())
			fmt.Fprintf(r.Out, "%s: %s\n", entry.Path, failedColor("FAILED open or read"))
			code = exitcode.Worst(code, exitcode.FromError(err))
			failed++
		case sum != entry.Digest:
			fmt.Fprintf(r.Out, "%s: %s\n", entry.Path, failedColor("FAILED"))
			code = exitcode.Worst(code, exitcode.Mismatch)
			failed++
		default:
			fmt.Fprintf(r.Out, "%s: %s\n", entry.Path, okColor("OK"))
		}
	}

	if failed > 0 {
		logging.Warn(fmt.Sprintf("%d of %d computed digest(s) did NOT match", failed, len(list.Entries)))
	} else {
		logging.Debug(fmt.Sprintf("%d digest(s) verified", len(list.Entries)))
	}
	return code
}

// Execute merges config files under the parsed flags, validates the result
// and runs the selected mode. It returns the process exit code.
func Execute(cmd *cobra.Command, cfg *config.Config, args []string, out io.Writer) int {
	finalCfg, err := config.LoadWithPrecedence(config.GlobalPath(), config.ProjectFileName, cfg.ConfigFile, BuildCLIOverrides(cmd, cfg))
	if err != nil {
		logging.Error(fmt.Sprintf("load config: %v", err))
		return exitcode.Error
	}

	// CLI-only flags are never read from config files.
	finalCfg.ConfigFile = cfg.ConfigFile
	finalCfg.Expect = cfg.Expect
	finalCfg.CheckFile = cfg.CheckFile
	finalCfg.ListAlgorithms = cfg.ListAlgorithms

	logging.SetVerbose(finalCfg.Verbose)
	if finalCfg.NoColor {
		color.NoColor = true
	}

	if !finalCfg.ListAlgorithms {
		if err := ValidateConfig(finalCfg); err != nil {
			logging.Error(err.Error())
			return exitcode.FromError(err)
		}
	}

	return NewRunner(out).Run(finalCfg, args)
}
