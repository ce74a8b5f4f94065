// Package config defines the filehash configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides.
package config

import (
	"os"
	"path/filepath"

	"github.com/CodexForgeBR/filehash/internal/filehash"
)

// ProjectFileName is the project-level config file looked up in the working
// directory.
const ProjectFileName = ".filehash"

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [4]string{
	"ALGORITHM",
	"BUFFER_SIZE",
	"VERBOSE",
	"NO_COLOR",
}

// Config holds every configuration field for the filehash CLI.
type Config struct {
	// Digest settings.
	Algorithm  string
	BufferSize int

	// Output.
	Verbose bool
	NoColor bool

	// CLI-only flags (not loaded from config files).
	ConfigFile     string
	Expect         string
	CheckFile      string
	ListAlgorithms bool
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		Algorithm:  filehash.DefaultAlgorithm,
		BufferSize: filehash.DefaultBufferSize,
	}
}

// GlobalPath returns the per-user config file location:
// $XDG_CONFIG_HOME/filehash/config, falling back to ~/.config/filehash/config.
// It returns "" when neither variable can be resolved.
func GlobalPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "filehash", "config")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "filehash", "config")
}
