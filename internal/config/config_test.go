package config_test

import (
	"path/filepath"
	"testing"

	"github.com/CodexForgeBR/filehash/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfigValues(t *testing.T) {
	cfg := config.NewDefaultConfig()
	require.NotNil(t, cfg)

	// Digest settings.
	assert.Equal(t, "MD5", cfg.Algorithm)
	assert.Equal(t, 4096, cfg.BufferSize)

	// Output.
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)

	// CLI-only flags default to zero values.
	assert.Empty(t, cfg.ConfigFile)
	assert.Empty(t, cfg.Expect)
	assert.Empty(t, cfg.CheckFile)
	assert.False(t, cfg.ListAlgorithms)
}

func TestWhitelistedVarsContainsAllExpectedNames(t *testing.T) {
	expected := []string{"ALGORITHM", "BUFFER_SIZE", "VERBOSE", "NO_COLOR"}
	assert.ElementsMatch(t, expected, config.WhitelistedVars[:])
}

func TestWhitelistedVarsHasNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range config.WhitelistedVars {
		assert.False(t, seen[v], "duplicate whitelisted var: %s", v)
		seen[v] = true
	}
}

func TestGlobalPathUsesXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "filehash", "config"), config.GlobalPath())
}

func TestGlobalPathFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".config", "filehash", "config"), config.GlobalPath())
}
