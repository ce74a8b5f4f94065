package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/filehash/internal/config"
	"github.com/CodexForgeBR/filehash/internal/filehash"
)

func newTestCommand(t *testing.T, args ...string) (*cobra.Command, *config.Config) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, cfg
}

func TestBindFlags_DefaultValues(t *testing.T) {
	_, cfg := newTestCommand(t)

	assert.Equal(t, "MD5", cfg.Algorithm)
	assert.Equal(t, 4096, cfg.BufferSize)
	assert.Empty(t, cfg.Expect)
	assert.Empty(t, cfg.CheckFile)
	assert.Empty(t, cfg.ConfigFile)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.ListAlgorithms)
}

func TestBindFlags_ShortAndLongForms(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *config.Config)
	}{
		{"algorithm long", []string{"--algorithm", "sha256"}, func(t *testing.T, c *config.Config) { assert.Equal(t, "sha256", c.Algorithm) }},
		{"algorithm short", []string{"-a", "blake3"}, func(t *testing.T, c *config.Config) { assert.Equal(t, "blake3", c.Algorithm) }},
		{"buffer long", []string{"--buffer-size", "2048"}, func(t *testing.T, c *config.Config) { assert.Equal(t, 2048, c.BufferSize) }},
		{"buffer short", []string{"-b", "1"}, func(t *testing.T, c *config.Config) { assert.Equal(t, 1, c.BufferSize) }},
		{"check short", []string{"-c", "MD5SUMS"}, func(t *testing.T, c *config.Config) { assert.Equal(t, "MD5SUMS", c.CheckFile) }},
		{"expect", []string{"--expect", "00ff"}, func(t *testing.T, c *config.Config) { assert.Equal(t, "00ff", c.Expect) }},
		{"verbose short", []string{"-v"}, func(t *testing.T, c *config.Config) { assert.True(t, c.Verbose) }},
		{"no-color", []string{"--no-color"}, func(t *testing.T, c *config.Config) { assert.True(t, c.NoColor) }},
		{"list short", []string{"-l"}, func(t *testing.T, c *config.Config) { assert.True(t, c.ListAlgorithms) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cfg := newTestCommand(t, tt.args...)
			tt.check(t, cfg)
		})
	}
}

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		args    []string
		errText string
	}{
		{"single file", nil, []string{"a"}, ""},
		{"many files", nil, []string{"a", "b", "c"}, ""},
		{"check alone", []string{"--check", "SUMS"}, nil, ""},
		{"list needs nothing", []string{"--list-algorithms"}, nil, ""},
		{"expect with one file", []string{"--expect", "00"}, []string{"a"}, ""},
		{"no files", nil, nil, "at least one FILE"},
		{"check with files", []string{"--check", "SUMS"}, []string{"a"}, "mutually exclusive"},
		{"check with expect", []string{"--check", "SUMS", "--expect", "00"}, nil, "mutually exclusive"},
		{"expect with two files", []string{"--expect", "00"}, []string{"a", "b"}, "exactly one FILE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, cfg := newTestCommand(t, tt.flags...)
			err := ValidateFlags(cmd, cfg, tt.args)
			if tt.errText == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestValidateFlags_ConfigFileMustExist(t *testing.T) {
	cmd, cfg := newTestCommand(t, "--config", filepath.Join(t.TempDir(), "missing"))
	err := ValidateFlags(cmd, cfg, []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--config")

	path := filepath.Join(t.TempDir(), "cfg")
	require.NoError(t, os.WriteFile(path, []byte("ALGORITHM=SHA-1\n"), 0o644))
	cmd, cfg = newTestCommand(t, "--config", path)
	assert.NoError(t, ValidateFlags(cmd, cfg, []string{"a"}))
}

func TestValidateConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()
	assert.NoError(t, ValidateConfig(cfg))

	cfg.BufferSize = 0
	assert.ErrorIs(t, ValidateConfig(cfg), filehash.ErrInvalidArgument)

	cfg = config.NewDefaultConfig()
	cfg.Algorithm = "NOT-A-REAL-ALGO"
	assert.ErrorIs(t, ValidateConfig(cfg), filehash.ErrUnsupportedAlgorithm)
}

func TestBuildCLIOverrides_OnlyChangedFlags(t *testing.T) {
	cmd, cfg := newTestCommand(t)
	assert.Empty(t, BuildCLIOverrides(cmd, cfg))

	cmd, cfg = newTestCommand(t, "-a", "sha1", "-b", "512", "-v", "--no-color")
	assert.Equal(t, map[string]string{
		"ALGORITHM":   "sha1",
		"BUFFER_SIZE": "512",
		"VERBOSE":     "true",
		"NO_COLOR":    "true",
	}, BuildCLIOverrides(cmd, cfg))
}
