package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseTestFlags(args ...string) *StructuredConfig {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return parseFlagSet(fs, args)
}

// TestParseFlagSet_AllFlags verifies that every registered flag lands in the
// right config field.
func TestParseFlagSet_AllFlags(t *testing.T) {
	cfg := parseTestFlags(
		"-password-key", "/keys/pw.key",
		"-article-key", "/keys/content.key",
		"-backup-dir", "/var/backups",
		"-c", "registry.json",
	)

	assert.Equal(t, "/keys/pw.key", cfg.Keys.PasswordKeyFile)
	assert.Equal(t, "/keys/content.key", cfg.Keys.ArticleKeyFile)
	assert.Equal(t, "/var/backups", cfg.Backup.Dir)
	assert.Equal(t, "registry.json", cfg.JSONFilePath)
}

// TestParseFlagSet_ConfigAlias verifies that -config is an alias for -c.
func TestParseFlagSet_ConfigAlias(t *testing.T) {
	cfg := parseTestFlags("-config", "registry.json")
	assert.Equal(t, "registry.json", cfg.JSONFilePath)
}

// TestParseFlagSet_NoArgs verifies that parsing no arguments yields a
// zero-valued config.
func TestParseFlagSet_NoArgs(t *testing.T) {
	assert.Equal(t, &StructuredConfig{}, parseTestFlags())
}
