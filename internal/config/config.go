// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-help-registry/internal/crypto"

// StructuredConfig is the top-level configuration container for the
// go-help-registry application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Keys holds the paths of the two key files.
	Keys Keys `envPrefix:"KEYS_"`

	// Backup holds settings for the article backup files.
	Backup Backup `envPrefix:"BACKUP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Keys holds the locations of the two independent key materials. Both files
// are created on first use when absent (load-or-create bootstrap).
type Keys struct {
	// PasswordKeyFile is the path of the Base64-encoded credential key that
	// protects user passwords.
	// Env: KEYS_PASSWORD_KEY_FILE
	PasswordKeyFile string `env:"PASSWORD_KEY_FILE"`

	// ArticleKeyFile is the path of the Base64-encoded content key that
	// protects restricted article bodies.
	// Env: KEYS_ARTICLE_KEY_FILE
	ArticleKeyFile string `env:"ARTICLE_KEY_FILE"`
}

// Backup holds file-system settings for article backups.
type Backup struct {
	// Dir is the directory backup files are written to by default.
	// Env: BACKUP_DIR
	Dir string `env:"DIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults for fields no source provided
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaults returns the built-in fallback configuration. The key file names
// are the conventional ones next to the working directory; the backup
// directory defaults to the working directory itself.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Keys: Keys{
			PasswordKeyFile: crypto.PasswordKeyFile,
			ArticleKeyFile:  crypto.ArticleKeyFile,
		},
		Backup: Backup{
			Dir: ".",
		},
	}
}
