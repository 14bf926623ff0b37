// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Keys.PasswordKeyFile == "" || cfg.Keys.ArticleKeyFile == "" {
		return ErrInvalidKeyConfigs
	}

	if cfg.Keys.PasswordKeyFile == cfg.Keys.ArticleKeyFile {
		// The two key materials must stay independent.
		return ErrInvalidKeyConfigs
	}

	if cfg.Backup.Dir == "" {
		return ErrInvalidBackupConfigs
	}

	return nil
}
