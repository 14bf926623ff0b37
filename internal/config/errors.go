package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidKeyConfigs indicates invalid key file settings (a missing
	// path, or both keys pointing at the same file).
	ErrInvalidKeyConfigs = errors.New("invalid key configuration")

	// ErrInvalidBackupConfigs indicates invalid backup settings (for
	// example, an empty backup directory).
	ErrInvalidBackupConfigs = errors.New("invalid backup configuration")
)
