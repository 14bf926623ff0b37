package service

import "errors"

var (
	// ErrKeyUnavailable is returned when an operation needs an encryption
	// key whose bootstrap failed at construction time. The registry runs in
	// a degraded state until the key file problem is corrected.
	ErrKeyUnavailable = errors.New("encryption key is not available")

	// ErrInvalidRole is returned by Register when the supplied role does not
	// resolve to a known role.
	ErrInvalidRole = errors.New("unknown role")

	// ErrRestoreAccessDenied is returned by Restore when the acting user is
	// absent or holds neither the admin nor the instructor role.
	ErrRestoreAccessDenied = errors.New("restore requires admin or instructor role")

	// ErrCorruptBackup is returned when a backup payload cannot be decoded
	// or carries an unsupported format version.
	ErrCorruptBackup = errors.New("backup payload is malformed")

	// ErrBackupIO is returned when the backup file cannot be read or written.
	ErrBackupIO = errors.New("backup file i/o failed")
)
