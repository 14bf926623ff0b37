package store

import "errors"

// Sentinel errors returned by registry store methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrUserAlreadyExists is returned when an attempt to add a new user
	// fails because a user with the same username is already registered.
	ErrUserAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup expected to match a user
	// produces no result.
	ErrUserNotFound = errors.New("user was not found")

	// ErrGroupAlreadyExists is returned when an attempt to create a group
	// fails because a group with the same name already exists.
	ErrGroupAlreadyExists = errors.New("group already exists")

	// ErrGroupNotFound is returned when a membership operation targets a
	// group that does not exist.
	ErrGroupNotFound = errors.New("group was not found")
)
