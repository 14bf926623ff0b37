// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-help-registry/internal/crypto"
	"github.com/MKhiriev/go-help-registry/internal/logger"
	"github.com/MKhiriev/go-help-registry/internal/store"
	"github.com/MKhiriev/go-help-registry/models"
)

// RegistryService owns registration, authentication, deletion, password
// reset, group CRUD, membership mutation, and the registry journals. It
// composes the in-memory store with the credential key.
//
// When the credential key could not be bootstrapped the service enters a
// degraded state: Register, Authenticate, and ResetPassword fail (without
// crashing the process) until the key file problem is corrected.
type RegistryService struct {
	// store is the mutex-guarded in-memory registry state.
	store *store.Registry

	// passwordKey is the credential key material. Nil in degraded state.
	passwordKey []byte

	// logger is the structured logger used for diagnostic output. Boolean
	// results deliberately carry no failure reason; the reason is logged
	// here instead.
	logger *logger.Logger
}

// NewRegistryService constructs a RegistryService around the given store and
// credential key. Pass a nil key to start the service degraded.
func NewRegistryService(st *store.Registry, passwordKey []byte, log *logger.Logger) *RegistryService {
	if passwordKey == nil {
		log.Error().Msg("credential key unavailable: registration, authentication and password reset are disabled")
	}
	return &RegistryService{
		store:       st,
		passwordKey: passwordKey,
		logger:      log,
	}
}

// Register creates a new user account. The password is encrypted with the
// credential key before it is stored; the plaintext never reaches the store.
//
// Returns the created user, or:
//   - ErrKeyUnavailable in degraded state.
//   - ErrInvalidRole when the role does not resolve.
//   - store.ErrUserAlreadyExists when the username is taken.
func (s *RegistryService) Register(username, password string, role models.Role, isOTP bool, otpExpiry *time.Time) (*models.User, error) {
	if s.passwordKey == nil {
		return nil, ErrKeyUnavailable
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	encrypted, err := crypto.Encrypt([]byte(password), s.passwordKey)
	if err != nil {
		s.logger.Err(err).Str("username", username).Msg("password encryption failed")
		return nil, fmt.Errorf("password encryption failed: %w", err)
	}

	u := models.NewUser(username, encrypted, role)
	u.OneTimePassword = isOTP
	u.OTPExpiry = otpExpiry

	if err := s.store.CreateUser(u); err != nil {
		s.logger.Err(err).Str("username", username).Msg("user creation ended with error")
		return nil, err
	}

	return u, nil
}

// Authenticate verifies a username/password pair. Every failure mode —
// unknown user, expired one-time password, decryption failure, wrong
// password, degraded state — collapses to false so the API surface leaks
// nothing about which precondition failed. Diagnostic detail is logged.
func (s *RegistryService) Authenticate(username, password string) bool {
	if s.passwordKey == nil {
		s.logger.Error().Msg("credential key unavailable: cannot authenticate")
		return false
	}

	u, ok := s.store.FindUser(username)
	if !ok {
		s.logger.Debug().Str("username", username).Msg("authentication failed: user not found")
		return false
	}

	// OTP expiry is checked before the password so an expired one-time
	// password never authenticates, even when correct.
	if u.OneTimePassword && u.OTPExpiry != nil && time.Now().After(*u.OTPExpiry) {
		s.logger.Debug().Str("username", username).Msg("authentication failed: one-time password expired")
		return false
	}

	stored, err := crypto.Decrypt(u.Password, s.passwordKey)
	if err != nil {
		s.logger.Err(err).Str("username", username).Msg("authentication failed: password decryption error")
		return false
	}

	return string(stored) == password
}

// DeleteUser removes the user with the given username and reports whether a
// removal occurred. Owned articles and group memberships are not cascaded.
func (s *RegistryService) DeleteUser(username string) bool {
	return s.store.DeleteUser(username)
}

// ResetPassword re-encrypts and replaces the user's password and clears the
// one-time-password state. Returns false when the user does not exist, the
// service is degraded, or encryption fails.
func (s *RegistryService) ResetPassword(username, newPassword string) bool {
	if s.passwordKey == nil {
		s.logger.Error().Msg("credential key unavailable: cannot reset passwords")
		return false
	}

	u, ok := s.store.FindUser(username)
	if !ok {
		return false
	}

	encrypted, err := crypto.Encrypt([]byte(newPassword), s.passwordKey)
	if err != nil {
		s.logger.Err(err).Str("username", username).Msg("password reset: encryption failed")
		return false
	}

	u.Password = encrypted
	u.OneTimePassword = false
	u.OTPExpiry = nil
	return true
}

// ListUsers returns a snapshot of all registered users in insertion order.
func (s *RegistryService) ListUsers() []*models.User {
	return s.store.ListUsers()
}

// FindUser returns the user with the given username, or false when absent.
func (s *RegistryService) FindUser(username string) (*models.User, bool) {
	return s.store.FindUser(username)
}

// CreateGroup creates a new named group. Returns store.ErrGroupAlreadyExists
// when the name is taken.
func (s *RegistryService) CreateGroup(name string, specialAccess bool) (*models.Group, error) {
	g := models.NewGroup(name, specialAccess)
	if err := s.store.CreateGroup(g); err != nil {
		s.logger.Err(err).Str("group", name).Msg("group creation ended with error")
		return nil, err
	}

	s.logger.Debug().Str("group", name).Bool("special_access", specialAccess).Msg("group created")
	return g, nil
}

// DeleteGroup removes the named group and reports whether a removal
// occurred.
func (s *RegistryService) DeleteGroup(name string) bool {
	return s.store.DeleteGroup(name)
}

// GetGroup returns the named group, or false when absent.
func (s *RegistryService) GetGroup(name string) (*models.Group, bool) {
	return s.store.GetGroup(name)
}

// ListGroups returns a snapshot of all groups in insertion order.
func (s *RegistryService) ListGroups() []*models.Group {
	return s.store.ListGroups()
}

// AddUserToGroup adds the user to the named group's role-matching membership
// list. Returns false when the group does not exist, the user is already a
// member, or the role is unrecognized.
func (s *RegistryService) AddUserToGroup(name string, u *models.User) bool {
	added, err := s.store.AddUserToGroup(name, u)
	if err != nil {
		s.logger.Debug().Str("group", name).Str("username", u.Username).Msg("add to group failed: group not found")
		return false
	}
	return added
}

// RemoveUserFromGroup removes the user from every membership list of the
// named group. Returns false when the group does not exist or the user was
// not a member.
func (s *RegistryService) RemoveUserFromGroup(name string, u *models.User) bool {
	removed, err := s.store.RemoveUserFromGroup(name, u)
	if err != nil {
		s.logger.Debug().Str("group", name).Str("username", u.Username).Msg("remove from group failed: group not found")
		return false
	}
	return removed
}

// AddMessage appends an entry to the message journal.
func (s *RegistryService) AddMessage(username, content string) {
	s.store.AppendMessage(models.NewMessage(username, content))
}

// Messages returns a snapshot of the message journal.
func (s *RegistryService) Messages() []models.Message {
	return s.store.Messages()
}

// AddSearchQuery appends an entry to the search-query journal.
func (s *RegistryService) AddSearchQuery(username, query string) {
	s.store.AppendSearchQuery(models.NewSearchQuery(username, query))
}

// SearchQueries returns a snapshot of the search-query journal.
func (s *RegistryService) SearchQueries() []models.SearchQuery {
	return s.store.SearchQueries()
}
