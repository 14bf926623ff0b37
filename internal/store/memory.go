// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the in-memory registry state: users, groups, and the
// append-only message and search-query journals.
//
// Every mutation runs under one exclusive lock because several operations
// (duplicate-username check, first-instructor promotion) need read-then-write
// atomicity across the whole collection. List accessors return fresh slices
// so callers never observe concurrent mutation through a snapshot.
package store

import (
	"sync"

	"github.com/MKhiriev/go-help-registry/internal/logger"
	"github.com/MKhiriev/go-help-registry/models"
)

// Registry is the mutex-guarded in-memory store backing the identity
// registry. Collections keep insertion order, which is the order list
// accessors expose.
type Registry struct {
	mu     sync.Mutex
	logger *logger.Logger

	users         []*models.User
	groups        []*models.Group
	messages      []models.Message
	searchQueries []models.SearchQuery
}

// NewRegistry constructs an empty registry store.
func NewRegistry(log *logger.Logger) *Registry {
	log.Debug().Msg("creating in-memory registry store")
	return &Registry{logger: log}
}

// CreateUser appends the user to the registry. Returns
// [ErrUserAlreadyExists] if the username is taken.
func (r *Registry) CreateUser(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findUserLocked(u.Username) != nil {
		return ErrUserAlreadyExists
	}

	r.users = append(r.users, u)
	return nil
}

// FindUser returns the user with the given username, or false when absent.
func (r *Registry) FindUser(username string) (*models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findUserLocked(username)
	return u, u != nil
}

// DeleteUser removes the first user with a matching username and reports
// whether a removal occurred. Group memberships and owned articles are not
// cascaded.
func (r *Registry) DeleteUser(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.Username == username {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true
		}
	}
	return false
}

// ListUsers returns a snapshot of the user collection in insertion order.
func (r *Registry) ListUsers() []*models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.User, len(r.users))
	copy(out, r.users)
	return out
}

// CreateGroup appends the group to the registry. Returns
// [ErrGroupAlreadyExists] if the name is taken.
func (r *Registry) CreateGroup(g *models.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findGroupLocked(g.Name) != nil {
		return ErrGroupAlreadyExists
	}

	r.groups = append(r.groups, g)
	return nil
}

// GetGroup returns the group with the given name, or false when absent.
func (r *Registry) GetGroup(name string) (*models.Group, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := r.findGroupLocked(name)
	return g, g != nil
}

// DeleteGroup removes the group with the given name and reports whether a
// removal occurred. Members keep the group name in their membership sets.
func (r *Registry) DeleteGroup(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, g := range r.groups {
		if g.Name == name {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			return true
		}
	}
	return false
}

// ListGroups returns a snapshot of the group collection in insertion order.
func (r *Registry) ListGroups() []*models.Group {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Group, len(r.groups))
	copy(out, r.groups)
	return out
}

// AddUserToGroup delegates to [models.Group.AddUser] under the registry lock
// so the first-instructor promotion check is atomic. Returns
// [ErrGroupNotFound] when the group does not exist; the boolean carries the
// membership outcome (false on duplicate add or unrecognized role).
func (r *Registry) AddUserToGroup(name string, u *models.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := r.findGroupLocked(name)
	if g == nil {
		return false, ErrGroupNotFound
	}
	return g.AddUser(u), nil
}

// RemoveUserFromGroup delegates to [models.Group.RemoveUser] under the
// registry lock. Returns [ErrGroupNotFound] when the group does not exist.
func (r *Registry) RemoveUserFromGroup(name string, u *models.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := r.findGroupLocked(name)
	if g == nil {
		return false, ErrGroupNotFound
	}
	return g.RemoveUser(u), nil
}

// AppendMessage records a message journal entry.
func (r *Registry) AppendMessage(m models.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
}

// Messages returns a snapshot of the message journal.
func (r *Registry) Messages() []models.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// AppendSearchQuery records a search-query journal entry.
func (r *Registry) AppendSearchQuery(q models.SearchQuery) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searchQueries = append(r.searchQueries, q)
}

// SearchQueries returns a snapshot of the search-query journal.
func (r *Registry) SearchQueries() []models.SearchQuery {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.SearchQuery, len(r.searchQueries))
	copy(out, r.searchQueries)
	return out
}

func (r *Registry) findUserLocked(username string) *models.User {
	for _, u := range r.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (r *Registry) findGroupLocked(name string) *models.Group {
	for _, g := range r.groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}
