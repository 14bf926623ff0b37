package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-help-registry/internal/logger"
	"github.com/MKhiriev/go-help-registry/models"
)

func newTestRegistry() *Registry {
	return NewRegistry(logger.Nop())
}

func TestRegistry_CreateUser_Duplicate(t *testing.T) {
	r := newTestRegistry()

	require.NoError(t, r.CreateUser(models.NewUser("alice", nil, models.RoleStudent)))

	err := r.CreateUser(models.NewUser("alice", nil, models.RoleAdmin))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Len(t, r.ListUsers(), 1)
}

func TestRegistry_FindUser(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.CreateUser(models.NewUser("alice", nil, models.RoleStudent)))

	u, ok := r.FindUser("alice")
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)

	_, ok = r.FindUser("nobody")
	assert.False(t, ok)
}

func TestRegistry_DeleteUser(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.CreateUser(models.NewUser("alice", nil, models.RoleStudent)))

	assert.True(t, r.DeleteUser("alice"))
	assert.False(t, r.DeleteUser("alice"), "second delete finds nothing")
	assert.Empty(t, r.ListUsers())
}

func TestRegistry_ListUsers_SnapshotIsIndependent(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.CreateUser(models.NewUser("alice", nil, models.RoleStudent)))

	snapshot := r.ListUsers()
	snapshot[0] = nil

	fresh := r.ListUsers()
	require.Len(t, fresh, 1)
	assert.NotNil(t, fresh[0])
}

func TestRegistry_ListUsers_InsertionOrder(t *testing.T) {
	r := newTestRegistry()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, r.CreateUser(models.NewUser(name, nil, models.RoleStudent)))
	}

	users := r.ListUsers()
	require.Len(t, users, 3)
	assert.Equal(t, "c", users[0].Username)
	assert.Equal(t, "a", users[1].Username)
	assert.Equal(t, "b", users[2].Username)
}

func TestRegistry_CreateGroup_Duplicate(t *testing.T) {
	r := newTestRegistry()

	require.NoError(t, r.CreateGroup(models.NewGroup("g", false)))
	assert.ErrorIs(t, r.CreateGroup(models.NewGroup("g", true)), ErrGroupAlreadyExists)
	assert.Len(t, r.ListGroups(), 1)
}

func TestRegistry_AddUserToGroup(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.CreateGroup(models.NewGroup("g", false)))

	u := models.NewUser("alice", nil, models.RoleStudent)

	added, err := r.AddUserToGroup("g", u)
	require.NoError(t, err)
	assert.True(t, added)

	// Duplicate add is a no-op returning false, not an error.
	added, err = r.AddUserToGroup("g", u)
	require.NoError(t, err)
	assert.False(t, added)

	_, err = r.AddUserToGroup("missing", u)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestRegistry_RemoveUserFromGroup(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.CreateGroup(models.NewGroup("g", false)))

	u := models.NewUser("alice", nil, models.RoleStudent)
	_, err := r.AddUserToGroup("g", u)
	require.NoError(t, err)

	removed, err := r.RemoveUserFromGroup("g", u)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, u.InGroup("g"))

	_, err = r.RemoveUserFromGroup("missing", u)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestRegistry_DeleteGroup_NoMembershipCascade(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.CreateGroup(models.NewGroup("g", false)))

	u := models.NewUser("alice", nil, models.RoleStudent)
	_, err := r.AddUserToGroup("g", u)
	require.NoError(t, err)

	assert.True(t, r.DeleteGroup("g"))
	// The member keeps the stale group name; deletion does not cascade.
	assert.True(t, u.InGroup("g"))
}

func TestRegistry_Journals_AppendOnlyCopies(t *testing.T) {
	r := newTestRegistry()

	r.AppendMessage(models.NewMessage("alice", "hello"))
	r.AppendSearchQuery(models.NewSearchQuery("alice", "generics"))

	messages := r.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].Content)
	assert.NotZero(t, messages[0].ID)
	assert.False(t, messages[0].Timestamp.IsZero())

	queries := r.SearchQueries()
	require.Len(t, queries, 1)
	assert.Equal(t, "generics", queries[0].Query)

	// Mutating the snapshot leaves the journal untouched.
	messages[0].Content = "tampered"
	assert.Equal(t, "hello", r.Messages()[0].Content)
}
