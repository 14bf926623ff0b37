package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-help-registry/internal/crypto"
	"github.com/MKhiriev/go-help-registry/internal/logger"
	"github.com/MKhiriev/go-help-registry/internal/store"
	"github.com/MKhiriev/go-help-registry/models"
)

var testPasswordKey = bytes.Repeat([]byte{0x5A}, crypto.KeySize)

func newTestRegistryService(t *testing.T) *RegistryService {
	t.Helper()
	return NewRegistryService(store.NewRegistry(logger.Nop()), testPasswordKey, logger.Nop())
}

func TestRegister_EncryptsPassword(t *testing.T) {
	svc := newTestRegistryService(t)

	u, err := svc.Register("alice", "pw", models.RoleStudent, false, nil)
	require.NoError(t, err)

	assert.NotEqual(t, []byte("pw"), u.Password, "plaintext must never be stored")

	decrypted, err := crypto.Decrypt(u.Password, testPasswordKey)
	require.NoError(t, err)
	assert.Equal(t, "pw", string(decrypted))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newTestRegistryService(t)

	_, err := svc.Register("alice", "pw", models.RoleStudent, false, nil)
	require.NoError(t, err)

	_, err = svc.Register("alice", "other", models.RoleAdmin, false, nil)
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
	assert.Len(t, svc.ListUsers(), 1)
}

func TestRegister_UnknownRole(t *testing.T) {
	svc := newTestRegistryService(t)

	_, err := svc.Register("alice", "pw", models.ParseRole("janitor"), false, nil)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestRegistryService(t)
	_, err := svc.Register("bob", "p1", models.RoleStudent, false, nil)
	require.NoError(t, err)

	assert.True(t, svc.Authenticate("bob", "p1"))
	assert.False(t, svc.Authenticate("bob", "wrong"))
	assert.False(t, svc.Authenticate("nobody", "x"))
}

func TestAuthenticate_ExpiredOTP(t *testing.T) {
	svc := newTestRegistryService(t)

	expired := time.Now().Add(-time.Minute)
	_, err := svc.Register("otp-user", "pw", models.RoleStudent, true, &expired)
	require.NoError(t, err)

	// The password is correct, but the one-time password has expired.
	assert.False(t, svc.Authenticate("otp-user", "pw"))
}

func TestAuthenticate_ValidOTP(t *testing.T) {
	svc := newTestRegistryService(t)

	future := time.Now().Add(time.Hour)
	_, err := svc.Register("otp-user", "pw", models.RoleStudent, true, &future)
	require.NoError(t, err)

	assert.True(t, svc.Authenticate("otp-user", "pw"))
}

func TestResetPassword(t *testing.T) {
	svc := newTestRegistryService(t)

	expiry := time.Now().Add(time.Hour)
	_, err := svc.Register("bob", "p1", models.RoleStudent, true, &expiry)
	require.NoError(t, err)

	require.True(t, svc.ResetPassword("bob", "p2"))

	assert.True(t, svc.Authenticate("bob", "p2"))
	assert.False(t, svc.Authenticate("bob", "p1"))

	// Reset clears the one-time-password state.
	u, ok := svc.FindUser("bob")
	require.True(t, ok)
	assert.False(t, u.OneTimePassword)
	assert.Nil(t, u.OTPExpiry)
}

func TestResetPassword_UnknownUser(t *testing.T) {
	svc := newTestRegistryService(t)
	assert.False(t, svc.ResetPassword("nobody", "pw"))
}

func TestDeleteUser_NoArticleCascade(t *testing.T) {
	svc := newTestRegistryService(t)

	u, err := svc.Register("bob", "p1", models.RoleStudent, false, nil)
	require.NoError(t, err)
	u.AddHelpArticle(&models.Article{ID: 1})

	assert.True(t, svc.DeleteUser("bob"))
	assert.False(t, svc.DeleteUser("bob"))

	// The removed user's articles stay on the struct; callers holding a
	// reference still see them.
	assert.Len(t, u.Articles, 1)
}

func TestDegradedState_NoCredentialKey(t *testing.T) {
	svc := NewRegistryService(store.NewRegistry(logger.Nop()), nil, logger.Nop())

	_, err := svc.Register("alice", "pw", models.RoleStudent, false, nil)
	assert.ErrorIs(t, err, ErrKeyUnavailable)
	assert.False(t, svc.Authenticate("alice", "pw"))
	assert.False(t, svc.ResetPassword("alice", "pw"))

	// Non-credential operations keep working in degraded state.
	_, err = svc.CreateGroup("g", false)
	assert.NoError(t, err)
}

func TestGroupLifecycle(t *testing.T) {
	svc := newTestRegistryService(t)

	g, err := svc.CreateGroup("cse360", true)
	require.NoError(t, err)
	assert.True(t, g.SpecialAccess)

	_, err = svc.CreateGroup("cse360", false)
	assert.ErrorIs(t, err, store.ErrGroupAlreadyExists)

	got, ok := svc.GetGroup("cse360")
	require.True(t, ok)
	assert.Same(t, g, got)

	u, err := svc.Register("i1", "pw", models.RoleInstructor, false, nil)
	require.NoError(t, err)
	assert.True(t, svc.AddUserToGroup("cse360", u))
	assert.False(t, svc.AddUserToGroup("cse360", u))
	assert.False(t, svc.AddUserToGroup("missing", u))

	assert.True(t, svc.RemoveUserFromGroup("cse360", u))
	assert.False(t, svc.RemoveUserFromGroup("cse360", u))

	assert.True(t, svc.DeleteGroup("cse360"))
	assert.Empty(t, svc.ListGroups())
}

func TestJournals(t *testing.T) {
	svc := newTestRegistryService(t)

	svc.AddMessage("alice", "need help with generics")
	svc.AddSearchQuery("alice", "generics")

	require.Len(t, svc.Messages(), 1)
	require.Len(t, svc.SearchQueries(), 1)
	assert.Equal(t, "alice", svc.Messages()[0].Username)
	assert.Equal(t, "generics", svc.SearchQueries()[0].Query)
}
