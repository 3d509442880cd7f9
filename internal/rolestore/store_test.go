package rolestore

import (
	"os"
	"path/filepath"
	"testing"

	"campuscal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DefaultsToNone(t *testing.T) {
	store, err := New(NewMemoryPersister())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleNone, store.Role())
	assert.False(t, store.CanWrite())
}

func TestStore_SetRolePersists(t *testing.T) {
	p := NewMemoryPersister()
	store, err := New(p)
	require.NoError(t, err)

	require.NoError(t, store.SetRole(domain.RoleAdmin))
	assert.Equal(t, domain.RoleAdmin, store.Role())
	assert.True(t, store.CanWrite())

	// A new store over the same persister sees the saved role.
	reloaded, err := New(p)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, reloaded.Role())
}

func TestStore_UnknownRoleNormalizes(t *testing.T) {
	store, err := New(NewMemoryPersister())
	require.NoError(t, err)

	require.NoError(t, store.SetRole("superuser"))
	assert.Equal(t, domain.RoleNone, store.Role())
}

func TestStore_StudentCannotWrite(t *testing.T) {
	store, err := New(NewMemoryPersister())
	require.NoError(t, err)

	require.NoError(t, store.SetRole(domain.RoleStudent))
	assert.Equal(t, domain.RoleStudent, store.Role())
	assert.False(t, store.CanWrite())
}

func TestStore_Clear(t *testing.T) {
	store, err := New(NewMemoryPersister())
	require.NoError(t, err)

	require.NoError(t, store.SetRole(domain.RoleAdmin))
	require.NoError(t, store.Clear())
	assert.Equal(t, domain.RoleNone, store.Role())
}

func TestFilePersister_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "role.json")

	store, err := New(NewFilePersister(path))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleNone, store.Role())

	require.NoError(t, store.SetRole(domain.RoleStudent))

	// Survives a "reload": a fresh store reads the same file.
	reloaded, err := New(NewFilePersister(path))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, reloaded.Role())
}

func TestFilePersister_CorruptFileStartsOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "role.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := New(NewFilePersister(path))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleNone, store.Role())
}
