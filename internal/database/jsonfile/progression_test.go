package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Kombinat_Go/internal/domain"
)

func TestLoadMissingUser(t *testing.T) {
	repo, err := NewProgressionRepository(t.TempDir())
	require.NoError(t, err)

	state, err := repo.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo, err := NewProgressionRepository(t.TempDir())
	require.NoError(t, err)

	state := domain.NewProgressionState()
	state.Balance = 1250
	state.Level = 3
	state.Experience = 42
	state.Inventory.Add("gloves")
	state.OwnedPartnerships.Add("scrap")

	require.NoError(t, repo.Save(context.Background(), "12345", state))

	loaded, err := repo.Load(context.Background(), "12345")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 1250, loaded.Balance)
	assert.Equal(t, 3, loaded.Level)
	assert.Equal(t, 42, loaded.Experience)
	assert.True(t, loaded.Inventory.Has("gloves"))
	assert.True(t, loaded.OwnedPartnerships.Has("scrap"))
}

func TestSaveOverwritesPrevious(t *testing.T) {
	repo, err := NewProgressionRepository(t.TempDir())
	require.NoError(t, err)

	state := domain.NewProgressionState()
	state.Balance = 100
	require.NoError(t, repo.Save(context.Background(), "u1", state))

	state.Balance = 900
	require.NoError(t, repo.Save(context.Background(), "u1", state))

	loaded, err := repo.Load(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 900, loaded.Balance)
}

func TestUserIDSanitizedForPath(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewProgressionRepository(dir)
	require.NoError(t, err)

	state := domain.NewProgressionState()
	require.NoError(t, repo.Save(context.Background(), "../escape", state))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "___escape.json", entries[0].Name())

	loaded, err := repo.Load(context.Background(), "../escape")
	require.NoError(t, err)
	assert.NotNil(t, loaded)
}

func TestLoadCorruptFieldKeepsDecodableFields(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewProgressionRepository(dir)
	require.NoError(t, err)

	snapshot := []byte(`{"balance":"not-a-number","level":4,"experience":25,"inventory":["gloves"]}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), snapshot, 0o644))

	loaded, err := repo.Load(context.Background(), "bad")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 0, loaded.Balance)
	assert.Equal(t, 4, loaded.Level)
	assert.Equal(t, 25, loaded.Experience)
	assert.True(t, loaded.Inventory.Has("gloves"))
}

func TestLoadGarbageSnapshotYieldsZeroState(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewProgressionRepository(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	// Unparseable bytes still yield a state the session can sanitize
	loaded, err := repo.Load(context.Background(), "bad")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 0, loaded.Level)
}
