package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kpeck/corechess/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "db")
	require.NoError(t, os.MkdirAll(dir, 0755))

	s, err := openAt(context.Background(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadConfigDefaultsWhenUnset(t *testing.T) {
	s := openTestStore(t)

	cfg, err := s.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadConfigRoundTrips(t *testing.T) {
	s := openTestStore(t)

	want := Config{Depth: 6, Workers: 2, EngineColor: board.White}
	require.NoError(t, s.SaveConfig(want))

	got, err := s.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveAndLoadBookHistoryRoundTrips(t *testing.T) {
	s := openTestStore(t)

	history, err := s.LoadBookHistory()
	require.NoError(t, err)
	assert.Empty(t, history)

	want := []board.Move{
		{X1: 4, Y1: 6, X2: 4, Y2: 4},
		{X1: 4, Y1: 1, X2: 4, Y2: 3},
	}
	require.NoError(t, s.SaveBookHistory(want))

	got, err := s.LoadBookHistory()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
