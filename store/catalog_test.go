package store_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milliams/square-sum/store"
)

var path15 = []int{8, 1, 15, 10, 6, 3, 13, 12, 4, 5, 11, 14, 2, 7, 9}

func openMem(t *testing.T) *store.Catalog {
	t.Helper()
	cat, err := store.Open(store.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cat.Close() })

	return cat
}

func TestCatalog_SaveLoad(t *testing.T) {
	cat := openMem(t)

	require.NoError(t, cat.Save(15, path15))
	got, err := cat.Load(15)
	require.NoError(t, err)
	assert.Equal(t, path15, got)

	// overwrite
	rev := []int{9, 7, 2, 14, 11, 5, 4, 12, 13, 3, 6, 10, 15, 1, 8}
	require.NoError(t, cat.Save(15, rev))
	got, err = cat.Load(15)
	require.NoError(t, err)
	assert.Equal(t, rev, got)
}

func TestCatalog_LargeValues(t *testing.T) {
	cat := openMem(t)
	seq := make([]int, 300)
	for i := range seq {
		seq[i] = 300 - i
	}
	require.NoError(t, cat.Save(300, seq))
	got, err := cat.Load(300)
	require.NoError(t, err)
	assert.Equal(t, seq, got)
}

func TestCatalog_NotFound(t *testing.T) {
	cat := openMem(t)
	_, err := cat.Load(7)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCatalog_RejectsBadInput(t *testing.T) {
	cat := openMem(t)
	require.ErrorIs(t, cat.Save(0, nil), store.ErrBadOrder)
	require.ErrorIs(t, cat.Save(3, []int{1, 3}), store.ErrCorrupt)
	_, err := cat.Load(-1)
	require.ErrorIs(t, err, store.ErrBadOrder)
}

func TestCatalog_OrdersAscending(t *testing.T) {
	cat := openMem(t)
	for _, n := range []int{300, 1, 15, 256} {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = i + 1
		}
		require.NoError(t, cat.Save(n, seq))
	}

	orders, err := cat.Orders()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 15, 256, 300}, orders)

	latest, err := cat.Latest(100)
	require.NoError(t, err)
	assert.Equal(t, 15, latest)

	latest, err = cat.Latest(0)
	require.NoError(t, err)
	assert.Zero(t, latest)
}

func TestOpen_RequiresPathOnDisk(t *testing.T) {
	_, err := store.Open(store.Config{})
	require.ErrorIs(t, err, store.ErrBadConfig)
}

func TestOpen_OnDiskPersists(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	cfg := store.DefaultConfig(dir)
	cfg.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cat, err := store.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, cat.Save(15, path15))
	require.NoError(t, cat.Close())

	cat, err = store.Open(cfg)
	require.NoError(t, err)
	defer cat.Close()
	got, err := cat.Load(15)
	require.NoError(t, err)
	assert.Equal(t, path15, got)
}
