package jsonstore

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

func newTestStore(t *testing.T) *Store[record] {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	store, err := New[record](slog.Default(), path)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	items, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAppendLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := record{Name: "first", Amount: "100.00"}
	second := record{Name: "second", Amount: "-30.00"}
	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []record{first, second}, items)

	// Reloading through a fresh store reproduces the same sequence.
	reopened, err := New[record](slog.Default(), store.Path())
	require.NoError(t, err)
	defer reopened.Close()

	again, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, again)
}

func TestLoad_CorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Load(context.Background())
	var corrupt ErrCorrupt
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, store.Path(), corrupt.Path)
}

func TestLoad_EmptyFileIsCorrupt(t *testing.T) {
	// A zero-byte file is malformed, not an empty sequence.
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), nil, 0o644))

	_, err := store.Load(context.Background())
	var corrupt ErrCorrupt
	assert.ErrorAs(t, err, &corrupt)
}

func TestAppend_CorruptFileIsNeverRewritten(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	err := store.Append(context.Background(), record{Name: "x"})
	var corrupt ErrCorrupt
	require.ErrorAs(t, err, &corrupt)

	data, readErr := os.ReadFile(store.Path())
	require.NoError(t, readErr)
	assert.Equal(t, "{not json", string(data))
}

func TestAppend_UnavailablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "records.json")
	store, err := New[record](slog.Default(), path)
	require.NoError(t, err)
	defer store.Close()

	err = store.Append(context.Background(), record{Name: "x"})
	var unavailable ErrUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestUpdate_MutateErrorLeavesFileUntouched(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, record{Name: "kept"}))

	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	sentinel := errors.New("rejected")
	err = store.Update(ctx, func(items []record) ([]record, error) {
		return nil, sentinel
	})
	require.ErrorIs(t, err, sentinel)

	after, readErr := os.ReadFile(store.Path())
	require.NoError(t, readErr)
	assert.Equal(t, before, after)
}

func TestUpdate_SerializesConcurrentAppends(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const writers = 20
	done := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func() {
			done <- store.Append(ctx, record{Name: "w"})
		}()
	}
	for i := 0; i < writers; i++ {
		require.NoError(t, <-done)
	}

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, items, writers, "no appends lost under concurrency")
}

func TestWrite_EmptySequencePersistsAsArray(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Update(ctx, func(items []record) ([]record, error) {
		return nil, nil
	}))

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
