// Package jsonstore persists ordered record sequences as JSON array files.
// It is a dumb sequence persister: no business validation happens here. All
// access to a given file is serialized through a single-writer pool, so a
// read-modify-write cycle can never interleave with another one on the same
// store.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/panjf2000/ants/v2"
)

// ErrCorrupt indicates an unparseable backing file. Never treated as empty.
type ErrCorrupt struct {
	Path string
	Err  error
}

func (e ErrCorrupt) Error() string {
	return "corrupt store file " + e.Path + ": " + e.Err.Error()
}

func (e ErrCorrupt) Unwrap() error { return e.Err }

// ErrUnavailable indicates a path or I/O failure on the backing file.
type ErrUnavailable struct {
	Path string
	Err  error
}

func (e ErrUnavailable) Error() string {
	return "store file " + e.Path + " unavailable: " + e.Err.Error()
}

func (e ErrUnavailable) Unwrap() error { return e.Err }

// Store persists records of type T in one JSON array file.
type Store[T any] struct {
	path   string
	logger *slog.Logger
	writer *ants.Pool
}

// New creates a store backed by the file at path. The file is not required
// to exist; a missing file reads as an empty sequence.
func New[T any](logger *slog.Logger, path string) (*Store[T], error) {
	// Size-1 pool: one writer per store file.
	writer, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	return &Store[T]{
		path:   path,
		logger: logger,
		writer: writer,
	}, nil
}

// Path returns the backing file path.
func (s *Store[T]) Path() string { return s.path }

// Close releases the writer pool. Pending operations complete first.
func (s *Store[T]) Close() {
	s.writer.Release()
}

// Load returns the persisted sequence, or an empty sequence if the backing
// file does not exist.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	var items []T
	err := s.run(ctx, func() error {
		var err error
		items, err = s.read()
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Append loads the current sequence, appends item and rewrites the file.
func (s *Store[T]) Append(ctx context.Context, item T) error {
	return s.Update(ctx, func(items []T) ([]T, error) {
		return append(items, item), nil
	})
}

// Update runs mutate over the current sequence and rewrites the file with its
// result, all inside the store's serialized section. If mutate returns an
// error the file is left untouched and the error is returned unchanged.
func (s *Store[T]) Update(ctx context.Context, mutate func(items []T) ([]T, error)) error {
	return s.run(ctx, func() error {
		items, err := s.read()
		if err != nil {
			return err
		}
		next, err := mutate(items)
		if err != nil {
			return err
		}
		return s.write(next)
	})
}

// run submits fn to the single writer and waits for its result.
func (s *Store[T]) run(ctx context.Context, fn func() error) error {
	result := make(chan error, 1)
	if err := s.writer.Submit(func() { result <- fn() }); err != nil {
		return ErrUnavailable{Path: s.path, Err: err}
	}
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store[T]) read() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to read store file", "path", s.path, "error", err)
		return nil, ErrUnavailable{Path: s.path, Err: err}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Error("Failed to decode store file", "path", s.path, "error", err)
		return nil, ErrCorrupt{Path: s.path, Err: err}
	}
	return items, nil
}

func (s *Store[T]) write(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return ErrUnavailable{Path: s.path, Err: err}
	}

	// Write to a temp file then rename, so a failed write never corrupts the
	// previous contents.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.logger.Error("Failed to write store file", "path", s.path, "error", err)
		return ErrUnavailable{Path: s.path, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Error("Failed to replace store file", "path", s.path, "error", err)
		return ErrUnavailable{Path: s.path, Err: err}
	}
	return nil
}
