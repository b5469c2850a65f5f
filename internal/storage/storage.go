// Package storage persists a single value per file.
//
// Every file holds an envelope carrying a kind tag, a format version and the
// value itself. Load compares the kind tag before decoding the value, so a
// file written for one kind of value is reported instead of being decoded
// into another.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// formatVersion is written into every envelope.
const formatVersion = 1

// envelope is the on-disk representation.
type envelope[T any] struct {
	Data    T      `json:"data" yaml:"data" toml:"data"`
	Kind    string `json:"kind" yaml:"kind" toml:"kind"`
	Version int    `json:"version" yaml:"version" toml:"version"`
}

// header is decoded first to check the kind without touching the data.
type header struct {
	Kind    string `json:"kind" yaml:"kind" toml:"kind"`
	Version int    `json:"version" yaml:"version" toml:"version"`
}

// Store saves and loads values of type T.
type Store[T any] struct {
	codec Codec
	kind  string
}

// Option configures a Store.
type Option func(*options)

type options struct {
	codec Codec
}

// WithCodec forces a codec instead of choosing one by file extension.
func WithCodec(c Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// New creates a Store for values tagged with kind.
func New[T any](kind string, opts ...Option) *Store[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{kind: kind, codec: o.codec}
}

// EnsureExists creates an empty file at path, including parent
// directories, if nothing exists there yet.
func (s *Store[T]) EnsureExists(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return &Error{Op: "create", Path: path, Err: ErrIsDirectory}
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return &Error{Op: "create", Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return &Error{Op: "create", Path: path, Err: fmt.Errorf("create directory: %w", err)}
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return &Error{Op: "create", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Op: "create", Path: path, Err: err}
	}
	return nil
}

// Save writes v to path, replacing previous contents.
// The file is replaced atomically; a failed save leaves the old contents.
func (s *Store[T]) Save(path string, v T) error {
	if err := s.EnsureExists(path); err != nil {
		return err
	}

	codec := s.codecFor(path)
	content, err := codec.Marshal(envelope[T]{Kind: s.kind, Version: formatVersion, Data: v})
	if err != nil {
		return &Error{Op: "save", Path: path, Err: fmt.Errorf("encode %s: %w", codec.Name(), err)}
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return &Error{Op: "save", Path: path, Err: fmt.Errorf("write temp file: %w", err)}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &Error{Op: "save", Path: path, Err: fmt.Errorf("rename temp file: %w", err)}
	}
	return nil
}

// Load reads the value stored at path.
// It fails if the file is empty, cannot be decoded, or holds a different
// kind of value.
func (s *Store[T]) Load(path string) (T, error) {
	var zero T
	if err := s.EnsureExists(path); err != nil {
		return zero, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return zero, &Error{Op: "load", Path: path, Err: err}
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return zero, &Error{Op: "load", Path: path, Err: ErrEmpty}
	}

	codec := s.codecFor(path)
	var h header
	if err := codec.Unmarshal(content, &h); err != nil {
		return zero, &Error{Op: "load", Path: path, Err: fmt.Errorf("decode %s: %w", codec.Name(), err)}
	}
	if h.Kind != s.kind {
		return zero, &Error{Op: "load", Path: path, Err: fmt.Errorf("%w: want %q, got %q", ErrKindMismatch, s.kind, h.Kind)}
	}
	if h.Version != formatVersion {
		return zero, &Error{Op: "load", Path: path, Err: fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)}
	}

	var env envelope[T]
	if err := codec.Unmarshal(content, &env); err != nil {
		return zero, &Error{Op: "load", Path: path, Err: fmt.Errorf("decode %s: %w", codec.Name(), err)}
	}
	return env.Data, nil
}

func (s *Store[T]) codecFor(path string) Codec {
	if s.codec != nil {
		return s.codec
	}
	return CodecFor(path)
}
