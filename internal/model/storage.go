package model

import (
	"context"
	"io"
)

// Store is an open ordered key-value store holding raw byte-string
// entries. Implementations are read-only.
type Store interface {
	// Iterate calls fn for every entry in the store's native key order,
	// restarting from the first key on each call. Iteration stops early
	// if fn returns an error, which is then returned unchanged.
	Iterate(ctx context.Context, fn func(key, value []byte) error) error
	// Get returns the value stored under key. ok is false when the key
	// is absent; an absent key is not an error.
	Get(ctx context.Context, key []byte) (value []byte, ok bool, err error)
	Close() error
}

// Sink receives exported metadata documents.
type Sink interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Exists(ctx context.Context, key string) (bool, error)
}
