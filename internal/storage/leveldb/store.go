package leveldb

import (
	"context"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/dtroode/elementmeta/internal/model"
)

var _ model.Store = (*Store)(nil)

// Store is a read-only handle to a LevelDB database.
type Store struct {
	db *leveldb.DB
}

// Open opens the LevelDB database at path. The database must already
// exist; it is opened read-only and fails if another process holds its
// lock.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %q: %w", path, err)
	}

	return NewStore(db), nil
}

// NewStore wraps an already-open database (used in tests with an
// in-memory backend).
func NewStore(db *leveldb.DB) *Store {
	return &Store{db: db}
}

// Iterate walks every entry in key order, starting from the first key.
// The key and value slices passed to fn are only valid for the duration
// of the call.
func (s *Store) Iterate(ctx context.Context, fn func(key, value []byte) error) error {
	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()

	for iter.Next() {
		if err := fn(iter.Key(), iter.Value()); err != nil {
			return err
		}
	}

	if err := iter.Error(); err != nil {
		if errors.Is(err, leveldb.ErrClosed) {
			return model.ErrStoreClosed
		}
		return fmt.Errorf("iteration failed: %w", err)
	}

	return nil
}

// Get returns the value stored under key, with ok reporting whether the
// key exists.
func (s *Store) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	value, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if errors.Is(err, leveldb.ErrClosed) {
		return nil, false, model.ErrStoreClosed
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get key: %w", err)
	}

	return value, true, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
