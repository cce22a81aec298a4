package leveldb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	ldbstorage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/dtroode/elementmeta/internal/model"
)

func newMemStore(t *testing.T, entries map[string]string) *Store {
	t.Helper()

	db, err := leveldb.Open(ldbstorage.NewMemStorage(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for k, v := range entries {
		require.NoError(t, db.Put([]byte(k), []byte(v), nil))
	}

	return NewStore(db)
}

func TestStore_Iterate(t *testing.T) {
	ctx := context.Background()

	s := newMemStore(t, map[string]string{
		"theme":      "dark",
		"mx_user_id": "@alice:example.org",
		"room_1_id":  "!abc:example.org",
	})

	var keys []string
	err := s.Iterate(ctx, func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	require.NoError(t, err)

	// Native key order.
	assert.Equal(t, []string{"mx_user_id", "room_1_id", "theme"}, keys)

	// A fresh call restarts from the first key.
	var again []string
	err = s.Iterate(ctx, func(key, value []byte) error {
		again = append(again, string(key))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, keys, again)
}

func TestStore_Iterate_CallbackErrorStops(t *testing.T) {
	ctx := context.Background()

	s := newMemStore(t, map[string]string{
		"a": "1",
		"b": "2",
		"c": "3",
	})

	var seen int
	wantErr := assert.AnError
	err := s.Iterate(ctx, func(key, value []byte) error {
		seen++
		if seen == 2 {
			return wantErr
		}
		return nil
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 2, seen)
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()

	s := newMemStore(t, map[string]string{"theme": "dark"})

	value, ok, err := s.Get(ctx, []byte("theme"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("dark"), value)

	value, ok, err = s.Get(ctx, []byte("missing"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestStore_ClosedStore(t *testing.T) {
	ctx := context.Background()

	s := newMemStore(t, map[string]string{"theme": "dark"})
	require.NoError(t, s.Close())

	_, _, err := s.Get(ctx, []byte("theme"))
	assert.ErrorIs(t, err, model.ErrStoreClosed)

	err = s.Iterate(ctx, func(key, value []byte) error { return nil })
	assert.ErrorIs(t, err, model.ErrStoreClosed)
}

func TestOpen_MissingPath(t *testing.T) {
	s, err := Open(t.TempDir() + "/does-not-exist")
	assert.Nil(t, s)
	assert.Error(t, err)
}

func TestOpen_ExistingDatabase(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	db, err := leveldb.OpenFile(dir, nil)
	require.NoError(t, err)
	require.NoError(t, db.Put([]byte("mx_user_id"), []byte("@alice:example.org"), nil))
	require.NoError(t, db.Close())

	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	value, ok, err := s.Get(ctx, []byte("mx_user_id"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("@alice:example.org"), value)
}
