package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/elementmeta/internal/model"
)

func TestGuard_ReturnsFnError(t *testing.T) {
	g := &guard{}

	wantErr := errors.New("boom")
	err := g.do(func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)

	// A plain error does not poison the guard.
	err = g.do(func() error { return nil })
	assert.NoError(t, err)
}

func TestGuard_PanicPoisons(t *testing.T) {
	g := &guard{}

	require.Panics(t, func() {
		_ = g.do(func() error { panic("broken") })
	})

	err := g.do(func() error { return nil })
	assert.ErrorIs(t, err, model.ErrLockUnavailable)

	// Poisoning is permanent.
	err = g.do(func() error { return nil })
	assert.ErrorIs(t, err, model.ErrLockUnavailable)
}

func TestGuard_SerializesCallers(t *testing.T) {
	g := &guard{}

	var active, maxActive int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.do(func() error {
				cur := atomic.AddInt32(&active, 1)
				if cur > atomic.LoadInt32(&maxActive) {
					atomic.StoreInt32(&maxActive, cur)
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&active, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive))
}
