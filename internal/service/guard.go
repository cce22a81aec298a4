package service

import (
	"sync"

	"github.com/dtroode/elementmeta/internal/model"
)

// guard serializes access to the underlying store. A panic raised while
// the guard is held poisons it: every later acquisition fails with
// model.ErrLockUnavailable instead of proceeding with undefined state.
type guard struct {
	mu       sync.Mutex
	poisoned bool
}

// do runs fn while holding the guard exclusively, blocking until the
// guard is free.
func (g *guard) do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.poisoned {
		return model.ErrLockUnavailable
	}

	defer func() {
		if r := recover(); r != nil {
			g.poisoned = true
			panic(r)
		}
	}()

	return fn()
}
