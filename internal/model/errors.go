package model

import "errors"

var (
	// ErrLockUnavailable is returned when the store's exclusive-access
	// guard was poisoned by a previous failure and can no longer be
	// acquired.
	ErrLockUnavailable = errors.New("store lock unavailable")
	// ErrStoreClosed is returned by store operations after Close.
	ErrStoreClosed = errors.New("store closed")
)
