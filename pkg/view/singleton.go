package view

import (
	"fmt"
	"sync"
)

var (
	mu       sync.Mutex
	instance *View
)

// New builds the shared View. It fails with ErrAlreadyConstructed if the View
// was already created by New or Instance.
func New(opts ...Option) (*View, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return nil, ErrAlreadyConstructed
	}
	instance = build(opts...)
	return instance, nil
}

// MustNew works like New but panics on error.
func MustNew(opts ...Option) *View {
	v, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to construct view: %v", err))
	}
	return v
}

// Instance returns the shared View, building it with default options if no
// View exists yet.
func Instance() *View {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		instance = build()
	}
	return instance
}
