// Package lazy defers building a value until it is first displayed.
package lazy

import "sync"

// Value builds a T on first use and keeps it until [Value.Reset].
//
// Value is safe for concurrent use.
type Value[T any] struct {
	build func() T
	value T
	mu    sync.Mutex
	built bool
}

// New returns a [Value] that calls build on first use.
func New[T any](build func() T) *Value[T] {
	return &Value[T]{build: build}
}

// Get returns the value, building it if needed.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.built {
		v.value = v.build()
		v.built = true
	}

	return v.value
}

// Set replaces the built value. It is used to store a value that changed
// while it was displayed.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.value = value
	v.built = true
}

// Built reports whether the value currently exists.
func (v *Value[T]) Built() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.built
}

// Reset discards the value, so that the next [Value.Get] builds it again.
func (v *Value[T]) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero T

	v.value = zero
	v.built = false
}
