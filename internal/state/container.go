// Package state holds a value and tells subscribers when it changes.
package state

import "sync"

// Container publishes snapshots of a value of type T.
//
// Set replaces the value and calls every subscriber with the new snapshot,
// synchronously and in subscription order. Callbacks run without the lock
// held, so a subscriber may call Get.
type Container[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New creates a Container holding initial.
func New[T any](initial T) *Container[T] {
	return &Container[T]{value: initial}
}

// Get returns the current value.
func (c *Container[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the value and notifies subscribers.
func (c *Container[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	subs := make([]subscriber[T], len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (c *Container[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}
