// Package store implements the reactive state store: primitive cells owning
// the storefront's mutable state, derived cells recomputed from them, and
// persisted cells whose values survive restarts.
//
// All cells created from one Store share a single mutex and a revision
// counter. Every primitive write bumps the revision; a derived read
// recomputes at most once per revision. A reader of a derived cell therefore
// always observes a value consistent with the latest primitive writes, and
// recomputation is atomic relative to any single write.
package store

import "sync"

// core is the synchronization state shared by every cell of one Store.
type core struct {
	mu  sync.Mutex
	rev uint64
}

func newCore() *core {
	// Revision starts at 1 so a zero-valued Derived is always stale.
	return &core{rev: 1}
}

// Cell holds a single primitive value.
type Cell[T any] struct {
	c     *core
	value T
}

func newCell[T any](c *core, initial T) *Cell[T] {
	return &Cell[T]{c: c, value: initial}
}

func (c *Cell[T]) Get() T {
	c.c.mu.Lock()
	defer c.c.mu.Unlock()
	return c.value
}

func (c *Cell[T]) Set(v T) {
	c.c.mu.Lock()
	defer c.c.mu.Unlock()
	c.value = v
	c.c.rev++
}

// peek reads without locking; the caller must hold the core mutex.
func (c *Cell[T]) peek() T {
	return c.value
}

// set writes without locking or bumping the revision; used by compound
// store updates that change several cells under one revision.
func (c *Cell[T]) set(v T) {
	c.value = v
}

// Derived is a memoized value computed from other cells. The compute function
// must read its dependencies through their peek/valueLocked accessors: it runs
// with the core mutex held.
type Derived[T any] struct {
	c        *core
	compute  func() T
	cached   T
	validRev uint64
}

func newDerived[T any](c *core, compute func() T) *Derived[T] {
	return &Derived[T]{c: c, compute: compute}
}

func (d *Derived[T]) Get() T {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	return d.valueLocked()
}

// valueLocked recomputes if any primitive changed since the cached value was
// produced. The caller must hold the core mutex.
func (d *Derived[T]) valueLocked() T {
	if d.validRev != d.c.rev {
		d.cached = d.compute()
		d.validRev = d.c.rev
	}
	return d.cached
}
