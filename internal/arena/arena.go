// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package arena provides a growable table of fixed size records addressed
// by stable integer indices. Records are never freed individually, indices
// are never reused and index 0 is reserved so that the zero index can be
// used to mean 'none'.
package arena

import (
	"errors"
	"math"
)

// ErrExhausted is the panic value used when a Table can no longer allocate
// a new index.
var ErrExhausted = errors.New("arena: index space exhausted")

const minCapacity = 16

// Index represents the types that may be used to index a Table.
type Index interface {
	~uint32
}

// Append appends v to s, growing the capacity of s by factor
// when it is full.
func Append[T any](s []T, v T, factor int) []T {
	if len(s) < cap(s) {
		return append(s, v)
	}
	n := grow(cap(s), factor)
	ns := make([]T, len(s), n)
	copy(ns, s)
	return append(ns, v)
}

func grow(c, factor int) int {
	if factor < 2 {
		factor = 2
	}
	if c < minCapacity {
		return minCapacity
	}
	return c * factor
}

// Table is a growable table of records of type T.
type Table[I Index, T any] struct {
	slots  []T
	factor int
}

// NewTable returns a Table with room for capacity records before it
// needs to grow, and which grows by factor thereafter.
func NewTable[I Index, T any](capacity, factor int) *Table[I, T] {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return &Table[I, T]{
		slots:  make([]T, 1, capacity+1),
		factor: factor,
	}
}

// Alloc returns a new, zeroed, record and its index. The returned pointer
// is only valid until the next call to Alloc.
func (t *Table[I, T]) Alloc() (I, *T) {
	n := len(t.slots)
	if uint64(n) > math.MaxUint32 {
		panic(ErrExhausted)
	}
	var zero T
	t.slots = Append(t.slots, zero, t.factor)
	return I(n), &t.slots[n]
}

// At returns the record at index i. The returned pointer is only valid
// until the next call to Alloc.
func (t *Table[I, T]) At(i I) *T {
	return &t.slots[i]
}

// Valid returns true if i refers to an allocated record.
func (t *Table[I, T]) Valid(i I) bool {
	return i > 0 && int(i) < len(t.slots)
}

// Len returns the number of records allocated.
func (t *Table[I, T]) Len() int {
	return len(t.slots) - 1
}

// Cap returns the number of records that can be allocated before the
// table next grows.
func (t *Table[I, T]) Cap() int {
	return cap(t.slots) - 1
}
