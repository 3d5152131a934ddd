// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hollowheap

import "cmp"

// Ordered represents the set of types that can be used as keys.
type Ordered = cmp.Ordered

// Queue represents the operations common to all of the hollow heap
// variants. H is the type of the handle used to refer to an element.
type Queue[K Ordered, V any, H comparable] interface {
	// Push adds val with priority key and returns a handle for it.
	Push(key K, val V) H
	// DecreaseKey lowers the key of the element referred to by h and
	// returns the handle that must be used to refer to it from now on.
	DecreaseKey(h H, key K) (H, error)
	// FindMin returns the value with the smallest key.
	FindMin() (V, bool)
	// DeleteMin removes the value with the smallest key, it is a no-op
	// for an empty queue.
	DeleteMin()
	// Empty returns true if the queue contains no elements.
	Empty() bool
	// Len returns the number of elements in the queue.
	Len() int
}

var _ Queue[int, int, Handle] = (*Heap[int, int])(nil)
