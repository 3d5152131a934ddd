// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package workload provides the priority queue workloads used to test
// and compare the hollow heap variants: sorting, a random mix of pushes,
// decrease-keys and delete-mins, and single source shortest paths.
package workload

import (
	"fmt"
	"math/rand"

	"cloudeng.io/hollowheap"
)

// Sortable represents the subset of priority queue operations needed to
// sort, it is implemented by queues that do not support DecreaseKey.
type Sortable[K hollowheap.Ordered, V any] interface {
	Insert(key K, val V)
	FindMin() (V, bool)
	DeleteMin()
	Empty() bool
}

type sortable[K hollowheap.Ordered, V any, H comparable] struct {
	q hollowheap.Queue[K, V, H]
}

func (s sortable[K, V, H]) Insert(key K, val V) { s.q.Push(key, val) }
func (s sortable[K, V, H]) FindMin() (V, bool)  { return s.q.FindMin() }
func (s sortable[K, V, H]) DeleteMin()          { s.q.DeleteMin() }
func (s sortable[K, V, H]) Empty() bool         { return s.q.Empty() }

// AsSortable returns a Sortable that discards the handles returned
// by q.Push.
func AsSortable[K hollowheap.Ordered, V any, H comparable](q hollowheap.Queue[K, V, H]) Sortable[K, V] {
	return sortable[K, V, H]{q: q}
}

// Sort pushes every key onto q (using the key as the value) and returns
// the keys in the order that they are removed.
func Sort(q Sortable[int, int], keys []int) []int {
	for _, k := range keys {
		q.Insert(k, k)
	}
	out := make([]int, 0, len(keys))
	for !q.Empty() {
		v, _ := q.FindMin()
		out = append(out, v)
		q.DeleteMin()
	}
	return out
}

// RandomInts returns n random integers in [0, limit).
func RandomInts(rnd *rand.Rand, n, limit int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(limit)
	}
	return r
}

// Assorted pushes n random keys, applies 2n decrease-keys that lower the
// key of a randomly chosen element by 1 to 100 and then removes every
// element, verifying that they are removed in key order.
func Assorted[H comparable](q hollowheap.Queue[int, int, H], rnd *rand.Rand, n int) error {
	if n == 0 {
		return nil
	}
	keys := RandomInts(rnd, n, n)
	handles := make([]H, n)
	for i, k := range keys {
		handles[i] = q.Push(k, i)
	}
	for i := 0; i < 2*n; i++ {
		idx := rnd.Intn(n)
		keys[idx] -= rnd.Intn(100) + 1
		h, err := q.DecreaseKey(handles[idx], keys[idx])
		if err != nil {
			return fmt.Errorf("decrease-key %v of item %v: %w", i, idx, err)
		}
		handles[idx] = h
	}
	prev, removed := 0, 0
	for !q.Empty() {
		v, _ := q.FindMin()
		if removed > 0 && keys[v] < prev {
			return fmt.Errorf("delete-min %v: key %v for item %v is less than the previous key %v", removed, keys[v], v, prev)
		}
		prev = keys[v]
		removed++
		q.DeleteMin()
	}
	if removed != n {
		return fmt.Errorf("removed %v items, want %v", removed, n)
	}
	return nil
}
