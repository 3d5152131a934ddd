// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heaptest provides a conformance suite for implementations of
// hollowheap.Queue.
package heaptest

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"cloudeng.io/hollowheap"
	"cloudeng.io/hollowheap/internal/workload"
	"github.com/google/go-cmp/cmp"
)

// Factory returns a new, empty, queue.
type Factory[H comparable] func() hollowheap.Queue[int, int, H]

// Verifier is implemented by queues that can check their own internal
// invariants.
type Verifier interface {
	Verify() error
}

func verify(t *testing.T, q any) {
	t.Helper()
	if v, ok := q.(Verifier); ok {
		if err := v.Verify(); err != nil {
			t.Fatalf("invariant violated: %v", err)
		}
	}
}

// Run runs the conformance suite against queues created by newQueue.
func Run[H comparable](t *testing.T, newQueue Factory[H]) {
	t.Run("Empty", func(t *testing.T) { testEmpty(t, newQueue()) })
	t.Run("HeapSort", func(t *testing.T) { testHeapSort(t, newQueue) })
	t.Run("DecreaseKey", func(t *testing.T) { testDecreaseKey(t, newQueue()) })
	t.Run("Interleaved", func(t *testing.T) { testInterleaved(t, newQueue()) })
	t.Run("Freshness", func(t *testing.T) { testFreshness(t, newQueue()) })
	t.Run("KeyPolicy", func(t *testing.T) { testKeyPolicy(t, newQueue()) })
	t.Run("StaleHandles", func(t *testing.T) { testStaleHandles(t, newQueue()) })
	t.Run("Random", func(t *testing.T) { testRandom(t, newQueue) })
	t.Run("Assorted", func(t *testing.T) { testAssorted(t, newQueue) })
	t.Run("Dijkstra", func(t *testing.T) { testDijkstra(t, newQueue) })
}

func testEmpty[H comparable](t *testing.T, q hollowheap.Queue[int, int, H]) {
	if !q.Empty() {
		t.Errorf("new queue is not empty")
	}
	if got, want := q.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if v, ok := q.FindMin(); ok {
		t.Errorf("got %v, true from an empty queue", v)
	}
	q.DeleteMin()
	if !q.Empty() || q.Len() != 0 {
		t.Errorf("DeleteMin on an empty queue changed it")
	}
	verify(t, q)
	q.Push(1, 1)
	q.DeleteMin()
	q.DeleteMin()
	if !q.Empty() {
		t.Errorf("queue should be empty")
	}
	verify(t, q)
}

// drainKeys removes all elements, returning keys[payload] for each.
func drainKeys[H comparable](t *testing.T, q hollowheap.Queue[int, int, H], keys []int) []int {
	t.Helper()
	out := []int{}
	for !q.Empty() {
		v, ok := q.FindMin()
		if !ok {
			t.Fatalf("FindMin failed on a non-empty queue")
		}
		out = append(out, keys[v])
		q.DeleteMin()
		verify(t, q)
	}
	return out
}

func testHeapSort[H comparable](t *testing.T, newQueue Factory[H]) {
	rnd := rand.New(rand.NewSource(1)) // #nosec: G404
	descending := make([]int, 200)
	for i := range descending {
		descending[i] = len(descending) - i
	}
	for i, keys := range [][]int{
		{},
		{42},
		{5, 3, 8, 1, 9},
		{2, 2, 2, 1, 1},
		descending,
		workload.RandomInts(rnd, 1000, 50),
		workload.RandomInts(rnd, 1000, 1000000),
	} {
		q := newQueue()
		for j, k := range keys {
			q.Push(k, j)
		}
		if got, want := q.Len(), len(keys); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		verify(t, q)
		want := slices.Clone(keys)
		slices.Sort(want)
		if diff := cmp.Diff(want, drainKeys(t, q, keys)); diff != "" {
			t.Errorf("%v: heap sort mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func testDecreaseKey[H comparable](t *testing.T, q hollowheap.Queue[int, int, H]) {
	const a, b = 0, 1
	ha := q.Push(10, a)
	q.Push(7, b)
	if v, _ := q.FindMin(); v != b {
		t.Errorf("got %v, want %v", v, b)
	}
	if _, err := q.DecreaseKey(ha, 2); err != nil {
		t.Fatal(err)
	}
	if v, _ := q.FindMin(); v != a {
		t.Errorf("got %v, want %v", v, a)
	}
	if got, want := q.Len(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	verify(t, q)
}

func testInterleaved[H comparable](t *testing.T, q hollowheap.Queue[int, int, H]) {
	keys := []int{5, 3, 8, 1, 9, 2}
	handles := make([]H, len(keys))
	for i, k := range keys {
		handles[i] = q.Push(k, i)
	}
	if _, err := q.DecreaseKey(handles[2], 0); err != nil {
		t.Fatal(err)
	}
	keys[2] = 0
	verify(t, q)
	if diff := cmp.Diff([]int{0, 1, 2, 3, 5, 9}, drainKeys(t, q, keys)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !q.Empty() {
		t.Errorf("queue should be empty")
	}
}

func testFreshness[H comparable](t *testing.T, q hollowheap.Queue[int, int, H]) {
	hr := q.Push(5, 0)
	hc := q.Push(10, 1)
	nc, err := q.DecreaseKey(hc, 7)
	if err != nil {
		t.Fatal(err)
	}
	if nc == hc {
		t.Errorf("decrease-key of a non-root element returned the same handle")
	}
	nr, err := q.DecreaseKey(hr, 4)
	if err != nil {
		t.Fatal(err)
	}
	if nr != hr {
		t.Errorf("decrease-key of the root returned a new handle")
	}
	nc2, err := q.DecreaseKey(nc, 1)
	if err != nil {
		t.Fatal(err)
	}
	if nc2 == nc {
		t.Errorf("decrease-key of a non-root element returned the same handle")
	}
	if v, _ := q.FindMin(); v != 1 {
		t.Errorf("got %v, want 1", v)
	}
	verify(t, q)
	if diff := cmp.Diff([]int{1, 4}, drainKeys(t, q, []int{4, 1})); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func testKeyPolicy[H comparable](t *testing.T, q hollowheap.Queue[int, int, H]) {
	h0 := q.Push(5, 0)
	h1 := q.Push(7, 1)
	for _, tc := range []struct {
		h   H
		key int
	}{
		{h1, 9},
		{h1, 7},
		{h0, 5},
		{h0, 6},
	} {
		h, err := q.DecreaseKey(tc.h, tc.key)
		if !errors.Is(err, hollowheap.ErrKeyNotDecreased) {
			t.Errorf("key %v: got %v, want %v", tc.key, err, hollowheap.ErrKeyNotDecreased)
		}
		if h != tc.h {
			t.Errorf("key %v: a rejected decrease-key changed the handle", tc.key)
		}
	}
	if got, want := q.Len(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	verify(t, q)
	// The handles are still valid.
	if _, err := q.DecreaseKey(h1, 1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 5}, drainKeys(t, q, []int{5, 1})); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func testStaleHandles[H comparable](t *testing.T, q hollowheap.Queue[int, int, H]) {
	var zero H
	if _, err := q.DecreaseKey(zero, 0); !errors.Is(err, hollowheap.ErrInvalidHandle) {
		t.Errorf("got %v, want %v", err, hollowheap.ErrInvalidHandle)
	}
	q.Push(5, 0)
	hb := q.Push(10, 1)
	nb, err := q.DecreaseKey(hb, 8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := q.DecreaseKey(hb, 1); !errors.Is(err, hollowheap.ErrStaleHandle) {
		t.Errorf("got %v, want %v", err, hollowheap.ErrStaleHandle)
	}
	nb, err = q.DecreaseKey(nb, 1)
	if err != nil {
		t.Fatal(err)
	}
	q.DeleteMin()
	if _, err := q.DecreaseKey(nb, 0); !errors.Is(err, hollowheap.ErrStaleHandle) {
		t.Errorf("got %v, want %v", err, hollowheap.ErrStaleHandle)
	}
	if v, _ := q.FindMin(); v != 0 {
		t.Errorf("got %v, want 0", v)
	}
	if got, want := q.Len(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	verify(t, q)
}

type item[H comparable] struct {
	key  int
	h    H
	pos  int // position in the live list, or -1.
	dead bool
}

func testRandom[H comparable](t *testing.T, newQueue Factory[H]) {
	for seed := int64(0); seed < 8; seed++ {
		rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
		q := newQueue()
		var items []*item[H]
		var live []int
		remove := func(idx int) {
			it := items[idx]
			last := live[len(live)-1]
			live[it.pos] = last
			items[last].pos = it.pos
			live = live[:len(live)-1]
			it.pos, it.dead = -1, true
		}
		pushes, deletes := 0, 0
		for step := 0; step < 2000; step++ {
			switch op := rnd.Intn(10); {
			case op < 4:
				idx := len(items)
				it := &item[H]{key: rnd.Intn(1000), pos: len(live)}
				it.h = q.Push(it.key, idx)
				items = append(items, it)
				live = append(live, idx)
				pushes++
			case op < 7 && len(live) > 0:
				it := items[live[rnd.Intn(len(live))]]
				if rnd.Intn(8) == 0 {
					if _, err := q.DecreaseKey(it.h, it.key+rnd.Intn(3)); !errors.Is(err, hollowheap.ErrKeyNotDecreased) {
						t.Fatalf("seed %v, step %v: got %v, want %v", seed, step, err, hollowheap.ErrKeyNotDecreased)
					}
					break
				}
				it.key -= rnd.Intn(100) + 1
				h, err := q.DecreaseKey(it.h, it.key)
				if err != nil {
					t.Fatalf("seed %v, step %v: %v", seed, step, err)
				}
				it.h = h
			default:
				if len(live) == 0 {
					if !q.Empty() {
						t.Fatalf("seed %v, step %v: queue should be empty", seed, step)
					}
					q.DeleteMin()
					break
				}
				v, ok := q.FindMin()
				if !ok {
					t.Fatalf("seed %v, step %v: FindMin failed", seed, step)
				}
				if items[v].dead {
					t.Fatalf("seed %v, step %v: FindMin returned deleted item %v", seed, step, v)
				}
				for _, idx := range live {
					if items[idx].key < items[v].key {
						t.Fatalf("seed %v, step %v: FindMin returned key %v, but %v is smaller", seed, step, items[v].key, items[idx].key)
					}
				}
				q.DeleteMin()
				remove(v)
				deletes++
			}
			if got, want := q.Len(), pushes-deletes; got != want {
				t.Fatalf("seed %v, step %v: got %v, want %v", seed, step, got, want)
			}
			if got, want := q.Empty(), len(live) == 0; got != want {
				t.Fatalf("seed %v, step %v: got %v, want %v", seed, step, got, want)
			}
			verify(t, q)
		}
		keys := make([]int, len(items))
		var want []int
		for i, it := range items {
			keys[i] = it.key
			if !it.dead {
				want = append(want, it.key)
			}
		}
		slices.Sort(want)
		got := drainKeys(t, q, keys)
		if len(want) == 0 {
			want = []int{}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("seed %v: mismatch (-want +got):\n%s", seed, diff)
		}
	}
}

func testAssorted[H comparable](t *testing.T, newQueue Factory[H]) {
	rnd := rand.New(rand.NewSource(3)) // #nosec: G404
	for _, n := range []int{0, 1, 10, 1000} {
		if err := workload.Assorted(newQueue(), rnd, n); err != nil {
			t.Errorf("n=%v: %v", n, err)
		}
	}
}

func testDijkstra[H comparable](t *testing.T, newQueue Factory[H]) {
	g := workload.NewGraph(6)
	for _, e := range [][3]int{
		{0, 1, 7}, {0, 2, 9}, {0, 5, 14},
		{1, 2, 10}, {1, 3, 15},
		{2, 3, 11}, {2, 5, 2},
		{3, 4, 6}, {5, 4, 9},
	} {
		g.AddEdge(e[0], e[1], e[2])
	}
	dist, err := workload.Dijkstra(newQueue(), g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 7, 9, 20, 20, 11}, dist); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	rnd := rand.New(rand.NewSource(5)) // #nosec: G404
	for i, g := range []*workload.Graph{
		workload.RandomGraph(rnd, 50, 60, 10),
		workload.SparseGraph(rnd, 300, 100),
		workload.DenseGraph(rnd, 100, 1000),
		workload.RandomGraph(rnd, 200, 100, 5),
	} {
		got, err := workload.Dijkstra(newQueue(), g, 0)
		if err != nil {
			t.Fatalf("%v: %v", i, err)
		}
		if diff := cmp.Diff(workload.BellmanFord(g, 0), got); diff != "" {
			t.Errorf("%v: mismatch (-want +got):\n%s", i, diff)
		}
	}
}
