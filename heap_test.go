// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hollowheap_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"cloudeng.io/hollowheap"
	"cloudeng.io/hollowheap/internal/heaptest"
	"cloudeng.io/hollowheap/internal/workload"
)

func TestConformance(t *testing.T) {
	for _, d := range []int{0, 1, 2, 3} {
		t.Run(fmt.Sprintf("rank-decrement-%v", d), func(t *testing.T) {
			heaptest.Run(t, func() hollowheap.Queue[int, int, hollowheap.Handle] {
				return hollowheap.New[int, int](hollowheap.WithRankDecrement(d), hollowheap.WithCapacity(4))
			})
		})
	}
}

func TestGet(t *testing.T) {
	h := hollowheap.New[string, string]()
	ha := h.Push("m", "a")
	hb := h.Push("z", "b")
	if k, v, ok := h.Get(hb); !ok || k != "z" || v != "b" {
		t.Errorf("got %v, %v, %v", k, v, ok)
	}
	nb, err := h.DecreaseKey(hb, "c")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := h.Get(hb); ok {
		t.Errorf("stale handle %v should not be found", hb)
	}
	if k, v, ok := h.Get(nb); !ok || k != "c" || v != "b" {
		t.Errorf("got %v, %v, %v", k, v, ok)
	}
	if k, v, ok := h.Min(); !ok || k != "c" || v != "b" {
		t.Errorf("got %v, %v, %v", k, v, ok)
	}
	if _, _, ok := h.Get(0); ok {
		t.Errorf("zero handle should not be found")
	}
	if _, _, ok := h.Get(100); ok {
		t.Errorf("unallocated handle should not be found")
	}
	h.DeleteMin()
	if k, v, ok := h.Min(); !ok || k != "m" || v != "a" {
		t.Errorf("got %v, %v, %v", k, v, ok)
	}
	if _, _, ok := h.Get(ha); !ok {
		t.Errorf("live handle %v not found", ha)
	}
	h.DeleteMin()
	if _, _, ok := h.Min(); ok {
		t.Errorf("empty heap should have no minimum")
	}
	if _, err := h.DecreaseKey(100, "a"); !errors.Is(err, hollowheap.ErrInvalidHandle) {
		t.Errorf("got %v, want %v", err, hollowheap.ErrInvalidHandle)
	}
}

func TestNodesAreNotReused(t *testing.T) {
	h := hollowheap.New[int, int]()
	seen := map[hollowheap.Handle]bool{}
	record := func(id hollowheap.Handle) {
		if seen[id] {
			t.Fatalf("handle %v issued twice", id)
		}
		seen[id] = true
	}
	rnd := rand.New(rand.NewSource(0)) // #nosec: G404
	for i := 0; i < 100; i++ {
		id := h.Push(rnd.Intn(100), i)
		record(id)
		if i%3 == 0 {
			nid, err := h.DecreaseKey(id, -i-1)
			if err != nil {
				t.Fatal(err)
			}
			if nid != id {
				record(nid)
			}
		}
		if i%5 == 0 {
			h.DeleteMin()
		}
	}
	if got, want := h.Nodes(), len(seen); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := h.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestStats(t *testing.T) {
	var stats hollowheap.Stats
	h := hollowheap.New[int, int](hollowheap.WithStats(&stats))
	handles := make([]hollowheap.Handle, 10)
	for i := range handles {
		handles[i] = h.Push(10, i)
	}
	// All keys are equal, so every push is a tie.
	if got, want := stats, (hollowheap.Stats{Pushes: 10, Links: 9, TieLinks: 9}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	// Equal keys build a single path, so add ascending keys that the
	// root wins to give the next delete-min siblings of equal rank.
	for i := 0; i < 10; i++ {
		h.Push(20+i, 10+i)
	}
	if _, err := h.DecreaseKey(handles[3], 11); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := stats.DecreaseKeys, int64(0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := h.DecreaseKey(handles[3], 1); err != nil {
		t.Fatal(err)
	}
	h.DeleteMin()
	if got, want := stats.RankedLinks, int64(0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.DeleteMin()
	if got, want := h.Len(), 18; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := stats.TieLinks, int64(9); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := stats.DecreaseKeys, int64(1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := stats.DeleteMins, int64(2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if stats.RankedLinks == 0 {
		t.Errorf("delete-min should have consolidated trees: %+v", stats)
	}
	if err := h.Verify(); err != nil {
		t.Fatal(err)
	}
	if got, want := stats.InsertRatio(), 20.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var total hollowheap.Stats
	total.Add(stats)
	total.Add(stats)
	if got, want := total.Links, 2*stats.Links; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	total.Reset()
	if total != (hollowheap.Stats{}) {
		t.Errorf("got %+v, want zero value", total)
	}
}

func TestStatsString(t *testing.T) {
	s := hollowheap.Stats{Pushes: 30, DecreaseKeys: 10, Links: 200, TieLinks: 50, RankedLinks: 100}
	if got, want := s.String(), "ranked = 50.00%, eqlinks = 25.00%, insert:dec = 3.00:1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := (hollowheap.Stats{}).String(), "ranked = 0.00%, eqlinks = 0.00%, insert:dec = 0.00:1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := len(s.LogValue().Group()), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLongChains(t *testing.T) {
	// Pushing decreasing keys builds a single path. Moving every element
	// below the root leaves that path hollow and a second round of small
	// decreases, which the root wins, creates nodes with second parents.
	const n = 2000
	h := hollowheap.New[int, int]()
	handles := make([]hollowheap.Handle, n)
	keys := make([]int, n)
	for i := range handles {
		keys[i] = n - i
		handles[i] = h.Push(keys[i], i)
	}
	decrease := func(i, by int) {
		keys[i] -= by
		nh, err := h.DecreaseKey(handles[i], keys[i])
		if err != nil {
			t.Fatal(err)
		}
		handles[i] = nh
	}
	for i := range handles {
		decrease(i, n)
	}
	for i := 0; i < n-2; i++ {
		decrease(i, 1)
	}
	if err := h.Verify(); err != nil {
		t.Fatal(err)
	}
	prev := -n - 1
	for removed := 0; !h.Empty(); removed++ {
		k, v, _ := h.Min()
		if k < prev || keys[v] != k {
			t.Fatalf("got key %v for item %v (previous %v)", k, v, prev)
		}
		prev = k
		h.DeleteMin()
		if removed%100 == 0 {
			if err := h.Verify(); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := h.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestSortWorkload(t *testing.T) {
	rnd := rand.New(rand.NewSource(9)) // #nosec: G404
	keys := workload.RandomInts(rnd, 5000, 5000)
	out := workload.Sort(workload.AsSortable[int, int, hollowheap.Handle](hollowheap.New[int, int]()), keys)
	if got, want := len(out), len(keys); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := 1; i < len(out); i++ {
		if out[i] < out[i-1] {
			t.Fatalf("%v: %v < %v", i, out[i], out[i-1])
		}
	}
}
