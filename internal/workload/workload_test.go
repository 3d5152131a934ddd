// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package workload_test

import (
	"math/rand"
	"slices"
	"testing"

	"cloudeng.io/hollowheap"
	"cloudeng.io/hollowheap/internal/workload"
	"github.com/google/go-cmp/cmp"
)

func TestBaselineSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(1)) // #nosec: G404
	for _, n := range []int{0, 1, 2, 17, 1000} {
		keys := workload.RandomInts(rnd, n, 100)
		want := slices.Clone(keys)
		slices.Sort(want)
		got := workload.Sort(workload.NewBaseline[int, int](n), keys)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v: (-want +got):\n%s", n, diff)
		}
		hollow := workload.Sort(workload.AsSortable[int, int, hollowheap.Handle](hollowheap.New[int, int]()), keys)
		if diff := cmp.Diff(want, hollow); diff != "" {
			t.Errorf("%v: (-want +got):\n%s", n, diff)
		}
	}
	b := workload.NewBaseline[int, string](0)
	if _, ok := b.FindMin(); ok {
		t.Errorf("empty baseline has a minimum")
	}
	b.DeleteMin()
	if !b.Empty() {
		t.Errorf("baseline should be empty")
	}
}

func TestGraphs(t *testing.T) {
	rnd := rand.New(rand.NewSource(2)) // #nosec: G404
	g := workload.RandomGraph(rnd, 50, 200, 10)
	if got, want := g.Vertices(), 50; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Edges(), 200; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for v, d := range workload.BellmanFord(g, 0) {
		if d == workload.Infinity {
			t.Errorf("vertex %v is unreachable", v)
		}
	}
	if got, want := workload.SparseGraph(rnd, 100, 10).Edges(), 460; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := workload.DenseGraph(rnd, 16, 10).Edges(); got < 127 || got > 128 {
		t.Errorf("got %v, want 16^1.75", got)
	}
	if got, want := workload.RandomGraph(rnd, 0, 10, 10).Edges(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBellmanFord(t *testing.T) {
	g := workload.NewGraph(5)
	g.AddEdge(0, 1, 4)
	g.AddEdge(0, 2, 1)
	g.AddEdge(2, 1, 2)
	g.AddEdge(1, 3, 5)
	g.AddEdge(3, 3, 1)
	want := []int{0, 3, 1, 8, workload.Infinity}
	if diff := cmp.Diff(want, workload.BellmanFord(g, 0)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, err := workload.Dijkstra[hollowheap.Handle](hollowheap.New[int, int](), g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestAssorted(t *testing.T) {
	rnd := rand.New(rand.NewSource(3)) // #nosec: G404
	for _, n := range []int{0, 1, 10, 1000} {
		if err := workload.Assorted[hollowheap.Handle](hollowheap.New[int, int](), rnd, n); err != nil {
			t.Errorf("%v: %v", n, err)
		}
	}
}
