// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/hollowheap"
	"cloudeng.io/hollowheap/internal/workload"
	"cloudeng.io/logging/ctxlog"
	"github.com/rodaine/table"
)

const (
	workloadSort     = "sort"
	workloadAssorted = "assorted"
	workloadDijkstra = "dijkstra"

	maxWeight = 1000
)

func workloadsFor(name string) []string {
	if name == "all" {
		return []string{workloadSort, workloadAssorted, workloadDijkstra}
	}
	return []string{name}
}

type workloadInput struct {
	n    int
	seed int64
}

func (w *workloadInput) rnd() *rand.Rand {
	return rand.New(rand.NewSource(w.seed)) // #nosec: G404
}

// Result records the outcome of running a single workload against
// a single variant.
type Result struct {
	Variant  string
	Workload string
	Size     string
	Elapsed  time.Duration
	Stats    hollowheap.Stats
	Err      error
}

type bench struct {
	n    int
	seed int64

	keys   []int
	sorted []int
	graphs map[string]*workload.Graph
	dists  map[string][]int
}

// prepare creates the inputs shared by every variant so that each is
// timed against identical data.
func (b *bench) prepare(ctx context.Context, workloads []string) error {
	in := &workloadInput{n: b.n, seed: b.seed}
	for _, w := range workloads {
		switch w {
		case workloadSort:
			b.keys = workload.RandomInts(in.rnd(), b.n, b.n)
			b.sorted = slices.Sorted(slices.Values(b.keys))
		case workloadDijkstra:
			rnd := in.rnd()
			b.graphs = map[string]*workload.Graph{
				"sparse": workload.SparseGraph(rnd, b.n, maxWeight),
				"dense":  workload.DenseGraph(rnd, max(b.n/10, 1), maxWeight),
			}
			b.dists = map[string][]int{}
			for name, g := range b.graphs {
				d, err := workload.Dijkstra[hollowheap.Handle](hollowheap.New[int, int](), g, 0)
				if err != nil {
					return fmt.Errorf("computing reference distances for the %v graph: %w", name, err)
				}
				b.dists[name] = d
				ctxlog.Logger(ctx).Debug("created graph", "graph", name, "vertices", g.Vertices(), "edges", g.Edges())
			}
		}
	}
	return nil
}

func (b *bench) run(ctx context.Context, variants []Variant, workloads []string) ([]Result, error) {
	if err := b.prepare(ctx, workloads); err != nil {
		return nil, err
	}
	var results []Result
	errs := errors.M{}
	for _, v := range variants {
		stats := &hollowheap.Stats{}
		newQueue, err := v.factory(b.n, stats)
		if err != nil {
			errs.Append(err)
			continue
		}
		for _, w := range workloads {
			for _, r := range b.runWorkload(ctx, v, w, newQueue, stats) {
				ctxlog.Logger(ctx).Info("completed", "variant", r.Variant, "workload", r.Workload, "size", r.Size, "elapsed", r.Elapsed, "stats", r.Stats)
				if r.Err != nil {
					errs.Append(fmt.Errorf("%v: %v: %w", r.Variant, r.Workload, r.Err))
				}
				results = append(results, r)
			}
		}
	}
	return results, errs.Err()
}

func (b *bench) runWorkload(ctx context.Context, v Variant, w string, newQueue func() queue, stats *hollowheap.Stats) []Result {
	timed := func(size string, fn func() error) Result {
		stats.Reset()
		start := time.Now()
		err := fn()
		return Result{Variant: v.Name, Workload: w, Size: size, Elapsed: time.Since(start), Stats: *stats, Err: err}
	}
	var results []Result
	switch w {
	case workloadSort:
		results = append(results, timed(fmt.Sprintf("n=%v", b.n), func() error {
			got := workload.Sort(newQueue().sortable(), b.keys)
			if !slices.Equal(got, b.sorted) {
				return fmt.Errorf("keys were not removed in sorted order")
			}
			return nil
		}))
	case workloadAssorted:
		if v.Kind == KindBaseline {
			return nil
		}
		results = append(results, timed(fmt.Sprintf("n=%v", b.n), func() error {
			return newQueue().assorted(&workloadInput{n: b.n, seed: b.seed})
		}))
	case workloadDijkstra:
		if v.Kind == KindBaseline {
			return nil
		}
		for _, name := range []string{"sparse", "dense"} {
			g := b.graphs[name]
			size := fmt.Sprintf("%v: v=%v, e=%v", name, g.Vertices(), g.Edges())
			results = append(results, timed(size, func() error {
				got, err := newQueue().dijkstra(g)
				if err != nil {
					return err
				}
				if !slices.Equal(got, b.dists[name]) {
					return fmt.Errorf("%v graph: distances differ from the reference", name)
				}
				return nil
			}))
		}
	}
	ctxlog.Logger(ctx).Debug("workload finished", "variant", v.Name, "workload", w, "runs", len(results))
	return results
}

func printResults(out io.Writer, results []Result) {
	tbl := table.New("Variant", "Workload", "Size", "Elapsed", "Diagnostics", "Error").WithWriter(out)
	for _, r := range results {
		e := ""
		if r.Err != nil {
			e = r.Err.Error()
		}
		tbl.AddRow(r.Variant, r.Workload, r.Size, r.Elapsed.Round(time.Microsecond), r.Stats, e)
	}
	tbl.Print()
}
