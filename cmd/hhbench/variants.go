// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/hollowheap"
	"cloudeng.io/hollowheap/internal/workload"
	"cloudeng.io/hollowheap/pointer"
	"cloudeng.io/hollowheap/toggle"
)

// Kinds of variant.
const (
	KindArena    = "arena"
	KindPointer  = "pointer"
	KindToggle   = "toggle"
	KindBaseline = "baseline"
)

// Variant describes a priority queue implementation to be benchmarked.
type Variant struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	// RankDecrement overrides the variant's default rank decrement.
	RankDecrement *int `yaml:"rank_decrement,omitempty"`
	// Toggle is the configuration for a toggle variant, fields that are
	// not specified are left as their zero values. Default() is used if
	// no configuration is supplied.
	Toggle *toggle.Config `yaml:"toggle,omitempty"`
}

// VariantsFile is the format of the file accepted by --variants.
type VariantsFile struct {
	Variants []Variant `yaml:"variants"`
}

// DefaultVariants returns the variants used when no file is specified.
func DefaultVariants() []Variant {
	unopt := toggle.Config{}
	sparse := toggle.Default()
	sparse.RankMap = toggle.SparseRanks
	return []Variant{
		{Name: "baseline", Kind: KindBaseline},
		{Name: "arena", Kind: KindArena},
		{Name: "pointer", Kind: KindPointer},
		{Name: "toggle", Kind: KindToggle},
		{Name: "toggle-sparse", Kind: KindToggle, Toggle: &sparse},
		{Name: "unoptimised", Kind: KindToggle, Toggle: &unopt},
	}
}

// queue is a type erased hollowheap.Queue instance that supports
// running each workload.
type queue interface {
	sortable() workload.Sortable[int, int]
	assorted(w *workloadInput) error
	dijkstra(g *workload.Graph) ([]int, error)
}

type queueFor[H comparable] struct {
	q hollowheap.Queue[int, int, H]
}

func (q queueFor[H]) sortable() workload.Sortable[int, int] {
	return workload.AsSortable(q.q)
}

func (q queueFor[H]) assorted(w *workloadInput) error {
	return workload.Assorted(q.q, w.rnd(), w.n)
}

func (q queueFor[H]) dijkstra(g *workload.Graph) ([]int, error) {
	return workload.Dijkstra(q.q, g, 0)
}

type baselineQueue struct {
	n int
}

func (b baselineQueue) sortable() workload.Sortable[int, int] {
	return workload.NewBaseline[int, int](b.n)
}

func (baselineQueue) assorted(*workloadInput) error {
	return errUnsupported
}

func (baselineQueue) dijkstra(*workload.Graph) ([]int, error) {
	return nil, errUnsupported
}

var errUnsupported = errors.New("workload is not supported by this variant")

// factory returns a function that creates a new, empty, queue for v that
// is sized for n elements and records its counters in stats.
func (v Variant) factory(n int, stats *hollowheap.Stats) (func() queue, error) {
	opts := []hollowheap.Option{hollowheap.WithCapacity(n), hollowheap.WithStats(stats)}
	if v.RankDecrement != nil {
		opts = append(opts, hollowheap.WithRankDecrement(*v.RankDecrement))
	}
	switch v.Kind {
	case KindArena:
		return func() queue {
			return queueFor[hollowheap.Handle]{hollowheap.New[int, int](opts...)}
		}, nil
	case KindPointer:
		return func() queue {
			return queueFor[*pointer.Node[int, int]]{pointer.New[int, int](opts...)}
		}, nil
	case KindToggle:
		cfg := toggle.Default()
		if v.Toggle != nil {
			cfg = *v.Toggle
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("variant %v: %w", v.Name, err)
		}
		return func() queue {
			return queueFor[hollowheap.Handle]{toggle.MustNew[int, int](cfg, opts...)}
		}, nil
	case KindBaseline:
		return func() queue { return baselineQueue{n: n} }, nil
	}
	return nil, fmt.Errorf("variant %v: unsupported kind %q", v.Name, v.Kind)
}
