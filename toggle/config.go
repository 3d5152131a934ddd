// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package toggle

import (
	"fmt"

	"cloudeng.io/errors"
)

// RankMapKind selects the data structure used to record the surviving
// tree of each rank during DeleteMin.
type RankMapKind string

// Supported values of RankMapKind.
const (
	DenseRanks  RankMapKind = "dense"
	SparseRanks RankMapKind = "sparse"
)

// Order selects the order in which the surviving trees are linked into
// a new root at the end of DeleteMin.
type Order string

// Supported values of Order.
const (
	Descending Order = "descending"
	Ascending  Order = "ascending"
)

// Config selects the behaviour of a Heap. The zero value is a valid
// configuration for the unoptimised heap: no rank decrement, no rank
// based tie-breaking and scratch space allocated for every DeleteMin.
type Config struct {
	// RankDecrement is subtracted from the rank of the node created by
	// DecreaseKey, clamped at zero.
	RankDecrement int `yaml:"rank_decrement"`
	// GrowthFactor is the factor by which the node table and scratch
	// space grow, 2 or 4. Zero is treated as 2.
	GrowthFactor int `yaml:"growth_factor"`
	// RankMap defaults to DenseRanks.
	RankMap RankMapKind `yaml:"rank_map"`
	// Consolidation defaults to Descending.
	Consolidation Order `yaml:"consolidation"`
	// TieBreakByRank resolves links between equal keys in favour of the
	// node with the lower rank.
	TieBreakByRank bool `yaml:"tie_break_by_rank"`
	// ReuseScratch retains the rank map and worklist across calls to
	// DeleteMin.
	ReuseScratch bool `yaml:"reuse_scratch"`
	// ClearRanksInline clears dense rank map entries as they are
	// consumed rather than clearing the entire map before it is next used.
	ClearRanksInline bool `yaml:"clear_ranks_inline"`
}

// Default returns the configuration with every optimisation enabled.
func Default() Config {
	return Config{
		RankDecrement:    2,
		GrowthFactor:     2,
		RankMap:          DenseRanks,
		Consolidation:    Descending,
		TieBreakByRank:   true,
		ReuseScratch:     true,
		ClearRanksInline: true,
	}
}

// Validate returns an error describing every invalid field in c.
func (c Config) Validate() error {
	errs := errors.M{}
	if c.RankDecrement < 0 {
		errs.Append(fmt.Errorf("rank_decrement: %v is negative", c.RankDecrement))
	}
	switch c.GrowthFactor {
	case 0, 2, 4:
	default:
		errs.Append(fmt.Errorf("growth_factor: %v is not one of 2 or 4", c.GrowthFactor))
	}
	switch c.RankMap {
	case "", DenseRanks, SparseRanks:
	default:
		errs.Append(fmt.Errorf("rank_map: %q is not one of %q or %q", c.RankMap, DenseRanks, SparseRanks))
	}
	switch c.Consolidation {
	case "", Descending, Ascending:
	default:
		errs.Append(fmt.Errorf("consolidation: %q is not one of %q or %q", c.Consolidation, Descending, Ascending))
	}
	return errs.Err()
}

func (c Config) growthFactor() int {
	if c.GrowthFactor == 0 {
		return 2
	}
	return c.GrowthFactor
}
