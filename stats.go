// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hollowheap

import (
	"fmt"
	"log/slog"
)

// Stats records diagnostic counters for a heap. It is not required for
// correct operation and is only updated when installed via WithStats.
type Stats struct {
	Pushes       int64 // calls to Push.
	DecreaseKeys int64 // successful calls to DecreaseKey.
	DeleteMins   int64 // calls to DeleteMin on a non-empty heap.
	Links        int64 // calls to the link primitive.
	TieLinks     int64 // links between nodes with equal keys.
	RankedLinks  int64 // links made while consolidating same-rank trees.
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	*s = Stats{}
}

// Add adds the counters in o to s.
func (s *Stats) Add(o Stats) {
	s.Pushes += o.Pushes
	s.DecreaseKeys += o.DecreaseKeys
	s.DeleteMins += o.DeleteMins
	s.Links += o.Links
	s.TieLinks += o.TieLinks
	s.RankedLinks += o.RankedLinks
}

func percent(n, d int64) float64 {
	if d == 0 {
		return 0
	}
	return float64(100*n) / float64(d)
}

// InsertRatio returns the ratio of pushes to decrease-keys, or 0 if
// there were no decrease-keys.
func (s Stats) InsertRatio() float64 {
	if s.DecreaseKeys == 0 {
		return 0
	}
	return float64(s.Pushes) / float64(s.DecreaseKeys)
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("ranked = %.2f%%, eqlinks = %.2f%%, insert:dec = %.2f:1",
		percent(s.RankedLinks, s.Links), percent(s.TieLinks, s.Links), s.InsertRatio())
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("pushes", s.Pushes),
		slog.Int64("decrease_keys", s.DecreaseKeys),
		slog.Int64("delete_mins", s.DeleteMins),
		slog.Int64("links", s.Links),
		slog.Int64("tie_links", s.TieLinks),
		slog.Int64("ranked_links", s.RankedLinks),
	)
}
