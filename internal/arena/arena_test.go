// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package arena_test

import (
	"testing"

	"cloudeng.io/hollowheap/internal/arena"
)

type record struct {
	key  int
	next uint32
}

func TestTable(t *testing.T) {
	for _, factor := range []int{2, 4} {
		tbl := arena.NewTable[uint32, record](1, factor)
		if got, want := tbl.Len(), 0; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if tbl.Valid(0) || tbl.Valid(1) {
			t.Errorf("empty table should have no valid indices")
		}
		for i := 1; i <= 1000; i++ {
			idx, r := tbl.Alloc()
			if got, want := idx, uint32(i); got != want {
				t.Fatalf("got %v, want %v", got, want)
			}
			if r.key != 0 || r.next != 0 {
				t.Fatalf("record %v not zeroed: %v", idx, r)
			}
			r.key = i * 10
		}
		if got, want := tbl.Len(), 1000; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		for i := uint32(1); i <= 1000; i++ {
			if !tbl.Valid(i) {
				t.Errorf("%v: should be valid", i)
			}
			if got, want := tbl.At(i).key, int(i)*10; got != want {
				t.Errorf("%v: got %v, want %v", i, got, want)
			}
		}
		if tbl.Valid(1001) {
			t.Errorf("1001 should not be valid")
		}
		if tbl.Cap() < tbl.Len() {
			t.Errorf("cap %v < len %v", tbl.Cap(), tbl.Len())
		}
	}
}

func TestAppendGrowth(t *testing.T) {
	for _, tc := range []struct {
		factor int
		caps   []int
	}{
		{2, []int{16, 32, 64}},
		{4, []int{16, 64, 256}},
	} {
		var s []int
		var caps []int
		last := -1
		for i := 0; i < 100; i++ {
			s = arena.Append(s, i, tc.factor)
			if cap(s) != last {
				last = cap(s)
				caps = append(caps, last)
			}
		}
		for i, v := range s {
			if v != i {
				t.Fatalf("factor %v: got %v, want %v", tc.factor, v, i)
			}
		}
		for i, want := range tc.caps {
			if got := caps[i]; got != want {
				t.Errorf("factor %v: growth step %v: got %v, want %v", tc.factor, i, got, want)
			}
		}
	}
}
