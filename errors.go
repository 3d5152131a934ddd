// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hollowheap

import "errors"

var (
	// ErrKeyNotDecreased is returned by DecreaseKey when the new key is
	// not strictly less than the current key. The heap is left unchanged
	// and the handle remains valid.
	ErrKeyNotDecreased = errors.New("new key is not less than the current key")

	// ErrStaleHandle is returned when a handle has been superseded by
	// a call to DecreaseKey or its element has been deleted.
	ErrStaleHandle = errors.New("stale heap handle")

	// ErrInvalidHandle is returned for a handle that was never issued
	// by the heap it is used with.
	ErrInvalidHandle = errors.New("invalid heap handle")
)
