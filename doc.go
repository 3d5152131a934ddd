// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hollowheap provides hollow heaps: addressable priority queues
// that support Push and DecreaseKey in amortized O(1) time and DeleteMin
// in amortized O(log n) time. Rather than restructuring trees on
// DecreaseKey, a hollow heap moves the payload to a new node and leaves
// the original node 'hollow' to be swept up by a later DeleteMin. The
// resulting structure is a DAG of heap ordered trees in which a hollow node
// may have up to two parents.
//
// The Heap type in this package stores its nodes in a single growable
// table and uses integer Handles to refer to them. The pointer package
// provides a variant that allocates each node individually and the toggle
// package provides a variant whose implementation choices are all
// selectable at construction time so that they may be benchmarked against
// each other. All variants implement Queue.
//
// A Handle returned by Push or DecreaseKey remains valid until it is
// passed to a successful DecreaseKey call, which returns its replacement,
// or until its element is removed by DeleteMin. Using a stale handle
// returns ErrStaleHandle. None of the implementations are safe for
// concurrent use.
package hollowheap
