// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hollowheap

import "fmt"

// Verify checks the structural invariants of the heap: the root is live,
// every live node is reachable exactly once and has no smaller key than
// any live ancestor, only hollow nodes have a second parent and the
// number of live nodes matches Len.
func (h *Heap[K, V]) Verify() error {
	if h.root == none {
		if h.size != 0 {
			return fmt.Errorf("empty heap has size %v", h.size)
		}
		return nil
	}
	r := h.nodes.At(h.root)
	if r.hollow {
		return fmt.Errorf("root %v is hollow", h.root)
	}
	seen := map[Handle]bool{h.root: true}
	live := 1
	var walk func(parent Handle, bound K) error
	walk = func(parent Handle, bound K) error {
		cur := h.nodes.At(parent).child
		for cur != none {
			n := h.nodes.At(cur)
			if n.hollow {
				if !seen[cur] {
					seen[cur] = true
					if err := walk(cur, bound); err != nil {
						return err
					}
				}
			} else {
				if seen[cur] {
					return fmt.Errorf("live node %v is reachable more than once", cur)
				}
				if n.second != none {
					return fmt.Errorf("live node %v has a second parent", cur)
				}
				if n.key < bound {
					return fmt.Errorf("node %v: key %v is less than an ancestor's key %v", cur, n.key, bound)
				}
				seen[cur] = true
				live++
				if err := walk(cur, n.key); err != nil {
					return err
				}
			}
			if n.second == parent {
				break
			}
			cur = n.next
		}
		return nil
	}
	if err := walk(h.root, r.key); err != nil {
		return err
	}
	if live != h.size {
		return fmt.Errorf("found %v live nodes, want %v", live, h.size)
	}
	return nil
}
