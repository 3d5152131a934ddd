// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pointer

import "fmt"

func (h *Heap[K, V]) Verify() error {
	if h.root == nil {
		if h.size != 0 {
			return fmt.Errorf("empty heap has size %v", h.size)
		}
		return nil
	}
	if h.root.hollow {
		return fmt.Errorf("root is hollow")
	}
	if h.root.second != nil {
		return fmt.Errorf("root has a second parent")
	}
	seen := map[*Node[K, V]]bool{h.root: true}
	live := 1
	var walk func(parent *Node[K, V], bound K) error
	walk = func(parent *Node[K, V], bound K) error {
		for cur := parent.child; cur != nil; cur = cur.next {
			if cur.hollow {
				if !seen[cur] {
					seen[cur] = true
					if err := walk(cur, bound); err != nil {
						return err
					}
				}
			} else {
				if seen[cur] {
					return fmt.Errorf("live node %p is reachable more than once", cur)
				}
				if cur.second != nil {
					return fmt.Errorf("live node %p has a second parent", cur)
				}
				if cur.key < bound {
					return fmt.Errorf("key %v is less than an ancestor's key %v", cur.key, bound)
				}
				seen[cur] = true
				live++
				if err := walk(cur, cur.key); err != nil {
					return err
				}
			}
			if cur.second == parent {
				break
			}
		}
		return nil
	}
	if err := walk(h.root, h.root.key); err != nil {
		return err
	}
	if live != h.size {
		return fmt.Errorf("found %v live nodes, want %v", live, h.size)
	}
	return nil
}
