// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"math"
	"math/rand"

	"cloudeng.io/hollowheap"
)

// Infinity is the distance reported for unreachable vertices.
const Infinity = math.MaxInt

// Edge represents a weighted, directed, edge.
type Edge struct {
	To, Weight int
}

// Graph represents a directed graph as adjacency lists.
type Graph struct {
	Out [][]Edge
}

// NewGraph returns a graph with n vertices and no edges.
func NewGraph(n int) *Graph {
	return &Graph{Out: make([][]Edge, n)}
}

// AddEdge adds an edge from u to v with weight w.
func (g *Graph) AddEdge(u, v, w int) {
	g.Out[u] = append(g.Out[u], Edge{To: v, Weight: w})
}

// Vertices returns the number of vertices.
func (g *Graph) Vertices() int {
	return len(g.Out)
}

// Edges returns the number of edges.
func (g *Graph) Edges() int {
	n := 0
	for _, e := range g.Out {
		n += len(e)
	}
	return n
}

// RandomGraph returns a graph with n vertices and m randomly chosen edges
// with weights in [1, maxWeight]. The first n-1 edges form a path from
// vertex 0 through all vertices so that, for m >= n-1, every vertex is
// reachable from vertex 0.
func RandomGraph(rnd *rand.Rand, n, m, maxWeight int) *Graph {
	g := NewGraph(n)
	if n == 0 {
		return g
	}
	for v := 1; v < n && m > 0; v++ {
		g.AddEdge(v-1, v, rnd.Intn(maxWeight)+1)
		m--
	}
	for ; m > 0; m-- {
		g.AddEdge(rnd.Intn(n), rnd.Intn(n), rnd.Intn(maxWeight)+1)
	}
	return g
}

// SparseGraph returns a random graph with n vertices and n log n edges.
func SparseGraph(rnd *rand.Rand, n, maxWeight int) *Graph {
	return RandomGraph(rnd, n, int(float64(n)*math.Log(float64(max(n, 1)))), maxWeight)
}

// DenseGraph returns a random graph with n vertices and n^1.75 edges.
func DenseGraph(rnd *rand.Rand, n, maxWeight int) *Graph {
	return RandomGraph(rnd, n, int(math.Pow(float64(n), 1.75)), maxWeight)
}

// Dijkstra computes the single source shortest path distances from src
// using q as the priority queue. Every vertex is pushed with a distance of
// Infinity, other than src, and distances are lowered using DecreaseKey.
func Dijkstra[H comparable](q hollowheap.Queue[int, int, H], g *Graph, src int) ([]int, error) {
	n := g.Vertices()
	dist := make([]int, n)
	handles := make([]H, n)
	done := make([]bool, n)
	for v := range dist {
		dist[v] = Infinity
	}
	dist[src] = 0
	for v := range dist {
		handles[v] = q.Push(dist[v], v)
	}
	for !q.Empty() {
		u, _ := q.FindMin()
		q.DeleteMin()
		done[u] = true
		if dist[u] == Infinity {
			continue
		}
		for _, e := range g.Out[u] {
			if done[e.To] {
				continue
			}
			d := dist[u] + e.Weight
			if d >= dist[e.To] {
				continue
			}
			dist[e.To] = d
			h, err := q.DecreaseKey(handles[e.To], d)
			if err != nil {
				return nil, fmt.Errorf("relaxing edge %v->%v: %w", u, e.To, err)
			}
			handles[e.To] = h
		}
	}
	return dist, nil
}

// BellmanFord computes the single source shortest path distances from
// src without using a priority queue.
func BellmanFord(g *Graph, src int) []int {
	n := g.Vertices()
	dist := make([]int, n)
	for v := range dist {
		dist[v] = Infinity
	}
	dist[src] = 0
	for i := 0; i < n; i++ {
		changed := false
		for u, edges := range g.Out {
			if dist[u] == Infinity {
				continue
			}
			for _, e := range edges {
				if d := dist[u] + e.Weight; d < dist[e.To] {
					dist[e.To] = d
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return dist
}
