// Package search provides a generic non-negative shortest path search.
//
// The queue is a container/heap min-heap with lazy decrease-key: improved
// distances push a new entry and stale entries are skipped on pop. Ties on
// distance are broken by discovery order.
package search

import (
	"container/heap"
	"context"
	"fmt"
	"math"
)

// ShortestPath finds the minimum cost path from p.Start to any node that
// satisfies p.IsGoal. An unreachable goal is reported through Result.Found,
// not as an error.
func ShortestPath[N any, K comparable](ctx context.Context, p Problem[N, K], opts ...Option) (Result[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if p.Key == nil {
		return Result[N]{}, ErrNilKey
	}
	if p.IsGoal == nil {
		return Result[N]{}, ErrNilGoal
	}
	if p.Successors == nil {
		return Result[N]{}, ErrNilSuccessors
	}

	r := &runner[N, K]{
		problem: p,
		options: cfg,
		dist:    make(map[K]float64),
		prev:    make(map[K]K),
		nodes:   make(map[K]N),
		visited: make(map[K]bool),
	}
	return r.run(ctx)
}

type runner[N any, K comparable] struct {
	problem Problem[N, K]
	options Options
	dist    map[K]float64
	prev    map[K]K
	nodes   map[K]N
	visited map[K]bool
	pq      nodePQ[K]
	seq     int
}

func (r *runner[N, K]) run(ctx context.Context) (Result[N], error) {
	start := r.problem.Key(r.problem.Start)
	r.dist[start] = 0
	r.nodes[start] = r.problem.Start
	heap.Init(&r.pq)
	r.push(start, 0)

	expanded := 0
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Result[N]{Expanded: expanded}, err
		}

		item := heap.Pop(&r.pq).(*nodeItem[K])
		u := item.key
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}
		r.visited[u] = true

		node := r.nodes[u]
		if r.problem.IsGoal(node) {
			return Result[N]{
				Path:     r.path(u),
				Cost:     r.dist[u],
				Found:    true,
				Expanded: expanded,
			}, nil
		}

		if r.options.MaxExpansions > 0 && expanded >= r.options.MaxExpansions {
			return Result[N]{Expanded: expanded}, ErrBudgetExceeded
		}
		expanded++

		if err := r.relax(ctx, u, node); err != nil {
			return Result[N]{Expanded: expanded}, err
		}
	}

	return Result[N]{Expanded: expanded}, nil
}

func (r *runner[N, K]) relax(ctx context.Context, u K, node N) error {
	edges, err := r.problem.Successors(ctx, node)
	if err != nil {
		return err
	}

	for _, e := range edges {
		if math.IsNaN(e.Cost) || e.Cost < 0 {
			return fmt.Errorf("%w: got %v", ErrInvalidCost, e.Cost)
		}

		v := r.problem.Key(e.To)
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + e.Cost
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		r.nodes[v] = e.To
		r.push(v, newDist)
	}

	return nil
}

func (r *runner[N, K]) push(key K, dist float64) {
	heap.Push(&r.pq, &nodeItem[K]{key: key, dist: dist, seq: r.seq})
	r.seq++
}

func (r *runner[N, K]) path(goal K) []N {
	start := r.problem.Key(r.problem.Start)

	var reversed []N
	for k := goal; ; k = r.prev[k] {
		reversed = append(reversed, r.nodes[k])
		if k == start {
			break
		}
	}

	path := make([]N, len(reversed))
	for i, n := range reversed {
		path[len(reversed)-1-i] = n
	}
	return path
}

type nodeItem[K comparable] struct {
	key  K
	dist float64
	seq  int
}

type nodePQ[K comparable] []*nodeItem[K]

func (pq nodePQ[K]) Len() int { return len(pq) }

func (pq nodePQ[K]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[K]) Push(x any) { *pq = append(*pq, x.(*nodeItem[K])) }

func (pq *nodePQ[K]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
