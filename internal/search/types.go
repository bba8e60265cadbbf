package search

import (
	"context"
	"errors"
)

// Sentinel errors returned by ShortestPath
var (
	// ErrNilKey indicates the problem has no key function
	ErrNilKey = errors.New("search: key function is nil")

	// ErrNilGoal indicates the problem has no goal test
	ErrNilGoal = errors.New("search: goal test is nil")

	// ErrNilSuccessors indicates the problem has no successor function
	ErrNilSuccessors = errors.New("search: successor function is nil")

	// ErrInvalidCost indicates an edge with a negative or NaN cost
	ErrInvalidCost = errors.New("search: edge cost must be a non-negative number")

	// ErrBudgetExceeded indicates the expansion budget ran out before the goal
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")
)

// Edge leads to a successor node at a cost
type Edge[N any] struct {
	To   N
	Cost float64
}

// Problem describes a shortest path query. Nodes are identified by Key;
// the node value itself may carry payload that takes no part in identity.
type Problem[N any, K comparable] struct {
	Start      N
	Key        func(N) K
	IsGoal     func(N) bool
	Successors func(ctx context.Context, node N) ([]Edge[N], error)
}

// Result is the outcome of a search
type Result[N any] struct {
	// Path runs from start to goal inclusive, nil when not found
	Path []N
	// Cost is the sum of edge costs along Path
	Cost float64
	// Found is false when the goal is unreachable
	Found bool
	// Expanded counts nodes whose successors were generated
	Expanded int
}

// Options configures a search
type Options struct {
	// MaxExpansions bounds the number of expanded nodes, 0 means unlimited
	MaxExpansions int
}

// Option mutates Options
type Option func(*Options)

// DefaultOptions returns options with no expansion budget
func DefaultOptions() Options {
	return Options{}
}

// WithMaxExpansions bounds the number of expanded nodes
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		o.MaxExpansions = n
	}
}
