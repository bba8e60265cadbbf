package search_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-trainer/internal/search"
)

type SearchTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *SearchTestSuite) SetupTest() {
	s.ctx = context.Background()
}

type graph map[string][]search.Edge[string]

func (g graph) problem(start, goal string) search.Problem[string, string] {
	return search.Problem[string, string]{
		Start:  start,
		Key:    func(n string) string { return n },
		IsGoal: func(n string) bool { return n == goal },
		Successors: func(_ context.Context, n string) ([]search.Edge[string], error) {
			return g[n], nil
		},
	}
}

func (s *SearchTestSuite) TestFindsCheapestPath() {
	g := graph{
		"a": {{To: "b", Cost: 1}, {To: "c", Cost: 4}},
		"b": {{To: "c", Cost: 1}, {To: "d", Cost: 5}},
		"c": {{To: "d", Cost: 1}},
	}

	res, err := search.ShortestPath(s.ctx, g.problem("a", "d"))
	s.Require().NoError(err)
	s.True(res.Found)
	s.Equal([]string{"a", "b", "c", "d"}, res.Path)
	s.InDelta(3.0, res.Cost, 1e-9)
}

func (s *SearchTestSuite) TestStartIsGoal() {
	res, err := search.ShortestPath(s.ctx, graph{}.problem("a", "a"))
	s.Require().NoError(err)
	s.True(res.Found)
	s.Equal([]string{"a"}, res.Path)
	s.Zero(res.Cost)
	s.Zero(res.Expanded)
}

func (s *SearchTestSuite) TestUnreachableGoal() {
	g := graph{
		"a": {{To: "b", Cost: 1}},
		"b": {{To: "a", Cost: 1}},
	}

	res, err := search.ShortestPath(s.ctx, g.problem("a", "z"))
	s.Require().NoError(err)
	s.False(res.Found)
	s.Nil(res.Path)
	s.Equal(2, res.Expanded)
}

func (s *SearchTestSuite) TestZeroCostEdges() {
	g := graph{
		"a": {{To: "b", Cost: 0}},
		"b": {{To: "c", Cost: 0}},
	}

	res, err := search.ShortestPath(s.ctx, g.problem("a", "c"))
	s.Require().NoError(err)
	s.True(res.Found)
	s.Equal([]string{"a", "b", "c"}, res.Path)
}

func (s *SearchTestSuite) TestKeepsPayloadOfBestEdge() {
	type node struct {
		id  int
		tag string
	}

	p := search.Problem[node, int]{
		Start:  node{id: 0},
		Key:    func(n node) int { return n.id },
		IsGoal: func(n node) bool { return n.id == 1 },
		Successors: func(_ context.Context, n node) ([]search.Edge[node], error) {
			if n.id != 0 {
				return nil, nil
			}
			return []search.Edge[node]{
				{To: node{id: 1, tag: "slow"}, Cost: 5},
				{To: node{id: 1, tag: "fast"}, Cost: 2},
				{To: node{id: 1, tag: "tie"}, Cost: 2},
			}, nil
		},
	}

	res, err := search.ShortestPath(s.ctx, p)
	s.Require().NoError(err)
	s.Require().Len(res.Path, 2)
	s.Equal("fast", res.Path[1].tag)
}

func (s *SearchTestSuite) TestValidation() {
	testCases := []struct {
		name    string
		mutate  func(p *search.Problem[string, string])
		wantErr error
	}{
		{
			name:    "nil key",
			mutate:  func(p *search.Problem[string, string]) { p.Key = nil },
			wantErr: search.ErrNilKey,
		},
		{
			name:    "nil goal",
			mutate:  func(p *search.Problem[string, string]) { p.IsGoal = nil },
			wantErr: search.ErrNilGoal,
		},
		{
			name:    "nil successors",
			mutate:  func(p *search.Problem[string, string]) { p.Successors = nil },
			wantErr: search.ErrNilSuccessors,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p := graph{}.problem("a", "b")
			tc.mutate(&p)

			_, err := search.ShortestPath(s.ctx, p)
			s.ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *SearchTestSuite) TestInvalidCost() {
	for _, cost := range []float64{-1, math.NaN()} {
		g := graph{"a": {{To: "b", Cost: cost}}}

		_, err := search.ShortestPath(s.ctx, g.problem("a", "b"))
		s.ErrorIs(err, search.ErrInvalidCost)
	}
}

func (s *SearchTestSuite) TestSuccessorError() {
	boom := errors.New("boom")
	p := graph{}.problem("a", "b")
	p.Successors = func(context.Context, string) ([]search.Edge[string], error) {
		return nil, boom
	}

	_, err := search.ShortestPath(s.ctx, p)
	s.ErrorIs(err, boom)
}

func (s *SearchTestSuite) TestExpansionBudget() {
	g := graph{
		"a": {{To: "b", Cost: 1}},
		"b": {{To: "c", Cost: 1}},
		"c": {{To: "d", Cost: 1}},
	}

	res, err := search.ShortestPath(s.ctx, g.problem("a", "d"), search.WithMaxExpansions(2))
	s.ErrorIs(err, search.ErrBudgetExceeded)
	s.Equal(2, res.Expanded)

	res, err = search.ShortestPath(s.ctx, g.problem("a", "d"), search.WithMaxExpansions(3))
	s.Require().NoError(err)
	s.True(res.Found)
}

func (s *SearchTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := search.ShortestPath(ctx, graph{}.problem("a", "b"))
	s.ErrorIs(err, context.Canceled)
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchTestSuite))
}
