package training

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-trainer/internal/engine/combat"
	"github.com/KirkDiggler/rpg-trainer/internal/engine/xptable"
	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
)

// tableSource serves fixed groups per slot, ignoring the breakpoint
type tableSource struct {
	groups map[osrs.Slot][]osrs.ItemGroup
}

func (t *tableSource) Quantize(levels osrs.Levels) osrs.Breakpoint {
	return osrs.Breakpoint{Attack: 1, Strength: 1, Defence: 1}
}

func (t *tableSource) GroupsFor(slot osrs.Slot, _ osrs.Breakpoint, dt osrs.DamageType, _ osrs.Style) []osrs.ItemGroup {
	if groups, ok := t.groups[slot]; ok {
		return groups
	}
	return []osrs.ItemGroup{osrs.EmptyGroup(slot, dt)}
}

func (t *tableSource) GroupName(osrs.ItemGroup) string {
	return "group"
}

type SuccessorsTestSuite struct {
	suite.Suite
	ctx    context.Context
	table  *xptable.Table
	source *tableSource
}

func TestSuccessorsSuite(t *testing.T) {
	suite.Run(t, new(SuccessorsTestSuite))
}

func group(slot osrs.Slot, id, offense, strength, cadence int) osrs.ItemGroup {
	return osrs.ItemGroup{
		ItemIDs:    []int{id},
		Slot:       slot,
		Offense:    offense,
		Strength:   strength,
		DamageType: osrs.DamageTypeSlash,
		Cadence:    cadence,
	}
}

func (s *SuccessorsTestSuite) SetupTest() {
	s.ctx = context.Background()

	table, err := xptable.New(xptable.DefaultCap)
	s.Require().NoError(err)
	s.table = table

	s.source = &tableSource{groups: map[osrs.Slot][]osrs.ItemGroup{
		osrs.SlotWeapon: {
			group(osrs.SlotWeapon, 1, 30, 20, 4),
			group(osrs.SlotWeapon, 2, 45, 10, 4),
			group(osrs.SlotWeapon, 3, 60, 70, 6),
			group(osrs.SlotWeapon, 4, 10, 90, 7),
		},
		osrs.SlotHead: {
			group(osrs.SlotHead, 10, 0, 3, 0),
			group(osrs.SlotHead, 11, 4, 0, 0),
			group(osrs.SlotHead, 12, 2, 2, 0),
		},
		osrs.SlotNeck: {
			group(osrs.SlotNeck, 20, 10, 10, 0),
			group(osrs.SlotNeck, 21, 15, 2, 0),
			group(osrs.SlotNeck, 22, 0, 16, 0),
		},
		osrs.SlotShield: {
			group(osrs.SlotShield, 30, 5, 0, 0),
			group(osrs.SlotShield, 31, 0, 5, 0),
		},
	}}
}

// bruteForce walks the full cross-product
func (s *SuccessorsTestSuite) bruteForce(levels osrs.Levels, style osrs.Style) float64 {
	skill, _ := style.TrainedSkill()
	needed, err := s.table.XPToNextLevel(levels.Get(skill))
	s.Require().NoError(err)

	best := math.Inf(1)
	var walk func(i, offense, strength, cadence int)
	walk = func(i, offense, strength, cadence int) {
		if i == len(osrs.EquipmentSlots) {
			if cadence == 0 {
				return
			}
			rate := combat.Attack{Levels: levels, Style: style, Offense: offense, Strength: strength, Cadence: cadence}.
				XPPerHourAgainst(combat.ReferenceOpponent)
			best = math.Min(best, float64(needed)/rate)
			return
		}
		slot := osrs.EquipmentSlots[i]
		for _, g := range s.source.GroupsFor(slot, osrs.Breakpoint{}, ProbeDamageType, style) {
			c := cadence
			if c == 0 {
				c = g.Cadence
			}
			walk(i+1, offense+g.Offense, strength+g.Strength, c)
		}
	}
	walk(0, 0, 0, 0)
	return best
}

func (s *SuccessorsTestSuite) TestFoldedProductMatchesBruteForce() {
	states := []osrs.Levels{
		{Attack: 1, Strength: 1, Defence: 1},
		{Attack: 30, Strength: 10, Defence: 5},
		{Attack: 60, Strength: 75, Defence: 40},
		{Attack: 98, Strength: 98, Defence: 98},
	}
	gen := NewGenerator(s.source, s.table, combat.ReferenceOpponent, osrs.Levels{Attack: 99, Strength: 99, Defence: 99})

	for _, levels := range states {
		edges, err := gen.Successors(s.ctx, osrs.LevelState{Levels: levels})
		s.Require().NoError(err)
		s.Require().Len(edges, 3)

		for _, edge := range edges {
			s.InDelta(s.bruteForce(levels, edge.To.Style), edge.Cost, 1e-9, "levels %s style %s", levels, edge.To.Style)
			s.Len(edge.To.Gear, len(osrs.EquipmentSlots))
			s.Equal(edge.Cost, edge.To.Hours)
		}
	}
}

func (s *SuccessorsTestSuite) TestSuccessorsAdvanceOneSkill() {
	from := osrs.Levels{Attack: 20, Strength: 30, Defence: 40}
	gen := NewGenerator(s.source, s.table, combat.ReferenceOpponent, osrs.Levels{Attack: 50, Strength: 50, Defence: 50})

	edges, err := gen.Successors(s.ctx, osrs.LevelState{Levels: from})
	s.Require().NoError(err)
	s.Require().Len(edges, 3)

	for _, edge := range edges {
		skill, ok := edge.To.Style.TrainedSkill()
		s.Require().True(ok)
		s.Equal(from.Get(skill)+1, edge.To.Levels.Get(skill))
		s.Equal(from, edge.To.Levels.With(skill, from.Get(skill)))
		s.Greater(edge.Cost, 0.0)
	}
}

func (s *SuccessorsTestSuite) TestSuccessorsRespectGoalAndCap() {
	testCases := []struct {
		name   string
		from   osrs.Levels
		goal   osrs.Levels
		styles []osrs.Style
	}{
		{
			name:   "goal reached in two skills",
			from:   osrs.Levels{Attack: 10, Strength: 5, Defence: 5},
			goal:   osrs.Levels{Attack: 20, Strength: 5, Defence: 5},
			styles: []osrs.Style{osrs.StyleAccurate},
		},
		{
			name:   "at cap",
			from:   osrs.Levels{Attack: 99, Strength: 99, Defence: 98},
			goal:   osrs.Levels{Attack: 99, Strength: 99, Defence: 99},
			styles: []osrs.Style{osrs.StyleDefensive},
		},
		{
			name: "past goal",
			from: osrs.Levels{Attack: 30, Strength: 30, Defence: 30},
			goal: osrs.Levels{Attack: 20, Strength: 20, Defence: 20},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			gen := NewGenerator(s.source, s.table, combat.ReferenceOpponent, tc.goal)
			edges, err := gen.Successors(s.ctx, osrs.LevelState{Levels: tc.from})
			s.Require().NoError(err)

			var styles []osrs.Style
			for _, edge := range edges {
				styles = append(styles, edge.To.Style)
			}
			s.Equal(tc.styles, styles)
		})
	}
}

func (s *SuccessorsTestSuite) TestNoCadenceIsFatal() {
	delete(s.source.groups, osrs.SlotWeapon)
	gen := NewGenerator(s.source, s.table, combat.ReferenceOpponent, osrs.Levels{Attack: 10, Strength: 10, Defence: 10})

	edges, err := gen.Successors(s.ctx, osrs.LevelState{Levels: osrs.Levels{Attack: 1, Strength: 1, Defence: 1}})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("1/1/1", errors.GetMeta(err)["breakpoint"])
	s.Nil(edges)
}

func (s *SuccessorsTestSuite) TestParetoByCadence() {
	kept := paretoByCadence([]partial{
		{offense: 10, strength: 10, cadence: 4},
		{offense: 5, strength: 5, cadence: 4},
		{offense: 5, strength: 20, cadence: 4},
		{offense: 10, strength: 10, cadence: 4},
		{offense: 1, strength: 1, cadence: 6},
		{offense: 20, strength: 0, cadence: 0},
	})

	type point struct{ offense, strength, cadence int }
	var got []point
	for _, p := range kept {
		got = append(got, point{p.offense, p.strength, p.cadence})
	}
	s.Equal([]point{
		{20, 0, 0},
		{10, 10, 4},
		{5, 20, 4},
		{1, 1, 6},
	}, got)
}

func (s *SuccessorsTestSuite) TestClampHours() {
	s.Equal(UnreachableHours, clampHours(math.Inf(1)))
	s.Equal(UnreachableHours, clampHours(math.NaN()))
	s.Equal(2.5, clampHours(2.5))
}
