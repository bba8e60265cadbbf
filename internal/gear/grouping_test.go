package gear_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/gear"
	"github.com/KirkDiggler/rpg-trainer/internal/testutils/builders"
)

type GroupingTestSuite struct {
	suite.Suite
}

func TestGroupingSuite(t *testing.T) {
	suite.Run(t, new(GroupingTestSuite))
}

func (s *GroupingTestSuite) TestDecomposeWeaponFollowsStances() {
	scim := builders.NewItemBuilder(1333, "Rune scimitar", osrs.SlotWeapon).
		WithStab(7).WithSlash(45).WithCrush(-2).WithStrength(44).
		WithStances(
			osrs.Stance{CombatStyle: "chop", DamageType: osrs.DamageTypeSlash, Style: osrs.StyleAccurate},
			osrs.Stance{CombatStyle: "slash", DamageType: osrs.DamageTypeSlash, Style: osrs.StyleAggressive},
			osrs.Stance{CombatStyle: "lunge", DamageType: osrs.DamageTypeStab, Style: osrs.StyleControlled},
			osrs.Stance{CombatStyle: "block", DamageType: osrs.DamageTypeSlash, Style: osrs.StyleDefensive},
		).
		Build()

	variants := gear.Decompose(&scim)
	s.Require().Len(variants, 3)
	for _, v := range variants {
		s.Equal(osrs.DamageTypeSlash, v.DamageType)
		s.Equal(45, v.Offense)
		s.Equal(44, v.Strength)
		s.Equal(4, v.Cadence)
		s.NotEmpty(v.Style)
	}
}

func (s *GroupingTestSuite) TestDecomposeArmourStripsStyle() {
	helm := builders.NewItemBuilder(1163, "Rune full helm", osrs.SlotHead).
		WithStab(0).WithSlash(0).WithCrush(0).WithStrength(0).
		Build()

	variants := gear.Decompose(&helm)
	s.Require().Len(variants, 3)
	for _, v := range variants {
		s.Empty(v.Style)
		s.Zero(v.Cadence)
	}
}

func (s *GroupingTestSuite) TestDecomposeDropsNegativeBonus() {
	plate := builders.NewItemBuilder(1127, "Rune platebody", osrs.SlotBody).
		WithSlash(-1).WithStab(2).WithCrush(-3).WithStrength(0).
		Build()

	variants := gear.Decompose(&plate)
	s.Require().Len(variants, 1)
	s.Equal(osrs.DamageTypeStab, variants[0].DamageType)
}

func (s *GroupingTestSuite) TestGroupMergesIdenticalBonuses() {
	items := []osrs.Item{
		builders.NewItemBuilder(2, "Amulet of strength (t)", osrs.SlotNeck).WithStrength(10).Build(),
		builders.NewItemBuilder(1, "Amulet of strength", osrs.SlotNeck).WithStrength(10).Build(),
		builders.NewItemBuilder(3, "Amulet of power", osrs.SlotNeck).WithSlash(6).WithStrength(6).Build(),
	}

	var variants []gear.Variant
	for i := range items {
		variants = append(variants, gear.Decompose(&items[i])...)
	}

	groups := gear.Group(variants)
	var slash []osrs.ItemGroup
	for _, g := range groups {
		if g.DamageType == osrs.DamageTypeSlash {
			slash = append(slash, g)
		}
	}

	s.Require().Len(slash, 2)
	s.Equal([]int{1, 2}, slash[0].ItemIDs)
	s.Equal(0, slash[0].Offense)
	s.Equal(10, slash[0].Strength)
	s.Equal([]int{3}, slash[1].ItemIDs)
}

func (s *GroupingTestSuite) TestGroupIdempotent() {
	items := []osrs.Item{
		builders.NewItemBuilder(10, "a", osrs.SlotWeapon).WithSlash(10).WithStrength(5).AsWeapon(4, osrs.DamageTypeSlash).Build(),
		builders.NewItemBuilder(11, "b", osrs.SlotWeapon).WithSlash(10).WithStrength(5).AsWeapon(4, osrs.DamageTypeSlash).Build(),
		builders.NewItemBuilder(12, "c", osrs.SlotWeapon).WithSlash(10).WithStrength(5).AsWeapon(5, osrs.DamageTypeSlash).Build(),
		builders.NewItemBuilder(13, "d", osrs.SlotWeapon).WithCrush(8).WithStrength(9).AsWeapon(6, osrs.DamageTypeCrush).Build(),
	}

	var variants []gear.Variant
	for i := range items {
		variants = append(variants, gear.Decompose(&items[i])...)
	}

	once := gear.Group(variants)
	twice := gear.Group(gear.Flatten(once))
	s.Equal(once, twice)
}

func (s *GroupingTestSuite) TestPruneDominated() {
	groups := []osrs.ItemGroup{
		{ItemIDs: []int{1}, Offense: 10, Strength: 5, DamageType: osrs.DamageTypeSlash, Cadence: 4},
		{ItemIDs: []int{2}, Offense: 20, Strength: 15, DamageType: osrs.DamageTypeSlash, Cadence: 4},
		{ItemIDs: []int{3}, Offense: 30, Strength: 2, DamageType: osrs.DamageTypeSlash, Cadence: 4},
		{ItemIDs: []int{4}, Offense: 15, Strength: 40, DamageType: osrs.DamageTypeSlash, Cadence: 6},
		{ItemIDs: []int{5}, Offense: 5, Strength: 5, DamageType: osrs.DamageTypeSlash, Cadence: 6},
		{ItemIDs: []int{6}, Offense: 1, Strength: 1, DamageType: osrs.DamageTypeSlash},
	}

	pruned := gear.PruneDominated(groups)

	ids := make([]int, 0, len(pruned))
	for _, g := range pruned {
		ids = append(ids, g.ItemIDs[0])
	}
	s.Equal([]int{6, 3, 2, 4}, ids)

	for i, a := range pruned {
		for j, b := range pruned {
			if i == j || a.Cadence != b.Cadence {
				continue
			}
			s.False(a.Dominates(b), "%v dominates %v", a.ItemIDs, b.ItemIDs)
		}
	}
}

func (s *GroupingTestSuite) TestPruneKeepsSlowHeavyHitter() {
	fast := osrs.ItemGroup{ItemIDs: []int{1}, Offense: 50, Strength: 50, DamageType: osrs.DamageTypeSlash, Cadence: 4}
	slow := osrs.ItemGroup{ItemIDs: []int{2}, Offense: 10, Strength: 10, DamageType: osrs.DamageTypeSlash, Cadence: 7}

	s.Len(gear.PruneDominated([]osrs.ItemGroup{fast, slow}), 2)
}

func (s *GroupingTestSuite) TestPruneEmpty() {
	s.Empty(gear.PruneDominated(nil))
}
