package training

import (
	"context"
	"math"
	"sort"

	"github.com/KirkDiggler/rpg-trainer/internal/engine/combat"
	"github.com/KirkDiggler/rpg-trainer/internal/engine/xptable"
	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
	"github.com/KirkDiggler/rpg-trainer/internal/search"
)

// UnreachableHours replaces infinite or NaN step costs so the search can still order them
const UnreachableHours = 1e12

// ProbeDamageType is the only damage type considered when choosing gear
const ProbeDamageType = osrs.DamageTypeSlash

// GearSource serves pruned equipment groups per slot and breakpoint
type GearSource interface {
	Quantize(levels osrs.Levels) osrs.Breakpoint
	GroupsFor(slot osrs.Slot, bp osrs.Breakpoint, damageType osrs.DamageType, style osrs.Style) []osrs.ItemGroup
	GroupName(group osrs.ItemGroup) string
}

// Generator expands a level state into its one-level-up successors, each
// weighted by the hours the best loadout needs to gain that level.
type Generator struct {
	gear     GearSource
	xpTable  *xptable.Table
	opponent combat.Opponent
	goal     osrs.Levels
}

// NewGenerator creates a generator bounded by goal and the table's cap
func NewGenerator(gear GearSource, xpTable *xptable.Table, opponent combat.Opponent, goal osrs.Levels) *Generator {
	return &Generator{
		gear:     gear,
		xpTable:  xpTable,
		opponent: opponent,
		goal:     goal,
	}
}

// Successors returns one edge per training style that may still advance
func (g *Generator) Successors(ctx context.Context, state osrs.LevelState) ([]search.Edge[osrs.LevelState], error) {
	var edges []search.Edge[osrs.LevelState]
	bp := g.gear.Quantize(state.Levels)

	for _, style := range osrs.TrainingStyles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		skill, ok := style.TrainedSkill()
		if !ok {
			continue
		}

		current := state.Levels.Get(skill)
		next := current + 1
		if next > g.xpTable.Cap() || next > g.goal.Get(skill) {
			continue
		}

		best, err := g.bestLoadout(state.Levels, bp, style, skill)
		if err != nil {
			return nil, err
		}

		edges = append(edges, search.Edge[osrs.LevelState]{
			To: osrs.LevelState{
				Levels: state.Levels.With(skill, next),
				Style:  style,
				Gear:   best.gear,
				Hours:  best.hours,
			},
			Cost: best.hours,
		})
	}

	return edges, nil
}

type candidate struct {
	gear  osrs.Loadout
	hours float64
}

func (g *Generator) bestLoadout(levels osrs.Levels, bp osrs.Breakpoint, style osrs.Style, skill osrs.Skill) (candidate, error) {
	needed, err := g.xpTable.XPToNextLevel(levels.Get(skill))
	if err != nil {
		return candidate{}, err
	}

	best := candidate{hours: math.Inf(1)}
	found := false
	for _, p := range g.combinations(bp, style) {
		if p.cadence == 0 {
			continue
		}

		rate := combat.Attack{
			Levels:   levels,
			Style:    style,
			Offense:  p.offense,
			Strength: p.strength,
			Cadence:  p.cadence,
		}.XPPerHourAgainst(g.opponent)

		hours := clampHours(float64(needed) / rate)
		if !found || hours < best.hours {
			best = candidate{gear: p.gear, hours: hours}
			found = true
		}
	}

	if !found {
		return candidate{}, errors.FailedPreconditionf("no usable weapon for style %s at breakpoint %s", style, bp).
			WithMeta("breakpoint", bp.String()).
			WithMeta("style", string(style))
	}
	return best, nil
}

func clampHours(hours float64) float64 {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours > UnreachableHours {
		return UnreachableHours
	}
	return hours
}

// partial is a loadout built over a prefix of the slots
type partial struct {
	offense  int
	strength int
	cadence  int
	gear     osrs.Loadout
}

// combinations folds the per-slot groups into complete loadouts. After each
// slot, partials dominated by another with the same cadence are dropped: for a
// fixed cadence hours never increase with offense or strength, so the minimum
// over the full cross-product survives.
func (g *Generator) combinations(bp osrs.Breakpoint, style osrs.Style) []partial {
	partials := []partial{{}}

	for _, slot := range osrs.EquipmentSlots {
		groups := g.gear.GroupsFor(slot, bp, ProbeDamageType, style)

		next := make([]partial, 0, len(partials)*len(groups))
		for _, p := range partials {
			for _, group := range groups {
				cadence := p.cadence
				if cadence == 0 {
					cadence = group.Cadence
				}

				gear := make(osrs.Loadout, len(p.gear), len(p.gear)+1)
				copy(gear, p.gear)

				next = append(next, partial{
					offense:  p.offense + group.Offense,
					strength: p.strength + group.Strength,
					cadence:  cadence,
					gear:     append(gear, group),
				})
			}
		}

		partials = paretoByCadence(next)
	}

	return partials
}

// paretoByCadence keeps the non-dominated partials of every cadence,
// preferring the earliest of exact ties.
func paretoByCadence(partials []partial) []partial {
	sort.SliceStable(partials, func(i, j int) bool {
		a, b := partials[i], partials[j]
		if a.cadence != b.cadence {
			return a.cadence < b.cadence
		}
		if a.offense != b.offense {
			return a.offense > b.offense
		}
		return a.strength > b.strength
	})

	// within a cadence kept strengths strictly increase, so the last kept
	// partial is the only one that can dominate the next
	kept := partials[:0]
	for _, p := range partials {
		if n := len(kept); n > 0 && kept[n-1].cadence == p.cadence && kept[n-1].strength >= p.strength {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
