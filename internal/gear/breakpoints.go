package gear

import (
	"sort"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
)

// defaultTier is used when a level is below every known requirement
const defaultTier = 1

// Thresholds holds the distinct requirement values per melee skill, ascending
type Thresholds struct {
	Attack   []int
	Strength []int
	Defence  []int
}

// ComputeThresholds collects requirement tiers from every item, melee or not
func ComputeThresholds(items []osrs.Item) Thresholds {
	attack := make(map[int]struct{})
	strength := make(map[int]struct{})
	defence := make(map[int]struct{})

	for i := range items {
		reqs := items[i].Equipment.Requirements
		if reqs == nil {
			continue
		}
		if reqs.Attack != nil {
			attack[*reqs.Attack] = struct{}{}
		}
		if reqs.Strength != nil {
			strength[*reqs.Strength] = struct{}{}
		}
		if reqs.Defence != nil {
			defence[*reqs.Defence] = struct{}{}
		}
	}

	return Thresholds{
		Attack:   sortedKeys(attack),
		Strength: sortedKeys(strength),
		Defence:  sortedKeys(defence),
	}
}

// Quantize maps levels onto the highest tier each level already satisfies
func (t Thresholds) Quantize(levels osrs.Levels) osrs.Breakpoint {
	return osrs.Breakpoint{
		Attack:   quantize(t.Attack, levels.Attack),
		Strength: quantize(t.Strength, levels.Strength),
		Defence:  quantize(t.Defence, levels.Defence),
	}
}

func quantize(thresholds []int, value int) int {
	// first index with threshold > value
	i := sort.SearchInts(thresholds, value+1)
	if i == 0 {
		return defaultTier
	}
	return thresholds[i-1]
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
