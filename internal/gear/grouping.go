package gear

import (
	"sort"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
)

// Variant is one item viewed through a single (damage type, style)
type Variant struct {
	ItemID     int
	Slot       osrs.Slot
	Offense    int
	Strength   int
	DamageType osrs.DamageType
	Style      osrs.Style
	Cadence    int
}

// Decompose expands an item into its per-(damage type, style) variants.
// Weapons only yield variants their stances support. Style is kept only in
// the weapon slot, so armour collapses to one variant per damage type.
// Variants with a negative bonus are dropped.
func Decompose(item *osrs.Item) []Variant {
	var out []Variant
	for _, style := range osrs.TrainingStyles {
		for _, damageType := range osrs.MeleeDamageTypes {
			v, ok := decomposeOne(item, damageType, style)
			if !ok || v.Offense < 0 || v.Strength < 0 {
				continue
			}
			if item.Equipment.Slot != osrs.SlotWeapon && containsVariant(out, v) {
				continue
			}
			out = append(out, v)
		}
	}
	return out
}

func decomposeOne(item *osrs.Item, damageType osrs.DamageType, style osrs.Style) (Variant, bool) {
	offense, ok := item.Offense(damageType)
	if !ok {
		return Variant{}, false
	}

	v := Variant{
		ItemID:     item.ID,
		Slot:       item.Equipment.Slot,
		Offense:    offense,
		Strength:   item.Equipment.MeleeStrength,
		DamageType: damageType,
	}

	if item.Weapon != nil {
		if !item.Weapon.HasStance(damageType, style) {
			return Variant{}, false
		}
		v.Cadence = item.Weapon.AttackSpeed
	}
	if item.Equipment.Slot == osrs.SlotWeapon {
		v.Style = style
	}

	return v, true
}

func containsVariant(vs []Variant, v Variant) bool {
	for _, existing := range vs {
		if existing == v {
			return true
		}
	}
	return false
}

type groupKey struct {
	offense    int
	strength   int
	damageType osrs.DamageType
	slot       osrs.Slot
	style      osrs.Style
	cadence    int
}

func (v Variant) key() groupKey {
	return groupKey{v.Offense, v.Strength, v.DamageType, v.Slot, v.Style, v.Cadence}
}

func (k groupKey) less(o groupKey) bool {
	switch {
	case k.offense != o.offense:
		return k.offense < o.offense
	case k.strength != o.strength:
		return k.strength < o.strength
	case k.damageType != o.damageType:
		return k.damageType < o.damageType
	case k.slot != o.slot:
		return k.slot < o.slot
	case k.style != o.style:
		return k.style < o.style
	default:
		return k.cadence < o.cadence
	}
}

// Group merges variants with identical combat keys into item groups.
// Output is sorted by (offense, strength, damage type, slot, style, cadence).
func Group(variants []Variant) []osrs.ItemGroup {
	sorted := make([]Variant, len(variants))
	copy(sorted, variants)
	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := sorted[i].key(), sorted[j].key()
		if ki == kj {
			return sorted[i].ItemID < sorted[j].ItemID
		}
		return ki.less(kj)
	})

	var groups []osrs.ItemGroup
	for i, v := range sorted {
		if i > 0 && sorted[i-1].key() == v.key() {
			last := &groups[len(groups)-1]
			if last.ItemIDs[len(last.ItemIDs)-1] != v.ItemID {
				last.ItemIDs = append(last.ItemIDs, v.ItemID)
			}
			continue
		}
		groups = append(groups, osrs.ItemGroup{
			ItemIDs:    []int{v.ItemID},
			Slot:       v.Slot,
			Offense:    v.Offense,
			Strength:   v.Strength,
			DamageType: v.DamageType,
			Style:      v.Style,
			Cadence:    v.Cadence,
		})
	}
	return groups
}

// Flatten turns groups back into one variant per member item
func Flatten(groups []osrs.ItemGroup) []Variant {
	var out []Variant
	for _, g := range groups {
		for _, id := range g.ItemIDs {
			out = append(out, Variant{
				ItemID:     id,
				Slot:       g.Slot,
				Offense:    g.Offense,
				Strength:   g.Strength,
				DamageType: g.DamageType,
				Style:      g.Style,
				Cadence:    g.Cadence,
			})
		}
	}
	return out
}

// cadenceBucket places groups without a cadence alongside speed 1 weapons
func cadenceBucket(g osrs.ItemGroup) int {
	if g.Cadence == 0 {
		return 1
	}
	return g.Cadence
}

// PruneDominated keeps the per-cadence Pareto frontier over (offense, strength).
// Output is ordered by cadence ascending, best first within a cadence.
func PruneDominated(groups []osrs.ItemGroup) []osrs.ItemGroup {
	sorted := make([]osrs.ItemGroup, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch {
		case a.DamageType != b.DamageType:
			return a.DamageType > b.DamageType
		case a.Offense != b.Offense:
			return a.Offense > b.Offense
		default:
			return a.Strength > b.Strength
		}
	})

	kept := make(map[int][]osrs.ItemGroup)
	for _, g := range sorted {
		bucket := cadenceBucket(g)
		frontier := kept[bucket]

		dominated := false
		for _, k := range frontier {
			if k.Dominates(g) {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}

		next := frontier[:0]
		for _, k := range frontier {
			if !g.Dominates(k) {
				next = append(next, k)
			}
		}
		kept[bucket] = append(next, g)
	}

	cadences := make([]int, 0, len(kept))
	for c := range kept {
		cadences = append(cadences, c)
	}
	sort.Ints(cadences)

	var out []osrs.ItemGroup
	for _, c := range cadences {
		out = append(out, kept[c]...)
	}
	return out
}
