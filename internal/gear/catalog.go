package gear

import (
	"sort"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
)

type profileKey struct {
	name      string
	equipment equipmentProfile
}

// equipmentProfile is the comparable part of osrs.Equipment plus flattened requirements
type equipmentProfile struct {
	bonuses [14]int
	slot    osrs.Slot
	reqs    [7]int
	reqSet  [7]bool
}

func profileOf(item *osrs.Item) profileKey {
	e := item.Equipment
	p := equipmentProfile{
		bonuses: [14]int{
			e.AttackStab, e.AttackSlash, e.AttackCrush, e.AttackMagic, e.AttackRanged,
			e.DefenceStab, e.DefenceSlash, e.DefenceCrush, e.DefenceMagic, e.DefenceRanged,
			e.MeleeStrength, e.RangedStrength, e.MagicDamage, e.Prayer,
		},
		slot: e.Slot,
	}
	if r := e.Requirements; r != nil {
		for i, v := range []*int{r.Attack, r.Strength, r.Defence, r.Hitpoints, r.Prayer, r.Ranged, r.Magic} {
			if v != nil {
				p.reqs[i] = *v
				p.reqSet[i] = true
			}
		}
	}
	return profileKey{name: item.Name, equipment: p}
}

// Normalize keeps melee gear and collapses items sharing a name and
// equipment profile onto the lowest id. Output is sorted by id.
func Normalize(items []osrs.Item) []osrs.Item {
	canonical := make(map[profileKey]int)
	for i := range items {
		if !items[i].IsMeleeGear() {
			continue
		}
		key := profileOf(&items[i])
		if j, ok := canonical[key]; !ok || items[i].ID < items[j].ID {
			canonical[key] = i
		}
	}

	out := make([]osrs.Item, 0, len(canonical))
	for _, i := range canonical {
		out = append(out, items[i])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MergeSlots combines per-slot catalogs into one list keyed by id.
// A later slot wins when two slots carry the same id.
func MergeSlots(slots map[osrs.Slot][]osrs.Item) []osrs.Item {
	byID := make(map[int]osrs.Item)
	for _, slot := range osrs.EquipmentSlots {
		for _, item := range slots[slot] {
			byID[item.ID] = item
		}
	}

	out := make([]osrs.Item, 0, len(byID))
	for _, item := range byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
