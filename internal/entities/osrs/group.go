package osrs

import "fmt"

// Breakpoint is a quantized requirement tier per melee skill
type Breakpoint struct {
	Attack   int
	Strength int
	Defence  int
}

// String renders the breakpoint as a compact key
func (b Breakpoint) String() string {
	return fmt.Sprintf("%d/%d/%d", b.Attack, b.Strength, b.Defence)
}

// ItemGroup is an equivalence class of items with identical combat bonuses.
// ItemIDs index into the catalog and are sorted ascending.
type ItemGroup struct {
	ItemIDs    []int
	Slot       Slot
	Offense    int
	Strength   int
	DamageType DamageType
	// Style is only set for weapon slot groups
	Style Style
	// Cadence is the attack speed in ticks, 0 when not derived from a weapon
	Cadence int
}

// EmptyGroup is the "nothing useful in this slot" fallback
func EmptyGroup(slot Slot, damageType DamageType) ItemGroup {
	return ItemGroup{
		Slot:       slot,
		DamageType: damageType,
	}
}

// IsEmpty reports whether the group has no items
func (g ItemGroup) IsEmpty() bool {
	return len(g.ItemIDs) == 0
}

// Representative returns the lowest item id of the group
func (g ItemGroup) Representative() (int, bool) {
	if len(g.ItemIDs) == 0 {
		return 0, false
	}
	lowest := g.ItemIDs[0]
	for _, id := range g.ItemIDs[1:] {
		if id < lowest {
			lowest = id
		}
	}
	return lowest, true
}

// Dominates reports whether g is at least as good as other in offense and strength
func (g ItemGroup) Dominates(other ItemGroup) bool {
	return g.Offense >= other.Offense && g.Strength >= other.Strength
}

// Loadout is one group per slot in EquipmentSlots order
type Loadout []ItemGroup

// Totals sums offense and strength across all slots
func (l Loadout) Totals() (offense, strength int) {
	for _, g := range l {
		offense += g.Offense
		strength += g.Strength
	}
	return offense, strength
}

// Cadence returns the first cadence carried by any slot, 0 if none
func (l Loadout) Cadence() int {
	for _, g := range l {
		if g.Cadence != 0 {
			return g.Cadence
		}
	}
	return 0
}
