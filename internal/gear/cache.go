// Package gear indexes the item catalog by requirement breakpoint and serves
// pruned equivalence groups per slot.
package gear

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-trainer/internal/engine/xptable"
	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
)

// Config holds the inputs of a gear cache
type Config struct {
	// Items is the merged catalog before normalization
	Items   []osrs.Item
	XPTable *xptable.Table
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.XPTable == nil {
		vb.RequiredField("XPTable")
	}
	if len(c.Items) == 0 {
		vb.RequiredField("Items")
	}
	return vb.Build()
}

type memoKey struct {
	slot       osrs.Slot
	breakpoint osrs.Breakpoint
}

type bucketKey struct {
	damageType osrs.DamageType
	style      osrs.Style
}

// Cache owns the normalized catalog and memoizes pruned groups per
// (slot, breakpoint). Safe for concurrent use.
type Cache struct {
	items      map[int]*osrs.Item
	bySlot     map[osrs.Slot][]*osrs.Item
	thresholds Thresholds
	xpTable    *xptable.Table

	mu   sync.Mutex
	memo map[memoKey]map[bucketKey][]osrs.ItemGroup
}

// New builds a cache. Thresholds come from the full catalog, availability
// from the normalized melee subset.
func New(cfg *Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	normalized := Normalize(cfg.Items)
	c := &Cache{
		items:      make(map[int]*osrs.Item, len(normalized)),
		bySlot:     make(map[osrs.Slot][]*osrs.Item),
		thresholds: ComputeThresholds(cfg.Items),
		xpTable:    cfg.XPTable,
		memo:       make(map[memoKey]map[bucketKey][]osrs.ItemGroup),
	}
	for i := range normalized {
		item := &normalized[i]
		c.items[item.ID] = item
		c.bySlot[item.Equipment.Slot] = append(c.bySlot[item.Equipment.Slot], item)
	}

	slog.Info("Built gear cache",
		"catalog", len(cfg.Items),
		"melee", len(normalized),
		"attack_tiers", len(c.thresholds.Attack),
		"strength_tiers", len(c.thresholds.Strength),
		"defence_tiers", len(c.thresholds.Defence))

	return c, nil
}

// Thresholds returns the requirement tiers
func (c *Cache) Thresholds() Thresholds {
	return c.thresholds
}

// Len returns the number of normalized melee items
func (c *Cache) Len() int {
	return len(c.items)
}

// Quantize maps levels to their breakpoint
func (c *Cache) Quantize(levels osrs.Levels) osrs.Breakpoint {
	return c.thresholds.Quantize(levels)
}

// Item looks up a normalized item by id
func (c *Cache) Item(id int) (osrs.Item, bool) {
	item, ok := c.items[id]
	if !ok {
		return osrs.Item{}, false
	}
	return *item, true
}

// GroupName names a group after its representative item
func (c *Cache) GroupName(g osrs.ItemGroup) string {
	id, ok := g.Representative()
	if !ok {
		return "Nothing"
	}
	item, ok := c.items[id]
	if !ok {
		return fmt.Sprintf("item %d-like group", id)
	}
	return item.Name + "-like group"
}

// GroupsFor returns the pruned groups usable in slot at breakpoint for the
// damage type and style. An empty result is replaced by one empty group.
// The returned slice is shared and must not be modified.
func (c *Cache) GroupsFor(slot osrs.Slot, bp osrs.Breakpoint, damageType osrs.DamageType, style osrs.Style) []osrs.ItemGroup {
	key := memoKey{slot: slot, breakpoint: bp}

	c.mu.Lock()
	buckets, ok := c.memo[key]
	if !ok {
		buckets = c.buildBuckets(slot, bp)
		c.memo[key] = buckets
	}
	c.mu.Unlock()

	if groups, ok := buckets[bucketKey{damageType, style}]; ok {
		return groups
	}
	return []osrs.ItemGroup{osrs.EmptyGroup(slot, damageType)}
}

// MemoSize returns the number of memoized (slot, breakpoint) entries
func (c *Cache) MemoSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.memo)
}

func (c *Cache) buildBuckets(slot osrs.Slot, bp osrs.Breakpoint) map[bucketKey][]osrs.ItemGroup {
	profile := c.profileFor(bp)

	var variants []Variant
	qualifying := 0
	for _, item := range c.bySlot[slot] {
		if !profile.allows(item) {
			continue
		}
		qualifying++
		variants = append(variants, Decompose(item)...)
	}
	groups := Group(variants)

	buckets := make(map[bucketKey][]osrs.ItemGroup)
	for _, damageType := range osrs.MeleeDamageTypes {
		for _, style := range osrs.TrainingStyles {
			var candidates []osrs.ItemGroup
			for _, g := range groups {
				if g.DamageType == damageType && (g.Style == "" || g.Style == style) {
					candidates = append(candidates, g)
				}
			}
			if pruned := PruneDominated(candidates); len(pruned) > 0 {
				buckets[bucketKey{damageType, style}] = pruned
			}
		}
	}

	slog.Debug("Indexed slot",
		"slot", slot,
		"breakpoint", bp.String(),
		"items", qualifying,
		"groups", len(groups))

	return buckets
}

// statProfile is the skill set a breakpoint implies
type statProfile struct {
	attack    int
	strength  int
	defence   int
	hitpoints int
}

func (c *Cache) profileFor(bp osrs.Breakpoint) statProfile {
	total := c.xpOrCap(bp.Attack) + c.xpOrCap(bp.Strength) + c.xpOrCap(bp.Defence)
	return statProfile{
		attack:    bp.Attack,
		strength:  bp.Strength,
		defence:   bp.Defence,
		hitpoints: c.xpTable.LevelForXP(total / 3),
	}
}

func (c *Cache) xpOrCap(level int) int64 {
	if level > c.xpTable.Cap() {
		level = c.xpTable.Cap()
	}
	if level < 1 {
		level = 1
	}
	xp, _ := c.xpTable.XPForLevel(level)
	return xp
}

// allows reports whether an item can be worn with the profile.
// Weapons without requirements are treated as placeholder records.
func (p statProfile) allows(item *osrs.Item) bool {
	reqs := item.Equipment.Requirements
	if !reqs.Declared() {
		return !item.IsWeapon()
	}
	return within(reqs.Attack, p.attack) &&
		within(reqs.Strength, p.strength) &&
		within(reqs.Defence, p.defence) &&
		within(reqs.Hitpoints, p.hitpoints) &&
		within(reqs.Prayer, 0) &&
		within(reqs.Ranged, 0) &&
		within(reqs.Magic, 0)
}

func within(req *int, have int) bool {
	return req == nil || *req <= have
}
