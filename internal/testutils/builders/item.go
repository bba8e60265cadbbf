// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
)

// ItemBuilder provides a fluent interface for building test catalog items
type ItemBuilder struct {
	item osrs.Item
}

// NewItemBuilder creates an armour piece with no bonuses in the given slot
func NewItemBuilder(id int, name string, slot osrs.Slot) *ItemBuilder {
	return &ItemBuilder{
		item: osrs.Item{
			ID:   id,
			Name: name,
			Equipment: osrs.Equipment{
				Slot: slot,
			},
		},
	}
}

// WithStab sets the stab offense bonus
func (b *ItemBuilder) WithStab(v int) *ItemBuilder {
	b.item.Equipment.AttackStab = v
	return b
}

// WithSlash sets the slash offense bonus
func (b *ItemBuilder) WithSlash(v int) *ItemBuilder {
	b.item.Equipment.AttackSlash = v
	return b
}

// WithCrush sets the crush offense bonus
func (b *ItemBuilder) WithCrush(v int) *ItemBuilder {
	b.item.Equipment.AttackCrush = v
	return b
}

// WithStrength sets the melee strength bonus
func (b *ItemBuilder) WithStrength(v int) *ItemBuilder {
	b.item.Equipment.MeleeStrength = v
	return b
}

// WithMagic sets the magic offense bonus
func (b *ItemBuilder) WithMagic(v int) *ItemBuilder {
	b.item.Equipment.AttackMagic = v
	return b
}

// RequiresAttack adds an attack requirement
func (b *ItemBuilder) RequiresAttack(level int) *ItemBuilder {
	b.reqs().Attack = &level
	return b
}

// RequiresStrength adds a strength requirement
func (b *ItemBuilder) RequiresStrength(level int) *ItemBuilder {
	b.reqs().Strength = &level
	return b
}

// RequiresDefence adds a defence requirement
func (b *ItemBuilder) RequiresDefence(level int) *ItemBuilder {
	b.reqs().Defence = &level
	return b
}

// RequiresHitpoints adds a hitpoints requirement
func (b *ItemBuilder) RequiresHitpoints(level int) *ItemBuilder {
	b.reqs().Hitpoints = &level
	return b
}

// RequiresMagic adds a magic requirement
func (b *ItemBuilder) RequiresMagic(level int) *ItemBuilder {
	b.reqs().Magic = &level
	return b
}

// AsWeapon attaches a weapon descriptor. Each damage type gets the three
// training stances.
func (b *ItemBuilder) AsWeapon(speed int, damageTypes ...osrs.DamageType) *ItemBuilder {
	w := &osrs.Weapon{AttackSpeed: speed, WeaponType: "test"}
	for _, dt := range damageTypes {
		for _, style := range osrs.TrainingStyles {
			w.Stances = append(w.Stances, osrs.Stance{
				CombatStyle: string(style),
				DamageType:  dt,
				Style:       style,
			})
		}
	}
	b.item.Weapon = w
	return b
}

// WithStances replaces the weapon stances
func (b *ItemBuilder) WithStances(stances ...osrs.Stance) *ItemBuilder {
	if b.item.Weapon == nil {
		b.item.Weapon = &osrs.Weapon{AttackSpeed: 4, WeaponType: "test"}
	}
	b.item.Weapon.Stances = stances
	return b
}

// Build returns the item
func (b *ItemBuilder) Build() osrs.Item {
	return b.item
}

func (b *ItemBuilder) reqs() *osrs.Requirements {
	if b.item.Equipment.Requirements == nil {
		b.item.Equipment.Requirements = &osrs.Requirements{}
	}
	return b.item.Equipment.Requirements
}
