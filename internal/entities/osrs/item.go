// Package osrs contains the catalog and training types for melee planning
package osrs

// Slot identifies an equipment slot
type Slot string

// Equipment slots as named by the item catalog
const (
	SlotWeapon    Slot = "weapon"
	SlotAmmo      Slot = "ammo"
	SlotHead      Slot = "head"
	SlotCape      Slot = "cape"
	SlotNeck      Slot = "neck"
	SlotBody      Slot = "body"
	SlotLegs      Slot = "legs"
	SlotShield    Slot = "shield"
	SlotHands     Slot = "hands"
	SlotFeet      Slot = "feet"
	SlotRing      Slot = "ring"
	SlotTwoHanded Slot = "2h"
)

// EquipmentSlots is the order gear is probed and reported in
var EquipmentSlots = []Slot{
	SlotWeapon,
	SlotAmmo,
	SlotHead,
	SlotCape,
	SlotNeck,
	SlotBody,
	SlotLegs,
	SlotShield,
	SlotHands,
	SlotFeet,
	SlotRing,
}

// IsEquipmentSlot reports whether s is one of the eleven planned slots
func IsEquipmentSlot(s Slot) bool {
	for _, slot := range EquipmentSlots {
		if slot == s {
			return true
		}
	}
	return false
}

// DamageType is the attack type of a stance
type DamageType string

// Damage types
const (
	DamageTypeStab  DamageType = "stab"
	DamageTypeSlash DamageType = "slash"
	DamageTypeCrush DamageType = "crush"
)

// MeleeDamageTypes are the damage types items are decomposed over
var MeleeDamageTypes = []DamageType{DamageTypeStab, DamageTypeSlash, DamageTypeCrush}

// Style is a combat stance style
type Style string

// Styles
const (
	StyleAccurate   Style = "accurate"
	StyleAggressive Style = "aggressive"
	StyleDefensive  Style = "defensive"
	StyleControlled Style = "controlled"
)

// TrainingStyles are the styles that each train exactly one skill
var TrainingStyles = []Style{StyleAccurate, StyleAggressive, StyleDefensive}

// Skill names one of the three melee skills
type Skill string

// Skills
const (
	SkillAttack   Skill = "attack"
	SkillStrength Skill = "strength"
	SkillDefence  Skill = "defence"
)

// TrainedSkill returns the skill that gains experience under the style.
// Controlled splits experience and returns false.
func (s Style) TrainedSkill() (Skill, bool) {
	switch s {
	case StyleAccurate:
		return SkillAttack, true
	case StyleAggressive:
		return SkillStrength, true
	case StyleDefensive:
		return SkillDefence, true
	default:
		return "", false
	}
}

// Requirements lists the skill levels needed to equip an item.
// A nil field means the item declares no requirement for that skill.
type Requirements struct {
	Attack    *int
	Strength  *int
	Defence   *int
	Hitpoints *int
	Prayer    *int
	Ranged    *int
	Magic     *int
}

// Declared reports whether any requirement is set
func (r *Requirements) Declared() bool {
	if r == nil {
		return false
	}
	return r.Attack != nil || r.Strength != nil || r.Defence != nil ||
		r.Hitpoints != nil || r.Prayer != nil || r.Ranged != nil || r.Magic != nil
}

// Equipment holds the bonuses of an equippable item
type Equipment struct {
	AttackStab     int
	AttackSlash    int
	AttackCrush    int
	AttackMagic    int
	AttackRanged   int
	DefenceStab    int
	DefenceSlash   int
	DefenceCrush   int
	DefenceMagic   int
	DefenceRanged  int
	MeleeStrength  int
	RangedStrength int
	MagicDamage    int
	Prayer         int
	Slot           Slot
	Requirements   *Requirements
}

// Stance is one selectable combat option of a weapon
type Stance struct {
	CombatStyle string
	DamageType  DamageType
	Style       Style
}

// Weapon describes the attack properties of a weapon
type Weapon struct {
	// AttackSpeed is the cadence in game ticks
	AttackSpeed int
	WeaponType  string
	Stances     []Stance
}

// HasStance reports whether the weapon can attack with the type and style
func (w *Weapon) HasStance(damageType DamageType, style Style) bool {
	for _, stance := range w.Stances {
		if stance.DamageType == damageType && stance.Style == style {
			return true
		}
	}
	return false
}

// Item is a catalog record. Items are never mutated after load.
type Item struct {
	ID        int
	Name      string
	Equipment Equipment
	Weapon    *Weapon
}

// IsWeapon reports whether the item carries a weapon descriptor
func (i *Item) IsWeapon() bool {
	return i.Weapon != nil
}

// Offense returns the item's offensive bonus for a melee damage type
func (i *Item) Offense(damageType DamageType) (int, bool) {
	switch damageType {
	case DamageTypeStab:
		return i.Equipment.AttackStab, true
	case DamageTypeSlash:
		return i.Equipment.AttackSlash, true
	case DamageTypeCrush:
		return i.Equipment.AttackCrush, true
	default:
		return 0, false
	}
}

// IsMeleeGear reports whether any melee offense or strength bonus is positive
func (i *Item) IsMeleeGear() bool {
	e := i.Equipment
	return e.AttackStab > 0 || e.AttackSlash > 0 || e.AttackCrush > 0 || e.MeleeStrength > 0
}
