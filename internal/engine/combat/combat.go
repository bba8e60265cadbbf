// Package combat implements the closed-form melee throughput formulas.
// Every function is pure; hit chance is an expectation, not a roll.
package combat

import (
	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
)

const (
	// TickSeconds is the length of one game tick
	TickSeconds = 0.6
	// EffectiveLevelCap bounds the level used in effective level formulas
	EffectiveLevelCap = 99
	// XPPerDamage is the experience awarded per point of damage in the trained skill
	XPPerDamage = 4
	// SecondsPerHour converts per-second rates to per-hour rates
	SecondsPerHour = 3600

	potionBonus       = 0
	prayerMultiplier  = 1.0
	favouredBonus     = 3
	controlledBonus   = 1
	effectiveConstant = 8
)

// EffectiveLevel returns the effective level of skill while fighting with style
func EffectiveLevel(level int, skill osrs.Skill, style osrs.Style) int {
	if level > EffectiveLevelCap {
		level = EffectiveLevelCap
	}

	bonus := 0
	switch {
	case style == osrs.StyleControlled:
		bonus = controlledBonus
	default:
		if trained, ok := style.TrainedSkill(); ok && trained == skill {
			bonus = favouredBonus
		}
	}

	return int(float64(level+potionBonus)*prayerMultiplier) + bonus + effectiveConstant
}

// MaxHit returns the maximum hit for an effective strength and strength bonus
func MaxHit(effectiveStrength, strengthBonus int) int {
	return int(0.5 + float64(effectiveStrength)*float64(strengthBonus+64)/640)
}

// MaxAttackRoll returns the maximum attack roll for an effective attack and offense bonus
func MaxAttackRoll(effectiveAttack, offenseBonus int) int {
	return effectiveAttack * (offenseBonus + 64)
}

// DefenceRoll returns the maximum defence roll of an opponent
func DefenceRoll(defenceLevel, defenceBonus int) int {
	return (defenceLevel + 1 + effectiveConstant) * (defenceBonus + 64)
}

// HitChance returns the probability an attack roll beats a defence roll
func HitChance(attackRoll, defenceRoll int) float64 {
	a := float64(attackRoll)
	d := float64(defenceRoll)
	if a > d {
		return 1 - (d+2)/(2*(a+1))
	}
	return a / (2*d + 1)
}

// DamagePerSecond returns expected damage per second
func DamagePerSecond(hitChance float64, maxHit, cadence int) float64 {
	return hitChance * (float64(maxHit) / 2) / (float64(cadence) * TickSeconds)
}

// XPPerHour converts damage per second to experience per hour
func XPPerHour(damagePerSecond float64) float64 {
	return damagePerSecond * XPPerDamage * SecondsPerHour
}

// Opponent is the fixed training target
type Opponent struct {
	DefenceLevel int
	DefenceBonus int
}

// ReferenceOpponent has a defence roll of 640
var ReferenceOpponent = Opponent{DefenceLevel: 1, DefenceBonus: 0}

// DefenceRoll returns the opponent's maximum defence roll
func (o Opponent) DefenceRoll() int {
	return DefenceRoll(o.DefenceLevel, o.DefenceBonus)
}

// Attack describes one training configuration
type Attack struct {
	Levels   osrs.Levels
	Style    osrs.Style
	Offense  int
	Strength int
	// Cadence in ticks, must be positive
	Cadence int
}

// XPPerHourAgainst returns the experience rate of the attack against the opponent
func (a Attack) XPPerHourAgainst(o Opponent) float64 {
	effAttack := EffectiveLevel(a.Levels.Attack, osrs.SkillAttack, a.Style)
	effStrength := EffectiveLevel(a.Levels.Strength, osrs.SkillStrength, a.Style)

	hit := HitChance(MaxAttackRoll(effAttack, a.Offense), o.DefenceRoll())
	dps := DamagePerSecond(hit, MaxHit(effStrength, a.Strength), a.Cadence)
	return XPPerHour(dps)
}
