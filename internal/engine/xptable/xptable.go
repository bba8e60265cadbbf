// Package xptable provides the level to experience progression table
package xptable

import (
	"math"

	"github.com/KirkDiggler/rpg-trainer/internal/errors"
)

const (
	// DefaultCap is the highest trainable level
	DefaultCap = 99
	// MaxCap is the highest level the progression formula is defined for
	MaxCap = 127
)

// Table maps levels 1..cap to cumulative experience
type Table struct {
	cap int
	xp  []int64
}

// New builds the table up to and including cap
func New(cap int) (*Table, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("cap", cap, 2, MaxCap, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	xp := make([]int64, cap+1)
	var points int64
	for level := 1; level < cap; level++ {
		points += int64(math.Floor(float64(level) + 300*math.Pow(2, float64(level)/7)))
		xp[level+1] = points / 4
	}

	return &Table{cap: cap, xp: xp}, nil
}

// Cap returns the highest level in the table
func (t *Table) Cap() int {
	return t.cap
}

// XPForLevel returns the cumulative experience needed for level
func (t *Table) XPForLevel(level int) (int64, error) {
	if level < 1 || level > t.cap {
		return 0, errors.OutOfRangef("level %d outside 1..%d", level, t.cap).
			WithMeta("level", level)
	}
	return t.xp[level], nil
}

// XPToNextLevel returns the experience between level and level+1, 0 at the cap
func (t *Table) XPToNextLevel(level int) (int64, error) {
	if level < 1 || level > t.cap {
		return 0, errors.OutOfRangef("level %d outside 1..%d", level, t.cap).
			WithMeta("level", level)
	}
	if level == t.cap {
		return 0, nil
	}
	return t.xp[level+1] - t.xp[level], nil
}

// LevelForXP returns the highest level whose requirement is at most xp
func (t *Table) LevelForXP(xp int64) int {
	lo, hi := 1, t.cap
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.xp[mid] <= xp {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
