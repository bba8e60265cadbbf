package osrs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-trainer/internal/errors"
)

// Levels is the identity of a training node
type Levels struct {
	Attack   int
	Strength int
	Defence  int
}

// Get returns the level of a skill
func (l Levels) Get(skill Skill) int {
	switch skill {
	case SkillAttack:
		return l.Attack
	case SkillStrength:
		return l.Strength
	case SkillDefence:
		return l.Defence
	default:
		return 0
	}
}

// With returns a copy with one skill set to value
func (l Levels) With(skill Skill, value int) Levels {
	switch skill {
	case SkillAttack:
		l.Attack = value
	case SkillStrength:
		l.Strength = value
	case SkillDefence:
		l.Defence = value
	}
	return l
}

// String formats as (attack, strength, defence)
func (l Levels) String() string {
	return fmt.Sprintf("(%d, %d, %d)", l.Attack, l.Strength, l.Defence)
}

// ParseLevels reads "attack,strength,defence". Range checks are left to the planner.
func ParseLevels(s string) (Levels, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Levels{}, errors.InvalidArgumentf("levels %q: want attack,strength,defence", s)
	}

	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Levels{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "levels %q", s)
		}
		values[i] = v
	}

	return Levels{Attack: values[0], Strength: values[1], Defence: values[2]}, nil
}

// LevelState is a search node: levels plus the gear and style used to reach them.
// Only Levels take part in identity, see Key.
type LevelState struct {
	Levels Levels
	Style  Style
	Gear   Loadout
	// Hours is the cost of the step that reached this state, 0 for the start
	Hours float64
}

// Key returns the comparable identity of the state
func (s LevelState) Key() Levels {
	return s.Levels
}
