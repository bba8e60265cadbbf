package osrsbox

import (
	"sort"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
)

// ParseItems decodes an items-json-slot document, an object keyed by item id.
// Items that are explicitly not equipable are skipped. Output is sorted by id.
func ParseItems(doc []byte) ([]osrs.Item, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.DataLossf("catalog document is not valid JSON")
	}

	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return nil, errors.DataLossf("catalog document must be an object keyed by item id")
	}

	var items []osrs.Item
	var parseErr error
	root.ForEach(func(key, v gjson.Result) bool {
		if eq := v.Get("equipable_by_player"); eq.Exists() && !eq.Bool() {
			return true
		}

		item, err := parseItem(key.String(), v)
		if err != nil {
			parseErr = err
			return false
		}
		items = append(items, item)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func parseItem(key string, v gjson.Result) (osrs.Item, error) {
	id, err := itemID(key, v)
	if err != nil {
		return osrs.Item{}, err
	}

	eq := v.Get("equipment")
	if !eq.IsObject() {
		return osrs.Item{}, errors.InvalidArgumentf("item %d has no equipment block", id).
			WithMeta("item_id", id)
	}

	item := osrs.Item{
		ID:   id,
		Name: v.Get("name").String(),
		Equipment: osrs.Equipment{
			AttackStab:     int(eq.Get("attack_stab").Int()),
			AttackSlash:    int(eq.Get("attack_slash").Int()),
			AttackCrush:    int(eq.Get("attack_crush").Int()),
			AttackMagic:    int(eq.Get("attack_magic").Int()),
			AttackRanged:   int(eq.Get("attack_ranged").Int()),
			DefenceStab:    int(eq.Get("defence_stab").Int()),
			DefenceSlash:   int(eq.Get("defence_slash").Int()),
			DefenceCrush:   int(eq.Get("defence_crush").Int()),
			DefenceMagic:   int(eq.Get("defence_magic").Int()),
			DefenceRanged:  int(eq.Get("defence_ranged").Int()),
			MeleeStrength:  int(eq.Get("melee_strength").Int()),
			RangedStrength: int(eq.Get("ranged_strength").Int()),
			MagicDamage:    int(eq.Get("magic_damage").Int()),
			Prayer:         int(eq.Get("prayer").Int()),
			Slot:           osrs.Slot(eq.Get("slot").String()),
			Requirements:   parseRequirements(eq.Get("requirements")),
		},
	}

	if w := v.Get("weapon"); w.IsObject() {
		item.Weapon = parseWeapon(w)
	}
	return item, nil
}

func itemID(key string, v gjson.Result) (int, error) {
	if id := v.Get("id"); id.Exists() {
		return int(id.Int()), nil
	}
	id, err := strconv.Atoi(key)
	if err != nil {
		return 0, errors.InvalidArgumentf("item key %q is not a numeric id", key)
	}
	return id, nil
}

func parseRequirements(r gjson.Result) *osrs.Requirements {
	if !r.IsObject() {
		return nil
	}

	reqs := &osrs.Requirements{
		Attack:    optionalInt(r.Get("attack")),
		Strength:  optionalInt(r.Get("strength")),
		Defence:   optionalInt(r.Get("defence")),
		Hitpoints: optionalInt(r.Get("hitpoints")),
		Prayer:    optionalInt(r.Get("prayer")),
		Ranged:    optionalInt(r.Get("ranged")),
		Magic:     optionalInt(r.Get("magic")),
	}
	if !reqs.Declared() {
		return nil
	}
	return reqs
}

func optionalInt(r gjson.Result) *int {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	v := int(r.Int())
	return &v
}

func parseWeapon(w gjson.Result) *osrs.Weapon {
	weapon := &osrs.Weapon{
		AttackSpeed: int(w.Get("attack_speed").Int()),
		WeaponType:  w.Get("weapon_type").String(),
	}
	w.Get("stances").ForEach(func(_, s gjson.Result) bool {
		weapon.Stances = append(weapon.Stances, osrs.Stance{
			CombatStyle: s.Get("combat_style").String(),
			DamageType:  osrs.DamageType(s.Get("attack_type").String()),
			Style:       osrs.Style(s.Get("attack_style").String()),
		})
		return true
	})
	return weapon
}
