package testutils

import (
	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/testutils/builders"
)

// Fixture item ids
const (
	BronzeSwordID  = 1277
	IronSwordID    = 1279
	LeatherCowlID  = 1167
	TrainingGearID = 9703
)

// TrainingCatalog is a small catalog with two slash weapons and one helmet.
//
//	bronze sword: slash +10, str +5, speed 4, attack 1
//	iron sword:   slash +20, str +15, speed 4, attack 2
//	leather cowl: str +2, defence 1
func TrainingCatalog() []osrs.Item {
	return []osrs.Item{
		builders.NewItemBuilder(BronzeSwordID, "Bronze sword", osrs.SlotWeapon).
			WithSlash(10).WithStrength(5).
			RequiresAttack(1).
			AsWeapon(4, osrs.DamageTypeSlash).
			Build(),
		builders.NewItemBuilder(IronSwordID, "Iron sword", osrs.SlotWeapon).
			WithSlash(20).WithStrength(15).
			RequiresAttack(2).
			AsWeapon(4, osrs.DamageTypeSlash).
			Build(),
		builders.NewItemBuilder(LeatherCowlID, "Leather cowl", osrs.SlotHead).
			WithStrength(2).
			RequiresDefence(1).
			Build(),
	}
}

// ArmourOnlyCatalog has melee armour but no weapons
func ArmourOnlyCatalog() []osrs.Item {
	return []osrs.Item{
		builders.NewItemBuilder(LeatherCowlID, "Leather cowl", osrs.SlotHead).
			WithStrength(2).
			RequiresDefence(1).
			Build(),
		builders.NewItemBuilder(1101, "Iron chainbody", osrs.SlotBody).
			WithSlash(1).
			RequiresDefence(1).
			Build(),
	}
}

// SlotDocument is a raw osrsbox items-json-slot document for the weapon slot
const SlotDocument = `{
  "1277": {
    "id": 1277,
    "name": "Bronze sword",
    "equipable_by_player": true,
    "equipment": {
      "attack_stab": 4, "attack_slash": 3, "attack_crush": -2,
      "attack_magic": 0, "attack_ranged": 0,
      "defence_stab": 0, "defence_slash": 2, "defence_crush": 1,
      "defence_magic": 0, "defence_ranged": 0,
      "melee_strength": 5, "ranged_strength": 0, "magic_damage": 0, "prayer": 0,
      "slot": "weapon",
      "requirements": null
    },
    "weapon": {
      "attack_speed": 4,
      "weapon_type": "stab_sword",
      "stances": [
        {"combat_style": "stab", "attack_type": "stab", "attack_style": "accurate", "experience": "attack", "boosts": null},
        {"combat_style": "lunge", "attack_type": "stab", "attack_style": "aggressive", "experience": "strength", "boosts": null},
        {"combat_style": "slash", "attack_type": "slash", "attack_style": "aggressive", "experience": "strength", "boosts": null},
        {"combat_style": "block", "attack_type": "stab", "attack_style": "defensive", "experience": "defence", "boosts": null}
      ]
    }
  },
  "1333": {
    "id": 1333,
    "name": "Rune scimitar",
    "equipable_by_player": true,
    "equipment": {
      "attack_stab": 7, "attack_slash": 45, "attack_crush": -2,
      "attack_magic": 0, "attack_ranged": 0,
      "defence_stab": 0, "defence_slash": 1, "defence_crush": 0,
      "defence_magic": 0, "defence_ranged": 0,
      "melee_strength": 44, "ranged_strength": 0, "magic_damage": 0, "prayer": 0,
      "slot": "weapon",
      "requirements": {"attack": 40}
    },
    "weapon": {
      "attack_speed": 4,
      "weapon_type": "slash_sword",
      "stances": [
        {"combat_style": "chop", "attack_type": "slash", "attack_style": "accurate", "experience": "attack", "boosts": null},
        {"combat_style": "slash", "attack_type": "slash", "attack_style": "aggressive", "experience": "strength", "boosts": null},
        {"combat_style": "lunge", "attack_type": "stab", "attack_style": "controlled", "experience": "shared", "boosts": null},
        {"combat_style": "block", "attack_type": "slash", "attack_style": "defensive", "experience": "defence", "boosts": null}
      ]
    }
  },
  "1381": {
    "id": 1381,
    "name": "Staff of air",
    "equipable_by_player": true,
    "equipment": {
      "attack_stab": 2, "attack_slash": -1, "attack_crush": 7,
      "attack_magic": 10, "attack_ranged": 0,
      "defence_stab": 2, "defence_slash": 3, "defence_crush": 1,
      "defence_magic": 10, "defence_ranged": 0,
      "melee_strength": 9, "ranged_strength": 0, "magic_damage": 0, "prayer": 0,
      "slot": "weapon",
      "requirements": null
    },
    "weapon": {
      "attack_speed": 5,
      "weapon_type": "staff",
      "stances": [
        {"combat_style": "bash", "attack_type": "crush", "attack_style": "accurate", "experience": "attack", "boosts": null},
        {"combat_style": "spell", "attack_type": "spellcasting", "attack_style": null, "experience": "magic", "boosts": null}
      ]
    }
  }
}`
