// Package names holds the bidirectional tables between author-facing
// entity names and their typed identifiers. Story content refers to
// everything (classes, items, statuses, attributes, spells, assets) by
// name; the engine resolves those names exactly once per argument.
package names

import "strings"

// Class identifies a party member. A class is both the character's type
// and its slot key: the party can hold at most one member per class.
type Class string

const (
	ClassNone Class = ""
	ClassAll  Class = "ALL" // sentinel: every living party member

	Warrior   Class = "WARRIOR"
	Trickster Class = "TRICKSTER"
	Sage      Class = "SAGE"
	Enchanter Class = "ENCHANTER"
)

// Classes lists the real classes in party order. ClassAll is a target
// sentinel, not a roster entry.
var Classes = []Class{Warrior, Trickster, Sage, Enchanter}

// Item identifies an inventory item type.
type Item string

const (
	ItemNone Item = ""

	Sword         Item = "SWORD"
	Dagger        Item = "DAGGER"
	Bow           Item = "BOW"
	Quiver        Item = "QUIVER"
	Arrow         Item = "ARROW"
	MoneyPouch    Item = "MONEY-POUCH"
	Gold          Item = "GOLD"
	Shield        Item = "SHIELD"
	Chainmail     Item = "CHAINMAIL"
	LeatherArmour Item = "LEATHER ARMOUR"
	Rations       Item = "RATIONS"
	Potion        Item = "POTION"
	Rope          Item = "ROPE"
	Lantern       Item = "LANTERN"
	RubyRing      Item = "RUBY RING"
	VellumScroll  Item = "VELLUM SCROLL"
	BlueIce       Item = "BLUE ICE JEWEL"
	SteelSceptre  Item = "STEEL SCEPTRE"
)

var items = []Item{
	Sword, Dagger, Bow, Quiver, Arrow, MoneyPouch, Gold, Shield,
	Chainmail, LeatherArmour, Rations, Potion, Rope, Lantern,
	RubyRing, VellumScroll, BlueIce, SteelSceptre,
}

// containers maps a container item to the item type it holds.
var containers = map[Item]Item{
	Quiver:     Arrow,
	MoneyPouch: Gold,
}

// ContainerContent reports the item type a container holds, if the item
// is a container at all.
func ContainerContent(i Item) (Item, bool) {
	c, ok := containers[i]
	return c, ok
}

// ContainerFor reports the container that holds the given content type.
func ContainerFor(content Item) (Item, bool) {
	for c, held := range containers {
		if held == content {
			return c, true
		}
	}
	return ItemNone, false
}

// Status identifies a status effect.
type Status string

const (
	StatusNone Status = ""

	Poisoned   Status = "POISONED"
	Defending  Status = "DEFENDING"
	Burning    Status = "BURNING"
	Paralyzed  Status = "PARALYZED"
	Invisible  Status = "INVISIBLE"
	Enthralled Status = "ENTHRALLED"
	Weakened   Status = "WEAKENED"
	Protected  Status = "PROTECTED"
	Delayed    Status = "DELAYED"
	Excluded   Status = "EXCLUDED"
)

var statuses = []Status{
	Poisoned, Defending, Burning, Paralyzed, Invisible,
	Enthralled, Weakened, Protected, Delayed, Excluded,
}

// Attribute identifies a character attribute.
type Attribute string

const (
	AttributeNone Attribute = ""

	FightingProwess Attribute = "FIGHTING PROWESS"
	PsychicAbility  Attribute = "PSYCHIC ABILITY"
	Awareness       Attribute = "AWARENESS"
	Endurance       Attribute = "ENDURANCE"
	Armour          Attribute = "ARMOUR"
)

var attributes = []Attribute{
	FightingProwess, PsychicAbility, Awareness, Endurance, Armour,
}

// Spell identifies a blasting or psychic spell an Enchanter or Sage can
// call to mind.
type Spell string

const (
	SpellNone Spell = ""

	VolcanoSpray         Spell = "VOLCANO SPRAY"
	Nighthowl            Spell = "NIGHTHOWL"
	WhiteFire            Spell = "WHITE FIRE"
	Swordthrust          Spell = "SWORDTHRUST"
	EyeOfTheTiger        Spell = "EYE OF THE TIGER"
	ImmediateDeliverance Spell = "IMMEDIATE DELIVERANCE"
	MistsOfDeath         Spell = "MISTS OF DEATH"
	TheVampireSpell      Spell = "THE VAMPIRE SPELL"
	SheetLightning       Spell = "SHEET LIGHTNING"
	GhastlyTouch         Spell = "GHASTLY TOUCH"
	NemesisBolt          Spell = "NEMESIS BOLT"
	ServileEnthralment   Spell = "SERVILE ENTHRALMENT"
)

var spells = []Spell{
	VolcanoSpray, Nighthowl, WhiteFire, Swordthrust, EyeOfTheTiger,
	ImmediateDeliverance, MistsOfDeath, TheVampireSpell, SheetLightning,
	GhastlyTouch, NemesisBolt, ServileEnthralment,
}

// Asset identifies an art or sound handle used by interactive opcodes
// (dice boards, card decks, combat scenes). Presentation owns the actual
// resources; the engine only passes the handle through.
type Asset string

const (
	AssetNone Asset = ""

	DiceBoard   Asset = "DICE"
	CardDeck    Asset = "CARDS"
	CombatScene Asset = "COMBAT"
	CampScene   Asset = "CAMP"
)

var assets = []Asset{DiceBoard, CardDeck, CombatScene, CampScene}

// canonical normalizes an author-facing name: trims, uppercases and
// treats underscores as spaces, so "Psychic_Ability" resolves the same
// as "PSYCHIC ABILITY".
func canonical(s string) string {
	s = strings.TrimSpace(strings.ToUpper(s))
	return strings.ReplaceAll(s, "_", " ")
}

// ToClass resolves a class name. ClassAll is not a class; use ToTarget
// for arguments that may address the whole party.
func ToClass(s string) Class {
	c := Class(canonical(s))
	for _, known := range Classes {
		if c == known {
			return c
		}
	}
	return ClassNone
}

// ToTarget resolves a class name or the ALL sentinel.
func ToTarget(s string) Class {
	if Class(canonical(s)) == ClassAll {
		return ClassAll
	}
	return ToClass(s)
}

func ToItem(s string) Item {
	i := Item(canonical(s))
	for _, known := range items {
		if i == known {
			return i
		}
	}
	return ItemNone
}

func ToStatus(s string) Status {
	st := Status(canonical(s))
	for _, known := range statuses {
		if st == known {
			return st
		}
	}
	return StatusNone
}

func ToAttribute(s string) Attribute {
	a := Attribute(canonical(s))
	for _, known := range attributes {
		if a == known {
			return a
		}
	}
	return AttributeNone
}

func ToSpell(s string) Spell {
	sp := Spell(canonical(s))
	for _, known := range spells {
		if sp == known {
			return sp
		}
	}
	return SpellNone
}

func ToAsset(s string) Asset {
	a := Asset(canonical(s))
	for _, known := range assets {
		if a == known {
			return a
		}
	}
	return AssetNone
}
