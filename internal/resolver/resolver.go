// Package resolver implements the default chance resolution used by the
// condition engine's collaborator: attribute tests, open dice rolls,
// combat damage and spell casting.
package resolver

import (
	"log/slog"
	"math/rand/v2"

	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

// Resolver rolls six-sided dice from a seedable source. A fixed seed
// makes a whole playthrough reproducible.
type Resolver struct {
	rng    *rand.Rand
	logger *slog.Logger
}

func New(seed uint64, logger *slog.Logger) *Resolver {
	return &Resolver{
		rng:    rand.New(rand.NewPCG(seed, seed)),
		logger: logger,
	}
}

// roll sums count d6.
func (r *Resolver) roll(count int) int {
	sum := 0
	for i := 0; i < count; i++ {
		sum += r.rng.IntN(6) + 1
	}
	return sum
}

// AttributeTest rolls 2d6 against the attribute: rolling the attribute
// or under passes. Endurance tests compare against current endurance,
// not the maximum.
func (r *Resolver) AttributeTest(c *party.Character, attr names.Attribute) bool {
	rolled := r.roll(2)
	target := c.Attribute(attr)
	passed := rolled <= target
	r.logger.Debug("attribute test",
		"character", c.Class, "attribute", attr,
		"rolled", rolled, "target", target, "passed", passed)
	return passed
}

// Roll sums the requested dice plus modifier. The actor and action
// handles only select presentation; they do not affect the roll.
func (r *Resolver) Roll(actor, action names.Asset, dice, modifier int) int {
	sum := r.roll(dice) + modifier
	r.logger.Debug("open roll",
		"actor", actor, "action", action, "dice", dice,
		"modifier", modifier, "sum", sum)
	return sum
}

// CombatDamage rolls damage dice plus modifier, net of the target's
// armour class unless the source ignores armour. Damage never goes
// negative.
func (r *Resolver) CombatDamage(target *party.Character, dice, modifier int, ignoreArmour bool) int {
	damage := r.roll(dice) + modifier
	if !ignoreArmour {
		damage -= target.Actor().AC()
	}
	if damage < 0 {
		damage = 0
	}
	r.logger.Debug("combat damage",
		"target", target.Class, "dice", dice, "modifier", modifier,
		"ignore_armour", ignoreArmour, "damage", damage)
	return damage
}

// CastSpell resolves a casting as a psychic ability test.
func (r *Resolver) CastSpell(caster *party.Character, spell names.Spell) bool {
	ok := r.AttributeTest(caster, names.PsychicAbility)
	r.logger.Debug("spell casting", "caster", caster.Class, "spell", spell, "success", ok)
	return ok
}
