package resolver

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

func newCharacter(t *testing.T, psychic, armour int) *party.Character {
	t.Helper()
	c, err := party.NewCharacter(names.Sage, "", map[names.Attribute]int{
		names.FightingProwess: 7,
		names.PsychicAbility:  psychic,
		names.Awareness:       6,
	}, 10, armour)
	require.NoError(t, err)
	return c
}

func quiet() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRollBounds(t *testing.T) {
	r := New(1, quiet())
	for i := 0; i < 200; i++ {
		sum := r.Roll(names.DiceBoard, names.DiceBoard, 2, 0)
		assert.GreaterOrEqual(t, sum, 2)
		assert.LessOrEqual(t, sum, 12)
	}
}

func TestRollModifier(t *testing.T) {
	a := New(7, quiet())
	b := New(7, quiet())
	assert.Equal(t,
		a.Roll(names.DiceBoard, names.DiceBoard, 3, 0)+5,
		b.Roll(names.DiceBoard, names.DiceBoard, 3, 5),
		"the same seed rolls the same dice")
}

func TestAttributeTestExtremes(t *testing.T) {
	r := New(1, quiet())

	// 2d6 can never exceed 12 or fall below 2.
	always := newCharacter(t, 12, 0)
	never := newCharacter(t, 1, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, r.AttributeTest(always, names.PsychicAbility))
		assert.False(t, r.AttributeTest(never, names.PsychicAbility))
	}
}

func TestCombatDamageNetOfArmour(t *testing.T) {
	armoured := newCharacter(t, 6, 3)
	bare := newCharacter(t, 6, 0)

	a := New(11, quiet())
	b := New(11, quiet())
	withArmour := a.CombatDamage(armoured, 2, 0, false)
	without := b.CombatDamage(bare, 2, 0, false)

	if without >= 3 {
		assert.Equal(t, without-3, withArmour)
	} else {
		assert.Equal(t, 0, withArmour, "armour never heals")
	}
}

func TestCombatDamageIgnoreArmour(t *testing.T) {
	armoured := newCharacter(t, 6, 5)
	a := New(3, quiet())
	b := New(3, quiet())

	assert.Equal(t,
		b.CombatDamage(newCharacter(t, 6, 0), 2, 1, false),
		a.CombatDamage(armoured, 2, 1, true),
		"ignoring armour matches the unarmoured roll")
}

func TestCombatDamageNeverNegative(t *testing.T) {
	tank := newCharacter(t, 6, 20)
	r := New(5, quiet())
	for i := 0; i < 50; i++ {
		assert.GreaterOrEqual(t, r.CombatDamage(tank, 1, 0, false), 0)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42, quiet())
	b := New(42, quiet())
	for i := 0; i < 20; i++ {
		assert.Equal(t,
			a.Roll(names.DiceBoard, names.DiceBoard, 2, 0),
			b.Roll(names.DiceBoard, names.DiceBoard, 2, 0))
	}
}
