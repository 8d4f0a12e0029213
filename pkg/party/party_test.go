package party

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battlepits/gamebook-engine/pkg/names"
)

func testCharacter(t *testing.T, class names.Class, endurance int) *Character {
	t.Helper()
	c, err := NewCharacter(class, string(class), map[names.Attribute]int{
		names.FightingProwess: 8,
		names.PsychicAbility:  6,
		names.Awareness:       7,
	}, endurance, 2)
	require.NoError(t, err)
	return c
}

func TestCharacterLiveness(t *testing.T) {
	c := testCharacter(t, names.Warrior, 10)
	assert.True(t, c.Alive())
	assert.Equal(t, 10, c.Attribute(names.Endurance))

	c.Adjust(names.Endurance, -4)
	assert.Equal(t, 6, c.Attribute(names.Endurance))

	c.Adjust(names.Endurance, -20)
	assert.Equal(t, 0, c.Attribute(names.Endurance), "endurance clamps at zero")
	assert.False(t, c.Alive())

	c.Revive(3)
	assert.True(t, c.Alive())
	assert.Equal(t, 3, c.Attribute(names.Endurance))
}

func TestCharacterEnduranceClampedAtMaximum(t *testing.T) {
	c := testCharacter(t, names.Sage, 10)
	c.Adjust(names.Endurance, -5)
	c.Adjust(names.Endurance, 50)
	assert.Equal(t, 10, c.Attribute(names.Endurance),
		"healing past maximum keeps maximum")
}

func TestCharacterAttributeMutation(t *testing.T) {
	c := testCharacter(t, names.Trickster, 12)
	c.Adjust(names.FightingProwess, -3)
	assert.Equal(t, 5, c.Attribute(names.FightingProwess))
	assert.Equal(t, 8, c.Maximum(names.FightingProwess))

	c.Restore(names.FightingProwess)
	assert.Equal(t, 8, c.Attribute(names.FightingProwess))

	// The backing actor follows attribute rebuilds.
	v, ok := c.Actor().Attribute(string(names.FightingProwess))
	require.True(t, ok)
	assert.Equal(t, 8, v)
}

func TestContainerQuantity(t *testing.T) {
	c := testCharacter(t, names.Warrior, 10)
	c.AddItem(NewItem(names.MoneyPouch, 10))

	assert.Equal(t, 10, c.Quantity(names.Gold))

	ok := c.AdjustQuantity(names.Gold, -50)
	assert.False(t, ok, "removing more than held must be rejected")
	assert.Equal(t, 10, c.Quantity(names.Gold), "rejected removal leaves quantity unchanged")

	require.True(t, c.AdjustQuantity(names.Gold, -10))
	assert.Equal(t, 0, c.Quantity(names.Gold))

	ok = c.AdjustQuantity(names.Gold, -1)
	assert.False(t, ok, "quantity can never go negative")
}

func TestAdjustQuantityAcrossContainers(t *testing.T) {
	c := testCharacter(t, names.Trickster, 10)
	c.AddItem(NewItem(names.Quiver, 3))
	c.AddItem(NewItem(names.Quiver, 4))

	assert.Equal(t, 7, c.Quantity(names.Arrow))
	require.True(t, c.AdjustQuantity(names.Arrow, -5))
	assert.Equal(t, 2, c.Quantity(names.Arrow))
}

func TestAdjustQuantityDrainsLooseItems(t *testing.T) {
	c := testCharacter(t, names.Warrior, 10)
	c.AddItem(NewItem(names.MoneyPouch, 5))
	c.AddItem(NewItem(names.Gold, 0))

	assert.Equal(t, 6, c.Quantity(names.Gold), "a loose coin counts as one")
	require.True(t, c.AdjustQuantity(names.Gold, -6))
	assert.Equal(t, 0, c.Quantity(names.Gold))
	assert.False(t, c.HasItem(names.Gold), "the loose record is consumed")

	c = testCharacter(t, names.Warrior, 10)
	c.AddItem(NewItem(names.MoneyPouch, 5))
	c.AddItem(NewItem(names.Gold, 0))
	require.False(t, c.AdjustQuantity(names.Gold, -7))
	assert.Equal(t, 6, c.Quantity(names.Gold), "rejection leaves state untouched")
	assert.True(t, c.HasItem(names.Gold))
}

func TestPartyRoster(t *testing.T) {
	p := New()
	p.Add(testCharacter(t, names.Warrior, 10))
	p.Add(testCharacter(t, names.Sage, 8))

	assert.Equal(t, 2, p.Count())
	assert.False(t, p.Solo(names.Warrior))

	sage, ok := p.Member(names.Sage)
	require.True(t, ok)
	sage.Kill()

	assert.Equal(t, 1, p.Count())
	assert.True(t, p.Solo(names.Warrior))
	assert.True(t, p.Alive())

	warrior, _ := p.Member(names.Warrior)
	warrior.Kill()
	assert.False(t, p.Alive())
}

func TestPartyFirstFollowsClassOrder(t *testing.T) {
	p := New()
	p.Add(testCharacter(t, names.Enchanter, 10))
	p.Add(testCharacter(t, names.Trickster, 10))

	first, ok := p.First()
	require.True(t, ok)
	assert.Equal(t, names.Trickster, first.Class)
}

func TestVarsMathAndCompare(t *testing.T) {
	p := New()

	// Unset destination reads as 0.
	require.True(t, p.Math("+", "score", "5"))
	assert.Equal(t, "5", p.GetVar("score"))

	// Operands resolve variable names before literals.
	p.SetVar("bonus", "3")
	require.True(t, p.Math("+", "score", "bonus"))
	assert.Equal(t, "8", p.GetVar("score"))

	ok, valid := p.Compare("=", "score", "8")
	require.True(t, valid)
	assert.True(t, ok)

	ok, valid = p.Compare("<", "score", "3")
	require.True(t, valid)
	assert.False(t, ok)

	_, valid = p.Compare("~", "score", "3")
	assert.False(t, valid, "unknown operator is invalid")
}

func TestCharacterJSONRoundTrip(t *testing.T) {
	c := testCharacter(t, names.Sage, 9)
	c.Adjust(names.Endurance, -4)
	c.GainStatus(names.Poisoned)
	c.CallToMind(names.WhiteFire)
	c.AddItem(NewItem(names.Quiver, 6))

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var back Character
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, names.Sage, back.Class)
	assert.Equal(t, 5, back.Attribute(names.Endurance))
	assert.Equal(t, 9, back.Maximum(names.Endurance))
	assert.True(t, back.HasStatus(names.Poisoned))
	assert.True(t, back.HasSpell(names.WhiteFire))
	assert.Equal(t, 6, back.Quantity(names.Arrow))
}
