package condition

import (
	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

// Services is the capability interface the engine requires from its
// host. Prompting calls block until the player commits input; the engine
// has no notion of cancellation. The engine itself carries no UI, dice
// or combat logic — everything interactive or random goes through here.
type Services interface {
	// Prompting.

	// SelectCharacter asks the player to pick a party member.
	// livingOnly restricts the choice to living members. Returns
	// ClassNone when no member qualifies.
	SelectCharacter(message string, p *party.Party, livingOnly bool) names.Class

	// SelectNumber asks for an integer in [min, max].
	SelectNumber(message string, min, max int) int

	// SelectDice presents a dice board and returns the rolled sum.
	SelectDice(message string, count int) int

	// SelectIcons asks the player to pick between min and max of the
	// presented options, returning the chosen indices.
	SelectIcons(message string, options []string, min, max int) []int

	// Confirm asks a yes/no question.
	Confirm(message string) bool

	// MessageBox and TextBox display text; TextBox carries a color hint.
	MessageBox(message string)
	TextBox(text, color string)

	// Resolution.

	// AttributeTest rolls the character's test for one attribute and
	// reports whether it passed.
	AttributeTest(c *party.Character, attr names.Attribute) bool

	// Roll resolves a themed dice roll and returns the sum.
	Roll(actor, action names.Asset, dice, modifier int) int

	// CombatDamage resolves a damage roll against the target,
	// optionally ignoring armour, and returns the endurance loss.
	CombatDamage(target *party.Character, dice, modifier int, ignoreArmour bool) int

	// CastSpell resolves a spell casting and reports success.
	CastSpell(caster *party.Character, spell names.Spell) bool

	// Narrative.

	// MapTokens substitutes party tokens into narrative text.
	MapTokens(p *party.Party, text string) string

	// Diagnostics.

	// ReportError surfaces a content-authoring defect. Never silently
	// swallowed; evaluation still returns a neutral result.
	ReportError(message string)

	// Log records the final outcome tuple of one evaluation.
	Log(op Opcode, success, hardFail bool, message string, invert bool)
}
