package condition

import (
	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

// ScriptedServices is a deterministic Services implementation for tests
// and headless evaluation. Every interactive call answers from the
// scripted fields; resolution calls return the scripted outcomes.
type ScriptedServices struct {
	// Scripted prompt answers.
	Character    names.Class
	Number       int
	DiceSum      int
	Icons        []int
	ConfirmReply bool

	// Scripted resolution outcomes.
	TestResult  bool
	RollSum     int
	Damage      int
	SpellResult bool

	// Recorded traffic.
	Messages  []string
	Errors    []string
	LogLines  []string
	Evaluated int
}

var _ Services = (*ScriptedServices)(nil)

func (s *ScriptedServices) SelectCharacter(message string, p *party.Party, livingOnly bool) names.Class {
	if s.Character != names.ClassNone {
		return s.Character
	}
	// Default to the first living member, matching what a player
	// with one choice would do.
	if first, ok := p.First(); ok {
		return first.Class
	}
	return names.ClassNone
}

func (s *ScriptedServices) SelectNumber(message string, min, max int) int {
	if s.Number < min {
		return min
	}
	if s.Number > max {
		return max
	}
	return s.Number
}

func (s *ScriptedServices) SelectDice(message string, count int) int {
	return s.DiceSum
}

func (s *ScriptedServices) SelectIcons(message string, options []string, min, max int) []int {
	if len(s.Icons) > 0 {
		return s.Icons
	}
	picks := make([]int, 0, min)
	for i := 0; i < min && i < len(options); i++ {
		picks = append(picks, i)
	}
	return picks
}

func (s *ScriptedServices) Confirm(message string) bool {
	return s.ConfirmReply
}

func (s *ScriptedServices) MessageBox(message string) {
	s.Messages = append(s.Messages, message)
}

func (s *ScriptedServices) TextBox(text, color string) {
	s.Messages = append(s.Messages, text)
}

func (s *ScriptedServices) AttributeTest(c *party.Character, attr names.Attribute) bool {
	return s.TestResult
}

func (s *ScriptedServices) Roll(actor, action names.Asset, dice, modifier int) int {
	return s.RollSum + modifier
}

func (s *ScriptedServices) CombatDamage(target *party.Character, dice, modifier int, ignoreArmour bool) int {
	return s.Damage
}

func (s *ScriptedServices) CastSpell(caster *party.Character, spell names.Spell) bool {
	return s.SpellResult
}

func (s *ScriptedServices) MapTokens(p *party.Party, text string) string {
	return text
}

func (s *ScriptedServices) ReportError(message string) {
	s.Errors = append(s.Errors, message)
}

func (s *ScriptedServices) Log(op Opcode, success, hardFail bool, message string, invert bool) {
	s.Evaluated++
	s.LogLines = append(s.LogLines, string(op)+" "+message)
}
