package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/battlepits/gamebook-engine/internal/resolver"
	"github.com/battlepits/gamebook-engine/pkg/book"
	"github.com/battlepits/gamebook-engine/pkg/condition"
	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
	"github.com/battlepits/gamebook-engine/pkg/tokens"
)

// promptKind selects how the UI renders and parses a blocking prompt.
type promptKind int

const (
	promptNumber promptKind = iota
	promptCharacter
	promptDice
	promptIcons
	promptConfirm
)

// promptRequest crosses from the engine goroutine to the UI. The engine
// blocks on reply until the player answers.
type promptRequest struct {
	kind    promptKind
	message string
	min     int
	max     int
	options []string
	reply   chan promptReply
}

type promptReply struct {
	number    int
	picks     []int
	confirmed bool
}

// transcriptMsg appends narrative or engine output to the transcript.
type transcriptMsg struct {
	text  string
	style lineStyle
}

type promptMsg struct {
	req *promptRequest
}

type gameOverMsg struct {
	reason string
}

// uiServices implements condition.Services for the console player.
// Prompts cross into the BubbleTea loop and block; chance resolution
// delegates to the default resolver.
type uiServices struct {
	program *tea.Program
	res     *resolver.Resolver
	party   *party.Party
	index   *book.Index
	logger  *slog.Logger
}

var _ condition.Services = (*uiServices)(nil)

func newUIServices(program *tea.Program, res *resolver.Resolver, p *party.Party, idx *book.Index, logger *slog.Logger) *uiServices {
	return &uiServices{program: program, res: res, party: p, index: idx, logger: logger}
}

func (s *uiServices) ask(req *promptRequest) promptReply {
	req.reply = make(chan promptReply, 1)
	s.program.Send(promptMsg{req: req})
	return <-req.reply
}

func (s *uiServices) SelectCharacter(message string, p *party.Party, livingOnly bool) names.Class {
	members := p.Members()
	if livingOnly {
		members = p.Living()
	}
	options := make([]string, len(members))
	for i, c := range members {
		options[i] = string(c.Class)
	}
	if len(options) == 0 {
		return names.ClassNone
	}
	reply := s.ask(&promptRequest{
		kind: promptCharacter, message: message, options: options, min: 1, max: 1,
	})
	if len(reply.picks) == 0 {
		return names.ClassNone
	}
	return members[reply.picks[0]].Class
}

func (s *uiServices) SelectNumber(message string, min, max int) int {
	reply := s.ask(&promptRequest{kind: promptNumber, message: message, min: min, max: max})
	return reply.number
}

func (s *uiServices) SelectDice(message string, count int) int {
	s.ask(&promptRequest{
		kind:    promptDice,
		message: fmt.Sprintf("%s (%d dice)", message, count),
	})
	sum := s.res.Roll(names.DiceBoard, names.DiceBoard, count, 0)
	s.MessageBox(fmt.Sprintf("YOU ROLL %d", sum))
	return sum
}

func (s *uiServices) SelectIcons(message string, options []string, min, max int) []int {
	reply := s.ask(&promptRequest{
		kind: promptIcons, message: message, options: options, min: min, max: max,
	})
	return reply.picks
}

func (s *uiServices) Confirm(message string) bool {
	reply := s.ask(&promptRequest{kind: promptConfirm, message: message})
	return reply.confirmed
}

func (s *uiServices) MessageBox(message string) {
	s.program.Send(transcriptMsg{text: message, style: lineNotice})
}

func (s *uiServices) TextBox(text, color string) {
	s.program.Send(transcriptMsg{text: text, style: styleForColor(color)})
}

func (s *uiServices) AttributeTest(c *party.Character, attr names.Attribute) bool {
	return s.res.AttributeTest(c, attr)
}

func (s *uiServices) Roll(actor, action names.Asset, dice, modifier int) int {
	return s.res.Roll(actor, action, dice, modifier)
}

func (s *uiServices) CombatDamage(target *party.Character, dice, modifier int, ignoreArmour bool) int {
	return s.res.CombatDamage(target, dice, modifier, ignoreArmour)
}

func (s *uiServices) CastSpell(caster *party.Character, spell names.Spell) bool {
	return s.res.CastSpell(caster, spell)
}

func (s *uiServices) MapTokens(p *party.Party, text string) string {
	return tokens.Map(p, text)
}

func (s *uiServices) ReportError(message string) {
	s.logger.Error("Content error", "error", message)
	s.program.Send(transcriptMsg{text: "[content error] " + message, style: lineError})
}

func (s *uiServices) Log(op condition.Opcode, success, hardFail bool, message string, invert bool) {
	s.logger.Debug("condition evaluated",
		"opcode", op, "success", success, "hard_fail", hardFail,
		"message", message, "invert", invert)
}
