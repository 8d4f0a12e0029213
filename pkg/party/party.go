// Package party holds the mutable aggregate the condition engine reads
// and mutates: up to one character per class, party-level scalars and the
// free-form variable store. The engine assumes exclusive access for the
// duration of one evaluation; there is no internal locking.
package party

import (
	"github.com/battlepits/gamebook-engine/pkg/book"
	"github.com/battlepits/gamebook-engine/pkg/names"
)

// BattleResult records the outcome of the most recently resolved combat.
type BattleResult string

const (
	BattleNone        BattleResult = ""
	BattleVictory     BattleResult = "VICTORY"
	BattleFlee        BattleResult = "FLEE"
	BattleEnthralment BattleResult = "ENTHRALMENT"
	BattleDefeat      BattleResult = "DEFEAT"
)

// Party is the player's roster plus party-level state. Characters are
// keyed by class: a class can appear at most once, living or dead.
type Party struct {
	members map[names.Class]*Character

	Vars             map[string]string
	ChosenCharacter  names.Class
	ChosenNumber     int
	LastBattle       BattleResult
	PreviousLocation book.Location
	Cards            []int
}

func New() *Party {
	return &Party{
		members: make(map[names.Class]*Character),
		Vars:    make(map[string]string),
	}
}

// Add places a character in its class slot, replacing any previous
// occupant of that class.
func (p *Party) Add(c *Character) {
	p.members[c.Class] = c
}

// Remove empties a class slot.
func (p *Party) Remove(class names.Class) {
	delete(p.members, class)
}

// Member returns the character in the given class slot, present or not.
func (p *Party) Member(class names.Class) (*Character, bool) {
	c, ok := p.members[class]
	return c, ok
}

// Members returns present characters in canonical class order.
func (p *Party) Members() []*Character {
	var out []*Character
	for _, class := range names.Classes {
		if c, ok := p.members[class]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Living returns the living members in canonical class order.
func (p *Party) Living() []*Character {
	var out []*Character
	for _, c := range p.Members() {
		if c.Alive() {
			out = append(out, c)
		}
	}
	return out
}

// Alive reports whether at least one member is living.
func (p *Party) Alive() bool {
	return len(p.Living()) > 0
}

// Count returns the number of living members.
func (p *Party) Count() int {
	return len(p.Living())
}

// First returns the first living member in class order.
func (p *Party) First() (*Character, bool) {
	living := p.Living()
	if len(living) == 0 {
		return nil, false
	}
	return living[0], true
}

// Solo reports whether the given class is the only living member.
func (p *Party) Solo(class names.Class) bool {
	living := p.Living()
	return len(living) == 1 && living[0].Class == class
}

// HasItem reports whether any member, living or dead, carries the item.
func (p *Party) HasItem(t names.Item) bool {
	for _, c := range p.Members() {
		if c.HasItem(t) {
			return true
		}
	}
	return false
}

// Holder returns the first member carrying the item.
func (p *Party) Holder(t names.Item) (*Character, bool) {
	for _, c := range p.Members() {
		if c.HasItem(t) {
			return c, true
		}
	}
	return nil, false
}

// Quantity sums a content type across every member.
func (p *Party) Quantity(content names.Item) int {
	total := 0
	for _, c := range p.Members() {
		total += c.Quantity(content)
	}
	return total
}

// CountStatus returns how many living members bear the status.
func (p *Party) CountStatus(s names.Status) int {
	n := 0
	for _, c := range p.Living() {
		if c.HasStatus(s) {
			n++
		}
	}
	return n
}
