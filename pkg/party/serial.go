package party

import (
	"encoding/json"
	"fmt"

	"github.com/battlepits/gamebook-engine/pkg/book"
	"github.com/battlepits/gamebook-engine/pkg/names"
)

// partySpec is the serialized form of a party. Members serialize through
// their own spec form so the backing actors can be rebuilt on load.
type partySpec struct {
	Members          []CharacterSpec   `json:"members"`
	Vars             map[string]string `json:"vars,omitempty"`
	ChosenCharacter  names.Class       `json:"chosen_character,omitempty"`
	ChosenNumber     int               `json:"chosen_number,omitempty"`
	LastBattle       BattleResult      `json:"last_battle,omitempty"`
	PreviousLocation book.Location     `json:"previous_location,omitempty"`
	Cards            []int             `json:"cards,omitempty"`
}

// MarshalJSON serializes the party with members in canonical class order.
func (p *Party) MarshalJSON() ([]byte, error) {
	spec := partySpec{
		Vars:             p.Vars,
		ChosenCharacter:  p.ChosenCharacter,
		ChosenNumber:     p.ChosenNumber,
		LastBattle:       p.LastBattle,
		PreviousLocation: p.PreviousLocation,
		Cards:            p.Cards,
	}
	for _, c := range p.Members() {
		spec.Members = append(spec.Members, c.Spec())
	}
	return json.Marshal(spec)
}

// UnmarshalJSON rebuilds the party, including every member's backing
// actor.
func (p *Party) UnmarshalJSON(data []byte) error {
	var spec partySpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("failed to unmarshal party: %w", err)
	}
	rebuilt := New()
	for _, ms := range spec.Members {
		c, err := FromSpec(ms)
		if err != nil {
			return fmt.Errorf("failed to rebuild %s: %w", ms.Class, err)
		}
		rebuilt.Add(c)
	}
	if spec.Vars != nil {
		rebuilt.Vars = spec.Vars
	}
	rebuilt.ChosenCharacter = spec.ChosenCharacter
	rebuilt.ChosenNumber = spec.ChosenNumber
	rebuilt.LastBattle = spec.LastBattle
	rebuilt.PreviousLocation = spec.PreviousLocation
	rebuilt.Cards = spec.Cards
	*p = *rebuilt
	return nil
}
