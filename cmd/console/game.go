package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/battlepits/gamebook-engine/pkg/book"
	"github.com/battlepits/gamebook-engine/pkg/condition"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

// game walks the story graph: show the section, run its condition
// records, then follow a hard failure branch or the player's choice.
type game struct {
	svc      *uiServices
	idx      *book.Index
	party    *party.Party
	location book.Location
	program  *tea.Program
}

func (g *game) run() {
	for {
		sec, ok := g.idx.ResolveSection(g.location)
		if !ok {
			g.over(fmt.Sprintf("The story breaks off: %s does not exist.", g.location))
			return
		}

		if branch, jumped := g.evaluate(sec.Background); jumped {
			g.move(branch)
			continue
		}

		if sec.Text != "" {
			g.program.Send(transcriptMsg{
				text:  g.svc.MapTokens(g.party, sec.Text),
				style: lineNarrative,
			})
		}

		if branch, jumped := g.evaluate(sec.Events); jumped {
			g.move(branch)
			continue
		}

		if !g.party.Alive() {
			g.over("Your adventure ends here. The party has fallen.")
			return
		}

		if branch, jumped := g.evaluate(sec.Next); jumped {
			g.move(branch)
			continue
		}

		if len(sec.Choices) == 0 {
			g.over("THE END")
			return
		}

		options := make([]string, len(sec.Choices))
		for i, c := range sec.Choices {
			options[i] = c.Text
		}
		picks := g.svc.SelectIcons("WHAT WILL YOU DO?", options, 1, 1)
		if len(picks) == 0 || picks[0] < 0 || picks[0] >= len(sec.Choices) {
			g.over("Your adventure ends here.")
			return
		}
		g.move(sec.Choices[picks[0]].Destination)
	}
}

// evaluate runs one record list. It reports the first hard failure's
// branch; remaining records in the list are skipped, matching the
// record lists' gating role.
func (g *game) evaluate(schemas []book.RecordSchema) (book.Location, bool) {
	for _, rec := range condition.FromSchemas(schemas) {
		res := condition.Evaluate(g.svc, g.party, g.idx, rec)
		if res.Message != "" && !res.Success && !res.HardFail {
			g.program.Send(transcriptMsg{text: res.Message, style: lineNotice})
		}
		if res.HardFail && res.Branch != nil {
			if res.Message != "" {
				g.program.Send(transcriptMsg{text: res.Message, style: lineNotice})
			}
			return *res.Branch, true
		}
	}
	return book.Location{}, false
}

func (g *game) move(to book.Location) {
	g.party.PreviousLocation = g.location
	g.location = to
}

func (g *game) over(reason string) {
	g.program.Send(gameOverMsg{reason: reason})
}
