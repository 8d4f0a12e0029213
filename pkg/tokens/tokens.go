// Package tokens substitutes party state into narrative text. Authors
// write placeholders like [CHOSEN] or [var:gold_found]; the engine maps
// them just before the text reaches the player.
package tokens

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

var tokenPattern = regexp.MustCompile(`\[([A-Z_]+|var:[^\]\s]+)\]`)

var titleCaser = cases.Title(language.AmericanEnglish)

// Map replaces every recognized token in text with the corresponding
// party state. Unrecognized tokens pass through untouched so authoring
// mistakes stay visible.
func Map(p *party.Party, text string) string {
	if p == nil || !strings.Contains(text, "[") {
		return text
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		token := match[1 : len(match)-1]
		if value, ok := resolve(p, token); ok {
			return value
		}
		return match
	})
}

func resolve(p *party.Party, token string) (string, bool) {
	if name, ok := strings.CutPrefix(token, "var:"); ok {
		return p.GetVar(name), true
	}

	switch token {
	case "CHOSEN":
		if p.ChosenCharacter == names.ClassNone {
			return "", false
		}
		return titleCaser.String(strings.ToLower(string(p.ChosenCharacter))), true
	case "CHOSEN_NUMBER":
		return strconv.Itoa(p.ChosenNumber), true
	case "PARTY":
		return partyListing(p), true
	case "FIRST":
		first, ok := p.First()
		if !ok {
			return "", false
		}
		return titleCaser.String(strings.ToLower(string(first.Class))), true
	case "GOLD":
		return strconv.Itoa(p.Quantity(names.Gold)), true
	case "ARROWS":
		return strconv.Itoa(p.Quantity(names.Arrow)), true
	}

	// A bare class name token resolves to that member's display name,
	// title-cased for running prose.
	if cls := names.ToClass(token); cls != names.ClassNone {
		c, ok := p.Member(cls)
		if !ok {
			return "", false
		}
		name := c.Name
		if name == "" {
			name = string(c.Class)
		}
		return titleCaser.String(strings.ToLower(name)), true
	}
	return "", false
}

// partyListing names the living members as running prose: "the Warrior",
// "the Warrior and the Sage", "the Warrior, the Sage and the Enchanter".
func partyListing(p *party.Party) string {
	living := p.Living()
	parts := make([]string, len(living))
	for i, c := range living {
		parts[i] = "the " + titleCaser.String(strings.ToLower(string(c.Class)))
	}
	switch len(parts) {
	case 0:
		return "no one"
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}
