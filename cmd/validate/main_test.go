package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/battlepits/gamebook-engine/pkg/book"
)

func validate(t *testing.T, b *book.Book) []string {
	t.Helper()
	v := &BookValidator{index: book.NewIndex(b)}
	v.validateBook(b)
	return v.errors
}

func TestValidatorAcceptsCleanBook(t *testing.T) {
	b := &book.Book{
		Number: 1,
		Sections: []book.Section{
			{
				ID:   1,
				Text: "Start.",
				Events: []book.RecordSchema{
					{Type: "GAIN_STATUS", Variables: []string{"ALL", "POISONED"}},
				},
				Next: []book.RecordSchema{
					{Type: "TEST_ATTRIBUTE", Variables: []string{"SAGE", "AWARENESS"},
						Location: &book.Location{Book: 1, Section: 2}},
				},
				Choices: []book.Choice{
					{Text: "Onward", Destination: book.Location{Book: 1, Section: 2}},
				},
			},
			{ID: 2, Text: "End."},
		},
	}

	assert.Empty(t, validate(t, b))
}

func TestValidatorFlagsUnknownOpcode(t *testing.T) {
	b := &book.Book{
		Number: 1,
		Sections: []book.Section{
			{ID: 1, Events: []book.RecordSchema{{Type: "EXPLODE"}}},
		},
	}

	errs := validate(t, b)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], `unknown opcode "EXPLODE"`)
}

func TestValidatorFlagsShortArity(t *testing.T) {
	b := &book.Book{
		Number: 1,
		Sections: []book.Section{
			{ID: 1, Events: []book.RecordSchema{
				{Type: "GAIN_STATUS", Variables: []string{"WARRIOR"}},
			}},
		},
	}

	errs := validate(t, b)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at least 2 arguments")
}

func TestValidatorFlagsDanglingBranch(t *testing.T) {
	b := &book.Book{
		Number: 1,
		Sections: []book.Section{
			{ID: 1, Next: []book.RecordSchema{
				{Type: "TEST_ATTRIBUTE", Variables: []string{"SAGE", "AWARENESS"},
					Location: &book.Location{Book: 9, Section: 9}},
			}},
		},
	}

	errs := validate(t, b)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "branch to missing")
}

func TestValidatorFlagsDuplicateSections(t *testing.T) {
	b := &book.Book{
		Number:   1,
		Sections: []book.Section{{ID: 1}, {ID: 1}},
	}

	errs := validate(t, b)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "duplicate section 1")
}

func TestValidatorFlagsDanglingChoice(t *testing.T) {
	b := &book.Book{
		Number: 1,
		Sections: []book.Section{
			{ID: 1, Choices: []book.Choice{
				{Text: "Leap", Destination: book.Location{Book: 1, Section: 50}},
			}},
		},
	}

	errs := validate(t, b)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "leads to missing")
}
