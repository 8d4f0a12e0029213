// Command validate checks book content files for authoring errors the
// engine would otherwise report at play time: unknown opcodes, argument
// lists below an opcode's minimum, branch destinations that do not
// resolve, and duplicate section IDs.
package main

import (
	"fmt"
	"os"

	"github.com/battlepits/gamebook-engine/pkg/book"
	"github.com/battlepits/gamebook-engine/pkg/condition"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <book.json|book.yaml> [more books...]\n", os.Args[0])
		os.Exit(1)
	}

	books := make([]*book.Book, 0, len(os.Args)-1)
	for _, filename := range os.Args[1:] {
		b, err := book.Load(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
		books = append(books, b)
	}

	v := &BookValidator{index: book.NewIndex(books...)}
	for i, b := range books {
		fmt.Printf("Validating %s...\n", os.Args[1+i])
		v.validateBook(b)
	}

	if len(v.errors) > 0 {
		fmt.Fprintf(os.Stderr, "Validation errors:\n")
		for _, e := range v.errors {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		os.Exit(1)
	}

	fmt.Println("Book content is valid!")
}

type BookValidator struct {
	index  *book.Index
	errors []string
}

func (v *BookValidator) addError(format string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *BookValidator) validateBook(b *book.Book) {
	seen := make(map[int]bool, len(b.Sections))
	for i := range b.Sections {
		s := &b.Sections[i]
		if seen[s.ID] {
			v.addError("book %d: duplicate section %d", b.Number, s.ID)
		}
		seen[s.ID] = true
		v.validateSection(b.Number, s)
	}
}

func (v *BookValidator) validateSection(bookNum int, s *book.Section) {
	at := func(list string) string {
		return fmt.Sprintf("book %d, section %d, %s", bookNum, s.ID, list)
	}

	v.validateRecords(at("background"), s.Background)
	v.validateRecords(at("events"), s.Events)
	v.validateRecords(at("next"), s.Next)

	for _, c := range s.Choices {
		if _, ok := v.index.ResolveSection(c.Destination); !ok {
			v.addError("%s: choice %q leads to missing %s", at("choices"), c.Text, c.Destination)
		}
	}
}

func (v *BookValidator) validateRecords(where string, schemas []book.RecordSchema) {
	for i, schema := range schemas {
		rec := condition.FromSchema(schema)
		if !condition.Known(rec.Opcode) {
			v.addError("%s, record %d: unknown opcode %q", where, i, schema.Type)
			continue
		}
		if min := condition.MinArgs(rec.Opcode); len(rec.Args) < min {
			v.addError("%s, record %d: %s requires at least %d arguments, got %d",
				where, i, rec.Opcode, min, len(rec.Args))
		}
		if rec.Branch != nil {
			if _, ok := v.index.ResolveSection(*rec.Branch); !ok {
				v.addError("%s, record %d: %s branch to missing %s",
					where, i, rec.Opcode, rec.Branch)
			}
		}
	}
}
