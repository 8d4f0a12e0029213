// Package book models gamebook content: books of numbered sections,
// each carrying narrative text, player choices and the declarative
// condition records that drive branching. Content is materialized from
// JSON or YAML authoring files once at load time.
package book

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location addresses a single section of a book.
type Location struct {
	Book    int `json:"book" yaml:"book"`
	Section int `json:"section" yaml:"section"`
}

func (l Location) String() string {
	return fmt.Sprintf("book %d, section %d", l.Book, l.Section)
}

// RecordSchema is the authoring-format shape of a condition record,
// exactly as it appears in book files. It is converted to a typed
// condition.Record during load; the engine never sees this form.
type RecordSchema struct {
	Type      string    `json:"type" yaml:"type"`
	Location  *Location `json:"location,omitempty" yaml:"location,omitempty"`
	Variables []string  `json:"variables,omitempty" yaml:"variables,omitempty"`
	Invert    bool      `json:"invert,omitempty" yaml:"invert,omitempty"`
}

// Choice is a player-selectable exit from a section.
type Choice struct {
	Text        string   `json:"text" yaml:"text"`
	Destination Location `json:"destination" yaml:"destination"`
}

// Section is one numbered passage of a book. Condition records attach in
// three lists, evaluated strictly in order by the narrative layer:
// background (before text), events (after text) and next (gating the
// destination).
type Section struct {
	ID         int            `json:"id" yaml:"id"`
	Text       string         `json:"text" yaml:"text"`
	Background []RecordSchema `json:"background,omitempty" yaml:"background,omitempty"`
	Events     []RecordSchema `json:"events,omitempty" yaml:"events,omitempty"`
	Next       []RecordSchema `json:"next,omitempty" yaml:"next,omitempty"`
	Choices    []Choice       `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// Book is an ordered collection of sections.
type Book struct {
	Number   int       `json:"number" yaml:"number"`
	Title    string    `json:"title" yaml:"title"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section returns the section with the given id.
func (b *Book) Section(id int) (*Section, bool) {
	for i := range b.Sections {
		if b.Sections[i].ID == id {
			return &b.Sections[i], true
		}
	}
	return nil, false
}

// Load reads a single book file. The extension selects the codec:
// .json, .yaml or .yml.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read book file: %w", err)
	}

	var b Book
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("failed to unmarshal book %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("failed to unmarshal book %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported book format: %s", path)
	}
	return &b, nil
}

// Index resolves locations across a set of loaded books. It is handed to
// the condition engine explicitly; nothing in the engine reaches for a
// global current-book.
type Index struct {
	books map[int]*Book
}

func NewIndex(books ...*Book) *Index {
	idx := &Index{books: make(map[int]*Book, len(books))}
	for _, b := range books {
		idx.books[b.Number] = b
	}
	return idx
}

// Add registers another book, replacing any previous book with the same
// number.
func (idx *Index) Add(b *Book) {
	idx.books[b.Number] = b
}

// ResolveSection looks a location up across all registered books.
func (idx *Index) ResolveSection(loc Location) (*Section, bool) {
	b, ok := idx.books[loc.Book]
	if !ok {
		return nil, false
	}
	return b.Section(loc.Section)
}

// Books returns the registered book numbers, unordered.
func (idx *Index) Books() []int {
	nums := make([]int, 0, len(idx.books))
	for n := range idx.books {
		nums = append(nums, n)
	}
	return nums
}
