package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonBook = `{
  "number": 1,
  "title": "The Battlepits of Krarth",
  "sections": [
    {
      "id": 1,
      "text": "The tavern door creaks open.",
      "background": [
        {"type": "IN_PARTY", "variables": ["SAGE"], "invert": true}
      ],
      "next": [
        {"type": "TEST_ATTRIBUTE", "variables": ["SAGE", "AWARENESS"], "location": {"book": 1, "section": 40}}
      ],
      "choices": [
        {"text": "Enter", "destination": {"book": 1, "section": 2}}
      ]
    },
    {"id": 2, "text": "Inside."}
  ]
}`

const yamlBook = `number: 2
title: The Kingdom of Wyrd
sections:
  - id: 1
    text: Mist rolls across the moor.
    events:
      - type: GAIN_STATUS
        variables: [ALL, POISONED]
`

func writeBook(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	b, err := Load(writeBook(t, "book1.json", jsonBook))
	require.NoError(t, err)

	assert.Equal(t, 1, b.Number)
	assert.Equal(t, "The Battlepits of Krarth", b.Title)
	require.Len(t, b.Sections, 2)

	s, ok := b.Section(1)
	require.True(t, ok)
	require.Len(t, s.Background, 1)
	assert.Equal(t, "IN_PARTY", s.Background[0].Type)
	assert.True(t, s.Background[0].Invert)
	require.Len(t, s.Next, 1)
	require.NotNil(t, s.Next[0].Location)
	assert.Equal(t, Location{Book: 1, Section: 40}, *s.Next[0].Location)
	require.Len(t, s.Choices, 1)
	assert.Equal(t, Location{Book: 1, Section: 2}, s.Choices[0].Destination)
}

func TestLoadYAML(t *testing.T) {
	b, err := Load(writeBook(t, "book2.yaml", yamlBook))
	require.NoError(t, err)

	assert.Equal(t, 2, b.Number)
	s, ok := b.Section(1)
	require.True(t, ok)
	require.Len(t, s.Events, 1)
	assert.Equal(t, []string{"ALL", "POISONED"}, s.Events[0].Variables)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeBook(t, "book.txt", "not a book"))
	assert.ErrorContains(t, err, "unsupported book format")

	_, err = Load(writeBook(t, "broken.json", "{"))
	assert.Error(t, err)
}

func TestIndexResolveSection(t *testing.T) {
	b1, err := Load(writeBook(t, "book1.json", jsonBook))
	require.NoError(t, err)
	b2, err := Load(writeBook(t, "book2.yaml", yamlBook))
	require.NoError(t, err)

	idx := NewIndex(b1)
	idx.Add(b2)

	s, ok := idx.ResolveSection(Location{Book: 2, Section: 1})
	require.True(t, ok)
	assert.Equal(t, "Mist rolls across the moor.", s.Text)

	_, ok = idx.ResolveSection(Location{Book: 3, Section: 1})
	assert.False(t, ok)
	_, ok = idx.ResolveSection(Location{Book: 1, Section: 99})
	assert.False(t, ok)

	assert.ElementsMatch(t, []int{1, 2}, idx.Books())
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "book 2, section 47", Location{Book: 2, Section: 47}.String())
}
