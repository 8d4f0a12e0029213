package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battlepits/gamebook-engine/pkg/book"
	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

func setupTestStore(t *testing.T) *RedisStore {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store := NewRedisStore(mr.Addr(), t.TempDir(), logger)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func testParty(t *testing.T) *party.Party {
	t.Helper()
	p := party.New()
	c, err := party.NewCharacter(names.Warrior, "", map[names.Attribute]int{
		names.FightingProwess: 8,
		names.PsychicAbility:  6,
		names.Awareness:       7,
	}, 10, 2)
	require.NoError(t, err)
	c.AddItem(party.NewItem(names.MoneyPouch, 15))
	p.Add(c)
	p.SetVar("score", "3")
	p.LastBattle = party.BattleVictory
	return p
}

func TestSessionRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	s := NewSession(testParty(t), book.Location{Book: 1, Section: 1})
	require.NoError(t, store.SaveSession(ctx, s.ID, s))

	loaded, err := store.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, s.ID, loaded.ID)
	assert.Equal(t, book.Location{Book: 1, Section: 1}, loaded.Location)
	assert.False(t, loaded.UpdatedAt.IsZero(), "save stamps the session")

	warrior, ok := loaded.Party.Member(names.Warrior)
	require.True(t, ok)
	assert.True(t, warrior.Alive(), "the actor is rebuilt on load")
	assert.Equal(t, 15, warrior.Quantity(names.Gold))
	assert.Equal(t, "3", loaded.Party.GetVar("score"))
	assert.Equal(t, party.BattleVictory, loaded.Party.LastBattle)
}

func TestLoadSessionNotFound(t *testing.T) {
	store := setupTestStore(t)

	loaded, err := store.LoadSession(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded, "a missing session is not an error")
}

func TestDeleteSession(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	s := NewSession(testParty(t), book.Location{Book: 1, Section: 1})
	require.NoError(t, store.SaveSession(ctx, s.ID, s))
	require.NoError(t, store.DeleteSession(ctx, s.ID))

	loaded, err := store.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestPing(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestWaitForConnection(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.WaitForConnection(context.Background()),
		"returns immediately once the first ping succeeds")
}

func TestListAndGetBooks(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	dataDir := t.TempDir()
	booksDir := filepath.Join(dataDir, "books")
	require.NoError(t, os.MkdirAll(booksDir, 0o755))

	bookJSON := `{"number": 1, "title": "The Battlepits of Krarth", "sections": [{"id": 1, "text": "Start."}]}`
	require.NoError(t, os.WriteFile(filepath.Join(booksDir, "book1.json"), []byte(bookJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(booksDir, "notes.txt"), []byte("ignored"), 0o644))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store := NewRedisStore(mr.Addr(), dataDir, logger)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	books, err := store.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "book1.json"}, books)

	b, err := store.GetBook(ctx, "book1.json")
	require.NoError(t, err)
	assert.Equal(t, "The Battlepits of Krarth", b.Title)

	_, err = store.GetBook(ctx, "missing.json")
	assert.Error(t, err)
}
