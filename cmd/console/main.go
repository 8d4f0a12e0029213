// Command console plays a gamebook in the terminal. It hosts the
// condition engine behind a BubbleTea UI: the engine runs in its own
// goroutine and blocks on player prompts, which the UI answers.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/battlepits/gamebook-engine/internal/config"
	"github.com/battlepits/gamebook-engine/internal/logger"
	"github.com/battlepits/gamebook-engine/internal/resolver"
	"github.com/battlepits/gamebook-engine/internal/storage"
	"github.com/battlepits/gamebook-engine/pkg/book"
	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg)

	store := storage.NewRedisStore(cfg.RedisURL, cfg.DataDir, log)
	defer func() {
		_ = store.Close()
	}()

	idx, start, err := loadLibrary(context.Background(), store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load books under %s/books: %v\n", cfg.DataDir, err)
		os.Exit(1)
	}

	p, err := startingParty()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build party: %v\n", err)
		os.Exit(1)
	}

	res := resolver.New(rand.Uint64(), log)
	ui := newPlayerUI(p)
	program := tea.NewProgram(ui, tea.WithAltScreen(), tea.WithMouseCellMotion())

	svc := newUIServices(program, res, p, idx, log)
	game := &game{svc: svc, idx: idx, party: p, location: start, program: program}
	go game.run()

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	saveSession(store, p, game.location, log)
}

// loadLibrary indexes every book the store knows and picks the starting
// location: the first section of the lowest-numbered book.
func loadLibrary(ctx context.Context, store storage.Store) (*book.Index, book.Location, error) {
	files, err := store.ListBooks(ctx)
	if err != nil {
		return nil, book.Location{}, err
	}
	if len(files) == 0 {
		return nil, book.Location{}, fmt.Errorf("no books found")
	}

	idx := book.NewIndex()
	start := book.Location{}
	for number, filename := range files {
		b, err := store.GetBook(ctx, filename)
		if err != nil {
			return nil, book.Location{}, fmt.Errorf("failed to load book %s: %w", filename, err)
		}
		idx.Add(b)
		if start.Book == 0 || number < start.Book {
			start = book.Location{Book: number, Section: firstSectionID(b)}
		}
	}
	return idx, start, nil
}

// saveSession persists the final party state, best effort. A missing
// Redis is not an error worth failing the exit for.
func saveSession(store storage.Store, p *party.Party, loc book.Location, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := store.WaitForConnection(ctx); err != nil {
		logger.WithError(log, err).Debug("Skipping session save")
		return
	}
	s := storage.NewSession(p, loc)
	sessionLog := logger.WithSessionID(log, s.ID.String())
	if err := store.SaveSession(ctx, s.ID, s); err != nil {
		logger.WithError(sessionLog, err).Warn("Failed to save session")
		return
	}
	sessionLog.Info("Session saved")
}

func firstSectionID(b *book.Book) int {
	if len(b.Sections) == 0 {
		return 0
	}
	first := b.Sections[0].ID
	for _, s := range b.Sections[1:] {
		if s.ID < first {
			first = s.ID
		}
	}
	return first
}

// startingParty builds the standard four adventurers.
func startingParty() (*party.Party, error) {
	p := party.New()
	specs := []struct {
		class     names.Class
		fighting  int
		psychic   int
		awareness int
		endurance int
		armour    int
	}{
		{names.Warrior, 8, 6, 6, 12, 3},
		{names.Trickster, 7, 6, 8, 10, 2},
		{names.Sage, 7, 7, 7, 10, 2},
		{names.Enchanter, 5, 9, 6, 10, 1},
	}
	for _, s := range specs {
		c, err := party.NewCharacter(s.class, "", map[names.Attribute]int{
			names.FightingProwess: s.fighting,
			names.PsychicAbility:  s.psychic,
			names.Awareness:       s.awareness,
		}, s.endurance, s.armour)
		if err != nil {
			return nil, err
		}
		p.Add(c)
	}
	warrior, _ := p.Member(names.Warrior)
	warrior.AddItem(party.NewItem(names.Sword, 0))
	warrior.AddItem(party.NewItem(names.MoneyPouch, 10))
	trickster, _ := p.Member(names.Trickster)
	trickster.AddItem(party.NewItem(names.Dagger, 0))
	trickster.AddItem(party.NewItem(names.Bow, 0))
	trickster.AddItem(party.NewItem(names.Quiver, 6))
	return p, nil
}
