// Package storage persists play sessions in Redis and loads static book
// content from the filesystem.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/battlepits/gamebook-engine/pkg/book"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

// Session is one saved playthrough: the party aggregate plus where the
// narrative currently stands.
type Session struct {
	ID        uuid.UUID     `json:"id"`
	Party     *party.Party  `json:"party"`
	Location  book.Location `json:"location"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewSession starts a fresh session at the given location.
func NewSession(p *party.Party, loc book.Location) *Session {
	return &Session{
		ID:        uuid.New(),
		Party:     p,
		Location:  loc,
		CreatedAt: time.Now(),
	}
}

// Store combines session persistence (Redis) with book content loading
// (filesystem).
type Store interface {
	Ping(ctx context.Context) error
	WaitForConnection(ctx context.Context) error
	Close() error

	SaveSession(ctx context.Context, id uuid.UUID, s *Session) error
	LoadSession(ctx context.Context, id uuid.UUID) (*Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// ListBooks maps book numbers to their filenames under the data
	// directory.
	ListBooks(ctx context.Context) (map[int]string, error)
	GetBook(ctx context.Context, filename string) (*book.Book, error)
}
