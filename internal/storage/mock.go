package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/battlepits/gamebook-engine/pkg/book"
)

// MockStore is an in-memory Store for testing.
type MockStore struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*Session
	books     map[int]*book.Book
	filenames map[string]*book.Book
	pingError error
}

var _ Store = (*MockStore)(nil)

// NewMockStore creates a new mock store.
func NewMockStore() *MockStore {
	return &MockStore{
		sessions:  make(map[uuid.UUID]*Session),
		books:     make(map[int]*book.Book),
		filenames: make(map[string]*book.Book),
	}
}

// SetPingError configures the mock to fail on ping with the given error.
func (m *MockStore) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// AddBook registers a book under a filename.
func (m *MockStore) AddBook(filename string, b *book.Book) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.books[b.Number] = b
	m.filenames[filename] = b
}

func (m *MockStore) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStore) WaitForConnection(ctx context.Context) error {
	return m.Ping(ctx)
}

// SessionCount reports how many sessions the mock holds.
func (m *MockStore) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MockStore) Close() error {
	return nil
}

func (m *MockStore) SaveSession(ctx context.Context, id uuid.UUID, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	return nil
}

func (m *MockStore) LoadSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id], nil
}

func (m *MockStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MockStore) ListBooks(ctx context.Context) (map[int]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[int]string, len(m.filenames))
	for filename, b := range m.filenames {
		out[b.Number] = filename
	}
	return out, nil
}

func (m *MockStore) GetBook(ctx context.Context, filename string) (*book.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.filenames[filename]
	if !ok {
		return nil, fmt.Errorf("book not found: %s", filename)
	}
	return b, nil
}
