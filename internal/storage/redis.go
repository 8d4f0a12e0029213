package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/battlepits/gamebook-engine/pkg/book"
)

// sessionTTL is how long an idle session survives in Redis.
const sessionTTL = 24 * time.Hour

// RedisStore implements Store using Redis for sessions and the
// filesystem for book content.
type RedisStore struct {
	client  *redis.Client
	logger  *slog.Logger
	dataDir string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a new Redis store instance.
func NewRedisStore(redisURL string, dataDir string, logger *slog.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	if dataDir == "" {
		dataDir = "./data"
	}

	return &RedisStore{
		client:  rdb,
		logger:  logger,
		dataDir: dataDir,
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available during startup.
func (r *RedisStore) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// Session operations (Redis-backed)

func sessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}

func (r *RedisStore) SaveSession(ctx context.Context, id uuid.UUID, s *Session) error {
	s.UpdatedAt = time.Now()

	data, err := json.Marshal(s)
	if err != nil {
		r.logger.Error("Failed to marshal session", "uuid", id, "error", err)
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(id), string(data), sessionTTL).Err(); err != nil {
		r.logger.Error("Failed to save session", "uuid", id, "error", err)
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *RedisStore) LoadSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	cmd := r.client.Get(ctx, sessionKey(id))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Warn("Session not found", "uuid", id)
			return nil, nil
		}
		r.logger.Error("Failed to load session", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(cmd.Val()), &s); err != nil {
		r.logger.Error("Failed to unmarshal session", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &s, nil
}

func (r *RedisStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		r.logger.Error("Failed to delete session", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Book operations (filesystem-backed)

func isBookFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func (r *RedisStore) ListBooks(ctx context.Context) (map[int]string, error) {
	booksDir := filepath.Join(r.dataDir, "books")
	books := make(map[int]string)

	err := filepath.WalkDir(booksDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isBookFile(path) {
			return nil
		}

		b, err := book.Load(path)
		if err != nil {
			r.logger.Warn("Failed to load book file", "path", path, "error", err)
			return nil
		}

		books[b.Number] = filepath.Base(path)
		return nil
	})

	if err != nil {
		r.logger.Error("Failed to walk books directory", "error", err)
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return books, nil
}

func (r *RedisStore) GetBook(ctx context.Context, filename string) (*book.Book, error) {
	path := filepath.Join(r.dataDir, "books", filename)
	b, err := book.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load book %s: %w", filename, err)
	}
	return b, nil
}
