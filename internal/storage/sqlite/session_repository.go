package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"vaxtrack/internal/domain/session"
	"vaxtrack/internal/domain/user"
)

// sessionKey is the single KV entry holding the logged-in identity.
// Login, logout and session reads all go through this one key; the
// original app cleared a differently spelled key on logout, which left
// sessions behind (see DESIGN.md).
const sessionKey = "userLogado"

type SessionRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewSessionRepository(db *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{db: db, log: log.With("component", "session_repository")}
}

// Get returns the logged-in identity, or session.ErrNoSession.
func (r *SessionRepository) Get(ctx context.Context) (user.User, error) {
	raw, err := r.db.Get(ctx, sessionKey)
	if errors.Is(err, ErrNotFound) {
		return user.User{}, session.ErrNoSession
	}
	if err != nil {
		return user.User{}, err
	}

	var u user.User
	if err := json.Unmarshal(raw, &u); err != nil {
		r.log.Error("session blob is unreadable", "error", err)
		return user.User{}, fmt.Errorf("%w: decode %q: %v", ErrCorrupted, sessionKey, err)
	}
	return u, nil
}

// Set overwrites the session value wholesale.
func (r *SessionRepository) Set(ctx context.Context, u user.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode %q: %w", sessionKey, err)
	}
	return r.db.Set(ctx, sessionKey, raw)
}

// Clear removes the session value. Clearing an absent session is a no-op.
func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.db.Delete(ctx, sessionKey)
}
