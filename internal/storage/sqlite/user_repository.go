package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"vaxtrack/internal/domain/user"
)

// usersKey is the KV entry holding the full identity collection.
const usersKey = "users"

type UserRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewUserRepository(db *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log.With("component", "user_repository")}
}

// Load reads the whole identity collection. An absent key reads as an
// empty collection; an undecodable blob is ErrCorrupted.
func (r *UserRepository) Load(ctx context.Context) ([]user.User, error) {
	raw, err := r.db.Get(ctx, usersKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var users []user.User
	if err := json.Unmarshal(raw, &users); err != nil {
		r.log.Error("users blob is unreadable", "error", err)
		return nil, fmt.Errorf("%w: decode %q: %v", ErrCorrupted, usersKey, err)
	}
	return users, nil
}

// Store overwrites the whole identity collection.
func (r *UserRepository) Store(ctx context.Context, users []user.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode %q: %w", usersKey, err)
	}
	return r.db.Set(ctx, usersKey, raw)
}
