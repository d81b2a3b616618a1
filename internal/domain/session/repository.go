package session

import (
	"context"

	"vaxtrack/internal/domain/user"
)

// Repository persists the single device-wide session value. Set
// overwrites it wholesale, Clear removes it, Get returns the stored
// identity or ErrNoSession.
type Repository interface {
	Get(ctx context.Context) (user.User, error)
	Set(ctx context.Context, u user.User) error
	Clear(ctx context.Context) error
}
