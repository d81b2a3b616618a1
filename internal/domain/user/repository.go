package user

import "context"

// Repository persists the full identity collection as one blob. Mutations
// follow the load-all, modify, store-all discipline; there are no
// point updates.
type Repository interface {
	Load(ctx context.Context) ([]User, error)
	Store(ctx context.Context, users []User) error
}

// SessionStore is the slice of the session layer the user service needs:
// overwriting the device-wide logged-in identity after a successful
// registration or login.
type SessionStore interface {
	Set(ctx context.Context, u User) error
}
