package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"vaxtrack/internal/domain/user"
)

// ErrNoSession is returned when no identity is currently logged in.
var ErrNoSession = errors.New("no active session")

type Servicer interface {
	Current(ctx context.Context) (user.User, error)
	Clear(ctx context.Context) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "session_service"),
	}
}

// Current returns the logged-in identity.
func (s *Service) Current(ctx context.Context) (user.User, error) {
	u, err := s.repo.Get(ctx)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Clear logs the device out. Clearing an absent session is a no-op.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info("session cleared")
	return nil
}
