package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Servicer interface {
	Register(ctx context.Context, in RegisterInput) (User, error)
	Login(ctx context.Context, rawCPF, password string) (User, error)
}

type Service struct {
	repo     Repository
	sessions SessionStore
	log      *slog.Logger
}

func NewService(repo Repository, sessions SessionStore, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		log:      log.With("component", "user_service"),
	}
}

// Register validates the form, appends a new identity and opens a session
// for it. Validation runs strictly before any store mutation, so a failed
// registration leaves both collections untouched.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	if errs := ValidateRegister(in); errs != nil {
		s.log.Debug("registration validation failed", "error", errs)
		return User{}, errs
	}

	cpf := NormalizeCPF(in.CPF)

	users, err := s.repo.Load(ctx)
	if err != nil {
		return User{}, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if u.CPF == cpf {
			return User{}, ErrAlreadyRegistered
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		CPF:          cpf,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
	}

	if err := s.repo.Store(ctx, append(users, u)); err != nil {
		return User{}, fmt.Errorf("store users: %w", err)
	}

	if err := s.sessions.Set(ctx, u); err != nil {
		return User{}, fmt.Errorf("open session: %w", err)
	}

	s.log.Info("user registered", "cpf", FormatCPF(cpf))
	return u, nil
}

// Login authenticates a CPF/password pair and overwrites the session with
// the matched identity. An unknown CPF and a wrong password both return
// ErrInvalidCredentials; callers cannot tell the two apart.
func (s *Service) Login(ctx context.Context, rawCPF, password string) (User, error) {
	cpf := NormalizeCPF(rawCPF)
	if err := ValidateCPF(cpf); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if password == "" {
		return User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	users, err := s.repo.Load(ctx)
	if err != nil {
		return User{}, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if u.CPF != cpf {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}
		if err := s.sessions.Set(ctx, u); err != nil {
			return User{}, fmt.Errorf("open session: %w", err)
		}
		s.log.Info("user logged in", "cpf", FormatCPF(cpf))
		return u, nil
	}

	return User{}, ErrInvalidCredentials
}
