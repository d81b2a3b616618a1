package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vaxtrack/internal/config"
	"vaxtrack/internal/domain/session"
	"vaxtrack/internal/domain/user"
	"vaxtrack/internal/domain/vaccine"
	"vaxtrack/internal/storage/sqlite"
)

// App wires the storage, repositories and services together and is the
// single entry point the CLI commands talk to.
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	db       *sqlite.Storage
	users    user.Servicer
	vaccines vaccine.Servicer
	sessions session.Servicer
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	db, err := sqlite.New(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	sessionRepo := sqlite.NewSessionRepository(db, log)

	return &App{
		cfg:      cfg,
		log:      log,
		db:       db,
		users:    user.NewService(sqlite.NewUserRepository(db, log), sessionRepo, log),
		vaccines: vaccine.NewService(sqlite.NewVaccineRepository(db, log), log),
		sessions: session.NewService(sessionRepo, log),
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Register creates a new identity and opens a session for it.
func (a *App) Register(ctx context.Context, in user.RegisterInput) (user.User, error) {
	return a.users.Register(ctx, in)
}

// Login authenticates and opens a session.
func (a *App) Login(ctx context.Context, cpf, password string) (user.User, error) {
	return a.users.Login(ctx, cpf, password)
}

// Logout clears the device-wide session.
func (a *App) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

// CurrentUser returns the logged-in identity, or session.ErrNoSession.
func (a *App) CurrentUser(ctx context.Context) (user.User, error) {
	return a.sessions.Current(ctx)
}

// UpsertVaccine creates or replaces a vaccine record.
func (a *App) UpsertVaccine(ctx context.Context, in vaccine.UpsertInput) (vaccine.Vaccine, error) {
	return a.vaccines.Upsert(ctx, in)
}

// DeleteVaccine removes a record by id; unknown ids are a no-op.
func (a *App) DeleteVaccine(ctx context.Context, id string) error {
	return a.vaccines.Delete(ctx, id)
}

// ListVaccines returns the records, optionally filtered by name.
func (a *App) ListVaccines(ctx context.Context, filter string) ([]vaccine.Vaccine, error) {
	return a.vaccines.List(ctx, filter)
}

// NextDose returns the soonest upcoming dose, or nil.
func (a *App) NextDose(ctx context.Context) (*vaccine.Vaccine, error) {
	return a.vaccines.NextDose(ctx, time.Now())
}
