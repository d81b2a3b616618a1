package sqlite

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaxtrack/internal/domain/session"
	"vaxtrack/internal/domain/user"
	"vaxtrack/internal/domain/vaccine"
)

func TestUserRepository_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	repo := NewUserRepository(s, slog.Default())
	ctx := context.Background()

	// absent key reads as an empty collection
	users, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	want := []user.User{
		{CPF: "12345678909", PasswordHash: "hash-a", Name: "Maria"},
		{CPF: "52998224725", PasswordHash: "hash-b"},
	}
	require.NoError(t, repo.Store(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserRepository_CorruptBlob(t *testing.T) {
	s := newTestStorage(t)
	repo := NewUserRepository(s, slog.Default())
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "users", []byte(`{not json`)))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestVaccineRepository_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	repo := NewVaccineRepository(s, slog.Default())
	ctx := context.Background()

	records, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	want := []vaccine.Vaccine{
		{ID: "a", Name: "Influenza", AppliedAt: "01/01/2024", NextDose: "2025-06-01"},
		{ID: "b", Name: "Hepatite B", AppliedAt: "15/03/2024"},
	}
	require.NoError(t, repo.Store(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVaccineRepository_PersistedShape(t *testing.T) {
	s := newTestStorage(t)
	repo := NewVaccineRepository(s, slog.Default())
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, []vaccine.Vaccine{
		{ID: "a", Name: "Influenza", AppliedAt: "01/01/2024", NextDose: "2025-06-01"},
	}))

	raw, err := s.Get(ctx, "vacinas")
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":"a","nome":"Influenza","data":"01/01/2024","dataProximaDose":"2025-06-01"}]`,
		string(raw))
}

func TestVaccineRepository_CorruptBlob(t *testing.T) {
	s := newTestStorage(t)
	repo := NewVaccineRepository(s, slog.Default())
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "vacinas", []byte(`not json at all`)))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestSessionRepository(t *testing.T) {
	s := newTestStorage(t)
	repo := NewSessionRepository(s, slog.Default())
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)

	u := user.User{CPF: "12345678909", PasswordHash: "hash", Name: "Maria"}
	require.NoError(t, repo.Set(ctx, u))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	// login overwrites the session wholesale
	other := user.User{CPF: "52998224725", PasswordHash: "hash2"}
	require.NoError(t, repo.Set(ctx, other))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, other, got)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)

	// clearing twice is a no-op
	assert.NoError(t, repo.Clear(ctx))
}

func TestSessionRepository_UsesSameKeyForSetAndClear(t *testing.T) {
	s := newTestStorage(t)
	repo := NewSessionRepository(s, slog.Default())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, user.User{CPF: "12345678909"}))

	raw, err := s.Get(ctx, "userLogado")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "12345678909")

	require.NoError(t, repo.Clear(ctx))
	_, err = s.Get(ctx, "userLogado")
	assert.ErrorIs(t, err, ErrNotFound)
}
