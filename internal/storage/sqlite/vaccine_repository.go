package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"vaxtrack/internal/domain/vaccine"
)

// vaccinesKey is the KV entry holding the full vaccine collection.
const vaccinesKey = "vacinas"

type VaccineRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewVaccineRepository(db *Storage, log *slog.Logger) *VaccineRepository {
	return &VaccineRepository{db: db, log: log.With("component", "vaccine_repository")}
}

// Load reads the whole vaccine collection in insertion order. An absent
// key reads as an empty collection; an undecodable blob is ErrCorrupted.
func (r *VaccineRepository) Load(ctx context.Context) ([]vaccine.Vaccine, error) {
	raw, err := r.db.Get(ctx, vaccinesKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []vaccine.Vaccine
	if err := json.Unmarshal(raw, &records); err != nil {
		r.log.Error("vaccines blob is unreadable", "error", err)
		return nil, fmt.Errorf("%w: decode %q: %v", ErrCorrupted, vaccinesKey, err)
	}
	return records, nil
}

// Store overwrites the whole vaccine collection.
func (r *VaccineRepository) Store(ctx context.Context, records []vaccine.Vaccine) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %q: %w", vaccinesKey, err)
	}
	return r.db.Set(ctx, vaccinesKey, raw)
}
