package vaccine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Servicer interface {
	Upsert(ctx context.Context, in UpsertInput) (Vaccine, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter string) ([]Vaccine, error)
	NextDose(ctx context.Context, now time.Time) (*Vaccine, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		log:  log.With("component", "vaccine_service"),
	}
}

// Upsert validates the form and writes the record. A known ID replaces
// that record in place, keeping collection order; otherwise a new record
// is appended under a fresh ID.
func (s *Service) Upsert(ctx context.Context, in UpsertInput) (Vaccine, error) {
	if errs := Validate(in, s.now()); errs != nil {
		s.log.Debug("vaccine validation failed", "error", errs)
		return Vaccine{}, errs
	}

	records, err := s.repo.Load(ctx)
	if err != nil {
		return Vaccine{}, fmt.Errorf("load vaccines: %w", err)
	}

	rec := Vaccine{
		ID:        in.ID,
		Name:      strings.TrimSpace(in.Name),
		AppliedAt: in.Applied,
		NextDose:  in.NextDose,
	}

	replaced := false
	if rec.ID != "" {
		for i := range records {
			if records[i].ID == rec.ID {
				records[i] = rec
				replaced = true
				break
			}
		}
	}
	if !replaced {
		// an unmatched id is not trusted; appends always get a fresh one
		rec.ID = uuid.NewString()
		records = append(records, rec)
	}

	if err := s.repo.Store(ctx, records); err != nil {
		return Vaccine{}, fmt.Errorf("store vaccines: %w", err)
	}

	s.log.Info("vaccine saved", "id", rec.ID, "replaced", replaced)
	return rec, nil
}

// Delete removes the record with the given id and rewrites the
// collection. An unknown id is a no-op, not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load vaccines: %w", err)
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return nil
	}

	if err := s.repo.Store(ctx, kept); err != nil {
		return fmt.Errorf("store vaccines: %w", err)
	}

	s.log.Info("vaccine deleted", "id", id)
	return nil
}

// List returns the collection, optionally narrowed to records whose name
// contains filter case-insensitively. Relative order is preserved.
func (s *Service) List(ctx context.Context, filter string) ([]Vaccine, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vaccines: %w", err)
	}
	if filter == "" {
		return records, nil
	}

	needle := strings.ToLower(filter)
	var out []Vaccine
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out, nil
}

// NextDose returns the record with the soonest non-past next-dose date,
// or nil when nothing is scheduled.
func (s *Service) NextDose(ctx context.Context, now time.Time) (*Vaccine, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vaccines: %w", err)
	}
	return NextUpcoming(records, now), nil
}

// NextUpcoming scans records left to right for the earliest next-dose
// date on or after `now` (date-only). Ties keep the first record
// encountered. Records without a parseable next-dose date are skipped.
func NextUpcoming(records []Vaccine, now time.Time) *Vaccine {
	today := dateOnly(now)

	var best *Vaccine
	var bestDate time.Time
	for i := range records {
		d, ok := records[i].NextDoseDate()
		if !ok || d.Before(today) {
			continue
		}
		if best == nil || d.Before(bestDate) {
			best = &records[i]
			bestDate = d
		}
	}
	return best
}
