package vaccine

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	appliedPattern  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	nextDosePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseAppliedDate parses a strict DD/MM/YYYY applied-on date: two-digit
// day and month, four-digit year, a real calendar date, and not after
// `now` (date-only comparison).
func ParseAppliedDate(s string, now time.Time) (time.Time, error) {
	if !appliedPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("date must be in DD/MM/YYYY format")
	}
	// time.Parse alone is too lenient about digit counts, hence the
	// regexp gate above
	t, err := time.Parse(AppliedLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date is not a valid calendar date")
	}
	if t.After(dateOnly(now)) {
		return time.Time{}, fmt.Errorf("date cannot be in the future")
	}
	return t, nil
}

// ParseNextDoseDate parses a strict ISO YYYY-MM-DD next-dose date.
// Future dates are allowed; that is the point of a schedule.
func ParseNextDoseDate(s string) (time.Time, error) {
	if !nextDosePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("next dose must be in YYYY-MM-DD format")
	}
	t, err := time.Parse(NextDoseLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("next dose is not a valid calendar date")
	}
	return t, nil
}

// Validate checks the upsert form against `now`. Name and dates are
// checked independently and every failure is reported.
func Validate(in UpsertInput, now time.Time) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}

	if in.Applied == "" {
		errs["date"] = "date is required"
	} else if _, err := ParseAppliedDate(in.Applied, now); err != nil {
		errs["date"] = err.Error()
	}

	if in.NextDose != "" {
		if _, err := ParseNextDoseDate(in.NextDose); err != nil {
			errs["next_dose"] = err.Error()
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
