package vaccine

import "time"

// Date layouts used by the persisted collection. Applied dates keep the
// localized DD/MM/YYYY form the registration form collects; next-dose
// dates are stored as ISO YYYY-MM-DD.
const (
	AppliedLayout  = "02/01/2006"
	NextDoseLayout = "2006-01-02"
)

// Vaccine is one vaccination entry of the device-wide logged-in user.
// JSON tags match the persisted layout of the `vacinas` collection.
type Vaccine struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	AppliedAt string `json:"data"`
	NextDose  string `json:"dataProximaDose,omitempty"`
}

// NextDoseDate parses the record's next-dose date. The second return is
// false when the record has no scheduled next dose or the stored value
// does not parse.
func (v Vaccine) NextDoseDate() (time.Time, bool) {
	if v.NextDose == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(NextDoseLayout, v.NextDose)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// UpsertInput carries the vaccine form fields. An empty ID means a new
// record; a known ID replaces that record in place.
type UpsertInput struct {
	ID       string
	Name     string
	Applied  string
	NextDose string
}
