package vaccine

import "context"

// Repository persists the full vaccine collection as one blob, in
// insertion order. Mutations load the whole collection, change it in
// memory and rewrite it wholesale.
type Repository interface {
	Load(ctx context.Context) ([]Vaccine, error)
	Store(ctx context.Context, records []Vaccine) error
}
