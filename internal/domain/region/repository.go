package region

import "context"

type Repository interface {
	// GetByName matches the name exactly (case-sensitive).
	GetByName(ctx context.Context, name string) (*Region, error)
	GetByID(ctx context.Context, id uint64) (*Region, error)
	// Insert performs INSERT .. ON CONFLICT(name) DO NOTHING. When the row
	// already exists r.ID stays zero and the caller re-fetches by name.
	Insert(ctx context.Context, r *Region) error
	UpdateCoordinates(ctx context.Context, id uint64, lat, lon float64) error
	// Delete removes only the region row; nulling borrower references is
	// handled by the unit of work.
	Delete(ctx context.Context, id uint64) error
	// NullifyBorrowers clears region_id on every borrower in the region.
	NullifyBorrowers(ctx context.Context, id uint64) error
}
