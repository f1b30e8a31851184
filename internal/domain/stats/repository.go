package stats

import "context"

type Repository interface {
	// Global aggregates the whole borrower table in one read-committed query.
	Global(ctx context.Context) (*GlobalStats, error)
	// RegionRows returns unranked per-region aggregates over borrowers that
	// carry a computed risk tier; ranking is the usecase's job.
	RegionRows(ctx context.Context) ([]RegionStat, error)
}
