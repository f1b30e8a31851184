package statsmock

import (
	"context"

	domain "trustchain-backend/internal/domain/stats"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GlobalFn     func(ctx context.Context) (*domain.GlobalStats, error)
	RegionRowsFn func(ctx context.Context) ([]domain.RegionStat, error)
}

func (m *Repo) Global(ctx context.Context) (*domain.GlobalStats, error) {
	if m.GlobalFn != nil {
		return m.GlobalFn(ctx)
	}
	return &domain.GlobalStats{}, nil
}

func (m *Repo) RegionRows(ctx context.Context) ([]domain.RegionStat, error) {
	if m.RegionRowsFn != nil {
		return m.RegionRowsFn(ctx)
	}
	return nil, nil
}
