package regionmock

import (
	"context"

	domain "trustchain-backend/internal/domain/region"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByNameFn         func(ctx context.Context, name string) (*domain.Region, error)
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Region, error)
	InsertFn            func(ctx context.Context, r *domain.Region) error
	UpdateCoordinatesFn func(ctx context.Context, id uint64, lat, lon float64) error
	DeleteFn            func(ctx context.Context, id uint64) error
	NullifyBorrowersFn  func(ctx context.Context, id uint64) error
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Region, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Region, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Insert(ctx context.Context, r *domain.Region) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, r)
	}
	return nil
}

func (m *Repo) UpdateCoordinates(ctx context.Context, id uint64, lat, lon float64) error {
	if m.UpdateCoordinatesFn != nil {
		return m.UpdateCoordinatesFn(ctx, id, lat, lon)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) NullifyBorrowers(ctx context.Context, id uint64) error {
	if m.NullifyBorrowersFn != nil {
		return m.NullifyBorrowersFn(ctx, id)
	}
	return nil
}
