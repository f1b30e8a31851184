package region

import (
	"context"
	"errors"
	"log"

	regionDomain "trustchain-backend/internal/domain/region"
	"trustchain-backend/internal/domain/uow"
	"trustchain-backend/internal/infrastructure/geocode"
)

type Usecase struct {
	repo regionDomain.Repository
	geo  geocode.Geocoder
	uow  uow.UnitOfWork
}

func NewUsecase(r regionDomain.Repository, g geocode.Geocoder, u uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, geo: g, uow: u}
}

// ResolveOrCreate returns the single region row for name, creating it on
// first encounter. Caller-supplied coordinates win over stored ones
// (last-write-wins, both required). Geocoding is best-effort: any failure
// leaves the coordinates nil and never fails the resolution. A lone
// coordinate is never stored: on create the pair comes from geocoding
// instead, and on an existing row it leaves the stored pair untouched.
//
// The check-then-insert race is closed by the unique index on name: the
// insert is ON CONFLICT DO NOTHING, and a lost race falls back to reading
// the winner's row.
func (u *Usecase) ResolveOrCreate(ctx context.Context, name string, lat, lon *float64) (*regionDomain.Region, error) {
	existing, err := u.repo.GetByName(ctx, name)
	switch {
	case err == nil:
		if lat != nil && lon != nil {
			if err := u.repo.UpdateCoordinates(ctx, existing.ID, *lat, *lon); err != nil {
				return nil, err
			}
			existing.Latitude, existing.Longitude = lat, lon
		}
		return existing, nil
	case !errors.Is(err, regionDomain.ErrNotFound):
		return nil, err
	}

	if lat == nil || lon == nil {
		glat, glon, gerr := u.geo.Lookup(ctx, name)
		if gerr != nil {
			log.Printf("geocode %q failed, storing without coordinates: %v", name, gerr)
		} else {
			lat, lon = &glat, &glon
		}
	}

	reg := &regionDomain.Region{Name: name, Latitude: lat, Longitude: lon}
	if err := u.repo.Insert(ctx, reg); err != nil {
		return nil, err
	}
	if reg.ID == 0 {
		// lost the race to a concurrent caller
		return u.repo.GetByName(ctx, name)
	}
	return reg, nil
}

// Delete removes a region and clears the region reference on its borrowers
// in the same transaction. Borrowers themselves are never deleted here.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Regions.GetByID(ctx, id); err != nil {
			return err
		}
		if err := r.Regions.NullifyBorrowers(ctx, id); err != nil {
			return err
		}
		return r.Regions.Delete(ctx, id)
	})
}
