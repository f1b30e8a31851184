package mysql

import (
	"context"
	"errors"

	borrowerDomain "trustchain-backend/internal/domain/borrower"
	regionDomain "trustchain-backend/internal/domain/region"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RegionRepository struct{ db *gorm.DB }

func NewRegionRepository(db *gorm.DB) *RegionRepository { return &RegionRepository{db: db} }

func (r *RegionRepository) GetByName(ctx context.Context, name string) (*regionDomain.Region, error) {
	var out regionDomain.Region
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, regionDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *RegionRepository) GetByID(ctx context.Context, id uint64) (*regionDomain.Region, error) {
	var out regionDomain.Region
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, regionDomain.ErrNotFound
	}
	return &out, res.Error
}

// Insert relies on the unique index on name: a concurrent duplicate insert
// becomes a no-op and the caller observes reg.ID == 0.
func (r *RegionRepository) Insert(ctx context.Context, reg *regionDomain.Region) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(reg).Error
}

func (r *RegionRepository) UpdateCoordinates(ctx context.Context, id uint64, lat, lon float64) error {
	res := r.db.WithContext(ctx).
		Model(&regionDomain.Region{}).
		Where("id = ?", id).
		Updates(map[string]any{"latitude": lat, "longitude": lon})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return regionDomain.ErrNotFound
	}
	return nil
}

func (r *RegionRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&regionDomain.Region{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return regionDomain.ErrNotFound
	}
	return nil
}

func (r *RegionRepository) NullifyBorrowers(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&borrowerDomain.Borrower{}).
		Where("region_id = ?", id).
		Update("region_id", nil).Error
}
