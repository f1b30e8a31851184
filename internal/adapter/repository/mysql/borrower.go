package mysql

import (
	"context"
	"errors"

	borrowerDomain "trustchain-backend/internal/domain/borrower"

	"gorm.io/gorm"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) Create(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BorrowerRepository) Save(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BorrowerRepository) GetByID(ctx context.Context, id uint64) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, borrowerDomain.ErrNotFound
	}
	return &out, res.Error
}

// LEFT JOIN keeps borrowers without a region visible (region_id nullable).
const regionJoin = "LEFT JOIN regions ON regions.id = borrowers.region_id"

func (r *BorrowerRepository) GetWithRegion(ctx context.Context, id uint64) (*borrowerDomain.WithRegion, error) {
	var out borrowerDomain.WithRegion
	res := r.db.WithContext(ctx).
		Table("borrowers").
		Select("borrowers.*, regions.name AS region_name, regions.latitude AS region_latitude, regions.longitude AS region_longitude").
		Joins(regionJoin).
		Where("borrowers.id = ?", id).
		Take(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, borrowerDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *BorrowerRepository) List(ctx context.Context, skip, limit int) ([]borrowerDomain.WithRegion, error) {
	var out []borrowerDomain.WithRegion
	res := r.db.WithContext(ctx).
		Table("borrowers").
		Select("borrowers.*, regions.name AS region_name, regions.latitude AS region_latitude, regions.longitude AS region_longitude").
		Joins(regionJoin).
		Order("borrowers.id ASC").
		Offset(skip).
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *BorrowerRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&borrowerDomain.Borrower{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return borrowerDomain.ErrNotFound
	}
	return nil
}

func (r *BorrowerRepository) CreateTransaction(ctx context.Context, t *borrowerDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *BorrowerRepository) ListTransactions(ctx context.Context, borrowerID uint64) ([]borrowerDomain.Transaction, error) {
	var out []borrowerDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *BorrowerRepository) DeleteTransactionsByBorrower(ctx context.Context, borrowerID uint64) error {
	return r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Delete(&borrowerDomain.Transaction{}).Error
}

func (r *BorrowerRepository) CreateDocument(ctx context.Context, d *borrowerDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *BorrowerRepository) ListDocuments(ctx context.Context, borrowerID uint64) ([]borrowerDomain.Document, error) {
	var out []borrowerDomain.Document
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *BorrowerRepository) DeleteDocumentsByBorrower(ctx context.Context, borrowerID uint64) error {
	return r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Delete(&borrowerDomain.Document{}).Error
}
