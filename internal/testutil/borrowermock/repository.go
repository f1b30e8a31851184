package borrowermock

import (
	"context"

	domain "trustchain-backend/internal/domain/borrower"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only wire the methods a test needs; the rest return zero values.
type Repo struct {
	CreateFn                       func(ctx context.Context, b *domain.Borrower) error
	GetByIDFn                      func(ctx context.Context, id uint64) (*domain.Borrower, error)
	GetWithRegionFn                func(ctx context.Context, id uint64) (*domain.WithRegion, error)
	ListFn                         func(ctx context.Context, skip, limit int) ([]domain.WithRegion, error)
	SaveFn                         func(ctx context.Context, b *domain.Borrower) error
	DeleteFn                       func(ctx context.Context, id uint64) error
	CreateTransactionFn            func(ctx context.Context, t *domain.Transaction) error
	ListTransactionsFn             func(ctx context.Context, borrowerID uint64) ([]domain.Transaction, error)
	DeleteTransactionsByBorrowerFn func(ctx context.Context, borrowerID uint64) error
	CreateDocumentFn               func(ctx context.Context, d *domain.Document) error
	ListDocumentsFn                func(ctx context.Context, borrowerID uint64) ([]domain.Document, error)
	DeleteDocumentsByBorrowerFn    func(ctx context.Context, borrowerID uint64) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Borrower) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Borrower, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetWithRegion(ctx context.Context, id uint64) (*domain.WithRegion, error) {
	if m.GetWithRegionFn != nil {
		return m.GetWithRegionFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context, skip, limit int) ([]domain.WithRegion, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, skip, limit)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Borrower) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) CreateTransaction(ctx context.Context, t *domain.Transaction) error {
	if m.CreateTransactionFn != nil {
		return m.CreateTransactionFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListTransactions(ctx context.Context, borrowerID uint64) ([]domain.Transaction, error) {
	if m.ListTransactionsFn != nil {
		return m.ListTransactionsFn(ctx, borrowerID)
	}
	return nil, nil
}

func (m *Repo) DeleteTransactionsByBorrower(ctx context.Context, borrowerID uint64) error {
	if m.DeleteTransactionsByBorrowerFn != nil {
		return m.DeleteTransactionsByBorrowerFn(ctx, borrowerID)
	}
	return nil
}

func (m *Repo) CreateDocument(ctx context.Context, d *domain.Document) error {
	if m.CreateDocumentFn != nil {
		return m.CreateDocumentFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListDocuments(ctx context.Context, borrowerID uint64) ([]domain.Document, error) {
	if m.ListDocumentsFn != nil {
		return m.ListDocumentsFn(ctx, borrowerID)
	}
	return nil, nil
}

func (m *Repo) DeleteDocumentsByBorrower(ctx context.Context, borrowerID uint64) error {
	if m.DeleteDocumentsByBorrowerFn != nil {
		return m.DeleteDocumentsByBorrowerFn(ctx, borrowerID)
	}
	return nil
}
