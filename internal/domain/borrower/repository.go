package borrower

import "context"

type Repository interface {
	Create(ctx context.Context, b *Borrower) error
	GetByID(ctx context.Context, id uint64) (*Borrower, error)
	// GetWithRegion joins the borrower with its region's name/coordinates.
	GetWithRegion(ctx context.Context, id uint64) (*WithRegion, error)
	// List returns a page in ascending-id order. Bounds are validated by the caller.
	List(ctx context.Context, skip, limit int) ([]WithRegion, error)
	Save(ctx context.Context, b *Borrower) error
	// Delete removes only the borrower row; owned records are handled by the unit of work.
	Delete(ctx context.Context, id uint64) error

	CreateTransaction(ctx context.Context, t *Transaction) error
	ListTransactions(ctx context.Context, borrowerID uint64) ([]Transaction, error)
	DeleteTransactionsByBorrower(ctx context.Context, borrowerID uint64) error

	CreateDocument(ctx context.Context, d *Document) error
	ListDocuments(ctx context.Context, borrowerID uint64) ([]Document, error)
	DeleteDocumentsByBorrower(ctx context.Context, borrowerID uint64) error
}
