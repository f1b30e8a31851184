package uow

import (
	"context"

	"trustchain-backend/internal/domain/borrower"
	"trustchain-backend/internal/domain/region"
)

type Repos struct {
	Borrowers borrower.Repository
	Regions   region.Repository
}

// UnitOfWork scopes multi-table writes (borrower cascade delete, region
// set-null delete) to a single transaction.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
