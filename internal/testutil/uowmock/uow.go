package uowmock

import (
	"context"

	"trustchain-backend/internal/domain/uow"
)

// UoW runs the callback against the given repos with no real transaction.
// Tests observing rollback behavior should use the sqlite-backed GormUoW.
type UoW struct {
	Repos      uow.Repos
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func (u *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if u.WithinTxFn != nil {
		return u.WithinTxFn(ctx, fn)
	}
	return fn(u.Repos)
}
