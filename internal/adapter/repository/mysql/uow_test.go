package mysql

import (
	"context"
	"errors"
	"testing"

	borrowerDomain "trustchain-backend/internal/domain/borrower"
	regionDomain "trustchain-backend/internal/domain/region"
	"trustchain-backend/internal/domain/uow"
	"trustchain-backend/pkg/id"
)

func TestWithinTx_BorrowerCascadeDelete(t *testing.T) {
	db := openTestDB(t)
	unit := NewGormUoW(db)
	ctx := context.Background()

	b := makeBorrower("Jean", "Uwimana", nil)
	mustCreate(t, db, b)
	mustCreate(t, db, &borrowerDomain.Transaction{BorrowerID: b.ID, TransactionDate: testDate(), Amount: 450, Type: "repayment"})
	mustCreate(t, db, &borrowerDomain.Document{DocumentID: id.NewID32(), BorrowerID: b.ID, Name: "id.pdf", Type: "identity", UploadDate: testDate()})

	err := unit.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Borrowers.DeleteTransactionsByBorrower(ctx, b.ID); err != nil {
			return err
		}
		if err := r.Borrowers.DeleteDocumentsByBorrower(ctx, b.ID); err != nil {
			return err
		}
		return r.Borrowers.Delete(ctx, b.ID)
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	var txns, docs int64
	db.Model(&borrowerDomain.Transaction{}).Where("borrower_id = ?", b.ID).Count(&txns)
	db.Model(&borrowerDomain.Document{}).Where("borrower_id = ?", b.ID).Count(&docs)
	if txns != 0 || docs != 0 {
		t.Fatalf("owned records survived the cascade: txns=%d docs=%d", txns, docs)
	}
}

func TestWithinTx_RollbackKeepsOwnedRecords(t *testing.T) {
	db := openTestDB(t)
	unit := NewGormUoW(db)
	ctx := context.Background()

	b := makeBorrower("Grace", "Mutesi", nil)
	mustCreate(t, db, b)
	mustCreate(t, db, &borrowerDomain.Transaction{BorrowerID: b.ID, TransactionDate: testDate(), Amount: 100, Type: "repayment"})

	boom := errors.New("boom")
	err := unit.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Borrowers.DeleteTransactionsByBorrower(ctx, b.ID); err != nil {
			return err
		}
		return boom // force rollback
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	var txns int64
	db.Model(&borrowerDomain.Transaction{}).Where("borrower_id = ?", b.ID).Count(&txns)
	if txns != 1 {
		t.Fatalf("rollback lost the transaction row: %d", txns)
	}
}

func TestWithinTx_RegionSetNullDelete(t *testing.T) {
	db := openTestDB(t)
	unit := NewGormUoW(db)
	ctx := context.Background()

	reg := &regionDomain.Region{Name: "Rwanda"}
	mustCreate(t, db, reg)
	b1 := makeBorrower("Jean", "Uwimana", &reg.ID)
	b2 := makeBorrower("Grace", "Mutesi", &reg.ID)
	mustCreate(t, db, b1)
	mustCreate(t, db, b2)

	err := unit.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Regions.NullifyBorrowers(ctx, reg.ID); err != nil {
			return err
		}
		return r.Regions.Delete(ctx, reg.ID)
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	// borrowers survive with a cleared region reference
	repo := NewBorrowerRepository(db)
	for _, bid := range []uint64{b1.ID, b2.ID} {
		got, err := repo.GetByID(ctx, bid)
		if err != nil {
			t.Fatalf("borrower %d deleted by region removal: %v", bid, err)
		}
		if got.RegionID != nil {
			t.Fatalf("borrower %d region_id not nulled: %+v", bid, got)
		}
	}
}
