package borrower

import (
	"context"
	"errors"
	"fmt"
	"time"

	borrowerDomain "trustchain-backend/internal/domain/borrower"
	regionDomain "trustchain-backend/internal/domain/region"
	"trustchain-backend/internal/domain/uow"
	"trustchain-backend/internal/usecase/scoring"
	"trustchain-backend/pkg/id"
)

const maxPageSize = 1000

// RegionResolver is the get-or-create capability consumed during onboarding.
type RegionResolver interface {
	ResolveOrCreate(ctx context.Context, name string, lat, lon *float64) (*regionDomain.Region, error)
}

// Scorer evaluates a feature vector when one is attached to the application.
type Scorer interface {
	Evaluate(ctx context.Context, in scoring.FeatureInput) (*scoring.Evaluation, error)
}

type Usecase struct {
	repo     borrowerDomain.Repository
	resolver RegionResolver
	scorer   Scorer
	uow      uow.UnitOfWork
}

func NewUsecase(r borrowerDomain.Repository, res RegionResolver, s Scorer, u uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, resolver: res, scorer: s, uow: u}
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD: %w", field, err)
	}
	return t, nil
}

func validDecision(d string) bool {
	switch borrowerDomain.Decision(d) {
	case borrowerDomain.DecisionPending, borrowerDomain.DecisionApproved, borrowerDomain.DecisionDenied:
		return true
	}
	return false
}

func (u *Usecase) Create(ctx context.Context, in CreateBorrowerInput) (*BorrowerDTO, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, errors.New("first_name and last_name are required")
	}
	if in.LoanAmount != nil && *in.LoanAmount < 0 {
		return nil, errors.New("loan_amount must not be negative")
	}
	loanDate, err := parseDate("loan_date", in.LoanDate)
	if err != nil {
		return nil, err
	}
	decision := borrowerDomain.DecisionPending
	if in.Decision != "" {
		if !validDecision(in.Decision) {
			return nil, fmt.Errorf("decision must be one of Pending/Approved/Denied, got %q", in.Decision)
		}
		decision = borrowerDomain.Decision(in.Decision)
	}

	b := &borrowerDomain.Borrower{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		LoanAmount: in.LoanAmount,
		LoanDate:   loanDate,
		Decision:   decision,
	}

	var reg *regionDomain.Region
	if in.RegionName != nil && *in.RegionName != "" {
		reg, err = u.resolver.ResolveOrCreate(ctx, *in.RegionName, in.Latitude, in.Longitude)
		if err != nil {
			return nil, err
		}
		b.RegionID = &reg.ID
	}

	// Score and region fields land together with the insert: the stored
	// credit score only ever derives from the stored probability.
	if in.Features != nil {
		ev, err := u.scorer.Evaluate(ctx, *in.Features)
		if err != nil {
			return nil, err
		}
		b.ProbabilityOfDefault = &ev.Probability
		b.CreditScore = &ev.CreditScore
		rl := ev.RiskLevel
		b.RiskLevel = &rl
	}

	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	w := &borrowerDomain.WithRegion{Borrower: *b}
	if reg != nil {
		w.RegionName = &reg.Name
		w.RegionLatitude = reg.Latitude
		w.RegionLongitude = reg.Longitude
	}
	return toDTO(w), nil
}

// List validates the pagination window before touching the store:
// skip >= 0, 1 <= limit <= 1000. Ordering is ascending id.
func (u *Usecase) List(ctx context.Context, skip, limit int) ([]BorrowerDTO, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must be >= 0", borrowerDomain.ErrInvalidPage)
	}
	if limit < 1 || limit > maxPageSize {
		return nil, fmt.Errorf("%w: limit must be in [1, %d]", borrowerDomain.ErrInvalidPage, maxPageSize)
	}
	rows, err := u.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	out := make([]BorrowerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, borrowerID uint64) (*BorrowerDTO, error) {
	w, err := u.repo.GetWithRegion(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return toDTO(w), nil
}

// Delete removes the borrower and everything it owns in one transaction.
// Transactions and documents cannot outlive their borrower.
func (u *Usecase) Delete(ctx context.Context, borrowerID uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Borrowers.GetByID(ctx, borrowerID); err != nil {
			return err
		}
		if err := r.Borrowers.DeleteTransactionsByBorrower(ctx, borrowerID); err != nil {
			return err
		}
		if err := r.Borrowers.DeleteDocumentsByBorrower(ctx, borrowerID); err != nil {
			return err
		}
		return r.Borrowers.Delete(ctx, borrowerID)
	})
}

func (u *Usecase) Transactions(ctx context.Context, borrowerID uint64) ([]borrowerDomain.Transaction, error) {
	if _, err := u.repo.GetByID(ctx, borrowerID); err != nil {
		return nil, err
	}
	return u.repo.ListTransactions(ctx, borrowerID)
}

func (u *Usecase) AddTransaction(ctx context.Context, borrowerID uint64, in AddTransactionInput) (*borrowerDomain.Transaction, error) {
	if _, err := u.repo.GetByID(ctx, borrowerID); err != nil {
		return nil, err
	}
	txDate, err := parseDate("transaction_date", in.TransactionDate)
	if err != nil {
		return nil, err
	}
	if in.Type == "" {
		return nil, errors.New("type is required")
	}
	t := &borrowerDomain.Transaction{
		BorrowerID:      borrowerID,
		TransactionDate: txDate,
		Amount:          in.Amount,
		Type:            in.Type,
	}
	if err := u.repo.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (u *Usecase) Documents(ctx context.Context, borrowerID uint64) ([]borrowerDomain.Document, error) {
	if _, err := u.repo.GetByID(ctx, borrowerID); err != nil {
		return nil, err
	}
	return u.repo.ListDocuments(ctx, borrowerID)
}

func (u *Usecase) AddDocument(ctx context.Context, borrowerID uint64, in AddDocumentInput) (*borrowerDomain.Document, error) {
	if _, err := u.repo.GetByID(ctx, borrowerID); err != nil {
		return nil, err
	}
	uploadDate, err := parseDate("upload_date", in.UploadDate)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.Type == "" {
		return nil, errors.New("name and type are required")
	}
	d := &borrowerDomain.Document{
		DocumentID: id.NewID32(),
		BorrowerID: borrowerID,
		Name:       in.Name,
		Type:       in.Type,
		UploadDate: uploadDate,
	}
	if err := u.repo.CreateDocument(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
