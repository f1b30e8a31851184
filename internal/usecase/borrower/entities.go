package borrower

import (
	"time"

	borrowerDomain "trustchain-backend/internal/domain/borrower"
	"trustchain-backend/internal/usecase/scoring"
)

type CreateBorrowerInput struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      *string  `json:"email,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	LoanAmount *float64 `json:"loan_amount,omitempty"`
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	LoanDate string `json:"loan_date"`
	Decision string `json:"decision,omitempty"`

	// Region resolution: name plus optional caller-supplied coordinates.
	RegionName *string  `json:"region_name,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`

	// When present the borrower is scored at creation time.
	Features *scoring.FeatureInput `json:"features,omitempty"`
}

type BorrowerDTO struct {
	BorrowerID           uint64                    `json:"borrower_id"`
	FirstName            string                    `json:"first_name"`
	LastName             string                    `json:"last_name"`
	Email                *string                   `json:"email,omitempty"`
	Phone                *string                   `json:"phone,omitempty"`
	LoanAmount           *float64                  `json:"loan_amount,omitempty"`
	LoanDate             string                    `json:"loan_date"`
	Decision             string                    `json:"decision"`
	RegionID             *uint64                   `json:"region_id,omitempty"`
	RegionName           *string                   `json:"region_name,omitempty"`
	RegionLatitude       *float64                  `json:"region_latitude,omitempty"`
	RegionLongitude      *float64                  `json:"region_longitude,omitempty"`
	CreditScore          *int                      `json:"credit_score,omitempty"`
	RiskLevel            *borrowerDomain.RiskLevel `json:"risk_level,omitempty"`
	ProbabilityOfDefault *float64                  `json:"probability_of_default,omitempty"`
	CreatedAt            time.Time                 `json:"created_at"`
}

type AddTransactionInput struct {
	TransactionDate string  `json:"transaction_date"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
}

type AddDocumentInput struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	UploadDate string `json:"upload_date"`
}

const dateLayout = "2006-01-02"

func toDTO(w *borrowerDomain.WithRegion) *BorrowerDTO {
	return &BorrowerDTO{
		BorrowerID:           w.ID,
		FirstName:            w.FirstName,
		LastName:             w.LastName,
		Email:                w.Email,
		Phone:                w.Phone,
		LoanAmount:           w.LoanAmount,
		LoanDate:             w.LoanDate.Format(dateLayout),
		Decision:             string(w.Decision),
		RegionID:             w.RegionID,
		RegionName:           w.RegionName,
		RegionLatitude:       w.RegionLatitude,
		RegionLongitude:      w.RegionLongitude,
		CreditScore:          w.CreditScore,
		RiskLevel:            w.RiskLevel,
		ProbabilityOfDefault: w.ProbabilityOfDefault,
		CreatedAt:            w.CreatedAt,
	}
}
