package borrower

import (
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("borrower not found")
	ErrInvalidPage = errors.New("invalid pagination window")
)

type Decision string

const (
	DecisionPending  Decision = "Pending"
	DecisionApproved Decision = "Approved"
	DecisionDenied   Decision = "Denied"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type Borrower struct {
	ID          uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"borrower_id"`
	FirstName   string     `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName    string     `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Email       *string    `gorm:"column:email;size:150;uniqueIndex:ux_borrowers_email" json:"email,omitempty"`
	Phone       *string    `gorm:"column:phone;size:20" json:"phone,omitempty"`
	LoanAmount  *float64   `gorm:"column:loan_amount;type:decimal(18,2)" json:"loan_amount,omitempty"`
	LoanDate    time.Time  `gorm:"column:loan_date;type:date" json:"loan_date"`
	Decision    Decision   `gorm:"column:decision;size:20;default:'Pending'" json:"decision"`
	RegionID    *uint64    `gorm:"column:region_id;index:idx_borrowers_region" json:"region_id,omitempty"`
	CreditScore *int       `gorm:"column:credit_score" json:"credit_score,omitempty"`
	RiskLevel   *RiskLevel `gorm:"column:risk_level;size:20" json:"risk_level,omitempty"`
	// Unrounded model output; credit_score is always derived from it.
	ProbabilityOfDefault *float64  `gorm:"column:probability_of_default" json:"probability_of_default,omitempty"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Borrower) TableName() string { return "borrowers" }

// WithRegion is a borrower row joined with its region's denormalized attributes.
type WithRegion struct {
	Borrower
	RegionName      *string  `json:"region_name,omitempty"`
	RegionLatitude  *float64 `json:"region_latitude,omitempty"`
	RegionLongitude *float64 `json:"region_longitude,omitempty"`
}

type Transaction struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"transaction_id"`
	BorrowerID      uint64    `gorm:"column:borrower_id;not null;index:idx_transactions_borrower" json:"borrower_id"`
	TransactionDate time.Time `gorm:"column:transaction_date;type:date;not null" json:"transaction_date"`
	Amount          float64   `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	Type            string    `gorm:"column:type;size:50;not null" json:"type"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }

type Document struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	DocumentID string    `gorm:"column:document_id;type:char(32);not null;uniqueIndex:ux_documents_document_id" json:"document_id"`
	BorrowerID uint64    `gorm:"column:borrower_id;not null;index:idx_documents_borrower" json:"borrower_id"`
	Name       string    `gorm:"column:name;size:255;not null" json:"name"`
	Type       string    `gorm:"column:type;size:50;not null" json:"type"`
	UploadDate time.Time `gorm:"column:upload_date;type:date;not null" json:"upload_date"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Document) TableName() string { return "documents" }
