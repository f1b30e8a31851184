package scoring

import borrowerDomain "trustchain-backend/internal/domain/borrower"

// FeatureInput carries the fixed feature vector the classifier was trained
// on. Pointer fields distinguish "missing" from a legitimate zero. JSON
// names are kept for compatibility with existing clients.
type FeatureInput struct {
	CreditLimit       *float64 `json:"LIMIT_BAL"`
	Age               *float64 `json:"AGE"`
	AvgPayDelay       *float64 `json:"avg_pay_delay"`
	CreditUtilization *float64 `json:"credit_utilization"`
	PaymentRatio      *float64 `json:"payment_ratio"`
}

// Evaluation is the internal scoring result. Probability is unrounded;
// persistence and comparisons use this, presentation uses ScoreDTO.
type Evaluation struct {
	Probability float64
	CreditScore int
	RiskLevel   borrowerDomain.RiskLevel
}

type ScoreDTO struct {
	// Probability of default, rounded to 2 decimals for presentation only.
	PD          float64                  `json:"PD"`
	CreditScore int                      `json:"Credit_Score"`
	RiskLevel   borrowerDomain.RiskLevel `json:"Risk_Level"`
}
