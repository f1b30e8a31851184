package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrUnavailable means the model artifact could not be loaded. Treated as
// fatal at startup; surfaces as 503 if scoring is somehow reached without it.
var ErrUnavailable = errors.New("scoring model unavailable")

// Features is the fixed vector the artifact was trained on.
type Features struct {
	CreditLimit       float64
	Age               float64
	AvgPayDelay       float64
	CreditUtilization float64
	PaymentRatio      float64
}

type artifact struct {
	Intercept float64 `json:"intercept"`
	Weights   struct {
		CreditLimit       float64 `json:"limit_bal"`
		Age               float64 `json:"age"`
		AvgPayDelay       float64 `json:"avg_pay_delay"`
		CreditUtilization float64 `json:"credit_utilization"`
		PaymentRatio      float64 `json:"payment_ratio"`
	} `json:"weights"`
}

// Logistic is a pre-trained logistic-regression classifier loaded from a
// JSON artifact. The training pipeline lives elsewhere; this only predicts.
type Logistic struct {
	art artifact
}

func LoadLogistic(path string) (*Logistic, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, path, err)
	}
	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, path, err)
	}
	return &Logistic{art: art}, nil
}

// PredictProbability returns the probability of default in (0,1).
func (m *Logistic) PredictProbability(f Features) float64 {
	z := m.art.Intercept +
		m.art.Weights.CreditLimit*f.CreditLimit +
		m.art.Weights.Age*f.Age +
		m.art.Weights.AvgPayDelay*f.AvgPayDelay +
		m.art.Weights.CreditUtilization*f.CreditUtilization +
		m.art.Weights.PaymentRatio*f.PaymentRatio
	return 1 / (1 + math.Exp(-z))
}
