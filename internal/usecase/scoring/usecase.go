package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"

	borrowerDomain "trustchain-backend/internal/domain/borrower"
	"trustchain-backend/internal/infrastructure/model"
)

var ErrInvalidFeature = errors.New("invalid feature vector")

// ProbabilityModel is the pre-trained classifier capability. It is assumed
// healthy once loaded; a nil model means startup failed.
type ProbabilityModel interface {
	PredictProbability(model.Features) float64
}

type Usecase struct{ model ProbabilityModel }

func NewUsecase(m ProbabilityModel) *Usecase { return &Usecase{model: m} }

// ScoreFromProbability converts a probability of default into a credit
// score. The int conversion truncates toward zero on purpose: p=0.15 gives
// 767.5 and must come out as 767, not 768.
func ScoreFromProbability(p float64) int {
	return int(850 - p*550)
}

// TierForScore buckets a truncated credit score into a risk tier.
// Bands are half-open: [.., 650) High, [650, 750) Medium, [750, ..) Low.
func TierForScore(score int) borrowerDomain.RiskLevel {
	switch {
	case score < 650:
		return borrowerDomain.RiskHigh
	case score < 750:
		return borrowerDomain.RiskMedium
	default:
		return borrowerDomain.RiskLow
	}
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }

func checkFeature(name string, v *float64) error {
	if v == nil {
		return fmt.Errorf("%w: %s is required", ErrInvalidFeature, name)
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fmt.Errorf("%w: %s must be finite", ErrInvalidFeature, name)
	}
	return nil
}

func (in FeatureInput) validate() (model.Features, error) {
	checks := []struct {
		name string
		v    *float64
	}{
		{"LIMIT_BAL", in.CreditLimit},
		{"AGE", in.Age},
		{"avg_pay_delay", in.AvgPayDelay},
		{"credit_utilization", in.CreditUtilization},
		{"payment_ratio", in.PaymentRatio},
	}
	for _, c := range checks {
		if err := checkFeature(c.name, c.v); err != nil {
			return model.Features{}, err
		}
	}
	return model.Features{
		CreditLimit:       *in.CreditLimit,
		Age:               *in.Age,
		AvgPayDelay:       *in.AvgPayDelay,
		CreditUtilization: *in.CreditUtilization,
		PaymentRatio:      *in.PaymentRatio,
	}, nil
}

// Evaluate is a pure transform: features -> probability -> score -> tier.
// The tier is computed from the truncated score, never from the raw
// probability.
func (u *Usecase) Evaluate(_ context.Context, in FeatureInput) (*Evaluation, error) {
	f, err := in.validate()
	if err != nil {
		return nil, err
	}
	if u.model == nil {
		return nil, model.ErrUnavailable
	}

	p := u.model.PredictProbability(f)
	score := ScoreFromProbability(p)

	return &Evaluation{
		Probability: p,
		CreditScore: score,
		RiskLevel:   TierForScore(score),
	}, nil
}

// Score wraps Evaluate for the outward-facing result, where the probability
// is reported rounded to 2 decimal places.
func (u *Usecase) Score(ctx context.Context, in FeatureInput) (*ScoreDTO, error) {
	ev, err := u.Evaluate(ctx, in)
	if err != nil {
		return nil, err
	}
	return &ScoreDTO{
		PD:          round2(ev.Probability),
		CreditScore: ev.CreditScore,
		RiskLevel:   ev.RiskLevel,
	}, nil
}
