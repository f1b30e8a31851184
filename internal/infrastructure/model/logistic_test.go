package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const artifactJSON = `{
	"intercept": -1.2,
	"weights": {
		"limit_bal": -0.000001,
		"age": -0.01,
		"avg_pay_delay": 1.5,
		"credit_utilization": 2.0,
		"payment_ratio": -1.0
	}
}`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credit_model.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func TestLoadLogistic_MissingFile(t *testing.T) {
	_, err := LoadLogistic(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestLoadLogistic_GarbledFile(t *testing.T) {
	path := writeArtifact(t, "{not json")
	if _, err := LoadLogistic(path); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestPredictProbability_InUnitInterval(t *testing.T) {
	m, err := LoadLogistic(writeArtifact(t, artifactJSON))
	if err != nil {
		t.Fatalf("LoadLogistic: %v", err)
	}

	inputs := []Features{
		{},
		{CreditLimit: 500000, Age: 30, AvgPayDelay: 0, CreditUtilization: 0.1, PaymentRatio: 1},
		{CreditLimit: 10000, Age: 22, AvgPayDelay: 6, CreditUtilization: 0.95, PaymentRatio: 0.1},
	}
	for _, in := range inputs {
		p := m.PredictProbability(in)
		if p <= 0 || p >= 1 {
			t.Errorf("probability %v out of (0,1) for %+v", p, in)
		}
	}
}

func TestPredictProbability_MonotoneInDelay(t *testing.T) {
	m, err := LoadLogistic(writeArtifact(t, artifactJSON))
	if err != nil {
		t.Fatalf("LoadLogistic: %v", err)
	}

	base := Features{CreditLimit: 100000, Age: 35, CreditUtilization: 0.4, PaymentRatio: 0.8}
	prev := -1.0
	for delay := 0.0; delay <= 6; delay++ {
		in := base
		in.AvgPayDelay = delay
		p := m.PredictProbability(in)
		if p <= prev {
			t.Fatalf("probability must rise with payment delay: %v then %v at delay %v", prev, p, delay)
		}
		prev = p
	}
}
