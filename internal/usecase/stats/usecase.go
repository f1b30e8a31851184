package stats

import (
	"context"
	"math"
	"sort"

	statsDomain "trustchain-backend/internal/domain/stats"
)

type Usecase struct{ repo statsDomain.Repository }

func NewUsecase(r statsDomain.Repository) *Usecase { return &Usecase{repo: r} }

func round2(f float64) float64 { return math.Round(f*100) / 100 }

// Global returns portfolio-wide aggregates. The empty-portfolio case is
// all-zero straight from the repository; no division happens anywhere.
func (u *Usecase) Global(ctx context.Context) (*statsDomain.GlobalStats, error) {
	return u.repo.Global(ctx)
}

// Regions ranks regions by high-risk percentage, descending. A region
// qualifies once it has at least one risk-tiered borrower, even with zero
// high-risk members. Equal percentages break ties by ascending region id so
// the ordering is reproducible.
func (u *Usecase) Regions(ctx context.Context) ([]statsDomain.RegionStat, error) {
	rows, err := u.repo.RegionRows(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		// total is >= 1 for every returned group
		rows[i].HighRiskPercentage = round2(float64(rows[i].HighRiskCount) / float64(rows[i].TotalBorrowers) * 100)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].HighRiskPercentage != rows[j].HighRiskPercentage {
			return rows[i].HighRiskPercentage > rows[j].HighRiskPercentage
		}
		return rows[i].RegionID < rows[j].RegionID
	})
	if rows == nil {
		rows = []statsDomain.RegionStat{}
	}
	return rows, nil
}
