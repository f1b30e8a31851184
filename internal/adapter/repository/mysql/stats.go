package mysql

import (
	"context"

	statsDomain "trustchain-backend/internal/domain/stats"

	"gorm.io/gorm"
)

type StatsRepository struct{ db *gorm.DB }

func NewStatsRepository(db *gorm.DB) *StatsRepository { return &StatsRepository{db: db} }

// Global runs a single aggregate over the whole table. AVG skips NULL
// credit scores and COALESCE keeps the empty-table result all-zero, so no
// division ever happens here or in the usecase.
func (r *StatsRepository) Global(ctx context.Context) (*statsDomain.GlobalStats, error) {
	var out statsDomain.GlobalStats
	res := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)                                              AS total_borrowers,
			COALESCE(ROUND(AVG(credit_score), 2), 0)              AS average_credit_score,
			COALESCE(SUM(CASE WHEN risk_level = 'High' THEN 1 ELSE 0 END), 0) AS high_risk_count
		FROM borrowers`).Scan(&out)
	return &out, res.Error
}

// RegionRows aggregates borrowers that carry a computed risk tier, grouped
// by region. Ranking and percentage rounding happen in the usecase.
func (r *StatsRepository) RegionRows(ctx context.Context) ([]statsDomain.RegionStat, error) {
	var out []statsDomain.RegionStat
	res := r.db.WithContext(ctx).Raw(`
		SELECT
			regions.id   AS region_id,
			regions.name AS region_name,
			COUNT(*)     AS total_borrowers,
			SUM(CASE WHEN borrowers.risk_level = 'High' THEN 1 ELSE 0 END) AS high_risk_count
		FROM borrowers
		JOIN regions ON regions.id = borrowers.region_id
		WHERE borrowers.region_id IS NOT NULL
		  AND borrowers.risk_level IS NOT NULL
		GROUP BY regions.id, regions.name`).Scan(&out)
	return out, res.Error
}
