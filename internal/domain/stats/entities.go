package stats

type GlobalStats struct {
	TotalBorrowers     int64   `json:"total_borrowers"`
	AverageCreditScore float64 `json:"average_credit_score"`
	HighRiskCount      int64   `json:"high_risk_count"`
}

type RegionStat struct {
	RegionID           uint64  `json:"region_id"`
	RegionName         string  `json:"region_name"`
	TotalBorrowers     int64   `json:"total_borrowers"`
	HighRiskCount      int64   `json:"high_risk_count"`
	HighRiskPercentage float64 `json:"high_risk_percentage"`
}
