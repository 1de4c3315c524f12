package dto

type HealthResponse struct {
	OK       bool   `json:"ok"`
	Service  string `json:"service"`
	MockMode bool   `json:"mock_mode"`
}

type StatsResponse struct {
	TotalRequests       int     `json:"total_requests"`
	MockRequests        int     `json:"mock_requests"`
	AvgDistancePctSaved float64 `json:"avg_distance_pct_saved"`
}
