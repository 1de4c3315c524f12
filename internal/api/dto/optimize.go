package dto

type OptimizeRequest struct {
	AddressesText string `json:"addresses_text"`
	// Accepted for schema compatibility; its effect is currently undefined
	// and the comparison ignores it.
	Roundtrip bool `json:"roundtrip"`
	Mock      bool `json:"mock"`
}

type RouteMetricsResponse struct {
	Order                []string `json:"order"`
	DistanceMeters       int      `json:"distance_m"`
	DurationSeconds      int      `json:"duration_s"`
	WaypointOrderIndices []int    `json:"waypoint_order_indices,omitempty"`
}

type SavingsResponse struct {
	DistanceMetersSaved  int     `json:"distance_m_saved"`
	DistancePctSaved     float64 `json:"distance_pct_saved"`
	DurationSecondsSaved int     `json:"duration_s_saved"`
}

type OptimizeResponse struct {
	OK         bool                 `json:"ok"`
	Mock       bool                 `json:"mock"`
	Original   RouteMetricsResponse `json:"original"`
	Optimized  RouteMetricsResponse `json:"optimized"`
	Savings    SavingsResponse      `json:"savings"`
	DriverLink string               `json:"driver_link"`
	Note       string               `json:"note,omitempty"`
}
