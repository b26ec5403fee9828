package models

import (
	"citytwin/internal/analysis"
	"citytwin/internal/sim"
)

// SimulationResponse is the result of one run. ID can be used with
// GET /api/v1/simulations/:id while the report stays in the cache.
type SimulationResponse struct {
	ID     string      `json:"id,omitempty"`
	Status string      `json:"status"`
	Report *sim.Report `json:"report"`
}

// CompareResponse holds the baseline plus every variation outcome.
type CompareResponse struct {
	Baseline   *sim.Report        `json:"baseline"`
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult is one variation's report and its delta to the baseline.
type ComparisonResult struct {
	Name   string                 `json:"name"`
	Report *sim.Report            `json:"report"`
	Delta  analysis.ScenarioDelta `json:"delta"`
}

// BottleneckResponse ranks the run's stations by lost demand.
type BottleneckResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking is one row of the bottleneck table.
type Ranking struct {
	Rank                  int     `json:"rank"`
	StationID             string  `json:"station_id"`
	LostSwaps             int     `json:"lost_swaps"`
	Swaps                 int     `json:"swaps"`
	LossRate              float64 `json:"loss_rate"`
	ChargerUtilizationPct float64 `json:"charger_utilization_pct"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
