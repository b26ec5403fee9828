package models

import "citytwin/internal/model"

// SimulationRequest is the body for POST /api/v1/simulations.
type SimulationRequest struct {
	Stations      []model.Station      `json:"stations" binding:"required"`
	Interventions []model.Intervention `json:"interventions,omitempty"`
	Config        *SimConfigOverride   `json:"config,omitempty"`

	// Seed makes the run reproducible; omit for a time-seeded run.
	Seed *int64 `json:"seed,omitempty"`
}

// SimConfigOverride lets a request carry calibrated parameters inline instead
// of relying on the server-side config file.
type SimConfigOverride struct {
	DemandCurveHourly    []float64 `json:"demand_curve_hourly,omitempty"`
	AvgChargeTimeMinutes int       `json:"avg_charge_time_minutes,omitempty"`
}

// CompareRequest runs a baseline plus named variations over one topology.
// Every variation reuses the same seed so the runs differ only by their
// interventions.
type CompareRequest struct {
	Stations      []model.Station      `json:"stations" binding:"required"`
	Interventions []model.Intervention `json:"interventions,omitempty"` // baseline scenario
	Variations    []ScenarioVariation  `json:"variations" binding:"required"`
	Config        *SimConfigOverride   `json:"config,omitempty"`
	Seed          *int64               `json:"seed,omitempty"`
}

// ScenarioVariation is one named intervention set to compare against the
// baseline.
type ScenarioVariation struct {
	Name          string               `json:"name" binding:"required"`
	Interventions []model.Intervention `json:"interventions"`
}
