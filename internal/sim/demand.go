package sim

import (
	"math"

	"citytwin/internal/config"
	"citytwin/internal/model"
)

const (
	// peakArrivalRate maps a demand-curve value of 1.0 to 0.4 arrivals/min
	// (24 swaps/hour at a busy station).
	peakArrivalRate = 0.4

	// baseArrivalRate is the flat floor of the built-in bimodal profile.
	baseArrivalRate = 0.05
)

// DemandModel yields the per-minute arrival probability for a station at a
// fractional hour of day. Implementations must return values in [0,1].
type DemandModel interface {
	ArrivalProbability(st *model.Station, hour float64) float64
}

// CurveDemand looks arrivals up in a calibrated 24-entry hourly curve.
type CurveDemand struct {
	Curve []float64
}

func (c CurveDemand) ArrivalProbability(_ *model.Station, hour float64) float64 {
	idx := int(hour) % 24
	return c.Curve[idx] * peakArrivalRate
}

// BimodalDemand is the fallback profile when no curve is configured: a flat
// base rate plus Gaussian commute bumps at 09:00 and 18:00.
type BimodalDemand struct{}

func (BimodalDemand) ArrivalProbability(_ *model.Station, hour float64) float64 {
	morning := 0.2 * math.Exp(-0.5*math.Pow((hour-9)/2, 2))
	evening := 0.25 * math.Exp(-0.5*math.Pow((hour-18)/2, 2))
	return baseArrivalRate + morning + evening
}

// demandModelFor picks the model a config implies.
func demandModelFor(cfg config.Config) DemandModel {
	if cfg.HasCurve() {
		return CurveDemand{Curve: cfg.DemandCurveHourly}
	}
	return BimodalDemand{}
}

// demandModifier composes every shift_demand intervention whose window
// contains the current hour. Recomputed each simulated minute and shared by
// all stations in that minute.
func demandModifier(hour float64, interventions []model.Intervention) float64 {
	mod := 1.0
	for _, iv := range interventions {
		if iv.Type == model.InterventionShiftDemand && iv.Window.Contains(hour) {
			mod *= iv.Factor
		}
	}
	return mod
}
