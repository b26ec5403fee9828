package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"citytwin/internal/config"
	"citytwin/internal/model"
)

func TestCurveDemandLookup(t *testing.T) {
	curve := flatCurve(0)
	curve[9] = 1.0
	curve[18] = 0.5
	d := CurveDemand{Curve: curve}

	assert.InDelta(t, 0.4, d.ArrivalProbability(nil, 9.0), 1e-9)
	assert.InDelta(t, 0.4, d.ArrivalProbability(nil, 9.99), 1e-9, "fractional hours use floor(hour)")
	assert.InDelta(t, 0.2, d.ArrivalProbability(nil, 18.5), 1e-9)
	assert.InDelta(t, 0.0, d.ArrivalProbability(nil, 3.0), 1e-9)
}

func TestBimodalDemandShape(t *testing.T) {
	d := BimodalDemand{}

	morning := d.ArrivalProbability(nil, 9)
	evening := d.ArrivalProbability(nil, 18)
	midday := d.ArrivalProbability(nil, 13)
	night := d.ArrivalProbability(nil, 3)

	assert.Greater(t, morning, midday)
	assert.Greater(t, evening, morning, "evening bump has the larger amplitude")
	assert.Greater(t, night, 0.0, "flat base rate keeps overnight demand non-zero")
	assert.Less(t, evening, 1.0)

	// At the bump centers the Gaussian term is exactly its amplitude plus the
	// tail of the other bump, so the peak dominates its shoulders.
	assert.Greater(t, morning, d.ArrivalProbability(nil, 7))
	assert.Greater(t, morning, d.ArrivalProbability(nil, 11))
}

func TestDemandModelForConfig(t *testing.T) {
	withCurve := config.Config{DemandCurveHourly: flatCurve(0.5), AvgChargeTimeMinutes: 60}
	assert.IsType(t, CurveDemand{}, demandModelFor(withCurve))
	assert.IsType(t, BimodalDemand{}, demandModelFor(config.Default()))
}

func TestDemandModifierComposition(t *testing.T) {
	interventions := []model.Intervention{
		{Type: model.InterventionShiftDemand, Factor: 1.5, Window: model.HourWindow{Start: 8, End: 22}},
		{Type: model.InterventionShiftDemand, Factor: 2.0, Window: model.HourWindow{Start: 18, End: 20}},
		{Type: model.InterventionModifyChargers, StationID: "BS-001", Count: 5},
	}

	assert.InDelta(t, 1.0, demandModifier(3, interventions), 1e-9)
	assert.InDelta(t, 1.5, demandModifier(8, interventions), 1e-9, "window start is inclusive")
	assert.InDelta(t, 3.0, demandModifier(18.5, interventions), 1e-9, "overlapping windows multiply")
	assert.InDelta(t, 1.5, demandModifier(20, interventions), 1e-9, "window end is exclusive")
	assert.InDelta(t, 1.0, demandModifier(22, interventions), 1e-9)
}
