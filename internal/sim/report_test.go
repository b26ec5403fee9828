package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citytwin/internal/model"
)

func TestBuildReportPerStationMetrics(t *testing.T) {
	st := newStationState(model.Station{ID: "BS-001", Chargers: 2})
	st.metrics = stationMetrics{
		Swaps:                10,
		LostSwaps:            3,
		WaitMinutes:          25,
		ChargerMinutes:       1440, // half of 2*1440
		IdleInventoryMinutes: 321,
	}
	net := &network{order: []string{"BS-001"}, stations: map[string]*stationState{"BS-001": st}}

	rep := buildReport(net)
	got := rep.Stations["BS-001"]

	assert.Equal(t, 10, got.Swaps)
	assert.Equal(t, 3, got.LostSwaps)
	assert.Equal(t, 2.5, got.AvgWaitTimeMin)
	assert.Equal(t, 50.0, got.ChargerUtilizationPct)
	assert.Equal(t, 321, got.IdleInventoryMin)
}

func TestBuildReportZeroGuards(t *testing.T) {
	st := newStationState(model.Station{ID: "BS-001", Chargers: 0})
	net := &network{order: []string{"BS-001"}, stations: map[string]*stationState{"BS-001": st}}

	rep := buildReport(net)
	got := rep.Stations["BS-001"]

	assert.Equal(t, 0.0, got.AvgWaitTimeMin, "no swaps means average wait reports 0")
	assert.Equal(t, 0.0, got.ChargerUtilizationPct, "zero chargers means utilization reports 0")
	assert.Equal(t, 0.0, rep.AvgWaitTime)
}

func TestBuildReportNetworkWaitIsVolumeWeighted(t *testing.T) {
	a := newStationState(model.Station{ID: "BS-A", Chargers: 1})
	a.metrics = stationMetrics{Swaps: 10, WaitMinutes: 20} // per-station avg 2.0
	b := newStationState(model.Station{ID: "BS-B", Chargers: 1})
	b.metrics = stationMetrics{Swaps: 30, WaitMinutes: 40} // per-station avg 1.3

	net := &network{
		order:    []string{"BS-A", "BS-B"},
		stations: map[string]*stationState{"BS-A": a, "BS-B": b},
	}
	rep := buildReport(net)

	require.Equal(t, 40, rep.TotalSwaps)
	// (20+40)/40 = 1.5, not the mean of the per-station averages (1.65).
	assert.Equal(t, 1.5, rep.AvgWaitTime)
}

func TestBuildReportEmptyNetwork(t *testing.T) {
	rep := buildReport(&network{stations: map[string]*stationState{}})
	assert.Equal(t, 0, rep.TotalSwaps)
	assert.Equal(t, 0, rep.LostSwaps)
	assert.Equal(t, 0.0, rep.AvgWaitTime)
	assert.Empty(t, rep.Stations)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 1.2, round1(1.24))
	assert.Equal(t, 1.3, round1(1.25))
	assert.Equal(t, 0.0, round1(0))
}
