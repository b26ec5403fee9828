package sim

import "math"

// StationReport is the per-station slice of a run's output.
type StationReport struct {
	Swaps                 int     `json:"swaps"`
	LostSwaps             int     `json:"lost_swaps"`
	AvgWaitTimeMin        float64 `json:"avg_wait_time_min"`
	ChargerUtilizationPct float64 `json:"charger_utilization_pct"`
	IdleInventoryMin      int     `json:"idle_inventory_min"`
}

// Report is the aggregated output of one run. AvgWaitTime is volume-weighted
// across the network (total wait minutes over total swaps), not a mean of the
// per-station averages.
type Report struct {
	TotalSwaps  int                      `json:"total_swaps"`
	LostSwaps   int                      `json:"lost_swaps"`
	AvgWaitTime float64                  `json:"avg_wait_time"`
	Stations    map[string]StationReport `json:"stations"`
}

func buildReport(net *network) *Report {
	rep := &Report{Stations: make(map[string]StationReport, len(net.stations))}

	totalWait := 0
	for _, id := range net.order {
		st := net.stations[id]
		m := st.metrics

		avgWait := 0.0
		if m.Swaps > 0 {
			avgWait = float64(m.WaitMinutes) / float64(m.Swaps)
		}

		utilization := 0.0
		if chargerMinutes := st.Chargers * HorizonMinutes; chargerMinutes > 0 {
			utilization = float64(m.ChargerMinutes) / float64(chargerMinutes) * 100
		}

		rep.Stations[id] = StationReport{
			Swaps:                 m.Swaps,
			LostSwaps:             m.LostSwaps,
			AvgWaitTimeMin:        round1(avgWait),
			ChargerUtilizationPct: round1(utilization),
			IdleInventoryMin:      m.IdleInventoryMinutes,
		}

		rep.TotalSwaps += m.Swaps
		rep.LostSwaps += m.LostSwaps
		totalWait += m.WaitMinutes
	}

	if rep.TotalSwaps > 0 {
		rep.AvgWaitTime = round1(float64(totalWait) / float64(rep.TotalSwaps))
	}
	return rep
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
