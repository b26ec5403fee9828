package analysis

import (
	"sort"

	"citytwin/internal/sim"
)

// StationLoss is a station-level summary used for bottleneck ranking.
type StationLoss struct {
	StationID string            `json:"station_id"`
	Report    sim.StationReport `json:"report"`

	// LossRate is lost swaps over total demand (served + lost) at the
	// station; 0 when the station saw no demand at all.
	LossRate float64 `json:"loss_rate"`
}

// RankByLostSwaps sorts stations descending by lost swaps, breaking ties by
// charger utilization so the most saturated station surfaces first.
func RankByLostSwaps(rep *sim.Report) []StationLoss {
	out := make([]StationLoss, 0, len(rep.Stations))
	for id, st := range rep.Stations {
		loss := StationLoss{StationID: id, Report: st}
		if demand := st.Swaps + st.LostSwaps; demand > 0 {
			loss.LossRate = float64(st.LostSwaps) / float64(demand)
		}
		out = append(out, loss)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Report.LostSwaps != out[j].Report.LostSwaps {
			return out[i].Report.LostSwaps > out[j].Report.LostSwaps
		}
		if out[i].Report.ChargerUtilizationPct != out[j].Report.ChargerUtilizationPct {
			return out[i].Report.ChargerUtilizationPct > out[j].Report.ChargerUtilizationPct
		}
		return out[i].StationID < out[j].StationID
	})
	return out
}

// ScenarioDelta is the network-level difference between a variant run and its
// baseline. Positive SwapsDelta means the variant served more.
type ScenarioDelta struct {
	Name           string  `json:"name"`
	SwapsDelta     int     `json:"swaps_delta"`
	LostSwapsDelta int     `json:"lost_swaps_delta"`
	AvgWaitDelta   float64 `json:"avg_wait_delta"`
}

// Compare diffs a variant report against a baseline.
func Compare(name string, baseline, variant *sim.Report) ScenarioDelta {
	return ScenarioDelta{
		Name:           name,
		SwapsDelta:     variant.TotalSwaps - baseline.TotalSwaps,
		LostSwapsDelta: variant.LostSwaps - baseline.LostSwaps,
		AvgWaitDelta:   variant.AvgWaitTime - baseline.AvgWaitTime,
	}
}
