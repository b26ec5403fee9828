package sim

import "citytwin/internal/model"

// stationState is the mutable per-run state of one station. It embeds a copy
// of the topology record so structural interventions (charger changes) never
// touch the caller-supplied slice.
type stationState struct {
	model.Station

	// Ready is the count of fully charged batteries available for swap.
	Ready int

	// Charging holds one minutes-remaining counter per battery on a charger
	// or waiting for one. Intentionally not capped by TotalSlots-Ready: the
	// source model treats capacity purely as a charger-throughput constraint,
	// so a station can hold more batteries "in the building" than its stated
	// slot count.
	Charging []int

	// Queue is the number of vehicles currently waiting for a swap.
	Queue int

	metrics stationMetrics
}

// stationMetrics are the per-run accumulators behind the report.
type stationMetrics struct {
	Swaps                int
	LostSwaps            int
	WaitMinutes          int
	ChargerMinutes       int
	IdleInventoryMinutes int
}

func newStationState(st model.Station) *stationState {
	return &stationState{
		Station: st,
		Ready:   st.InitialInventory,
	}
}

// network is the full per-run station set. The id order is fixed (topology
// order, additions appended) so that a seeded run draws randomness in a
// deterministic sequence; map iteration order would break reproducibility.
type network struct {
	order    []string
	stations map[string]*stationState
}

func newNetwork(stations []model.Station) *network {
	n := &network{stations: make(map[string]*stationState, len(stations))}
	for _, st := range stations {
		n.put(newStationState(st))
	}
	return n
}

// put inserts or overwrites a station, keeping its position in the order if
// it already exists.
func (n *network) put(st *stationState) {
	if _, ok := n.stations[st.ID]; !ok {
		n.order = append(n.order, st.ID)
	}
	n.stations[st.ID] = st
}

// remove deletes a station if present; unknown ids are a no-op.
func (n *network) remove(id string) {
	if _, ok := n.stations[id]; !ok {
		return
	}
	delete(n.stations, id)
	for i, existing := range n.order {
		if existing == id {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}
