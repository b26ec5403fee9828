package sim

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"citytwin/internal/config"
	"citytwin/internal/model"
)

// Model constants. The horizon, service-bay count and admission thresholds
// are fixed properties of the model, not configuration.
const (
	// HorizonMinutes is the fixed simulated horizon: 24 hours.
	HorizonMinutes = 24 * 60

	// ServiceBays is the number of concurrent swap bays per station,
	// independent of station size.
	ServiceBays = 4

	// Admission thresholds: an arrival is turned away when the queue exceeds
	// the hard limit, or exceeds the soft limit with no ready inventory.
	queueHardLimit = 10
	queueSoftLimit = 5
)

// Engine runs minute-by-minute simulations of a swap-station network.
// It is stateless across runs: every Run rebuilds station state from the
// topology, so concurrent runs with separate rngs do not interact.
type Engine struct {
	demand     DemandModel
	chargeTime int
}

func New(cfg config.Config) *Engine {
	return &Engine{
		demand:     demandModelFor(cfg),
		chargeTime: cfg.AvgChargeTimeMinutes,
	}
}

// Run executes one 24-hour simulation over the given topology with the given
// interventions. rng drives the per-station arrival draws; pass a seeded
// generator for a reproducible trace, or nil for a time-seeded one.
func (e *Engine) Run(stations []model.Station, interventions []model.Intervention, rng *rand.Rand) (*Report, error) {
	for i, st := range stations {
		if err := st.Validate(); err != nil {
			return nil, fmt.Errorf("station %d: %w", i, err)
		}
	}
	if err := model.ValidateInterventions(interventions); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	net := newNetwork(stations)
	applyStructural(net, interventions)

	for minute := 0; minute < HorizonMinutes; minute++ {
		hour := float64(minute) / 60.0
		mod := demandModifier(hour, interventions)
		for _, id := range net.order {
			e.stepStation(net.stations[id], hour, mod, rng)
		}
	}

	return buildReport(net), nil
}

// applyStructural applies the one-time topology changes before minute 0.
// Unknown station ids in remove/modify are tolerated as no-ops.
func applyStructural(net *network, interventions []model.Intervention) {
	for _, iv := range interventions {
		switch iv.Type {
		case model.InterventionAddStation:
			net.put(newStationState(*iv.Data))
		case model.InterventionRemoveStation:
			net.remove(iv.StationID)
		case model.InterventionModifyChargers:
			if st, ok := net.stations[iv.StationID]; ok {
				st.Chargers = iv.Count
			}
		}
	}
}

// stepStation advances one station by one simulated minute. The phase order
// is fixed: charging, idle accounting, arrival, service, wait accrual.
func (e *Engine) stepStation(st *stationState, hour float64, demandMod float64, rng *rand.Rand) {
	// Charging progress. Batteries closest to done get the scarce chargers,
	// so sort ascending by minutes remaining; the rest carry over untouched.
	sort.Ints(st.Charging)
	free := st.Chargers
	active := 0
	next := st.Charging[:0]
	for _, remaining := range st.Charging {
		if free > 0 {
			free--
			active++
			remaining--
			if remaining <= 0 {
				st.Ready++
			} else {
				next = append(next, remaining)
			}
		} else {
			next = append(next, remaining)
		}
	}
	st.Charging = next
	st.metrics.ChargerMinutes += active

	// Battery-minutes of charged stock sitting unclaimed.
	if st.Ready > 0 {
		st.metrics.IdleInventoryMinutes += st.Ready
	}

	// At most one Bernoulli arrival per station per minute; this caps the
	// achievable arrival rate at 1/min regardless of configured intensity.
	prob := e.demand.ArrivalProbability(&st.Station, hour) * demandMod
	if rng.Float64() < prob {
		if st.Queue > queueHardLimit || (st.Queue > queueSoftLimit && st.Ready == 0) {
			st.metrics.LostSwaps++
		} else {
			st.Queue++
		}
	}

	// Service: up to ServiceBays swaps this minute; stop outright when ready
	// inventory runs dry (no skipping ahead in the queue).
	bays := ServiceBays
	for bays > 0 && st.Queue > 0 {
		if st.Ready == 0 {
			break
		}
		st.Ready--
		st.Queue--
		st.metrics.Swaps++
		st.Charging = append(st.Charging, e.chargeTime)
		bays--
	}

	// Everyone still queued at the end of the minute waits one more minute.
	st.metrics.WaitMinutes += st.Queue
}
