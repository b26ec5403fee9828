package model

import (
	"encoding/json"
	"fmt"
)

// InterventionType tags the what-if variants. Keep these values stable; they
// are the wire format used by the API and scenario files.
type InterventionType string

const (
	InterventionAddStation     InterventionType = "add_station"
	InterventionRemoveStation  InterventionType = "remove_station"
	InterventionModifyChargers InterventionType = "modify_chargers"
	InterventionShiftDemand    InterventionType = "shift_demand"
)

// HourWindow is a half-open [Start, End) range of simulated hours, encoded on
// the wire as a two-element array, e.g. [18, 20].
type HourWindow struct {
	Start float64
	End   float64
}

func (w HourWindow) Contains(hour float64) bool {
	return w.Start <= hour && hour < w.End
}

func (w HourWindow) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{w.Start, w.End})
}

func (w *HourWindow) UnmarshalJSON(raw []byte) error {
	var arr [2]float64
	if err := json.Unmarshal(raw, &arr); err != nil {
		return fmt.Errorf("window must be a [start, end] hour pair: %w", err)
	}
	w.Start, w.End = arr[0], arr[1]
	return nil
}

// Intervention is one tagged what-if record. Structural variants
// (add/remove/modify) are applied once before the run; shift_demand is
// re-evaluated every simulated minute.
type Intervention struct {
	Type InterventionType `json:"type"`

	// add_station
	Data *Station `json:"data,omitempty"`

	// remove_station, modify_chargers
	StationID string `json:"station_id,omitempty"`

	// modify_chargers
	Count int `json:"count,omitempty"`

	// shift_demand
	Factor float64    `json:"factor,omitempty"`
	Window HourWindow `json:"window,omitempty"`
}

// UnmarshalJSON fills the shift_demand defaults (factor 1.0, window the whole
// day) for absent fields.
func (iv *Intervention) UnmarshalJSON(raw []byte) error {
	type alias Intervention
	a := alias{
		Factor: 1.0,
		Window: HourWindow{Start: 0, End: 24},
	}
	if err := json.Unmarshal(raw, &a); err != nil {
		return err
	}
	*iv = Intervention(a)
	return nil
}

// Validate rejects malformed interventions before a run starts. A wrong shape
// here would silently corrupt every downstream statistic, so this is a fatal
// boundary check rather than a tolerant merge.
func (iv Intervention) Validate() error {
	switch iv.Type {
	case InterventionAddStation:
		if iv.Data == nil {
			return fmt.Errorf("add_station: data is required")
		}
		if err := iv.Data.Validate(); err != nil {
			return fmt.Errorf("add_station: %w", err)
		}
	case InterventionRemoveStation:
		if iv.StationID == "" {
			return fmt.Errorf("remove_station: station_id is required")
		}
	case InterventionModifyChargers:
		if iv.StationID == "" {
			return fmt.Errorf("modify_chargers: station_id is required")
		}
		if iv.Count < 0 {
			return fmt.Errorf("modify_chargers: count must be >= 0")
		}
	case InterventionShiftDemand:
		if iv.Factor < 0 {
			return fmt.Errorf("shift_demand: factor must be >= 0")
		}
	default:
		return fmt.Errorf("unknown intervention type %q", iv.Type)
	}
	return nil
}

// ValidateInterventions checks a whole scenario, reporting the first invalid
// entry by position.
func ValidateInterventions(interventions []Intervention) error {
	for i, iv := range interventions {
		if err := iv.Validate(); err != nil {
			return fmt.Errorf("intervention %d: %w", i, err)
		}
	}
	return nil
}
