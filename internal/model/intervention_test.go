package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterventionDecodeScenario(t *testing.T) {
	raw := `[
		{"type": "add_station", "data": {"id": "BS-009", "name": "Pop-up"}},
		{"type": "remove_station", "station_id": "BS-002"},
		{"type": "modify_chargers", "station_id": "BS-001", "count": 20},
		{"type": "shift_demand", "factor": 1.2, "window": [18, 20]}
	]`

	var interventions []Intervention
	require.NoError(t, json.Unmarshal([]byte(raw), &interventions))
	require.Len(t, interventions, 4)
	require.NoError(t, ValidateInterventions(interventions))

	add := interventions[0]
	require.NotNil(t, add.Data)
	assert.Equal(t, "BS-009", add.Data.ID)
	assert.Equal(t, DefaultChargers, add.Data.Chargers, "nested station gets topology defaults")

	shift := interventions[3]
	assert.Equal(t, 1.2, shift.Factor)
	assert.Equal(t, HourWindow{Start: 18, End: 20}, shift.Window)
}

func TestInterventionDecodeShiftDemandDefaults(t *testing.T) {
	var iv Intervention
	require.NoError(t, json.Unmarshal([]byte(`{"type":"shift_demand"}`), &iv))

	assert.Equal(t, 1.0, iv.Factor)
	assert.Equal(t, HourWindow{Start: 0, End: 24}, iv.Window)
}

func TestHourWindowJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(HourWindow{Start: 7.5, End: 9})
	require.NoError(t, err)
	assert.JSONEq(t, `[7.5, 9]`, string(raw))

	var w HourWindow
	require.Error(t, json.Unmarshal([]byte(`{"start":7}`), &w), "window must be an array pair")
}

func TestHourWindowContains(t *testing.T) {
	w := HourWindow{Start: 8, End: 22}
	assert.True(t, w.Contains(8), "start inclusive")
	assert.True(t, w.Contains(21.99))
	assert.False(t, w.Contains(22), "end exclusive")
	assert.False(t, w.Contains(7.99))
}

func TestInterventionValidate(t *testing.T) {
	station := Station{ID: "BS-001"}
	tests := []struct {
		name    string
		iv      Intervention
		wantErr string
	}{
		{"add ok", Intervention{Type: InterventionAddStation, Data: &station}, ""},
		{"add without data", Intervention{Type: InterventionAddStation}, "data is required"},
		{"add invalid station", Intervention{Type: InterventionAddStation, Data: &Station{}}, "id is required"},
		{"remove ok", Intervention{Type: InterventionRemoveStation, StationID: "BS-001"}, ""},
		{"remove without id", Intervention{Type: InterventionRemoveStation}, "station_id is required"},
		{"modify ok", Intervention{Type: InterventionModifyChargers, StationID: "BS-001", Count: 3}, ""},
		{"modify without id", Intervention{Type: InterventionModifyChargers, Count: 3}, "station_id is required"},
		{"modify negative count", Intervention{Type: InterventionModifyChargers, StationID: "BS-001", Count: -1}, "count must be >= 0"},
		{"shift ok", Intervention{Type: InterventionShiftDemand, Factor: 1.5}, ""},
		{"shift negative factor", Intervention{Type: InterventionShiftDemand, Factor: -0.5}, "factor must be >= 0"},
		{"unknown type", Intervention{Type: "teleport_station"}, "unknown intervention type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.iv.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateInterventionsReportsPosition(t *testing.T) {
	err := ValidateInterventions([]Intervention{
		{Type: InterventionShiftDemand, Factor: 1.0},
		{Type: InterventionAddStation},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intervention 1")
}
