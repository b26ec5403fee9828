package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"citytwin/internal/model"
	"citytwin/internal/sim"
)

// TopologyFile is the on-disk shape of a city station set.
type TopologyFile struct {
	City      string          `json:"city,omitempty"`
	UpdatedAt string          `json:"updated_at,omitempty"` // ISO 8601 timestamp
	Stations  []model.Station `json:"stations"`
}

// ScenarioFile is the on-disk shape of a what-if scenario.
type ScenarioFile struct {
	Name          string               `json:"name,omitempty"`
	Seed          *int64               `json:"seed,omitempty"`
	Interventions []model.Intervention `json:"interventions"`
}

// LoadTopology loads a station topology from a JSON file.
func LoadTopology(path string) (*TopologyFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topology file: %w", err)
	}
	var tf TopologyFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse topology file: %w", err)
	}
	for i, st := range tf.Stations {
		if err := st.Validate(); err != nil {
			return nil, fmt.Errorf("topology station %d: %w", i, err)
		}
	}
	return &tf, nil
}

// SaveTopology writes a station topology to a JSON file, creating parent
// directories as needed.
func SaveTopology(tf *TopologyFile, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	raw, err := json.MarshalIndent(tf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal topology: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write topology file: %w", err)
	}
	return nil
}

// LoadScenario loads an intervention scenario from a JSON file and validates
// every entry, so a malformed scenario fails here rather than mid-run.
func LoadScenario(path string) (*ScenarioFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var sf ScenarioFile
	if err := json.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	if err := model.ValidateInterventions(sf.Interventions); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sf, nil
}

// WriteReportJSON writes a simulation report to a JSON file, creating parent
// directories as needed.
func WriteReportJSON(path string, rep *sim.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	raw, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// DefaultTopologyPath returns where the CLI looks for the city topology when
// no --stations flag is given.
func DefaultTopologyPath() string {
	if path := os.Getenv("STATIONS_FILE"); path != "" {
		return path
	}
	return "./data/stations.json"
}
