package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Defaults applied when a topology record omits the optional sizing fields.
// An explicit zero in the input is kept as-is (a station with zero chargers
// is a valid, if useless, configuration).
const (
	DefaultTotalSlots       = 15
	DefaultChargers         = 12
	DefaultInitialInventory = 10
)

// Location is carried through for the map layer; the simulation math does not
// use it.
type Location struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Station is the immutable topology description of one swap station.
// Supplied at construction time and never mutated by a run.
type Station struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	TotalSlots       int      `json:"total_slots" yaml:"total_slots"`
	Chargers         int      `json:"chargers" yaml:"chargers"`
	InitialInventory int      `json:"initial_inventory" yaml:"initial_inventory"`
	Location         Location `json:"location" yaml:"location"`
}

// UnmarshalJSON applies the sizing defaults for absent fields only, so an
// explicit zero survives the decode.
func (s *Station) UnmarshalJSON(raw []byte) error {
	type alias Station
	a := alias{
		TotalSlots:       DefaultTotalSlots,
		Chargers:         DefaultChargers,
		InitialInventory: DefaultInitialInventory,
	}
	if err := json.Unmarshal(raw, &a); err != nil {
		return err
	}
	*s = Station(a)
	return nil
}

func (s Station) Validate() error {
	if s.ID == "" {
		return errors.New("station id is required")
	}
	if s.TotalSlots < 0 {
		return fmt.Errorf("station %s: total_slots must be >= 0", s.ID)
	}
	if s.Chargers < 0 {
		return fmt.Errorf("station %s: chargers must be >= 0", s.ID)
	}
	if s.InitialInventory < 0 {
		return fmt.Errorf("station %s: initial_inventory must be >= 0", s.ID)
	}
	return nil
}
