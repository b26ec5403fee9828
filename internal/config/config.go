package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultChargeTimeMinutes is the average battery charge duration used when no
// calibrated value is configured.
const DefaultChargeTimeMinutes = 60

// Config holds the calibrated simulation parameters. The fields are
// independent: a config file may carry either one without the other.
type Config struct {
	// DemandCurveHourly is a 24-entry relative arrival intensity curve, one
	// value in [0,1] per hour of day. Empty means "use the built-in bimodal
	// profile".
	DemandCurveHourly []float64 `yaml:"demand_curve_hourly" json:"demand_curve_hourly"`

	// AvgChargeTimeMinutes is the minutes a drained battery spends on a
	// charger before it returns to ready inventory.
	AvgChargeTimeMinutes int `yaml:"avg_charge_time_minutes" json:"avg_charge_time_minutes"`
}

func Default() Config {
	return Config{AvgChargeTimeMinutes: DefaultChargeTimeMinutes}
}

// HasCurve reports whether a usable hourly demand curve is configured.
func (c Config) HasCurve() bool {
	return len(c.DemandCurveHourly) == 24
}

// Load reads a YAML (or JSON — yaml.v3 parses both) config file. A missing or
// malformed file is never fatal: it logs a warning and returns the defaults,
// so the simulator always has usable parameters. Each field also falls back
// independently when its value is unusable.
func Load(path string) Config {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", path).Warn("could not read simulation config, using defaults")
		}
		return cfg
	}
	var loaded Config
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("could not parse simulation config, using defaults")
		return cfg
	}
	return Merge(loaded)
}

// Merge sanitizes a loaded config, dropping unusable fields back to their
// defaults field-by-field.
func Merge(loaded Config) Config {
	cfg := Default()
	if err := validateCurve(loaded.DemandCurveHourly); err != nil {
		if len(loaded.DemandCurveHourly) > 0 {
			logrus.WithError(err).Warn("ignoring demand_curve_hourly")
		}
	} else {
		cfg.DemandCurveHourly = loaded.DemandCurveHourly
	}
	if loaded.AvgChargeTimeMinutes > 0 {
		cfg.AvgChargeTimeMinutes = loaded.AvgChargeTimeMinutes
	}
	return cfg
}

func validateCurve(curve []float64) error {
	if len(curve) == 0 {
		return fmt.Errorf("empty curve")
	}
	if len(curve) != 24 {
		return fmt.Errorf("demand curve must have 24 hourly values, got %d", len(curve))
	}
	for i, v := range curve {
		if v < 0 || v > 1 {
			return fmt.Errorf("demand curve hour %d: value %v outside [0,1]", i, v)
		}
	}
	return nil
}
