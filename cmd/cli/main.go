package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"citytwin/internal/analysis"
	"citytwin/internal/config"
	"citytwin/internal/data"
	"citytwin/internal/model"
	"citytwin/internal/sim"
)

var (
	flagStations string
	flagScenario string
	flagConfig   string
	flagSeed     int64
	flagOut      string
)

func main() {
	root := &cobra.Command{
		Use:   "citytwin",
		Short: "Minute-by-minute what-if simulator for a battery swap-station network",
	}
	root.PersistentFlags().StringVar(&flagStations, "stations", data.DefaultTopologyPath(), "Path to station topology JSON")
	root.PersistentFlags().StringVar(&flagScenario, "scenario", "", "Path to intervention scenario JSON (optional)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to simulation config YAML (optional)")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Random seed (0 = time-seeded)")

	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Run one 24-hour simulation and print (or write) the report",
		RunE:  runSimulate,
	}
	simulate.Flags().StringVar(&flagOut, "out", "", "Optional path to write the report JSON")

	compare := &cobra.Command{
		Use:   "compare",
		Short: "Run baseline vs. scenario with the same seed and print the deltas",
		RunE:  runCompare,
	}

	rank := &cobra.Command{
		Use:   "rank",
		Short: "Run once and rank stations by lost demand",
		RunE:  runRank,
	}

	root.AddCommand(simulate, compare, rank)
	if err := root.Execute(); err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}

func loadInputs() ([]model.Station, []model.Intervention, config.Config, error) {
	tf, err := data.LoadTopology(flagStations)
	if err != nil {
		return nil, nil, config.Config{}, err
	}

	var interventions []model.Intervention
	if flagScenario != "" {
		sf, err := data.LoadScenario(flagScenario)
		if err != nil {
			return nil, nil, config.Config{}, err
		}
		interventions = sf.Interventions
		if sf.Seed != nil && flagSeed == 0 {
			flagSeed = *sf.Seed
		}
	}

	cfg := config.Default()
	if flagConfig != "" {
		cfg = config.Load(flagConfig)
	}
	return tf.Stations, interventions, cfg, nil
}

func rng() *rand.Rand {
	if flagSeed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(flagSeed))
}

func runSimulate(cmd *cobra.Command, args []string) error {
	stations, interventions, cfg, err := loadInputs()
	if err != nil {
		return err
	}

	rep, err := sim.New(cfg).Run(stations, interventions, rng())
	if err != nil {
		return err
	}

	if flagOut != "" {
		if err := data.WriteReportJSON(flagOut, rep); err != nil {
			return err
		}
		fmt.Printf("Wrote report for %d stations to %s\n", len(rep.Stations), flagOut)
	} else {
		raw, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(raw))
	}

	fmt.Printf("Total swaps=%d lost=%d avg wait=%.1f min\n", rep.TotalSwaps, rep.LostSwaps, rep.AvgWaitTime)
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	if flagScenario == "" {
		return fmt.Errorf("--scenario is required for compare")
	}
	stations, interventions, cfg, err := loadInputs()
	if err != nil {
		return err
	}
	if flagSeed == 0 {
		// Both runs must share a seed or the comparison is mostly noise.
		flagSeed = 1
	}

	engine := sim.New(cfg)
	baseline, err := engine.Run(stations, nil, rng())
	if err != nil {
		return err
	}
	variant, err := engine.Run(stations, interventions, rng())
	if err != nil {
		return err
	}

	delta := analysis.Compare(flagScenario, baseline, variant)
	fmt.Printf("%-12s %10s %10s %10s\n", "", "swaps", "lost", "avg wait")
	fmt.Printf("%-12s %10d %10d %10.1f\n", "baseline", baseline.TotalSwaps, baseline.LostSwaps, baseline.AvgWaitTime)
	fmt.Printf("%-12s %10d %10d %10.1f\n", "scenario", variant.TotalSwaps, variant.LostSwaps, variant.AvgWaitTime)
	fmt.Printf("%-12s %+10d %+10d %+10.1f\n", "delta", delta.SwapsDelta, delta.LostSwapsDelta, delta.AvgWaitDelta)
	return nil
}

func runRank(cmd *cobra.Command, args []string) error {
	stations, interventions, cfg, err := loadInputs()
	if err != nil {
		return err
	}

	rep, err := sim.New(cfg).Run(stations, interventions, rng())
	if err != nil {
		return err
	}

	ranked := analysis.RankByLostSwaps(rep)
	fmt.Printf("%-4s %-12s %-8s %-8s %-10s %-10s\n", "rank", "station", "lost", "swaps", "loss-rate", "util%")
	for i, r := range ranked {
		fmt.Printf("%-4d %-12s %-8d %-8d %-10.3f %-10.1f\n",
			i+1,
			r.StationID,
			r.Report.LostSwaps,
			r.Report.Swaps,
			r.LossRate,
			r.Report.ChargerUtilizationPct,
		)
	}
	return nil
}

func init() {
	// CLI output goes to stderr for logs, stdout for results.
	logrus.SetOutput(os.Stderr)
}
