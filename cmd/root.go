package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/line-sim/line-sim/sim"
)

var (
	// CLI flags shared by the run and balance subcommands
	logLevel        string  // Log verbosity level
	mode            string  // Cycle-time selection mode
	eta             float64 // Target design efficiency in (0,1], target-efficiency mode only
	slack           float64 // Extra seconds added to the cycle before clamping
	imbalanceFactor float64 // Spread between faster/slower stations around the line center
	configPath      string  // Optional YAML line-preset file
	lineName        string  // Preset name inside the YAML file

	// CLI flags for the run subcommand
	items          int     // Number of items to push through the line
	randomnessMode string  // off, arrivals, stations, or all
	arrivalJitter  float64 // Fraction stretching the mean inter-arrival gap
	seed           int64   // Seed for all per-subsystem RNG streams
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "line-sim",
	Short: "Discrete-event simulator for serial production lines",
}

// applyRandomnessMode maps the four-way randomness selector onto the two
// config booleans.
func applyRandomnessMode(selector string) (randomArrivals, randomStations bool, ok bool) {
	switch selector {
	case "off":
		return false, false, true
	case "arrivals":
		return true, false, true
	case "stations":
		return false, true, true
	case "all":
		return true, true, true
	}
	return false, false, false
}

// stationsForRun resolves the station set: a preset from the YAML config
// file when one is given, the built-in factory line otherwise.
func stationsForRun() []sim.StationConfig {
	if configPath == "" {
		return DefaultStations()
	}
	stations, err := LoadLine(configPath, lineName)
	if err != nil {
		logrus.Fatalf("unable to load line preset: %v", err)
	}
	return stations
}

// runCmd executes one full simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the production line simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		randomArrivals, randomStations, ok := applyRandomnessMode(randomnessMode)
		if !ok {
			logrus.Fatalf("Invalid randomness mode %q: must be off, arrivals, stations, or all", randomnessMode)
		}

		cfg := &sim.SimulationConfig{
			Items:            items,
			Mode:             sim.BalanceMode(mode),
			TargetEfficiency: eta,
			Slack:            slack,
			ImbalanceFactor:  imbalanceFactor,
			Stations:         stationsForRun(),
			ArrivalJitter:    arrivalJitter,
			RandomStations:   randomStations,
			RandomArrivals:   randomArrivals,
			Seed:             seed,
		}

		logrus.Infof("Starting simulation: %d items across %d stations, mode=%s seed=%d",
			cfg.Items, len(cfg.Stations), cfg.Mode, cfg.Seed)

		res, err := sim.Run(cfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		res.Print()
	},
}

// balanceCmd runs the line-balancing calculator without simulating
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Compute the balanced cycle time and per-station times",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		stations := stationsForRun()
		bal, err := sim.Balance(stations, sim.BalanceMode(mode), eta, slack, imbalanceFactor)
		if err != nil {
			logrus.Fatalf("Balance failed: %v", err)
		}
		PrintBalance(stations, bal)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, balanceCmd} {
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().StringVar(&mode, "mode", string(sim.ModeThroughputMax), "Cycle-time mode (throughput-max or target-efficiency)")
		c.Flags().Float64Var(&eta, "eta", 0.85, "Target design efficiency in (0,1] (target-efficiency mode only)")
		c.Flags().Float64Var(&slack, "slack", 0.5, "Extra seconds added to the cycle time before per-station clamping")
		c.Flags().Float64Var(&imbalanceFactor, "imbalance", 0.0, "Line imbalance factor spreading station times around the center")
		c.Flags().StringVar(&configPath, "config", "", "Path to a YAML line-preset file (built-in factory line when empty)")
		c.Flags().StringVar(&lineName, "line", "default", "Preset name inside the line-preset file")
	}

	runCmd.Flags().IntVar(&items, "items", 100, "Number of items to simulate")
	runCmd.Flags().StringVar(&randomnessMode, "randomness", "all", "Randomness mode (off, arrivals, stations, all)")
	runCmd.Flags().Float64Var(&arrivalJitter, "arrival-jitter", 0.0, "Arrival jitter fraction (0 = regular arrivals, >0 = bursty exponential)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random service times and arrivals")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(balanceCmd)
}
