package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/line-sim/line-sim/sim"
)

// LineConfig represents the full line-preset YAML structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type LineConfig struct {
	Lines map[string]Line `yaml:"lines"`
}

// Line describes one preset line: an ordered list of stations.
type Line struct {
	Stations []StationSpec `yaml:"stations"`
}

// StationSpec describes one station in a preset.
type StationSpec struct {
	Name        string  `yaml:"name"`
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Variability float64 `yaml:"variability"`
}

// LoadLine reads a preset line from a YAML file. Inverted min/max bounds are
// auto-corrected by swapping, matching the control surface's behavior; the
// core still rejects inverted bounds that reach it unswapped.
func LoadLine(path, name string) ([]sim.StationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read line preset file: %w", err)
	}

	// Parse YAML with strict field checking so typos cause errors
	var cfg LineConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse line preset file: %w", err)
	}

	line, ok := cfg.Lines[name]
	if !ok {
		return nil, fmt.Errorf("line preset %q not found in %s", name, path)
	}
	if len(line.Stations) == 0 {
		return nil, fmt.Errorf("line preset %q has no stations", name)
	}

	stations := make([]sim.StationConfig, len(line.Stations))
	for i, spec := range line.Stations {
		min, max := spec.Min, spec.Max
		if min > max {
			min, max = max, min
		}
		stations[i] = sim.StationConfig{
			Name:        spec.Name,
			MinTime:     min,
			MaxTime:     max,
			Variability: spec.Variability,
		}
	}
	return stations, nil
}

// DefaultStations returns the built-in five-station factory line used when no
// preset file is given.
func DefaultStations() []sim.StationConfig {
	return []sim.StationConfig{
		{Name: "Miner", MinTime: 20, MaxTime: 45, Variability: 0},
		{Name: "Smelter", MinTime: 25, MaxTime: 70, Variability: 0.05},
		{Name: "Constructor", MinTime: 15, MaxTime: 50, Variability: 0.03},
		{Name: "Painter", MinTime: 12, MaxTime: 40, Variability: 0.02},
		{Name: "Packager", MinTime: 10, MaxTime: 35, Variability: 0.01},
	}
}

// PrintBalance displays the calculator's output for the balance subcommand.
func PrintBalance(stations []sim.StationConfig, bal sim.BalanceResult) {
	fmt.Println("=== Line Balance ===")
	fmt.Printf("Cycle Time        : %.3f s\n", bal.CycleTime)
	fmt.Printf("Design Throughput : %.4f items/s\n", bal.Throughput)
	fmt.Printf("Design Efficiency : %.1f%%\n", bal.Efficiency*100)
	fmt.Printf("Bottlenecks       : %v\n", bal.Bottlenecks)
	fmt.Println("--- Station Times ---")
	for i, st := range stations {
		fmt.Printf("%-12s : %7.3f s/item  (bounds %.0f-%.0f)\n", st.Name, bal.StationTimes[i], st.MinTime, st.MaxTime)
	}
}
