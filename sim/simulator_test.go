package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deterministicLineConfig is the 5-station pipeline with nominal stage times
// [20,30,20,15,10] and all randomness off. The engine is driven with those
// times directly, the way Run drives it with balanced times.
func deterministicLineConfig(items int) (*SimulationConfig, []float64) {
	times := []float64{20, 30, 20, 15, 10}
	stations := make([]StationConfig, len(times))
	for i, tt := range times {
		stations[i] = StationConfig{Name: fmt.Sprintf("S%d", i), MinTime: tt, MaxTime: tt}
	}
	return &SimulationConfig{
		Items:    items,
		Mode:     ModeThroughputMax,
		Stations: stations,
		Seed:     1,
	}, times
}

func TestSimulator_DeterministicLine_Makespan(t *testing.T) {
	// GIVEN 3 items through stages [20,30,20,15,10] with no randomness
	cfg, times := deterministicLineConfig(3)
	s := NewSimulator(cfg, times)

	// WHEN the run completes
	res := s.Run()

	// THEN the third item leaves the terminal station at exactly 155s:
	// the 30s stage paces the line, and the last item still has to drain
	// through every stage.
	if res.Makespan != 155 {
		t.Errorf("makespan: got %v, want 155", res.Makespan)
	}
}

func TestSimulator_DeterministicLine_FIFOCompletionOrder(t *testing.T) {
	// GIVEN a deterministic 10-item run
	cfg, times := deterministicLineConfig(10)
	s := NewSimulator(cfg, times)

	// WHEN the run completes
	s.Run()

	// THEN jobs leave the terminal station in emission order 1..N
	if len(s.Metrics.Completions) != 10 {
		t.Fatalf("completions: got %d, want 10", len(s.Metrics.Completions))
	}
	for i, seq := range s.Metrics.Completions {
		if seq != i+1 {
			t.Errorf("completion[%d]: got job %d, want %d", i, seq, i+1)
		}
	}
}

func TestSimulator_FIFOHeldUnderRandomness(t *testing.T) {
	// GIVEN a run with every randomness source enabled
	cfg, times := deterministicLineConfig(25)
	cfg.RandomArrivals = true
	cfg.RandomStations = true
	cfg.ArrivalJitter = 0.4
	for i := range cfg.Stations {
		cfg.Stations[i].Variability = 0.2
	}
	s := NewSimulator(cfg, times)

	// WHEN the run completes
	s.Run()

	// THEN randomness shifts timing but never sequencing
	for i, seq := range s.Metrics.Completions {
		if seq != i+1 {
			t.Errorf("completion[%d]: got job %d, want %d", i, seq, i+1)
		}
	}
}

func TestSimulator_Conservation_EveryStationProcessesEveryJob(t *testing.T) {
	// GIVEN a randomized 20-item run
	cfg, times := deterministicLineConfig(20)
	cfg.RandomArrivals = true
	cfg.RandomStations = true
	cfg.ArrivalJitter = 0.3
	for i := range cfg.Stations {
		cfg.Stations[i].Variability = 0.15
	}
	s := NewSimulator(cfg, times)

	// WHEN the run completes
	res := s.Run()

	// THEN no job is lost or duplicated anywhere on the line
	for _, st := range res.Stations {
		if st.Count != 20 {
			t.Errorf("station %s: completed %d jobs, want 20", st.Name, st.Count)
		}
	}
}

func TestSimulator_DeterministicLine_BusyTimes(t *testing.T) {
	// GIVEN a 3-item deterministic run
	cfg, times := deterministicLineConfig(3)
	s := NewSimulator(cfg, times)

	// WHEN the run completes
	res := s.Run()

	// THEN each station's busy time is items * its stage time
	for i, st := range res.Stations {
		want := 3 * times[i]
		if st.BusyTime != want {
			t.Errorf("station %d busy time: got %v, want %v", i, st.BusyTime, want)
		}
	}
}

func TestSimulator_ClockNeverRewinds(t *testing.T) {
	// GIVEN a randomized run
	cfg, times := deterministicLineConfig(15)
	cfg.RandomArrivals = true
	cfg.ArrivalJitter = 0.5
	s := NewSimulator(cfg, times)

	// WHEN the run completes
	res := s.Run()

	// THEN the final clock equals the last terminal completion
	if s.Clock != res.Makespan {
		t.Errorf("final clock %v != makespan %v", s.Clock, res.Makespan)
	}
}

func TestRun_DeterministicGivenSeed(t *testing.T) {
	cfg := &SimulationConfig{
		Items:           50,
		Mode:            ModeThroughputMax,
		Slack:           0.5,
		ImbalanceFactor: 0.2,
		Stations: []StationConfig{
			{Name: "Miner", MinTime: 20, MaxTime: 45},
			{Name: "Smelter", MinTime: 25, MaxTime: 70, Variability: 0.05},
			{Name: "Constructor", MinTime: 15, MaxTime: 50, Variability: 0.03},
			{Name: "Painter", MinTime: 12, MaxTime: 40, Variability: 0.02},
			{Name: "Packager", MinTime: 10, MaxTime: 35, Variability: 0.01},
		},
		ArrivalJitter:  0.3,
		RandomStations: true,
		RandomArrivals: true,
		Seed:           42,
	}

	res1, err := Run(cfg)
	require.NoError(t, err)
	res2, err := Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, res1, res2, "identical config and seed must produce identical results")

	cfg.Seed = 43
	res3, err := Run(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, res1.Makespan, res3.Makespan, "a different seed should shift the makespan")
}

func TestRun_BottlenecksComeFromBalancer(t *testing.T) {
	cfg := &SimulationConfig{
		Items: 5,
		Mode:  ModeThroughputMax,
		Stations: []StationConfig{
			{Name: "A", MinTime: 30, MaxTime: 60},
			{Name: "B", MinTime: 30, MaxTime: 50},
			{Name: "C", MinTime: 10, MaxTime: 40},
		},
		Seed: 1,
	}

	res, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Bottlenecks)
}

func TestRun_RejectsInvalidConfigBeforeSimulating(t *testing.T) {
	cfg := &SimulationConfig{
		Items:    0,
		Mode:     ModeThroughputMax,
		Stations: []StationConfig{{Name: "A", MinTime: 1, MaxTime: 2}},
	}

	_, err := Run(cfg)
	var invalid *InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
}

func TestRun_SurfacesInfeasibleRanges(t *testing.T) {
	cfg := &SimulationConfig{
		Items: 10,
		Mode:  ModeThroughputMax,
		Stations: []StationConfig{
			{Name: "A", MinTime: 50, MaxTime: 60},
			{Name: "B", MinTime: 10, MaxTime: 40},
		},
		Seed: 1,
	}

	_, err := Run(cfg)
	var infeasible *InfeasibleRangeError
	assert.ErrorAs(t, err, &infeasible)
}

func TestRun_FreshStatisticsPerRun(t *testing.T) {
	cfg := &SimulationConfig{
		Items: 4,
		Mode:  ModeThroughputMax,
		Stations: []StationConfig{
			{Name: "A", MinTime: 10, MaxTime: 20},
			{Name: "B", MinTime: 10, MaxTime: 20},
		},
		Seed: 9,
	}

	res1, err := Run(cfg)
	require.NoError(t, err)
	res2, err := Run(cfg)
	require.NoError(t, err)

	// no cross-run leakage: counts reflect a single run each time
	for i := range res1.Stations {
		assert.Equal(t, 4, res1.Stations[i].Count)
		assert.Equal(t, 4, res2.Stations[i].Count)
	}
}
