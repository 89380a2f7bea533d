package sim

import "fmt"

// BalanceMode selects how the line balancer picks a cycle time.
type BalanceMode string

const (
	// ModeThroughputMax picks the tightest cycle time every station can sustain.
	ModeThroughputMax BalanceMode = "throughput-max"
	// ModeTargetEfficiency picks the cycle time that hits a requested design
	// efficiency, clamped into the feasible range.
	ModeTargetEfficiency BalanceMode = "target-efficiency"
)

// SimulationConfig is the immutable per-run snapshot of everything a run
// needs. It is constructed once by the caller and never mutated during the
// run; independent runs share no state beyond the values copied from it.
type SimulationConfig struct {
	Items            int         // number of jobs the source emits, >= 1
	Mode             BalanceMode // cycle-time selection mode
	TargetEfficiency float64     // required iff Mode == ModeTargetEfficiency, in (0,1]
	Slack            float64     // seconds added to the cycle before clamping, >= 0
	ImbalanceFactor  float64     // linear spread of station times around the line center, >= 0
	Stations         []StationConfig
	ArrivalJitter    float64 // fraction by which bursty arrivals stretch the mean gap, >= 0
	RandomStations   bool    // enables per-job service-time randomness
	RandomArrivals   bool    // enables exponential inter-arrival jitter
	Seed             int64   // master seed for all per-subsystem RNG streams
}

// Validate rejects misconfiguration before any simulated time advances.
func (c *SimulationConfig) Validate() error {
	if c.Items < 1 {
		return &InvalidConfigError{Field: "items", Reason: fmt.Sprintf("must be >= 1, got %d", c.Items)}
	}
	switch c.Mode {
	case ModeThroughputMax, ModeTargetEfficiency:
	default:
		return &InvalidConfigError{Field: "mode", Reason: fmt.Sprintf("must be %q or %q, got %q", ModeThroughputMax, ModeTargetEfficiency, c.Mode)}
	}
	if len(c.Stations) == 0 {
		return &InvalidConfigError{Field: "stations", Reason: "at least one station is required"}
	}
	for i, st := range c.Stations {
		field := fmt.Sprintf("stations[%d] (%s)", i, st.Name)
		if st.MinTime < 0 {
			return &InvalidConfigError{Field: field, Reason: fmt.Sprintf("min time must be >= 0, got %v", st.MinTime)}
		}
		if st.MinTime > st.MaxTime {
			return &InvalidConfigError{Field: field, Reason: fmt.Sprintf("min time %v exceeds max time %v", st.MinTime, st.MaxTime)}
		}
		if st.Variability < 0 {
			return &InvalidConfigError{Field: field, Reason: fmt.Sprintf("variability must be >= 0, got %v", st.Variability)}
		}
	}
	if c.Slack < 0 {
		return &InvalidConfigError{Field: "slack", Reason: fmt.Sprintf("must be >= 0, got %v", c.Slack)}
	}
	if c.ImbalanceFactor < 0 {
		return &InvalidConfigError{Field: "imbalance_factor", Reason: fmt.Sprintf("must be >= 0, got %v", c.ImbalanceFactor)}
	}
	if c.ArrivalJitter < 0 {
		return &InvalidConfigError{Field: "arrival_jitter", Reason: fmt.Sprintf("must be >= 0, got %v", c.ArrivalJitter)}
	}
	return nil
}
