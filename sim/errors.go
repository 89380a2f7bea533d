package sim

import "fmt"

// InfeasibleRangeError reports that no cycle time satisfies every station's
// [min,max] bounds simultaneously. It is surfaced before any simulated time
// advances and is fatal to that configuration.
type InfeasibleRangeError struct {
	FastestFeasible float64 // max over station minimum times
	SlowestFeasible float64 // min over station maximum times
}

func (e *InfeasibleRangeError) Error() string {
	return fmt.Sprintf("infeasible ranges: fastest feasible cycle %.3fs exceeds slowest feasible cycle %.3fs; no overlap between min and max settings",
		e.FastestFeasible, e.SlowestFeasible)
}

// InvalidEfficiencyError reports a target-efficiency request outside (0,1].
type InvalidEfficiencyError struct {
	Target float64
}

func (e *InvalidEfficiencyError) Error() string {
	return fmt.Sprintf("invalid target efficiency %v: need a value in (0,1] for %s mode", e.Target, ModeTargetEfficiency)
}

// InvalidConfigError reports a malformed SimulationConfig. Field identifies
// the offending parameter (including the station, for per-station fields).
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}
