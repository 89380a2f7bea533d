// Implements the line balancer: cycle-time selection under per-station
// [min,max] bounds and per-station time assignment around that cycle.

package sim

import (
	"fmt"
	"math"
)

// BalanceResult is the output of one Balance call.
type BalanceResult struct {
	StationTimes []float64 // nominal seconds/item per station, clamped to each station's bounds
	CycleTime    float64   // the pacing interval the line is balanced around
	Throughput   float64   // design throughput, 1/CycleTime, items per second
	Efficiency   float64   // design efficiency: total work / (n * cycle)
	Bottlenecks  []string  // stations whose min time pins the cycle (ties included)
}

// Balance computes a feasible cycle time for the line and spreads it into
// per-station nominal times. It is a pure function of its inputs.
//
// In ModeThroughputMax the cycle is the tightest one every station can
// sustain, max over min times. In ModeTargetEfficiency the requested cycle is
// totalWork / (n * targetEfficiency), clamped into the feasible range: a
// target beyond what the bounds allow saturates silently rather than failing.
func Balance(stations []StationConfig, mode BalanceMode, targetEfficiency, slack, imbalanceFactor float64) (BalanceResult, error) {
	if len(stations) == 0 {
		return BalanceResult{}, &InvalidConfigError{Field: "stations", Reason: "at least one station is required"}
	}

	n := len(stations)
	totalWork := 0.0
	fastestFeasible := math.Inf(-1)
	slowestFeasible := math.Inf(1)
	for _, st := range stations {
		totalWork += st.MinTime
		fastestFeasible = math.Max(fastestFeasible, st.MinTime)
		slowestFeasible = math.Min(slowestFeasible, st.MaxTime)
	}
	if fastestFeasible > slowestFeasible {
		return BalanceResult{}, &InfeasibleRangeError{
			FastestFeasible: fastestFeasible,
			SlowestFeasible: slowestFeasible,
		}
	}

	var cycle float64
	switch mode {
	case ModeThroughputMax:
		cycle = fastestFeasible
	case ModeTargetEfficiency:
		if !(targetEfficiency > 0 && targetEfficiency <= 1) {
			return BalanceResult{}, &InvalidEfficiencyError{Target: targetEfficiency}
		}
		requested := totalWork / (float64(n) * targetEfficiency)
		cycle = clamp(requested, fastestFeasible, slowestFeasible)
	default:
		return BalanceResult{}, &InvalidConfigError{Field: "mode", Reason: fmt.Sprintf("must be %q or %q, got %q", ModeThroughputMax, ModeTargetEfficiency, mode)}
	}

	// Apply slack, then spread stations linearly around the line center:
	// earlier stations run faster, later ones slower, scaled by the imbalance
	// factor. Clamping keeps every assignment inside that station's own
	// physical bounds no matter how large slack or imbalance get.
	times := make([]float64, n)
	for i, st := range stations {
		adjusted := (cycle + slack) * (1.0 + imbalanceFactor*(float64(i)-float64(n)/2.0)/float64(n))
		times[i] = clamp(adjusted, st.MinTime, st.MaxTime)
	}

	var bottlenecks []string
	for _, st := range stations {
		if st.MinTime == fastestFeasible {
			bottlenecks = append(bottlenecks, st.Name)
		}
	}

	return BalanceResult{
		StationTimes: times,
		CycleTime:    cycle,
		Throughput:   1.0 / cycle,
		Efficiency:   totalWork / (float64(n) * cycle),
		Bottlenecks:  bottlenecks,
	}, nil
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
