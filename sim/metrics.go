// Tracks run-wide statistics for final KPI reporting.

package sim

import (
	"fmt"
	"math"
	"slices"
)

// Metrics accumulates run-wide statistics while a simulation executes.
// A fresh Metrics is created per run, so nothing leaks across runs.
type Metrics struct {
	// Completions holds job sequence numbers in the order they left the
	// terminal station.
	Completions []int
	// Makespan is the completion time of the last job at the terminal
	// station; 0 if no job ever completes.
	Makespan float64
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordCompletion notes a job leaving the terminal station. Only the last
// completion matters for makespan; later completions overwrite earlier ones.
func (m *Metrics) RecordCompletion(j *Job, now float64) {
	m.Completions = append(m.Completions, j.Seq)
	m.Makespan = now
}

// Result freezes the run's statistics into an immutable SimulationResult.
func (m *Metrics) Result(stations []*Station) *SimulationResult {
	res := &SimulationResult{
		Stations: make([]StationStats, len(stations)),
		Makespan: m.Makespan,
	}
	for i, st := range stations {
		res.Stations[i] = StationStats{
			Name:     st.Name,
			Count:    st.CompletedCount,
			BusyTime: st.BusyTime,
		}
	}
	return res
}

// StationStats is the per-station slice of a SimulationResult.
type StationStats struct {
	Name     string
	Count    int     // jobs this station finished during the run
	BusyTime float64 // total seconds this station spent processing
}

// SimulationResult is the aggregated outcome of one run. It is produced once,
// at run completion, and never mutated afterwards. Derived KPIs are computed
// from the stored fields rather than stored independently.
type SimulationResult struct {
	Stations    []StationStats
	Makespan    float64
	Bottlenecks []string // from the balancer: stations pinning the cycle time
}

// Throughput returns the average completion rate in items per second,
// counting jobs that left the terminal station.
func (r *SimulationResult) Throughput() float64 {
	if r.Makespan <= 0 || len(r.Stations) == 0 {
		return 0
	}
	completed := r.Stations[len(r.Stations)-1].Count
	return float64(completed) / r.Makespan
}

// RuntimeEfficiency returns the realized average utilization across stations,
// total busy time over stations*makespan. This is distinct from the
// balancer's design-time efficiency estimate.
func (r *SimulationResult) RuntimeEfficiency() float64 {
	if r.Makespan <= 0 || len(r.Stations) == 0 {
		return 0
	}
	total := 0.0
	for _, st := range r.Stations {
		total += st.BusyTime
	}
	return total / (float64(len(r.Stations)) * r.Makespan)
}

// Utilization returns station i's busy fraction of the run.
func (r *SimulationResult) Utilization(i int) float64 {
	if r.Makespan <= 0 {
		return 0
	}
	return r.Stations[i].BusyTime / r.Makespan
}

// Print displays the KPI report at the end of a run.
func (r *SimulationResult) Print() {
	fmt.Println("=== Simulation KPIs ===")
	fmt.Printf("Makespan           : %s\n", FormatDuration(r.Makespan))
	fmt.Printf("Throughput         : %.3f items/s\n", r.Throughput())
	fmt.Printf("Runtime Efficiency : %.1f%%\n", r.RuntimeEfficiency()*100)
	fmt.Println("--- Station Utilization ---")
	for i, st := range r.Stations {
		marker := ""
		if slices.Contains(r.Bottlenecks, st.Name) {
			marker = "  [bottleneck]"
		}
		fmt.Printf("%-12s : %5.1f%%  (%d items, %s busy)%s\n",
			st.Name, r.Utilization(i)*100, st.Count, FormatDuration(st.BusyTime), marker)
	}
}

// FormatDuration renders simulated seconds as a compact "1h 2m 3s" string.
func FormatDuration(seconds float64) string {
	s := int(math.Round(seconds))
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, sec)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, sec)
	}
	return fmt.Sprintf("%ds", sec)
}
