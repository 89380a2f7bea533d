package sim

// StationConfig is the immutable per-station slice of a SimulationConfig.
type StationConfig struct {
	Name        string
	MinTime     float64 // lower bound on seconds per item
	MaxTime     float64 // upper bound on seconds per item
	Variability float64 // coefficient of variation for service time, >= 0
}

// Station is the runtime state of one processing stage. It is created fresh
// for every run, so accumulators never leak across runs. The accumulators are
// mutated only by this station's own process and read by the aggregator after
// the run ends.
type Station struct {
	Name        string
	Ordinal     int // 0-indexed position in the line
	MinTime     float64
	MaxTime     float64
	Variability float64
	ProcessTime float64 // nominal seconds per item assigned by the balancer

	CompletedCount int
	BusyTime       float64
}
