package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event has a Timestamp (simulated seconds) and an Execute method that
// advances simulation state when invoked. The engine pops events in
// (timestamp, scheduling sequence) order, so two events at the same instant
// resolve in the order they were scheduled.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// EmitEvent represents the source releasing its next job into the line.
type EmitEvent struct {
	time float64 // scheduled emission time (simulated seconds)
	seq  int     // 1-based index of the job being emitted
}

// Timestamp returns the scheduled time of the EmitEvent.
func (e *EmitEvent) Timestamp() float64 {
	return e.time
}

// Execute pushes a fresh job into the first buffer, wakes the first station
// if it is idle, and schedules the next emission until the configured item
// count is reached. After the final emission the source simply stops.
func (e *EmitEvent) Execute(sim *Simulator) {
	logrus.Debugf(">> emit: job %d at %.3fs", e.seq, e.time)

	job := &Job{Seq: e.seq, CreatedAt: e.time}
	sim.Buffers[0].Push(job)
	sim.wake(0)

	if e.seq < sim.Items {
		gap := SampleInterArrival(sim.Cadence, sim.arrivalJitter, sim.randomArrivals, sim.sourceRNG)
		sim.Schedule(&EmitEvent{time: e.time + gap, seq: e.seq + 1})
	}
}

// FinishEvent represents a station completing service on one job.
type FinishEvent struct {
	time    float64 // scheduled completion time (simulated seconds)
	station int     // ordinal of the station finishing
	job     *Job    // the job being finished
	actual  float64 // sampled service duration that just elapsed
}

// Timestamp returns the scheduled time of the FinishEvent.
func (e *FinishEvent) Timestamp() float64 {
	return e.time
}

// Execute records the station's statistics, forwards the job downstream (or
// records a completion at the terminal station), and starts service on the
// next buffered job if one is waiting.
func (e *FinishEvent) Execute(sim *Simulator) {
	st := sim.Stations[e.station]
	logrus.Debugf("<< finish: %s done with job %d at %.3fs", st.Name, e.job.Seq, e.time)

	// Busy time accrues here and only here.
	st.CompletedCount++
	st.BusyTime += e.actual

	if e.station+1 < len(sim.Stations) {
		sim.Buffers[e.station+1].Push(e.job)
		sim.wake(e.station + 1)
	} else {
		sim.Metrics.RecordCompletion(e.job, e.time)
	}

	sim.startNext(e.station)
}
