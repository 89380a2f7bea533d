// sim/simulator.go
package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// scheduledEvent pairs an event with the sequence number it was assigned when
// scheduled. Same-timestamp events pop in scheduling order, which makes
// resumption FIFO by the order suspension began and keeps seeded runs
// reproducible.
type scheduledEvent struct {
	ev  Event
	seq int64
}

// EventQueue implements heap.Interface and orders events by (timestamp, seq).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []scheduledEvent

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].ev.Timestamp() != eq[j].ev.Timestamp() {
		return eq[i].ev.Timestamp() < eq[j].ev.Timestamp()
	}
	return eq[i].seq < eq[j].seq
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(scheduledEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulated time, the line topology,
// and the event loop. All processes (the source and every station) are
// logically concurrent but only one advances at a given simulated instant;
// the loop serializes every state mutation.
type Simulator struct {
	Clock float64 // current simulated time in seconds; only ever increases
	Items int     // number of jobs the source emits

	// Stations[i] consumes from Buffers[i]; the terminal station has no
	// output buffer and records completions instead.
	Stations []*Station
	Buffers  []*Buffer

	// Cadence is the source's base inter-arrival gap: the first station's
	// nominal processing time.
	Cadence float64

	// EventQueue has all pending simulator events, emissions and completions.
	EventQueue EventQueue
	Metrics    *Metrics

	eventSeq       int64
	processing     []bool // per-station: true while a FinishEvent is pending
	arrivalJitter  float64
	randomArrivals bool
	randomStations bool
	sourceRNG      *rand.Rand
	stationRNGs    []*rand.Rand
}

// NewSimulator wires the line for one run: a fresh Station per configured
// stage, one buffer in front of each, and per-subsystem RNG streams derived
// from the config's seed. times holds the balanced nominal seconds/item per
// station, index-aligned with cfg.Stations.
func NewSimulator(cfg *SimulationConfig, times []float64) *Simulator {
	n := len(cfg.Stations)
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))

	s := &Simulator{
		Items:          cfg.Items,
		Stations:       make([]*Station, n),
		Buffers:        make([]*Buffer, n),
		Cadence:        times[0],
		EventQueue:     make(EventQueue, 0),
		Metrics:        NewMetrics(),
		processing:     make([]bool, n),
		arrivalJitter:  cfg.ArrivalJitter,
		randomArrivals: cfg.RandomArrivals,
		randomStations: cfg.RandomStations,
		sourceRNG:      rng.ForSubsystem(SubsystemSource),
		stationRNGs:    make([]*rand.Rand, n),
	}
	for i, sc := range cfg.Stations {
		s.Stations[i] = &Station{
			Name:        sc.Name,
			Ordinal:     i,
			MinTime:     sc.MinTime,
			MaxTime:     sc.MaxTime,
			Variability: sc.Variability,
			ProcessTime: times[i],
		}
		s.Buffers[i] = &Buffer{}
		s.stationRNGs[i] = rng.ForSubsystem(SubsystemStation(i))
	}
	return s
}

// Schedule pushes an event into the simulator's EventQueue, assigning it the
// next scheduling sequence number.
func (sim *Simulator) Schedule(ev Event) {
	sim.eventSeq++
	heap.Push(&sim.EventQueue, scheduledEvent{ev: ev, seq: sim.eventSeq})
}

// Run drives the event loop to natural completion: the queue drains once the
// source has emitted every job and every station has forwarded them all.
// There is no external cancellation; a valid topology always terminates.
func (sim *Simulator) Run() *SimulationResult {
	if sim.Items > 0 {
		sim.Schedule(&EmitEvent{time: 0, seq: 1})
	}
	for len(sim.EventQueue) > 0 {
		se := heap.Pop(&sim.EventQueue).(scheduledEvent)
		// advance the clock
		sim.Clock = se.ev.Timestamp()
		logrus.Debugf("[t=%010.3f] executing %T", sim.Clock, se.ev)
		se.ev.Execute(sim)
	}
	logrus.Debugf("[t=%010.3f] simulation ended", sim.Clock)
	return sim.Metrics.Result(sim.Stations)
}

// wake hands station i its next job if it is idle. A push onto the buffer of
// a busy station leaves the job queued; the station pulls it when its current
// FinishEvent executes.
func (sim *Simulator) wake(i int) {
	if sim.processing[i] {
		return
	}
	sim.startNext(i)
}

// startNext begins service on the next buffered job for station i, sampling
// an actual duration from the station's own RNG stream and scheduling the
// matching FinishEvent. With an empty buffer the station goes idle until the
// next push wakes it.
func (sim *Simulator) startNext(i int) {
	job := sim.Buffers[i].Pop()
	if job == nil {
		sim.processing[i] = false
		return
	}
	st := sim.Stations[i]
	actual := SampleServiceTime(st.ProcessTime, st.Variability, sim.randomStations, sim.stationRNGs[i])
	sim.processing[i] = true
	logrus.Debugf("-- start: %s takes job %d for %.3fs at %.3fs", st.Name, job.Seq, actual, sim.Clock)
	sim.Schedule(&FinishEvent{time: sim.Clock + actual, station: i, job: job, actual: actual})
}
