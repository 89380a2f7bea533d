package sim

// Job is one unit of work moving down the line. Jobs are created by the
// source and handed station to station through buffers; pushing a job onto a
// buffer transfers ownership to the consumer, so a job is never mutated after
// creation.
type Job struct {
	Seq       int     // 1-based emission order
	CreatedAt float64 // simulated time at which the source emitted it
}
