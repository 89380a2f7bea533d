// Implements the Buffer, the unbounded FIFO queue of jobs between two
// adjacent line processes. Jobs are enqueued by the upstream process and
// dequeued, in order, by the downstream one.

package sim

import (
	"fmt"
	"strings"
)

// Buffer is an unbounded FIFO queue of jobs with exactly one producer and one
// consumer. The event loop serializes all access, so no synchronization is
// needed. Jobs leave in the order they entered: no reordering, no loss, no
// duplication.
type Buffer struct {
	queue []*Job
}

// Push adds a job to the back of the buffer.
func (b *Buffer) Push(j *Job) {
	b.queue = append(b.queue, j)
}

// Len returns the number of jobs waiting in the buffer.
func (b *Buffer) Len() int {
	return len(b.queue)
}

// Peek returns the job at the front of the buffer without removing it.
// Returns nil if the buffer is empty.
func (b *Buffer) Peek() *Job {
	if len(b.queue) == 0 {
		return nil
	}
	return b.queue[0]
}

// Pop removes and returns the job at the front of the buffer.
// Returns nil if the buffer is empty.
func (b *Buffer) Pop() *Job {
	if len(b.queue) == 0 {
		return nil
	}
	j := b.queue[0]
	b.queue = b.queue[1:]
	return j
}

func (b *Buffer) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, j := range b.queue {
		sb.WriteString(fmt.Sprint(j.Seq))
		if i < len(b.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
