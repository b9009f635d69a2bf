package snake

// DefaultQueueCapacity is the number of direction changes buffered between moves.
const DefaultQueueCapacity = 3

// DirectionQueue buffers direction changes pressed faster than the snake moves.
// It is a fixed-capacity ring buffer; each move consumes at most one entry.
type DirectionQueue struct {
	buf   []Direction
	head  int
	count int
}

// NewDirectionQueue creates a queue holding at most capacity entries.
func NewDirectionQueue(capacity int) *DirectionQueue {
	if capacity < 1 {
		capacity = DefaultQueueCapacity
	}
	return &DirectionQueue{buf: make([]Direction, capacity)}
}

// Len returns the number of queued directions.
func (q *DirectionQueue) Len() int {
	return q.count
}

// Cap returns the queue capacity.
func (q *DirectionQueue) Cap() int {
	return len(q.buf)
}

// Last returns the most recently queued direction.
func (q *DirectionQueue) Last() (Direction, bool) {
	if q.count == 0 {
		return 0, false
	}
	return q.buf[(q.head+q.count-1)%len(q.buf)], true
}

// Push queues d relative to current, the direction the snake is moving in now.
// It rejects d when the queue is full, when d repeats the last queued
// direction, or when d reverses the last queued direction (or current, if
// nothing is queued). Returns whether d was accepted.
func (q *DirectionQueue) Push(d, current Direction) bool {
	if q.count >= len(q.buf) {
		return false
	}

	prev := current
	if last, ok := q.Last(); ok {
		if last == d {
			return false
		}
		prev = last
	}
	if d.IsOpposite(prev) {
		return false
	}

	q.buf[(q.head+q.count)%len(q.buf)] = d
	q.count++
	return true
}

// Pop removes and returns the oldest queued direction.
func (q *DirectionQueue) Pop() (Direction, bool) {
	if q.count == 0 {
		return 0, false
	}
	d := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return d, true
}

// Clear drops every queued direction.
func (q *DirectionQueue) Clear() {
	q.head = 0
	q.count = 0
}

// Slice returns the queued directions, oldest first.
func (q *DirectionQueue) Slice() []Direction {
	out := make([]Direction, q.count)
	for i := range out {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return out
}
