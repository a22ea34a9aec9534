package spsc

import "sync/atomic"

// Queue is a single-producer/single-consumer sample ring. It holds
// capacity+1 internal slots; one slot stays permanently reserved so an equal
// read and write position always means empty, never full.
//
// The producer alone advances the write position and the consumer alone the
// read position, each published through sync/atomic. That gives the pair the
// required happens-before edge: a consumer that observes a new write
// position also observes every sample stored before the position was
// published, and symmetrically for the producer observing freed slots.
//
// Write and Read never block, never allocate, and finish in time bounded by
// the transfer count. All other goroutines must stay away from the instance.
type Queue struct {
	// The positions live on separate cache lines so the producer and
	// consumer cores do not invalidate each other's line on every advance.
	writePos atomic.Uint64
	_        [56]byte
	readPos  atomic.Uint64
	_        [56]byte

	buf []float64
}

// New returns a queue able to hold capacity samples. A capacity of zero or
// less yields a queue that accepts and delivers nothing; that is the
// intended degenerate state, not an error.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue{buf: make([]float64, capacity+1)}
}

// Cap returns the usable capacity requested at construction.
func (q *Queue) Cap() int {
	return len(q.buf) - 1
}

// Write copies up to len(p) samples into the queue and returns the number
// actually written. A short count means the queue ran out of space and the
// remainder was dropped; callers must check the count, not assume full
// transfer. Call only from the producer goroutine.
func (q *Queue) Write(p []float64) int {
	w := int(q.writePos.Load())
	r := int(q.readPos.Load())
	n := len(q.buf)

	free := (r - w + n - 1) % n
	count := min(len(p), free)
	if count == 0 {
		return 0
	}

	// One or two copies depending on wraparound.
	if first := n - w; first >= count {
		copy(q.buf[w:w+count], p[:count])
	} else {
		copy(q.buf[w:], p[:first])
		copy(q.buf[:count-first], p[first:count])
	}

	q.writePos.Store(uint64((w + count) % n))

	return count
}

// Read copies up to len(p) samples out of the queue in write order and
// returns the number actually read; a short count means the queue had less
// queued than requested. Call only from the consumer goroutine.
func (q *Queue) Read(p []float64) int {
	r := int(q.readPos.Load())
	w := int(q.writePos.Load())
	n := len(q.buf)

	avail := (w - r + n) % n
	count := min(len(p), avail)
	if count == 0 {
		return 0
	}

	if first := n - r; first >= count {
		copy(p[:count], q.buf[r:r+count])
	} else {
		copy(p[:first], q.buf[r:])
		copy(p[first:count], q.buf[:count-first])
	}

	q.readPos.Store(uint64((r + count) % n))

	return count
}

// AvailableToRead returns how many samples were queued at the moment of the
// call. The count is an instantaneous snapshot, not a reservation: a
// concurrent producer may have grown it before the caller acts on it.
func (q *Queue) AvailableToRead() int {
	w := int(q.writePos.Load())
	r := int(q.readPos.Load())

	return (w - r + len(q.buf)) % len(q.buf)
}

// AvailableToWrite returns how many samples of space were free at the moment
// of the call; same snapshot caveat as AvailableToRead. At all times
// AvailableToRead plus AvailableToWrite equals Cap.
func (q *Queue) AvailableToWrite() int {
	w := int(q.writePos.Load())
	r := int(q.readPos.Load())
	n := len(q.buf)

	return (r - w + n - 1) % n
}

// Empty reports whether the queue held no samples at the moment of the call.
func (q *Queue) Empty() bool {
	return q.writePos.Load() == q.readPos.Load()
}

// Full reports whether the queue had no free space at the moment of the call.
func (q *Queue) Full() bool {
	return q.AvailableToWrite() == 0
}

// Clear resets both positions to the initial empty state. Sample slots are
// not zeroed. Clear must not run concurrently with an in-flight Write or
// Read; quiesce both sides first.
func (q *Queue) Clear() {
	q.readPos.Store(0)
	q.writePos.Store(0)
}
