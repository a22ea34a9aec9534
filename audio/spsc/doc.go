// Package spsc implements a fixed-capacity, lock-free ring buffer of samples
// shared between exactly one producer goroutine and one consumer goroutine.
// Typical use: an audio callback pushes samples into the queue and a worker
// goroutine drains them, with no locks on either side.
package spsc
