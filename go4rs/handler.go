package go4rs

import "sync"

// Handler routes invocations delivered by a callback channel to user code,
// either through a direct callback (Closure) or through a Go channel
// (FifoChannel, RingChannel).
type Handler[T any] interface {
	// ToCbDropHandler returns the callback function, optional drop function,
	// and receive channel. For callback-based handlers the channel is nil;
	// for channel-based handlers the callback sends to the channel.
	ToCbDropHandler() (callback func(T), drop func(), receiver <-chan T)
}

// Closure wraps a direct callback function for invocation delivery.
type Closure[T any] struct {
	call func(T)
	drop func()
}

// ToCbDropHandler returns the callback and drop functions with no channel.
func (c *Closure[T]) ToCbDropHandler() (func(T), func(), <-chan T) {
	return c.call, c.drop, nil
}

// NewClosure creates a callback-based handler.
func NewClosure[T any](call func(T), drop func()) *Closure[T] {
	return &Closure[T]{call: call, drop: drop}
}

// FifoChannel delivers invocations to a buffered channel.
// When the channel is full, delivery blocks until space is available.
type FifoChannel[T any] struct {
	channel chan T
}

// ToCbDropHandler returns a callback that sends to the channel.
func (f *FifoChannel[T]) ToCbDropHandler() (func(T), func(), <-chan T) {
	callback := func(inv T) {
		f.channel <- inv
	}
	drop := func() {
		close(f.channel)
	}
	return callback, drop, f.channel
}

// NewFifoChannel creates a channel-based handler with the specified buffer
// size. A buffer size of 0 creates an unbuffered channel (synchronous).
func NewFifoChannel[T any](bufferSize int) *FifoChannel[T] {
	return &FifoChannel[T]{
		channel: make(chan T, bufferSize),
	}
}

// RingChannel delivers invocations to a channel with ring buffer semantics.
// When the channel is full, the oldest invocation is dropped to make room.
type RingChannel[T any] struct {
	channel chan T
	mu      sync.Mutex
}

// ToCbDropHandler returns a callback that sends to the channel with ring
// buffer behavior.
func (r *RingChannel[T]) ToCbDropHandler() (func(T), func(), <-chan T) {
	callback := func(inv T) {
		r.mu.Lock()
		defer r.mu.Unlock()
		select {
		case r.channel <- inv:
		default:
			// Channel full - drop oldest and retry
			<-r.channel
			r.channel <- inv
		}
	}
	drop := func() {
		close(r.channel)
	}
	return callback, drop, r.channel
}

// NewRingChannel creates a ring buffer channel handler with the specified
// capacity. The capacity must be greater than 0.
func NewRingChannel[T any](capacity int) *RingChannel[T] {
	if capacity <= 0 {
		panic("ring channel capacity must be > 0")
	}
	return &RingChannel[T]{
		channel: make(chan T, capacity),
	}
}
