package relaxed

import (
	"time"

	"github.com/relaxed-go/relaxed/mpmc"
)

// Bounded builds a channel that buffers at most capacity messages, with both
// endpoints relaxed for the default 100ms. Panics if capacity is less than
// 1.
func Bounded[T any](capacity int) (*Sender[T], *Receiver[T]) {
	return BoundedRelaxingFor[T](capacity, DefaultRelaxation)
}

// BoundedRelaxingFor builds a bounded channel with both endpoints relaxed
// for the given duration. Panics if capacity is less than 1 or relaxFor is
// negative.
func BoundedRelaxingFor[T any](capacity int, relaxFor time.Duration) (*Sender[T], *Receiver[T]) {
	s, r := mpmc.Bounded[T](capacity)
	return WrapSenderRelaxingFor[T](s, relaxFor), WrapReceiverRelaxingFor[T](r, relaxFor)
}

// Unbounded builds an unbounded channel with the receiving endpoint relaxed
// for the default 100ms. The sending endpoint is returned raw: sends on an
// unbounded channel never block, so there is nothing to relax.
func Unbounded[T any]() (*mpmc.Sender[T], *Receiver[T]) {
	return UnboundedRelaxingFor[T](DefaultRelaxation)
}

// UnboundedRelaxingFor builds an unbounded channel with the receiving
// endpoint relaxed for the given duration. Panics if relaxFor is negative.
func UnboundedRelaxingFor[T any](relaxFor time.Duration) (*mpmc.Sender[T], *Receiver[T]) {
	s, r := mpmc.Unbounded[T]()
	return s, WrapReceiverRelaxingFor[T](r, relaxFor)
}
