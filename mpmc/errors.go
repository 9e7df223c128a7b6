package mpmc

import (
	"errors"
)

var (
	// ErrEmpty is returned by TryRecv when the channel has no buffered
	// messages but is still open.
	ErrEmpty = errors.New("mpmc: channel empty")

	// ErrFull is returned by TrySend when a bounded channel is at capacity.
	ErrFull = errors.New("mpmc: channel full")

	// ErrClosed is returned by receive operations once the channel is closed
	// and drained. Send operations report closure with a SendError, which
	// unwraps to ErrClosed.
	ErrClosed = errors.New("mpmc: channel closed")
)

// SendError is returned by send operations on a closed channel. It carries
// the item that could not be delivered so the caller does not lose it.
//
//	err := s.Send(ctx, v)
//	var closed *mpmc.SendError[Event]
//	if errors.As(err, &closed) {
//		requeue(closed.Item)
//	}
type SendError[T any] struct {
	Item T
}

func (e *SendError[T]) Error() string { return "mpmc: send on closed channel" }
func (e *SendError[T]) Unwrap() error { return ErrClosed }
