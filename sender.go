package relaxed

import (
	"context"
	"time"

	"github.com/relaxed-go/relaxed/mpmc"
)

// Sender wraps a producing endpoint with the relaxation policy: sends that
// find a bounded channel full sleep for the relaxation duration before
// parking for a real wakeup.
//
// Only bounded channels benefit; an unbounded producer never observes full,
// which is why the unbounded factories leave the sending side unwrapped.
// Senders are cheap to clone; clones are independent producers on the same
// channel.
type Sender[T any] struct {
	p        mpmc.Producer[T]
	relaxFor time.Duration
}

// WrapSender wraps a raw producing endpoint with the default relaxation.
func WrapSender[T any](p mpmc.Producer[T]) *Sender[T] {
	return WrapSenderRelaxingFor(p, DefaultRelaxation)
}

// WrapSenderRelaxingFor wraps a raw producing endpoint with the given
// relaxation duration. Panics if relaxFor is negative.
func WrapSenderRelaxingFor[T any](p mpmc.Producer[T], relaxFor time.Duration) *Sender[T] {
	if relaxFor < 0 {
		panic("relaxed: negative relaxation duration")
	}
	return &Sender[T]{p: p, relaxFor: relaxFor}
}

// Send sends one message.
//
// If the channel has room the message is enqueued immediately. On a full
// channel Send sleeps for the full relaxation duration and then parks on the
// channel's own wakeup, so a slot freed mid-sleep is noticed only once the
// sleep elapses. When the channel is closed the returned error unwraps to
// [ErrClosed] and carries v as a [mpmc.SendError], without sleeping if the
// closure is seen on the fast path. Returns ctx.Err() if ctx is done during
// the sleep or the wait; the message is not enqueued in that case.
func (s *Sender[T]) Send(ctx context.Context, v T) error {
	_, err := relax(
		func() (struct{}, error) { return struct{}{}, s.p.TrySend(v) },
		mpmc.ErrFull,
		func() error { return sleepCtx(ctx, s.relaxFor) },
		func() (struct{}, error) { return struct{}{}, s.p.Send(ctx, v) },
	)
	return err
}

// SendBlocking is Send for call sites without a context. It uses a thread
// sleep and the channel's blocking wait, and cannot be abandoned early.
func (s *Sender[T]) SendBlocking(v T) error {
	_, err := relax(
		func() (struct{}, error) { return struct{}{}, s.p.TrySend(v) },
		mpmc.ErrFull,
		func() error { time.Sleep(s.relaxFor); return nil },
		func() (struct{}, error) { return struct{}{}, s.p.SendBlocking(v) },
	)
	return err
}

// Len returns the number of buffered, undelivered messages.
func (s *Sender[T]) Len() int { return s.p.Len() }

// Cap returns the channel capacity; ok is false for unbounded channels.
func (s *Sender[T]) Cap() (int, bool) { return s.p.Cap() }

// RelaxFor returns the configured relaxation duration.
func (s *Sender[T]) RelaxFor() time.Duration { return s.relaxFor }

// Inner returns the raw endpoint, for operations the wrapper does not
// expose. The wrapper remains usable.
func (s *Sender[T]) Inner() mpmc.Producer[T] { return s.p }

// Clone duplicates the sender. The clone holds its own endpoint on the same
// channel and copies the relaxation duration.
func (s *Sender[T]) Clone() *Sender[T] {
	return &Sender[T]{p: s.p.Clone(), relaxFor: s.relaxFor}
}

// Close drops this sender's endpoint. The channel closes once every sender,
// or every receiver, has been closed.
func (s *Sender[T]) Close() {
	s.p.Close()
}
