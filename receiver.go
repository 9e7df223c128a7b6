package relaxed

import (
	"context"
	"iter"
	"time"

	"github.com/relaxed-go/relaxed/mpmc"
)

// Receiver wraps a consuming endpoint with the relaxation policy: receives
// that find the channel empty sleep for the relaxation duration before
// parking for a real wakeup.
//
// Receivers are cheap to clone. Clones share the channel and compete for its
// messages; each message is delivered to exactly one of them.
type Receiver[T any] struct {
	c        mpmc.Consumer[T]
	relaxFor time.Duration
}

// WrapReceiver wraps a raw consuming endpoint with the default relaxation.
func WrapReceiver[T any](c mpmc.Consumer[T]) *Receiver[T] {
	return WrapReceiverRelaxingFor(c, DefaultRelaxation)
}

// WrapReceiverRelaxingFor wraps a raw consuming endpoint with the given
// relaxation duration. Panics if relaxFor is negative.
func WrapReceiverRelaxingFor[T any](c mpmc.Consumer[T], relaxFor time.Duration) *Receiver[T] {
	if relaxFor < 0 {
		panic("relaxed: negative relaxation duration")
	}
	return &Receiver[T]{c: c, relaxFor: relaxFor}
}

// Recv receives one message.
//
// A buffered message is returned immediately. On an empty channel Recv
// sleeps for the full relaxation duration and then parks on the channel's
// own wakeup, so a message arriving mid-sleep is noticed only once the sleep
// elapses. Returns [ErrClosed] without sleeping when the channel is already
// closed and drained, and ctx.Err() if ctx is done during the sleep or the
// wait.
func (r *Receiver[T]) Recv(ctx context.Context) (T, error) {
	return relax(
		r.c.TryRecv,
		mpmc.ErrEmpty,
		func() error { return sleepCtx(ctx, r.relaxFor) },
		func() (T, error) { return r.c.Recv(ctx) },
	)
}

// RecvBlocking is Recv for call sites without a context. It uses a thread
// sleep and the channel's blocking wait, and cannot be abandoned early.
func (r *Receiver[T]) RecvBlocking() (T, error) {
	return relax(
		r.c.TryRecv,
		mpmc.ErrEmpty,
		func() error { time.Sleep(r.relaxFor); return nil },
		r.c.RecvBlocking,
	)
}

// Stream returns the channel's messages as a lazy sequence of repeated Recv
// calls. The sequence ends permanently on the first failed receive, whether
// from closure or from ctx; callers that need to tell the two apart should
// call Recv directly.
func (r *Receiver[T]) Stream(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := r.Recv(ctx)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of buffered, undelivered messages.
func (r *Receiver[T]) Len() int { return r.c.Len() }

// Cap returns the channel capacity; ok is false for unbounded channels.
func (r *Receiver[T]) Cap() (int, bool) { return r.c.Cap() }

// RelaxFor returns the configured relaxation duration.
func (r *Receiver[T]) RelaxFor() time.Duration { return r.relaxFor }

// Inner returns the raw endpoint, for operations the wrapper does not
// expose. The wrapper remains usable.
func (r *Receiver[T]) Inner() mpmc.Consumer[T] { return r.c }

// Clone duplicates the receiver. The clone holds its own endpoint on the
// same channel and copies the relaxation duration.
func (r *Receiver[T]) Clone() *Receiver[T] {
	return &Receiver[T]{c: r.c.Clone(), relaxFor: r.relaxFor}
}

// Close drops this receiver's endpoint. The channel closes once every
// receiver, or every sender, has been closed.
func (r *Receiver[T]) Close() {
	r.c.Close()
}
