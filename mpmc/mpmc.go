package mpmc

import (
	"context"
	"sync/atomic"
)

// Bounded builds a channel that buffers at most capacity messages and
// returns its two endpoints. Panics if capacity is less than 1.
func Bounded[T any](capacity int) (*Sender[T], *Receiver[T]) {
	if capacity < 1 {
		panic("mpmc: capacity must be >= 1")
	}
	c := newCore[T](capacity)
	return &Sender[T]{c: c}, &Receiver[T]{c: c}
}

// Unbounded builds a channel with no capacity limit and returns its two
// endpoints. Sends on an unbounded channel never block.
func Unbounded[T any]() (*Sender[T], *Receiver[T]) {
	c := newCore[T](0)
	return &Sender[T]{c: c}, &Receiver[T]{c: c}
}

// Sender is a producing endpoint. All methods are safe for concurrent use.
// Close drops this handle only; the channel closes once every Sender, or
// every Receiver, has been closed.
type Sender[T any] struct {
	c    *core[T]
	done atomic.Bool
}

// TrySend enqueues v if the channel has room. Returns ErrFull when a bounded
// channel is at capacity, or a *SendError carrying v when the channel is
// closed.
func (s *Sender[T]) TrySend(v T) error {
	return s.c.trySend(v)
}

// Send enqueues v, parking until a slot frees up. Unblocks with ctx.Err()
// when ctx is done; the item is not enqueued in that case.
func (s *Sender[T]) Send(ctx context.Context, v T) error {
	return s.c.send(ctx, v)
}

// SendBlocking enqueues v, parking the calling goroutine until a slot frees
// up or the channel closes.
func (s *Sender[T]) SendBlocking(v T) error {
	return s.c.sendBlocking(v)
}

// Len returns the number of buffered, undelivered messages.
func (s *Sender[T]) Len() int { return s.c.len() }

// Cap returns the channel capacity; ok is false for unbounded channels.
func (s *Sender[T]) Cap() (int, bool) { return s.c.cap() }

// Clone returns a new independent producing handle on the same channel.
func (s *Sender[T]) Clone() Producer[T] {
	s.c.addSender()
	return &Sender[T]{c: s.c}
}

// Close drops this handle. Safe to call more than once; only the first call
// counts. If this was the last sender the channel closes: receivers may
// still drain buffered messages, then get ErrClosed.
func (s *Sender[T]) Close() {
	if s.done.Swap(true) {
		return
	}
	s.c.dropSender()
}

// Receiver is a consuming endpoint. All methods are safe for concurrent use;
// clones compete for messages. Close drops this handle only; the channel
// closes once every Receiver, or every Sender, has been closed.
type Receiver[T any] struct {
	c    *core[T]
	done atomic.Bool
}

// TryRecv dequeues the oldest message if one is buffered. Returns ErrEmpty
// when the channel is open but empty, and ErrClosed once it is closed and
// drained.
func (r *Receiver[T]) TryRecv() (T, error) {
	return r.c.tryRecv()
}

// Recv dequeues the oldest message, parking until one arrives. Unblocks with
// ctx.Err() when ctx is done.
func (r *Receiver[T]) Recv(ctx context.Context) (T, error) {
	return r.c.recv(ctx)
}

// RecvBlocking dequeues the oldest message, parking the calling goroutine
// until one arrives or the channel is closed and drained.
func (r *Receiver[T]) RecvBlocking() (T, error) {
	return r.c.recvBlocking()
}

// Len returns the number of buffered, undelivered messages.
func (r *Receiver[T]) Len() int { return r.c.len() }

// Cap returns the channel capacity; ok is false for unbounded channels.
func (r *Receiver[T]) Cap() (int, bool) { return r.c.cap() }

// Clone returns a new independent consuming handle on the same channel.
func (r *Receiver[T]) Clone() Consumer[T] {
	r.c.addReceiver()
	return &Receiver[T]{c: r.c}
}

// Close drops this handle. Safe to call more than once; only the first call
// counts. If this was the last receiver the channel closes and buffered
// messages are discarded; senders get a *SendError carrying their item.
func (r *Receiver[T]) Close() {
	if r.done.Swap(true) {
		return
	}
	r.c.dropReceiver()
}
