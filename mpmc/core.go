package mpmc

import (
	"context"
	"sync"

	"github.com/bradenaw/juniper/container/deque"
)

// core is the shared state behind every endpoint of one channel. capacity of
// 0 means unbounded. Waiter queues are FIFO; abandoned waiters linger until a
// waker or close pops them, and are skipped by the state CAS.
//
// Invariant: recvq holds a live waiter only while buf is empty, and sendq
// holds a live waiter only while buf is full. Direct handoff in
// trySendLocked and promotion in promoteSenderLocked preserve delivery order.
type core[T any] struct {
	mu        sync.Mutex
	buf       deque.Deque[T]
	capacity  int
	sendq     deque.Deque[*waiter[T]]
	recvq     deque.Deque[*waiter[T]]
	senders   int
	receivers int
	closed    bool
}

func newCore[T any](capacity int) *core[T] {
	return &core[T]{
		capacity:  capacity,
		senders:   1,
		receivers: 1,
	}
}

func (c *core[T]) tryRecv() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tryRecvLocked()
}

func (c *core[T]) tryRecvLocked() (T, error) {
	if c.buf.Len() > 0 {
		v := c.buf.PopFront()
		c.promoteSenderLocked()
		return v, nil
	}
	var zero T
	if c.closed {
		return zero, ErrClosed
	}
	return zero, ErrEmpty
}

// promoteSenderLocked moves the item of the oldest live parked sender into
// the slot just freed by a dequeue.
func (c *core[T]) promoteSenderLocked() {
	for c.sendq.Len() > 0 {
		w := c.sendq.PopFront()
		if v, ok := w.take(); ok {
			c.buf.PushBack(v)
			return
		}
	}
}

func (c *core[T]) recv(ctx context.Context) (T, error) {
	v, w, err := c.recvOrPark()
	if w == nil {
		return v, err
	}
	return w.wait(ctx)
}

func (c *core[T]) recvBlocking() (T, error) {
	v, w, err := c.recvOrPark()
	if w == nil {
		return v, err
	}
	return w.waitBlocking()
}

// recvOrPark attempts an immediate receive and, if the channel is empty and
// open, registers a waiter instead. The registration happens under the same
// lock as the attempt, so a send cannot slip between the two.
func (c *core[T]) recvOrPark() (T, *waiter[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, err := c.tryRecvLocked()
	if err == ErrEmpty {
		w := newWaiter[T]()
		c.recvq.PushBack(w)
		return v, w, nil
	}
	return v, nil, err
}

func (c *core[T]) trySend(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trySendLocked(v)
}

func (c *core[T]) trySendLocked(v T) error {
	if c.closed {
		return &SendError[T]{Item: v}
	}
	for c.buf.Len() == 0 && c.recvq.Len() > 0 {
		w := c.recvq.PopFront()
		if w.admit(v) {
			return nil
		}
	}
	if c.capacity > 0 && c.buf.Len() >= c.capacity {
		return ErrFull
	}
	c.buf.PushBack(v)
	return nil
}

func (c *core[T]) send(ctx context.Context, v T) error {
	w, err := c.sendOrPark(v)
	if w == nil {
		return err
	}
	if _, err := w.wait(ctx); err != nil {
		if err == ErrClosed {
			return &SendError[T]{Item: v}
		}
		return err
	}
	return nil
}

func (c *core[T]) sendBlocking(v T) error {
	w, err := c.sendOrPark(v)
	if w == nil {
		return err
	}
	if _, err := w.waitBlocking(); err != nil {
		return &SendError[T]{Item: v}
	}
	return nil
}

func (c *core[T]) sendOrPark(v T) (*waiter[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.trySendLocked(v)
	if err == ErrFull {
		w := newSendWaiter(v)
		c.sendq.PushBack(w)
		return w, nil
	}
	return nil, err
}

func (c *core[T]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Len()
}

func (c *core[T]) cap() (int, bool) {
	if c.capacity <= 0 {
		return 0, false
	}
	return c.capacity, true
}

func (c *core[T]) addSender() {
	c.mu.Lock()
	c.senders++
	c.mu.Unlock()
}

func (c *core[T]) addReceiver() {
	c.mu.Lock()
	c.receivers++
	c.mu.Unlock()
}

func (c *core[T]) dropSender() {
	c.mu.Lock()
	c.senders--
	if c.senders == 0 {
		c.closeLocked(false)
	}
	c.mu.Unlock()
}

func (c *core[T]) dropReceiver() {
	c.mu.Lock()
	c.receivers--
	if c.receivers == 0 {
		c.closeLocked(true)
	}
	c.mu.Unlock()
}

// closeLocked wakes every parked operation with a closed outcome. discard
// empties the buffer; it is set when the receivers are gone and no message
// can ever be claimed.
func (c *core[T]) closeLocked(discard bool) {
	if c.closed {
		return
	}
	c.closed = true
	for c.recvq.Len() > 0 {
		c.recvq.PopFront().drop()
	}
	for c.sendq.Len() > 0 {
		c.sendq.PopFront().drop()
	}
	if discard {
		c.buf = deque.Deque[T]{}
	}
}
