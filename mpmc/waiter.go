package mpmc

import (
	"context"
	"sync/atomic"
)

const (
	waiterPending uint32 = iota
	waiterWoken
	waiterAbandoned
)

// waiter is one parked send or receive operation. A parked receiver has val
// filled in by admit; a parked sender carries its outgoing item in val until
// a consumer claims it with take.
//
// The state word settles the race between wakeup and abandonment: whichever
// side wins the CAS from pending owns the waiter. A waker that loses simply
// moves on to the next waiter in the queue.
type waiter[T any] struct {
	s   uint32
	c   chan bool
	val T
}

func newWaiter[T any]() *waiter[T] {
	return &waiter[T]{c: make(chan bool, 1)}
}

func newSendWaiter[T any](val T) *waiter[T] {
	return &waiter[T]{c: make(chan bool, 1), val: val}
}

func (w *waiter[T]) wait(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		if !atomic.CompareAndSwapUint32(&w.s, waiterPending, waiterAbandoned) {
			// A waker got here first; its signal is already in flight, so
			// take the delivery rather than dropping a message.
			if ok := <-w.c; ok {
				return w.val, nil
			}
			var zero T
			return zero, ErrClosed
		}
		var zero T
		return zero, ctx.Err()
	case ok := <-w.c:
		if ok {
			return w.val, nil
		}
		var zero T
		return zero, ErrClosed
	}
}

func (w *waiter[T]) waitBlocking() (T, error) {
	if ok := <-w.c; ok {
		return w.val, nil
	}
	var zero T
	return zero, ErrClosed
}

// admit delivers v to a parked receiver. Reports false if the receiver
// already gave up.
func (w *waiter[T]) admit(v T) bool {
	if !atomic.CompareAndSwapUint32(&w.s, waiterPending, waiterWoken) {
		return false
	}
	w.val = v
	w.c <- true
	return true
}

// take claims the outgoing item of a parked sender. Reports false if the
// sender already gave up, in which case the item stays with the sender.
func (w *waiter[T]) take() (T, bool) {
	if !atomic.CompareAndSwapUint32(&w.s, waiterPending, waiterWoken) {
		var zero T
		return zero, false
	}
	v := w.val
	w.c <- true
	return v, true
}

// drop wakes the waiter with a closed-channel outcome.
func (w *waiter[T]) drop() {
	if atomic.CompareAndSwapUint32(&w.s, waiterPending, waiterWoken) {
		w.c <- false
	}
}
