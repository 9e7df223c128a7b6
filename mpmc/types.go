package mpmc

import (
	"context"
)

// Producer is the contract of a sending endpoint.
//
// TrySend returns nil, ErrFull, or a *SendError. Send and SendBlocking park
// until a slot frees up or the channel closes; Send additionally unblocks
// with ctx.Err() when ctx is done. Clones share the channel and are
// independent producers; the channel closes for good once every Producer or
// every Consumer handle has been closed.
type Producer[T any] interface {
	TrySend(v T) error
	Send(ctx context.Context, v T) error
	SendBlocking(v T) error
	Len() int
	Cap() (int, bool)
	Clone() Producer[T]
	Close()
}

// Consumer is the contract of a receiving endpoint.
//
// TryRecv returns ErrEmpty or ErrClosed when no message is available. Recv
// and RecvBlocking park until a message arrives or the channel is closed and
// drained. Clones are competing consumers: each message is delivered to
// exactly one of them.
type Consumer[T any] interface {
	TryRecv() (T, error)
	Recv(ctx context.Context) (T, error)
	RecvBlocking() (T, error)
	Len() int
	Cap() (int, bool)
	Clone() Consumer[T]
	Close()
}

var (
	_ Producer[int] = (*Sender[int])(nil)
	_ Consumer[int] = (*Receiver[int])(nil)
)
