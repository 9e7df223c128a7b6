package relaxed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/relaxed-go/relaxed/mpmc"
)

func TestRecvFastPathDoesNotSleep(t *testing.T) {
	s, r := BoundedRelaxingFor[int](4, 500*time.Millisecond)
	defer s.Close()
	defer r.Close()

	require.NoError(t, s.Send(context.Background(), 1))

	start := time.Now()
	v, err := r.Recv(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Less(t, time.Since(start), 250*time.Millisecond)
}

func TestRecvClosedDoesNotSleep(t *testing.T) {
	s, r := BoundedRelaxingFor[int](4, 500*time.Millisecond)
	s.Close()

	start := time.Now()
	_, err := r.Recv(context.Background())
	require.ErrorIs(t, err, ErrClosed)
	require.Less(t, time.Since(start), 250*time.Millisecond)

	_, err = r.RecvBlocking()
	require.ErrorIs(t, err, ErrClosed)
}

// A message arriving during the blind sleep is only picked up once the full
// relaxation duration has elapsed.
func TestRecvCommitsToFullSleep(t *testing.T) {
	const relaxFor = 150 * time.Millisecond
	s, r := BoundedRelaxingFor[int](4, relaxFor)
	defer s.Close()
	defer r.Close()

	go func() {
		time.Sleep(30 * time.Millisecond)
		s.Inner().TrySend(5)
	}()

	start := time.Now()
	v, err := r.Recv(context.Background())
	elapsed := time.Since(start)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.GreaterOrEqual(t, elapsed, relaxFor)
}

func TestRecvBlockingCommitsToFullSleep(t *testing.T) {
	const relaxFor = 150 * time.Millisecond
	s, r := BoundedRelaxingFor[int](4, relaxFor)
	defer s.Close()
	defer r.Close()

	go func() {
		time.Sleep(30 * time.Millisecond)
		s.Inner().TrySend(5)
	}()

	start := time.Now()
	v, err := r.RecvBlocking()
	elapsed := time.Since(start)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.GreaterOrEqual(t, elapsed, relaxFor)
}

func TestRecvContextCanceledDuringSleep(t *testing.T) {
	s, r := BoundedRelaxingFor[int](4, time.Minute)
	defer s.Close()
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := r.Recv(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), 10*time.Second)
}

func TestStreamEndsOnClose(t *testing.T) {
	s, r := BoundedRelaxingFor[int](8, 5*time.Millisecond)
	defer r.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.SendBlocking(i))
	}
	s.Close()

	var got []int
	for v := range r.Stream(context.Background()) {
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, got)

	// The channel stays closed, so a fresh sequence ends immediately.
	for range r.Stream(context.Background()) {
		t.Fatal("stream yielded after close")
	}
}

func TestStreamEarlyBreakLeavesChannelUsable(t *testing.T) {
	s, r := BoundedRelaxingFor[int](8, 5*time.Millisecond)
	defer s.Close()
	defer r.Close()

	for i := 0; i < 4; i++ {
		require.NoError(t, s.SendBlocking(i))
	}

	for v := range r.Stream(context.Background()) {
		if v == 1 {
			break
		}
	}

	v, err := r.Recv(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestReceiverClonesCompete(t *testing.T) {
	s, r := BoundedRelaxingFor[int](4, 5*time.Millisecond)
	defer s.Close()
	defer r.Close()

	r2 := r.Clone()
	defer r2.Close()
	require.Equal(t, r.RelaxFor(), r2.RelaxFor())

	require.NoError(t, s.SendBlocking(1))
	require.NoError(t, s.SendBlocking(2))

	a, err := r.Recv(context.Background())
	require.NoError(t, err)
	b, err := r2.Recv(context.Background())
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 2}, []int{a, b})
}

func TestReceiverIntrospection(t *testing.T) {
	s, r := Bounded[string](3)
	defer s.Close()
	defer r.Close()

	require.Equal(t, DefaultRelaxation, r.RelaxFor())
	require.NotNil(t, r.Inner())

	capacity, ok := r.Cap()
	require.True(t, ok)
	require.Equal(t, 3, capacity)

	require.NoError(t, s.SendBlocking("x"))
	require.Equal(t, 1, r.Len())

	// Advanced operations go through the raw endpoint.
	v, err := r.Inner().TryRecv()
	require.NoError(t, err)
	require.Equal(t, "x", v)
}

func TestWrapReceiverPanicsOnNegativeDuration(t *testing.T) {
	_, r := mpmc.Unbounded[int]()
	require.Panics(t, func() { WrapReceiverRelaxingFor[int](r, -time.Second) })
}
