package relaxed

import (
	"context"
	"errors"
	"time"
)

// DefaultRelaxation is the blind-sleep duration used by endpoints built
// without an explicit duration.
const DefaultRelaxation = 100 * time.Millisecond

// relax is the backoff sequence shared by every entry point: one immediate
// attempt, and on busy (empty for receives, full for sends) a blind sleep of
// the full relaxation duration followed by a single parking attempt. Any
// other error, closure included, short-circuits before the sleep.
//
// The blind sleep touches no channel state, so abandoning the call during it
// cannot strand a message or a slot.
func relax[T any](
	try func() (T, error),
	busy error,
	sleep func() error,
	wait func() (T, error),
) (T, error) {
	v, err := try()
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, busy) {
		var zero T
		return zero, err
	}
	if err := sleep(); err != nil {
		var zero T
		return zero, err
	}
	return wait()
}

// sleepCtx sleeps for the full d unless ctx is done first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
