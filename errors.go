package relaxed

import (
	"github.com/relaxed-go/relaxed/mpmc"
)

// ErrClosed reports that the channel is closed: no senders remain and the
// buffer is drained (for receives), or no receivers remain (for sends).
// Errors from the underlying channel surface unchanged, so this is an alias
// for [mpmc.ErrClosed]; the error returned by a failed send additionally
// carries the undelivered item as a [mpmc.SendError].
var ErrClosed = mpmc.ErrClosed
