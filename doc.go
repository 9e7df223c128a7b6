// Package relaxed layers a fixed backoff onto the endpoints of an MPMC
// channel so that, under heavy load, each side pays for waking the other at
// most once per relaxation window.
//
// When consumers outpace producers the channel is almost always empty, so a
// consumer would normally park itself for wakeup after every message and the
// producer would spend a growing share of its time marking consumers
// runnable. At millions of messages per second, multiplied by the number of
// consumers, that wakeup traffic is what limits the producer. The wrappers
// here first try the channel without blocking; on empty (or, for senders,
// full) they sleep blindly for the relaxation duration (100ms by default)
// and only then park for a real wakeup. A consumer therefore needs to be
// woken by a producer at most once per relaxation window, at the cost of up
// to one window of added latency whenever the fast path misses.
//
// The blind sleep is never cut short, even if a message arrives while it is
// in progress. Waking early would require registering for wakeup, which is
// exactly the cost this package exists to avoid.
//
// All receivers of a channel may be asleep at the same time for a full
// window, so a bounded channel should be sized to hold at least one window's
// worth of messages or the producers will stall.
//
// See https://github.com/relaxed-go/relaxed for more background.
package relaxed
