// Package mpmc provides a closable multi-producer multi-consumer channel with
// non-blocking, context-aware, and thread-blocking operations.
//
// Unlike a native Go channel, endpoints are first-class: each side of the
// channel is a reference-counted handle that can be cloned, and the channel
// closes itself once every handle on either side has been closed. Sending on
// a closed channel returns an error carrying the undelivered item instead of
// panicking, and receivers can drain buffered messages after the senders are
// gone.
//
// The package exists to back the wrappers in the parent relaxed package, but
// nothing here knows about relaxation; it is a plain channel. The Producer
// and Consumer interfaces describe the full contract, so another queue
// implementation can be substituted for the one here.
package mpmc
