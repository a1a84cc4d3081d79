package headlessterm

import "errors"

// ErrInvalidArgument is returned when an embedder entry point receives a
// value outside its documented valid range (e.g. Resize to zero or negative
// dimensions). See spec error taxonomy item 3: programming contract
// violations by the embedder fail explicitly rather than silently
// corrupting terminal state.
var ErrInvalidArgument = errors.New("headlessterm: invalid argument")

// ErrInvalidState is returned when an embedder entry point is called in a
// lifecycle state that does not support it (e.g. Feed after Close).
var ErrInvalidState = errors.New("headlessterm: invalid state")

// ErrClosed is returned by Feed once Close has been called. Unlike
// ErrInvalidState's broader "wrong lifecycle phase" meaning, this is the
// specific terminal-state sentinel spec §7 error taxonomy item 3 names:
// Feed after teardown fails explicitly rather than panicking or silently
// discarding input.
var ErrClosed = errors.New("headlessterm: closed")
