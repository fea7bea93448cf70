package recorder

import (
	"context"
	"io"

	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for device acquisition and state transitions
var (
	// ErrPermissionDenied is returned by a Device when the user declines
	// microphone access or no input device exists. It is surfaced to the
	// caller for user-facing messaging, never retried automatically.
	ErrPermissionDenied = goerr.New("microphone access denied")

	// ErrInvalidState is returned by transitions attempted from a state
	// that does not allow them. The recorder state is left unchanged.
	ErrInvalidState = goerr.New("invalid recorder state for operation")
)

// Device grants exclusive access to an audio input. Acquire may block while
// a permission prompt is pending; the recorder tolerates the caller
// abandoning the attempt and converges on Reset once it settles.
type Device interface {
	Acquire(ctx context.Context) (Handle, error)
}

// Handle is a live capture stream. Read returns raw audio data; Close
// releases the underlying input device. Close must be idempotent.
type Handle interface {
	io.Reader
	io.Closer
}
