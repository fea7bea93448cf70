package recorder

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/utils/logging"
)

// State represents the capture state machine position
type State string

const (
	StateIdle      State = "idle"
	StateRecording State = "recording"
	StatePaused    State = "paused"
	StateStopped   State = "stopped"
)

const (
	defaultChunkInterval = 100 * time.Millisecond
	defaultChunkSize     = 4096
)

// Recorder governs microphone acquisition, start/pause/resume/stop
// transitions, chunk accumulation and elapsed-time tracking. The device
// handle is held exclusively: re-entrant Start releases any prior handle
// before acquiring a new one, and every exit path releases it.
type Recorder struct {
	device Device

	chunkInterval time.Duration
	chunkSize     int
	now           func() time.Time

	mu        sync.Mutex
	state     State
	gen       uint64 // bumped by Start/Reset to cut off in-flight acquires
	handle    Handle
	chunks    [][]byte
	final     []byte
	recorded  time.Duration // accumulated Recording time, Paused excluded
	resumedAt time.Time     // valid while state is Recording
	pumpStop  chan struct{}
	pumpDone  chan struct{}
}

type Option func(*Recorder)

// WithChunkInterval overrides the accumulation cadence (default 100ms)
func WithChunkInterval(d time.Duration) Option {
	return func(r *Recorder) {
		r.chunkInterval = d
	}
}

// WithChunkSize overrides the per-read chunk size
func WithChunkSize(n int) Option {
	return func(r *Recorder) {
		r.chunkSize = n
	}
}

// WithClock injects a time source for deterministic elapsed-time tests
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// New creates a recorder in the Idle state over the given input device
func New(device Device, opts ...Option) *Recorder {
	r := &Recorder{
		device:        device,
		chunkInterval: defaultChunkInterval,
		chunkSize:     defaultChunkSize,
		now:           time.Now,
		state:         StateIdle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current state
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Elapsed returns the captured duration: time spent in Recording, with
// Paused intervals excluded
func (r *Recorder) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.recorded
	if r.state == StateRecording {
		d += r.now().Sub(r.resumedAt)
	}
	return d
}

// ElapsedSeconds returns the elapsed time in whole seconds, the unit the
// one-tick-per-second UI counter displays
func (r *Recorder) ElapsedSeconds() int {
	return int(r.Elapsed() / time.Second)
}

// Bytes returns the finalized audio buffer. Only available after Stop;
// nil otherwise.
func (r *Recorder) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateStopped {
		return nil
	}
	out := make([]byte, len(r.final))
	copy(out, r.final)
	return out
}

// Start begins a new capture session. Any previous session is torn down
// first so two device handles are never held at once. Acquisition failures
// (including permission denial) are surfaced to the caller. If Reset is
// called while acquisition is pending, the recorder converges to Idle once
// the acquisition settles and the late handle is released.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	prevHandle := r.handle
	prevStop := r.pumpStop
	prevDone := r.pumpDone
	r.handle = nil
	r.pumpStop = nil
	r.pumpDone = nil
	r.state = StateIdle
	r.chunks = nil
	r.final = nil
	r.recorded = 0
	r.mu.Unlock()

	// Release the prior handle before acquiring a new one
	stopPump(ctx, prevStop, prevDone, prevHandle)

	handle, err := r.device.Acquire(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to acquire input device")
	}

	r.mu.Lock()
	if r.gen != gen {
		// Reset (or another Start) intervened while the permission prompt
		// was pending: stay converged on whatever the newer call decided.
		r.mu.Unlock()
		if closeErr := handle.Close(); closeErr != nil {
			logging.From(ctx).Warn("failed to release abandoned device handle", "error", closeErr.Error())
		}
		logging.From(ctx).Debug("recording start abandoned before device acquisition settled")
		return nil
	}

	r.handle = handle
	r.state = StateRecording
	r.resumedAt = r.now()
	r.pumpStop = make(chan struct{})
	r.pumpDone = make(chan struct{})
	go r.pump(handle, r.pumpStop, r.pumpDone)
	r.mu.Unlock()

	return nil
}

// Pause suspends accumulation and the elapsed counter without releasing the
// device. From any state but Recording it is a diagnostic no-op: the state
// is unchanged and ErrInvalidState is returned.
func (r *Recorder) Pause() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRecording {
		return goerr.Wrap(ErrInvalidState, "pause requires recording state",
			goerr.V("state", r.state))
	}

	r.recorded += r.now().Sub(r.resumedAt)
	r.state = StatePaused
	return nil
}

// Resume restarts accumulation and the elapsed counter. Valid only from
// Paused; otherwise a diagnostic no-op.
func (r *Recorder) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StatePaused {
		return goerr.Wrap(ErrInvalidState, "resume requires paused state",
			goerr.V("state", r.state))
	}

	r.resumedAt = r.now()
	r.state = StateRecording
	return nil
}

// Stop finalizes the buffer, releases the device and halts the counter.
// Valid from Recording or Paused; otherwise a diagnostic no-op.
func (r *Recorder) Stop(ctx context.Context) error {
	r.mu.Lock()
	if r.state != StateRecording && r.state != StatePaused {
		state := r.state
		r.mu.Unlock()
		return goerr.Wrap(ErrInvalidState, "stop requires recording or paused state",
			goerr.V("state", state))
	}

	if r.state == StateRecording {
		r.recorded += r.now().Sub(r.resumedAt)
	}
	r.state = StateStopped

	// Concatenate accumulated chunks into the final audio object here, in the
	// same critical section that flips the state: the pump only appends while
	// Recording, so the chunk list is settled, and a racing Start cannot have
	// its fresh session consumed by this stop.
	var total int
	for _, c := range r.chunks {
		total += len(c)
	}
	final := make([]byte, 0, total)
	for _, c := range r.chunks {
		final = append(final, c...)
	}
	r.final = final
	r.chunks = nil

	handle := r.handle
	stop := r.pumpStop
	done := r.pumpDone
	r.handle = nil
	r.pumpStop = nil
	r.pumpDone = nil
	r.mu.Unlock()

	stopPump(ctx, stop, done, handle)

	return nil
}

// Reset forcibly stops any active capture, releases the device, clears the
// buffer and zeroes the counter. Valid from every state; the recorder is
// always Idle afterwards.
func (r *Recorder) Reset(ctx context.Context) {
	r.mu.Lock()
	r.gen++
	handle := r.handle
	stop := r.pumpStop
	done := r.pumpDone
	r.handle = nil
	r.pumpStop = nil
	r.pumpDone = nil
	r.state = StateIdle
	r.chunks = nil
	r.final = nil
	r.recorded = 0
	r.mu.Unlock()

	stopPump(ctx, stop, done, handle)
}

// Close releases all resources regardless of state. It is the guaranteed
// teardown path for component disposal.
func (r *Recorder) Close() error {
	r.Reset(context.Background())
	return nil
}

// pump accumulates fixed-size chunks from the handle on the configured
// cadence. Accumulation is suspended while Paused; the goroutine exits when
// stop is signalled or the handle fails.
func (r *Recorder) pump(handle Handle, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.chunkInterval)
	defer ticker.Stop()

	buf := make([]byte, r.chunkSize)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.mu.Lock()
			recording := r.state == StateRecording
			r.mu.Unlock()
			if !recording {
				continue
			}

			n, err := handle.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])

				r.mu.Lock()
				if r.state == StateRecording {
					r.chunks = append(r.chunks, chunk)
				}
				r.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}
}

// stopPump tears down a capture session: signal the pump, unblock any
// pending read by closing the handle, then wait for the pump to exit.
func stopPump(ctx context.Context, stop chan struct{}, done chan struct{}, handle Handle) {
	if stop != nil {
		close(stop)
	}
	if handle != nil {
		if err := handle.Close(); err != nil {
			logging.From(ctx).Warn("failed to release device handle", "error", err.Error())
		}
	}
	if done != nil {
		<-done
	}
}
