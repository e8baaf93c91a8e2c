package tui

import (
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// DefaultReleaseAfter is used when the game does not provide a timeout.
const DefaultReleaseAfter = 150 * time.Millisecond

// releaseTracker synthesizes key releases. Terminals only report key
// presses, repeated while a key is held. A lone message is a tap and is
// released in the frame it is pressed. A second message within the timeout
// is autorepeat and starts a hold, which ends once no repeat arrived for the
// timeout.
type releaseTracker struct {
	after time.Duration
	keys  map[core.Action]keyHold
}

type keyHold struct {
	last time.Time
	held bool
}

func newReleaseTracker(after time.Duration) *releaseTracker {
	if after <= 0 {
		after = DefaultReleaseAfter
	}
	return &releaseTracker{
		after: after,
		keys:  make(map[core.Action]keyHold),
	}
}

// Press records a key message for a at now.
func (r *releaseTracker) Press(a core.Action, now time.Time, frame *core.InputFrame) {
	k, seen := r.keys[a]
	switch {
	case k.held:
	case seen && now.Sub(k.last) < r.after:
		// Autorepeat: the key is down after all. A tap release still
		// waiting in this frame must not cancel the hold.
		frame.Set(a)
		delete(frame.Releases, a)
		k.held = true
	default:
		frame.Set(a)
		frame.Release(a)
	}
	k.last = now
	r.keys[a] = k
}

// Expire adds a release to the frame for every hold that went silent and
// forgets old taps.
func (r *releaseTracker) Expire(now time.Time, frame *core.InputFrame) {
	for a, k := range r.keys {
		if now.Sub(k.last) < r.after {
			continue
		}
		if k.held {
			frame.Release(a)
		}
		delete(r.keys, a)
	}
}

// Held reports whether a is currently held down.
func (r *releaseTracker) Held(a core.Action) bool {
	return r.keys[a].held
}

// Reset forgets every key.
func (r *releaseTracker) Reset() {
	clear(r.keys)
}
