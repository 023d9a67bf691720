package bringup

import "log/slog"

// Watchdog models an always-on watchdog timer: a fail-fast liveness guard
// that resets the whole system unless fed within its window. There is no
// recovery path; the reset callback is the only defined exit of a stalled
// loop.
//
// The boundary is pinned as follows: the watchdog trips once the ticks
// elapsed since the last feed reach the window. A feed landing exactly at
// the window boundary is already too late.
type Watchdog struct {
	window  uint32
	last    uint32
	tripped bool
	reset   func()
	logger  *slog.Logger
}

// NewWatchdog returns a watchdog with the given window in ticks. onReset
// may be nil; otherwise it runs exactly once per trip.
func NewWatchdog(windowTicks uint32, onReset func()) *Watchdog {
	return &Watchdog{window: windowTicks, reset: onReset}
}

// SetLogger attaches a logger; trips are logged at warn level.
func (w *Watchdog) SetLogger(l *slog.Logger) { w.logger = l }

// Window returns the configured window in ticks.
func (w *Watchdog) Window() uint32 { return w.window }

// Feed records a heartbeat at tick now. Feeding a tripped watchdog does
// nothing; the reset already happened.
func (w *Watchdog) Feed(now uint32) {
	if w.tripped {
		return
	}
	w.last = now
}

// Check evaluates the watchdog at tick now, tripping it if the window has
// elapsed since the last feed. The tripping Check invokes the reset
// callback; later Checks report the latched state without firing it again.
func (w *Watchdog) Check(now uint32) bool {
	if w.tripped {
		return true
	}
	if Elapsed(now, w.last) >= w.window {
		w.tripped = true
		w.warn("watchdog: window elapsed, resetting",
			slog.Uint64("now", uint64(now)),
			slog.Uint64("window", uint64(w.window)),
		)
		if w.reset != nil {
			w.reset()
		}
	}
	return w.tripped
}

// Tripped reports the latched trip state.
func (w *Watchdog) Tripped() bool { return w.tripped }

// Rearm clears a trip and restarts the window at tick now, modeling the
// state after the hardware reset has been served.
func (w *Watchdog) Rearm(now uint32) {
	w.tripped = false
	w.last = now
}
