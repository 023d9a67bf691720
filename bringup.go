// Package bringup contains the reusable core of a set of bare-metal board
// validation programs: a busy-wait delay primitive built on a countdown
// timer, a bit-banged serial transmitter timed by it, and small models of
// the tick-counter and watchdog patterns the validation harnesses exercise.
//
// The hardware surface is abstracted behind the Pin and Countdown
// interfaces so every component can run unchanged against the simulated
// implementations in package sim, off target.
package bringup

// PinMode selects a pin's electrical configuration.
type PinMode uint8

const (
	// PinOutput configures a pin as a push-pull digital output.
	PinOutput PinMode = iota
	// PinInput configures a pin as a floating digital input.
	PinInput
	PinInputPullup
	PinInputPulldown
)

// PinConfig holds the configuration for a single pin.
type PinConfig struct {
	Mode PinMode
}

// Pin is a single digital I/O line. The core components consume pins as an
// opaque "set logic level" capability; they configure nothing beyond
// direction and idle level. Implementations live behind build tags
// (machine pins on target) and in package sim (recorded pins on a host).
type Pin interface {
	Configure(PinConfig)
	Set(level bool)
	Get() bool
}

// Countdown is a one-shot hardware-style countdown timer.
type Countdown interface {
	// Start arms the countdown with the given number of timer ticks.
	// Ticks above MaxCountdown are outside the counter's range; callers
	// chunk longer waits into sub-maximum steps (see Delayer).
	Start(ticks uint32)
	// Expired reports whether the countdown has reached zero since the
	// last Start. Reading may clear the underlying hardware flag.
	Expired() bool
}

// MaxCountdown is the largest tick count a single Countdown.Start can
// time. The counter is 24 bits wide.
const MaxCountdown = 1<<24 - 1

func toggle(p Pin) { p.Set(!p.Get()) }
