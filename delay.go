package bringup

// Delayer is a blocking busy-wait delay primitive built on a Countdown
// timer ticking at the CPU clock rate. A delay blocks the calling context
// outright; nothing but an interrupt can run until it returns. This is
// test-firmware behavior on purpose: no cancellation, no early return, no
// error surface.
type Delayer struct {
	cd Countdown
	hz uint32
}

// NewDelayer returns a Delayer over cd. clockHz is the countdown tick
// rate, 48MHz at boot on the boards this was written against.
func NewDelayer(cd Countdown, clockHz uint32) *Delayer {
	return &Delayer{cd: cd, hz: clockHz}
}

// ClockHz returns the countdown tick rate the delayer was built with.
func (d *Delayer) ClockHz() uint32 { return d.hz }

// Ticks blocks until at least n countdown ticks have elapsed. Requests
// beyond the counter's range are split into maximum-size sub-delays plus a
// remainder; the sub-delays sum exactly to n.
func (d *Delayer) Ticks(n uint32) {
	for n > MaxCountdown {
		d.wait(MaxCountdown)
		n -= MaxCountdown
	}
	if n > 0 {
		d.wait(n)
	}
}

// Millis blocks for ms milliseconds, issued as 10ms sub-delays plus a
// remainder so each step stays well inside the counter's range.
func (d *Delayer) Millis(ms uint32) {
	tpms := d.hz / 1000
	for ms > 10 {
		d.wait(10 * tpms)
		ms -= 10
	}
	if ms > 0 {
		d.wait(ms * tpms)
	}
}

func (d *Delayer) wait(ticks uint32) {
	d.cd.Start(ticks)
	for !d.cd.Expired() {
	}
}
