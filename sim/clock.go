// Package sim is a software model of the hardware surface the bringup
// core runs against: a tick clock with a single periodic interrupt,
// countdown timers, and pins that record their waveform so tests and
// harnesses can assert on what would appear on a scope.
//
// The model is single-threaded on purpose. Advancing the clock fires the
// interrupt callback inline at each crossed period, which matches the
// target's execution model: one foreground context plus one
// higher-priority interrupt context preempting it.
package sim

// Clock counts simulated time in ticks at a fixed frequency.
type Clock struct {
	hz   uint64
	now  uint64
	poll uint64

	isrEvery uint64
	isrNext  uint64
	isr      func()
}

// NewClock returns a clock ticking at hz.
func NewClock(hz uint64) *Clock { return &Clock{hz: hz} }

// Hz returns the clock frequency in ticks per second.
func (c *Clock) Hz() uint64 { return c.hz }

// Now returns the current simulated time in ticks.
func (c *Clock) Now() uint64 { return c.now }

// AttachInterrupt registers the single periodic interrupt callback, fired
// every 'every' ticks of simulated time. Call once at setup;
// re-registering replaces the previous callback.
func (c *Clock) AttachInterrupt(every uint64, fn func()) {
	c.isrEvery = every
	c.isrNext = c.now + every
	c.isr = fn
}

// SetPollGranularity bounds how far one Countdown.Expired poll advances
// the clock. Zero, the default, lets a poll run straight to the deadline;
// tests set 1 to count busy-wait iterations tick by tick.
func (c *Clock) SetPollGranularity(n uint64) { c.poll = n }

// Advance moves simulated time forward by n ticks, invoking the interrupt
// callback at every crossed period.
func (c *Clock) Advance(n uint64) {
	for n > 0 {
		step := n
		if c.isr != nil && c.isrNext > c.now {
			if d := c.isrNext - c.now; d < step {
				step = d
			}
		}
		c.now += step
		n -= step
		if c.isr != nil && c.now >= c.isrNext {
			c.isr()
			c.isrNext += c.isrEvery
		}
	}
}

// NewCountdown returns a countdown timer driven by this clock.
func (c *Clock) NewCountdown() *Countdown { return &Countdown{clk: c} }

// Countdown implements bringup.Countdown against the simulated clock.
// Polling Expired is what moves simulated time: each poll advances the
// clock toward the armed deadline, bounded by the clock's poll
// granularity, so a busy-wait loop terminates in simulation exactly when
// it would on hardware.
type Countdown struct {
	clk      *Clock
	deadline uint64
	armed    bool
}

func (t *Countdown) Start(ticks uint32) {
	t.deadline = t.clk.now + uint64(ticks)
	t.armed = true
}

func (t *Countdown) Expired() bool {
	if !t.armed || t.clk.now >= t.deadline {
		return true
	}
	step := t.deadline - t.clk.now
	if t.clk.poll != 0 && t.clk.poll < step {
		step = t.clk.poll
	}
	t.clk.Advance(step)
	return t.clk.now >= t.deadline
}
