package bringup

// Ticker is a free-running tick counter meant to be incremented from a
// periodic timer interrupt, once per millisecond, and read from the
// foreground loop. Single writer, single reader: the counter is one
// machine word, so increments and reads need no lock, and readers use
// Elapsed for wraparound-tolerant comparisons. Any state beyond one word
// added here would need atomic or lock-protected updates.
type Ticker struct {
	count uint32

	// Probe, when set, is toggled every 256 ticks so a scope can confirm
	// the interrupt is firing.
	Probe Pin
}

// Tick is the interrupt callback. Register it exactly once with the
// platform's periodic timer; it must never run from more than one context.
func (t *Ticker) Tick() {
	t.count++
	if t.count&0xFF == 0 && t.Probe != nil {
		toggle(t.Probe)
	}
}

// Count returns the current tick count. Safe to call from foreground
// context while Tick runs in interrupt context.
func (t *Ticker) Count() uint32 { return t.count }

// Elapsed returns now-since modulo 2^32: correct even when the counter
// wrapped between the two observations.
func Elapsed(now, since uint32) uint32 { return now - since }
