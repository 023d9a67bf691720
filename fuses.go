package bringup

import "strconv"

// The boot configuration region of the target parts is programmed from
// tables of 32-bit words. Reproducing the chip's register layout is out of
// scope here; this file keeps only the piece with behavior behind it, the
// watchdog configuration, in a compact layout of its own.
//
// Window durations are powers of two, 1<<(period+3) milliseconds, so
// period code 8 gives the ~2048ms window the validation programs run with.

const (
	fuseWDTEnable   = 1 << 0
	fuseWDTAlwaysOn = 1 << 1
	fusePeriodShift = 2
	fusePeriodMask  = 0xF << fusePeriodShift

	// MaxWatchdogPeriod is the largest period code the 4-bit field holds.
	MaxWatchdogPeriod = 0xF
)

// WatchdogFuse is the persisted watchdog configuration read at boot.
type WatchdogFuse struct {
	// Enable turns the watchdog on at boot.
	Enable bool
	// AlwaysOn locks the watchdog on so software cannot disable it later.
	AlwaysOn bool
	// Period is the window exponent code; see WindowMillis.
	Period uint8
}

// DefaultWatchdogFuse returns the configuration the watchdog validation
// program runs with: always-on, tripping at about 2048ms.
func DefaultWatchdogFuse() WatchdogFuse {
	return WatchdogFuse{Enable: true, AlwaysOn: true, Period: 8}
}

// Word encodes f as a 32-bit configuration word. Period codes above
// MaxWatchdogPeriod saturate.
func (f WatchdogFuse) Word() uint32 {
	var w uint32
	if f.Enable {
		w |= fuseWDTEnable
	}
	if f.AlwaysOn {
		w |= fuseWDTAlwaysOn
	}
	p := uint32(f.Period)
	if p > MaxWatchdogPeriod {
		p = MaxWatchdogPeriod
	}
	return w | p<<fusePeriodShift
}

// ParseWatchdogFuse decodes a configuration word produced by Word.
func ParseWatchdogFuse(w uint32) WatchdogFuse {
	return WatchdogFuse{
		Enable:   w&fuseWDTEnable != 0,
		AlwaysOn: w&fuseWDTAlwaysOn != 0,
		Period:   uint8(w & fusePeriodMask >> fusePeriodShift),
	}
}

// WindowMillis returns the watchdog window in milliseconds.
func (f WatchdogFuse) WindowMillis() uint32 {
	return 1 << (uint32(f.Period) + 3)
}

func (f WatchdogFuse) String() string {
	if !f.Enable {
		return "watchdog off"
	}
	s := "watchdog " + strconv.Itoa(int(f.WindowMillis())) + "ms"
	if f.AlwaysOn {
		s += " always-on"
	}
	return s
}
