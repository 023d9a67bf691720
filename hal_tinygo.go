//go:build tinygo

package bringup

import (
	"device"
	"machine"
)

// On-target backends for the Pin and Countdown interfaces.

// MachinePin adapts a machine.Pin to the Pin interface.
func MachinePin(p machine.Pin) Pin { return machinePin{p} }

type machinePin struct{ p machine.Pin }

func (m machinePin) Configure(cfg PinConfig) {
	var mode machine.PinMode
	switch cfg.Mode {
	case PinOutput:
		mode = machine.PinOutput
	case PinInputPullup:
		mode = machine.PinInputPullup
	case PinInputPulldown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	m.p.Configure(machine.PinConfig{Mode: mode})
}

func (m machinePin) Set(level bool) { m.p.Set(level) }
func (m machinePin) Get() bool      { return m.p.Get() }

// NopCountdown counts down CPU ticks by issuing nop instructions. It is
// the fallback timebase for targets without a usable countdown peripheral:
// crude, but good enough to clock a software serial line a terminal can
// decode. Trim NopsPerTick against an oscilloscope.
type NopCountdown struct {
	// NopsPerTick is the number of nops issued per countdown tick.
	// Defaults to 1.
	NopsPerTick uint32

	remaining uint32
}

func (n *NopCountdown) Start(ticks uint32) {
	if n.NopsPerTick == 0 {
		n.NopsPerTick = 1
	}
	n.remaining = ticks
}

func (n *NopCountdown) Expired() bool {
	if n.remaining == 0 {
		return true
	}
	for i := uint32(0); i < n.NopsPerTick; i++ {
		device.Asm("nop")
	}
	n.remaining--
	return n.remaining == 0
}
