package sim

import (
	"sort"

	"github.com/jdeguire/bringup"
)

// Transition is one recorded edge on a simulated pin.
type Transition struct {
	Tick  uint64
	Level bool
}

// Pin implements bringup.Pin and records every output edge together with
// the simulated time it happened at. Pins start low.
type Pin struct {
	name  string
	clk   *Clock
	cfg   bringup.PinConfig
	level bool
	edges []Transition
}

// NewPin returns a pin named after its board designation, e.g. "PB21".
func NewPin(clk *Clock, name string) *Pin { return &Pin{clk: clk, name: name} }

// Name returns the pin's board designation.
func (p *Pin) Name() string { return p.name }

// Configure implements bringup.Pin.
func (p *Pin) Configure(cfg bringup.PinConfig) { p.cfg = cfg }

// Mode returns the configured pin mode.
func (p *Pin) Mode() bringup.PinMode { return p.cfg.Mode }

// Set implements bringup.Pin, recording an edge when the level changes.
func (p *Pin) Set(level bool) {
	if level == p.level {
		return
	}
	p.level = level
	p.edges = append(p.edges, Transition{Tick: p.clk.now, Level: level})
}

// Get implements bringup.Pin.
func (p *Pin) Get() bool { return p.level }

// Transitions returns the recorded edges in time order.
func (p *Pin) Transitions() []Transition { return p.edges }

// Toggles returns the number of recorded edges.
func (p *Pin) Toggles() int { return len(p.edges) }

// Sample returns the pin's level at the given simulated tick. Edges
// recorded at exactly that tick count as already applied.
func (p *Pin) Sample(tick uint64) bool {
	i := sort.Search(len(p.edges), func(i int) bool { return p.edges[i].Tick > tick })
	if i == 0 {
		return false
	}
	return p.edges[i-1].Level
}
