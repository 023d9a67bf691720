package bringup_test

import (
	"testing"

	"github.com/jdeguire/bringup"
	"github.com/jdeguire/bringup/sim"
)

// fakeCountdown records every Start and counts Expired polls so tests can
// assert the delay loop spins until the expired flag is set.
type fakeCountdown struct {
	started     []uint32
	polls       int
	expireAfter int // false polls per Start before Expired reports true
	left        int
}

func (f *fakeCountdown) Start(ticks uint32) {
	f.started = append(f.started, ticks)
	f.left = f.expireAfter
}

func (f *fakeCountdown) Expired() bool {
	f.polls++
	if f.left > 0 {
		f.left--
		return false
	}
	return true
}

func TestDelayerWaitsForExpiry(t *testing.T) {
	cd := &fakeCountdown{expireAfter: 7}
	d := bringup.NewDelayer(cd, 48_000_000)
	d.Ticks(123)
	if len(cd.started) != 1 {
		t.Fatalf("got %d countdown starts, want 1", len(cd.started))
	}
	if cd.started[0] != 123 {
		t.Errorf("started countdown with %d ticks, want 123", cd.started[0])
	}
	if cd.polls != 8 {
		t.Errorf("delay loop made %d polls, want 8 (7 pending + 1 expired)", cd.polls)
	}
}

func TestDelayerChunksLongTicks(t *testing.T) {
	const req = 3*bringup.MaxCountdown + 77
	cd := &fakeCountdown{}
	d := bringup.NewDelayer(cd, 48_000_000)
	d.Ticks(req)
	if len(cd.started) != 4 {
		t.Fatalf("got %d chunks, want 4", len(cd.started))
	}
	var sum uint64
	for i, ticks := range cd.started {
		if i < 3 && ticks != bringup.MaxCountdown {
			t.Errorf("chunk %d is %d ticks, want MaxCountdown", i, ticks)
		}
		sum += uint64(ticks)
	}
	if sum != req {
		t.Errorf("chunks sum to %d ticks, want %d", sum, req)
	}
}

func TestDelayerMillisChunking(t *testing.T) {
	const hz = 48_000_000
	const tpms = hz / 1000

	cd := &fakeCountdown{}
	d := bringup.NewDelayer(cd, hz)
	d.Millis(25)
	want := []uint32{10 * tpms, 10 * tpms, 5 * tpms}
	if len(cd.started) != len(want) {
		t.Fatalf("got %d chunks, want %d", len(cd.started), len(want))
	}
	var sum uint64
	for i, ticks := range cd.started {
		if ticks != want[i] {
			t.Errorf("chunk %d is %d ticks, want %d", i, ticks, want[i])
		}
		sum += uint64(ticks)
	}
	if sum != 25*tpms {
		t.Errorf("chunks sum to %d ticks, want %d", sum, 25*tpms)
	}

	cd = &fakeCountdown{}
	d = bringup.NewDelayer(cd, hz)
	d.Millis(10)
	if len(cd.started) != 1 || cd.started[0] != 10*tpms {
		t.Errorf("10ms delay issued %v, want one chunk of %d", cd.started, 10*tpms)
	}

	cd = &fakeCountdown{}
	d = bringup.NewDelayer(cd, hz)
	d.Millis(0)
	if len(cd.started) != 0 {
		t.Errorf("0ms delay issued %v, want nothing", cd.started)
	}
}

func TestDelayerNeverReturnsEarly(t *testing.T) {
	clk := sim.NewClock(1000)
	clk.SetPollGranularity(1)
	d := bringup.NewDelayer(clk.NewCountdown(), 1000)

	start := clk.Now()
	d.Ticks(50)
	if got := clk.Now() - start; got < 50 {
		t.Fatalf("Ticks(50) returned after %d ticks", got)
	}

	start = clk.Now()
	d.Millis(3) // 1 tick per ms at 1kHz
	if got := clk.Now() - start; got < 3 {
		t.Fatalf("Millis(3) returned after %d ticks", got)
	}
}
