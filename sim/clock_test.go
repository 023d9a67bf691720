package sim

import "testing"

func TestClockInterruptFiring(t *testing.T) {
	clk := NewClock(1000)
	fires := 0
	clk.AttachInterrupt(10, func() { fires++ })

	clk.Advance(35)
	if fires != 3 {
		t.Fatalf("interrupt fired %d times after 35 ticks, want 3", fires)
	}
	clk.Advance(5)
	if fires != 4 {
		t.Fatalf("interrupt fired %d times after 40 ticks, want 4", fires)
	}
	if clk.Now() != 40 {
		t.Errorf("clock at %d, want 40", clk.Now())
	}
}

func TestCountdownAdvancesClock(t *testing.T) {
	clk := NewClock(1000)
	cd := clk.NewCountdown()

	cd.Start(25)
	if !cd.Expired() {
		t.Fatal("default granularity must reach the deadline in one poll")
	}
	if clk.Now() != 25 {
		t.Errorf("clock at %d, want 25", clk.Now())
	}
}

func TestCountdownPollGranularity(t *testing.T) {
	clk := NewClock(1000)
	clk.SetPollGranularity(1)
	cd := clk.NewCountdown()

	cd.Start(5)
	polls := 0
	for !cd.Expired() {
		polls++
	}
	// 4 polls short of the deadline, the 5th reaches it.
	if polls != 4 {
		t.Errorf("loop made %d false polls, want 4", polls)
	}
	if clk.Now() != 5 {
		t.Errorf("clock at %d, want 5", clk.Now())
	}
}

func TestCountdownUnarmedIsExpired(t *testing.T) {
	clk := NewClock(1000)
	cd := clk.NewCountdown()
	if !cd.Expired() {
		t.Fatal("a never-started countdown reports expired")
	}
	if clk.Now() != 0 {
		t.Error("polling an unarmed countdown must not advance time")
	}
}

func TestInterruptFiresDuringCountdownWait(t *testing.T) {
	clk := NewClock(1000)
	fires := 0
	clk.AttachInterrupt(7, func() { fires++ })
	cd := clk.NewCountdown()

	cd.Start(100)
	for !cd.Expired() {
	}
	if fires != 100/7 {
		t.Errorf("interrupt fired %d times during a 100 tick wait, want %d", fires, 100/7)
	}
}
