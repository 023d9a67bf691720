package bringup_test

import (
	"testing"

	"github.com/jdeguire/bringup"
)

func TestWatchdogFuseRoundTrip(t *testing.T) {
	cases := []bringup.WatchdogFuse{
		{},
		{Enable: true},
		{Enable: true, AlwaysOn: true},
		{Enable: true, Period: 11},
		{Enable: true, AlwaysOn: true, Period: 8},
		{AlwaysOn: true, Period: bringup.MaxWatchdogPeriod},
	}
	for _, f := range cases {
		got := bringup.ParseWatchdogFuse(f.Word())
		if got != f {
			t.Errorf("round trip of %+v gave %+v (word %#x)", f, got, f.Word())
		}
	}
}

func TestWatchdogFusePeriodSaturates(t *testing.T) {
	f := bringup.WatchdogFuse{Enable: true, Period: 200}
	got := bringup.ParseWatchdogFuse(f.Word())
	if got.Period != bringup.MaxWatchdogPeriod {
		t.Errorf("period decoded as %d, want saturation at %d", got.Period, bringup.MaxWatchdogPeriod)
	}
}

func TestWatchdogFuseWindows(t *testing.T) {
	cases := []struct {
		period uint8
		ms     uint32
	}{
		{0, 8},
		{5, 256},
		{8, 2048},
		{15, 262144},
	}
	for _, c := range cases {
		f := bringup.WatchdogFuse{Enable: true, Period: c.period}
		if got := f.WindowMillis(); got != c.ms {
			t.Errorf("period %d: window %dms, want %dms", c.period, got, c.ms)
		}
	}
}

func TestDefaultWatchdogFuse(t *testing.T) {
	f := bringup.DefaultWatchdogFuse()
	if !f.Enable || !f.AlwaysOn {
		t.Error("default fuse must be enabled and always-on")
	}
	if f.WindowMillis() != 2048 {
		t.Errorf("default window is %dms, want 2048ms", f.WindowMillis())
	}
	if f.String() != "watchdog 2048ms always-on" {
		t.Errorf("String() = %q", f.String())
	}
	if (bringup.WatchdogFuse{}).String() != "watchdog off" {
		t.Errorf("disabled String() = %q", bringup.WatchdogFuse{}.String())
	}
}
