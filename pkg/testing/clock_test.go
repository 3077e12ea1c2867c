package testing

import (
	"testing"
	"time"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/testing/internal/testbed"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestViewTester_ClockStampsFrames(t *testing.T) {
	tester := NewViewTesterWithT(t, func(*core.Context) core.View {
		return testbed.Counter(0, nil)
	})
	start := tester.Clock().Now()

	tester.Pump()
	tester.Clock().Advance(16 * time.Millisecond)
	tester.Pump()

	samples := tester.Timeline().Samples
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Timestamp != start.UnixMilli() {
		t.Errorf("first sample at %d, want %d", samples[0].Timestamp, start.UnixMilli())
	}
	if d := samples[1].Timestamp - samples[0].Timestamp; d != 16 {
		t.Errorf("frames %dms apart, want 16", d)
	}
	// The fake clock does not move during a frame.
	if samples[1].FrameMs != 0 {
		t.Errorf("FrameMs = %v, want 0", samples[1].FrameMs)
	}
}
