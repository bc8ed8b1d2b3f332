package game

import (
	"testing"
	"time"

	"github.com/sheacoding/jumprocket/internal/config"
)

func TestTargetCheckThrottled(t *testing.T) {
	cfg := config.Default()
	now := testClock()

	var mon TargetMonitor
	s := newSession(Normal)
	s.JumpCount = 50 // well past the jump target

	if !mon.check(cfg, &s, now) {
		t.Fatal("first check did not fire the jump latch")
	}

	// Within the throttle interval nothing is evaluated, even though the
	// time target would have been crossed.
	s.Elapsed = time.Hour
	if mon.check(cfg, &s, now.Add(200*time.Millisecond)) {
		t.Error("check fired inside the throttle interval")
	}
	if !mon.check(cfg, &s, now.Add(600*time.Millisecond)) {
		t.Error("check did not fire after the throttle interval")
	}
}

func TestTargetLatchesFireOnce(t *testing.T) {
	cfg := config.Default()
	now := testClock()

	var mon TargetMonitor
	s := newSession(Normal)
	s.JumpCount = 50

	mon.check(cfg, &s, now)
	if !mon.JumpsAchieved {
		t.Fatal("jump latch not set")
	}

	// Same condition later must not fire again.
	if mon.check(cfg, &s, now.Add(time.Second)) {
		t.Error("jump latch fired a second time")
	}
}

func TestTargetCheckDisabledByConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TargetsEnabled = false
	now := testClock()

	var mon TargetMonitor
	s := newSession(Normal)
	s.JumpCount = 500
	s.Elapsed = time.Hour

	if mon.check(cfg, &s, now) {
		t.Error("check fired with targets disabled")
	}
	if mon.JumpsAchieved || mon.TimeAchieved || mon.CaloriesAchieved {
		t.Error("latches set with targets disabled")
	}
}

func TestTargetTimeAndCalories(t *testing.T) {
	cfg := config.Default()
	now := testClock()

	var mon TargetMonitor
	s := newSession(Normal)
	s.Elapsed = 60 * time.Second // meets the Normal time target

	if !mon.check(cfg, &s, now) {
		t.Fatal("time latch did not fire")
	}
	if !mon.TimeAchieved || mon.JumpsAchieved {
		t.Errorf("latches = jumps:%v time:%v, want time only",
			mon.JumpsAchieved, mon.TimeAchieved)
	}

	// 40 jumps and 2 minutes: 20 + 10 = 30 kcal, the calorie target.
	s.JumpCount = 40
	s.Elapsed = 2 * time.Minute
	if !mon.check(cfg, &s, now.Add(time.Second)) {
		t.Fatal("calorie latch did not fire")
	}
	if !mon.CaloriesAchieved {
		t.Error("calorie latch not set")
	}
}

func TestLiveCalories(t *testing.T) {
	// 40 jumps over two minutes: 20 + 10.
	if got := LiveCalories(40, 2*time.Minute); got != 30.0 {
		t.Errorf("LiveCalories() = %v, want 30.0", got)
	}
}

func TestFlashWindowAndAlternation(t *testing.T) {
	cfg := config.Default()
	now := testClock()

	var mon TargetMonitor
	s := newSession(Normal)
	s.JumpCount = 50
	mon.check(cfg, &s, now)

	if !mon.FlashActive(now.Add(time.Second)) {
		t.Error("flash inactive inside the 3 s window")
	}

	// Visibility alternates every 200 ms: on, off, on.
	if !mon.ShowNow(now.Add(100 * time.Millisecond)) {
		t.Error("ShowNow() = false in the first flash period")
	}
	if mon.ShowNow(now.Add(300 * time.Millisecond)) {
		t.Error("ShowNow() = true in the second flash period")
	}
	if !mon.ShowNow(now.Add(500 * time.Millisecond)) {
		t.Error("ShowNow() = false in the third flash period")
	}

	// Past the window the flash burns out.
	if mon.FlashActive(now.Add(3 * time.Second)) {
		t.Error("flash still active past the window")
	}
}

func TestShowNowOutsideFlashAlwaysVisible(t *testing.T) {
	var mon TargetMonitor
	if !mon.ShowNow(testClock()) {
		t.Error("ShowNow() = false with no flash active")
	}
}
