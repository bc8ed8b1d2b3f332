package game

import (
	"testing"
	"time"

	"github.com/sheacoding/jumprocket/internal/config"
)

func TestTierTuning(t *testing.T) {
	tests := []struct {
		d          Difficulty
		multiplier float64
		fuel       int
		scoreMult  float64
	}{
		{Easy, 0.8, 60, 0.8},
		{Normal, 1.0, 80, 1.0},
		{Hard, 1.2, 100, 1.2},
	}

	for _, tt := range tests {
		if got := tt.d.Multiplier(); got != tt.multiplier {
			t.Errorf("%v.Multiplier() = %v, want %v", tt.d, got, tt.multiplier)
		}
		if got := tt.d.FuelThreshold(); got != tt.fuel {
			t.Errorf("%v.FuelThreshold() = %v, want %v", tt.d, got, tt.fuel)
		}
		if got := tt.d.ScoreMultiplier(); got != tt.scoreMult {
			t.Errorf("%v.ScoreMultiplier() = %v, want %v", tt.d, got, tt.scoreMult)
		}
	}
}

func TestInvalidDifficultyCoercesToNormal(t *testing.T) {
	bad := Difficulty(99)
	if bad.Valid() {
		t.Error("Difficulty(99).Valid() = true")
	}
	if bad.Multiplier() != 1.0 || bad.String() != "Normal" {
		t.Errorf("invalid tier = (%v, %q), want Normal tuning", bad.Multiplier(), bad.String())
	}
}

func TestNextCycles(t *testing.T) {
	if Easy.Next() != Normal || Normal.Next() != Hard || Hard.Next() != Easy {
		t.Errorf("Next() cycle broken: %v %v %v", Easy.Next(), Normal.Next(), Hard.Next())
	}
}

func TestTargetsScaleFromBase(t *testing.T) {
	cfg := config.Default() // base 20 jumps / 60 s

	tests := []struct {
		d     Difficulty
		jumps int
		secs  int
	}{
		{Easy, 16, 48},
		{Normal, 20, 60},
		{Hard, 24, 72},
	}
	for _, tt := range tests {
		if got := tt.d.TargetJumps(cfg); got != tt.jumps {
			t.Errorf("%v.TargetJumps() = %d, want %d", tt.d, got, tt.jumps)
		}
		if got := tt.d.TargetTime(cfg); got != tt.secs {
			t.Errorf("%v.TargetTime() = %d, want %d", tt.d, got, tt.secs)
		}
	}
}

func TestTargetAchievedRequiresBoth(t *testing.T) {
	cfg := config.Default()

	if !Normal.TargetAchieved(cfg, 20, 60) {
		t.Error("meeting both targets should achieve")
	}
	if Normal.TargetAchieved(cfg, 100, 30) {
		t.Error("jumps without time should not achieve")
	}
	if Normal.TargetAchieved(cfg, 5, 600) {
		t.Error("time without jumps should not achieve")
	}
}

func TestScoreFormula(t *testing.T) {
	cfg := config.Default()

	// 30 jumps in 90 s at 1/3 jumps per second. Both targets met, so the
	// bonus applies: (300 + 75 + 33.33) * 1.0 * 1.5 = 612.5.
	got := Normal.Score(cfg, 30, 90, AvgFrequency(30, 90))
	if got != 612 {
		t.Errorf("Score() = %d, want 612", got)
	}

	// Below target, no bonus: (100 + 25 + 33.33) * 1.0 = 158.
	got = Normal.Score(cfg, 10, 30, AvgFrequency(10, 30))
	if got != 158 {
		t.Errorf("Score() without bonus = %d, want 158", got)
	}
}

func TestScoreCapped(t *testing.T) {
	cfg := config.Default()
	if got := Hard.Score(cfg, 2000, 3600, 0.55); got != maxScore {
		t.Errorf("Score() = %d, want cap %d", got, maxScore)
	}
}

func TestScoreTierOrdering(t *testing.T) {
	cfg := config.Default()

	// Same raw performance, short of every target, scores strictly by tier.
	easy := Easy.Score(cfg, 10, 30, AvgFrequency(10, 30))
	normal := Normal.Score(cfg, 10, 30, AvgFrequency(10, 30))
	hard := Hard.Score(cfg, 10, 30, AvgFrequency(10, 30))
	if !(easy < normal && normal < hard) {
		t.Errorf("tier ordering broken: easy=%d normal=%d hard=%d", easy, normal, hard)
	}
}

func TestCalories(t *testing.T) {
	// 30 jumps over a minute: 15 + 2 = 17, scaled by tier.
	if got := Normal.Calories(30, 60); got != 17.0 {
		t.Errorf("Normal.Calories() = %v, want 17.0", got)
	}
	if got := Hard.Calories(30, 60); got != 17.0*1.2 {
		t.Errorf("Hard.Calories() = %v, want %v", got, 17.0*1.2)
	}
}

func TestAvgFrequencyZeroDuration(t *testing.T) {
	if got := AvgFrequency(10, 0); got != 0 {
		t.Errorf("AvgFrequency(10, 0) = %v, want 0", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", Easy},
		{"normal", Normal},
		{"hard", Hard},
		{"", Normal},
		{"nightmare", Normal},
	}
	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRecommendDifficulty(t *testing.T) {
	tests := []struct {
		games, best int
		want        Difficulty
	}{
		{0, 0, Easy},
		{4, 5000, Easy},
		{10, 400, Easy},
		{10, 700, Normal},
		{10, 1500, Hard},
	}
	for _, tt := range tests {
		if got := RecommendDifficulty(tt.games, tt.best); got != tt.want {
			t.Errorf("RecommendDifficulty(%d, %d) = %v, want %v",
				tt.games, tt.best, got, tt.want)
		}
	}
}

func TestIntensityClamped(t *testing.T) {
	if got := Intensity(120, 30*time.Minute); got != 10 {
		t.Errorf("Intensity() = %v, want clamp at 10", got)
	}
	if got := Intensity(60, time.Minute); got != 6.0 {
		t.Errorf("Intensity() = %v, want 6.0", got)
	}
}

func TestFrequencyWindow(t *testing.T) {
	var w freqWindow
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	// Three jumps inside the 5 s window, one well outside it.
	w.add(now.Add(-10 * time.Second))
	w.add(now.Add(-4 * time.Second))
	w.add(now.Add(-2 * time.Second))
	w.add(now.Add(-1 * time.Second))

	// 3 jumps per 5 s extrapolates to 36 per minute.
	if got := w.perMinute(now); got != 36 {
		t.Errorf("perMinute() = %v, want 36", got)
	}

	w.reset()
	if got := w.perMinute(now); got != 0 {
		t.Errorf("perMinute() after reset = %v, want 0", got)
	}
}
