package game

import (
	"math"

	"github.com/sheacoding/jumprocket/internal/config"
)

// Difficulty selects how much charging a launch requires and how targets
// and scoring scale. Ordinal order matches ascending rigor.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
	difficultyCount
)

// tierConfig is the immutable per-tier tuning record.
type tierConfig struct {
	name          string
	multiplier    float64 // intensity multiplier applied to base targets
	fuelThreshold int     // percent of fuel that triggers launch
	scoreMult     float64
}

var tiers = [difficultyCount]tierConfig{
	{name: "Easy", multiplier: 0.8, fuelThreshold: 60, scoreMult: 0.8},
	{name: "Normal", multiplier: 1.0, fuelThreshold: 80, scoreMult: 1.0},
	{name: "Hard", multiplier: 1.2, fuelThreshold: 100, scoreMult: 1.2},
}

// tier returns the tuning record, coercing invalid values to Normal.
// Difficulty reaches this code from persisted data that may be corrupt.
func (d Difficulty) tier() tierConfig {
	if d < 0 || d >= difficultyCount {
		return tiers[Normal]
	}
	return tiers[d]
}

// Valid reports whether d is a defined tier.
func (d Difficulty) Valid() bool {
	return d >= 0 && d < difficultyCount
}

func (d Difficulty) String() string {
	return d.tier().name
}

// Next cycles Easy -> Normal -> Hard -> Easy.
func (d Difficulty) Next() Difficulty {
	n := d + 1
	if n >= difficultyCount {
		n = Easy
	}
	return n
}

// Multiplier is the intensity multiplier for this tier (0.8/1.0/1.2).
func (d Difficulty) Multiplier() float64 {
	return d.tier().multiplier
}

// FuelThreshold is the fuel percent at which the rocket launches.
func (d Difficulty) FuelThreshold() int {
	return d.tier().fuelThreshold
}

// ScoreMultiplier scales the session score for this tier.
func (d Difficulty) ScoreMultiplier() float64 {
	return d.tier().scoreMult
}

// TargetJumps scales the configured base jump target by the tier multiplier.
// The base is the Normal-tier reference point from SystemConfig.
func (d Difficulty) TargetJumps(cfg config.System) int {
	return int(math.Round(float64(cfg.BaseTargetJumps) * d.Multiplier()))
}

// TargetTime scales the configured base duration target (seconds).
func (d Difficulty) TargetTime(cfg config.System) int {
	return int(math.Round(float64(cfg.BaseTargetTime) * d.Multiplier()))
}

// TargetAchieved is the strict win condition used for the score bonus: both
// the jump and the time target must be met. The lenient per-metric
// achievement flashes use OR semantics in TargetMonitor; the asymmetry is
// deliberate.
func (d Difficulty) TargetAchieved(cfg config.System, jumps, seconds int) bool {
	return jumps >= d.TargetJumps(cfg) && seconds >= d.TargetTime(cfg)
}

// maxScore caps the score to a four-digit display.
const maxScore = 9999

// Score computes the session score: jumps, playtime and average jump
// frequency each contribute, scaled by the tier multiplier, with a 1.5x
// bonus when the strict target is achieved.
func (d Difficulty) Score(cfg config.System, jumps, seconds int, avgFrequency float64) int {
	base := float64(jumps) * 10.0
	timeBonus := float64(seconds) / 60.0 * 50.0
	freqBonus := avgFrequency * 100.0

	total := (base + timeBonus + freqBonus) * d.ScoreMultiplier()
	if d.TargetAchieved(cfg, jumps, seconds) {
		total *= 1.5
	}
	score := int(total)
	if score > maxScore {
		score = maxScore
	}
	return score
}

// Calories estimates the energy burned over a completed session: 0.5 kcal
// per jump plus 2 kcal per minute, scaled by intensity. Coarse by design.
func (d Difficulty) Calories(jumps, seconds int) float64 {
	base := float64(jumps) * 0.5
	timeCalories := float64(seconds) / 60.0 * 2.0
	return (base + timeCalories) * d.Multiplier()
}

// ParseDifficulty maps a config string to a tier, defaulting to Normal.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Normal
	}
}

// AvgFrequency is the mean jump rate in jumps per second.
func AvgFrequency(jumps, seconds int) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(jumps) / float64(seconds)
}

// EstimatedJumpHeight derives a rough per-jump height (meters) from the
// average frequency. A heuristic, not biomechanics.
func EstimatedJumpHeight(avgFrequency float64) float64 {
	return avgFrequency*0.3 + 0.2
}

// RecommendDifficulty suggests a tier from play history: newcomers get Easy,
// then the best score decides.
func RecommendDifficulty(totalGames, bestScore int) Difficulty {
	switch {
	case totalGames < 5:
		return Easy
	case bestScore < 500:
		return Easy
	case bestScore < 1000:
		return Normal
	default:
		return Hard
	}
}
