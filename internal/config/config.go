// Package config provides the persisted system configuration: volume and
// sound, default difficulty, and the base target values that difficulty
// tiers scale from.
package config

// System is the user-tunable configuration singleton. It is read at session
// start; the settings surface mutates it between sessions.
type System struct {
	Volume            int     `yaml:"volume"`             // 0-100
	SoundEnabled      bool    `yaml:"sound_enabled"`
	DefaultDifficulty string  `yaml:"default_difficulty"` // easy, normal, hard
	BaseTargetJumps   int     `yaml:"base_target_jumps"`  // normal-tier reference
	BaseTargetTime    int     `yaml:"base_target_time"`   // seconds, normal-tier reference
	TargetsEnabled    bool    `yaml:"targets_enabled"`
	TargetCalories    float64 `yaml:"target_calories"`
	DataDir           string  `yaml:"data_dir"` // database and log location
}

// Default returns the factory configuration.
func Default() System {
	return System{
		Volume:            80,
		SoundEnabled:      true,
		DefaultDifficulty: "normal",
		BaseTargetJumps:   20,
		BaseTargetTime:    60,
		TargetsEnabled:    true,
		TargetCalories:    30.0,
		DataDir:           "~/.jumprocket",
	}
}

// Clamp coerces out-of-range fields back to safe values. Persisted config
// may be hand-edited or corrupt; a bad file must never block a session.
// It returns false when anything had to be corrected.
func (c *System) Clamp() bool {
	ok := true
	def := Default()

	if c.Volume < 0 || c.Volume > 100 {
		c.Volume = def.Volume
		ok = false
	}
	switch c.DefaultDifficulty {
	case "easy", "normal", "hard":
	default:
		c.DefaultDifficulty = def.DefaultDifficulty
		ok = false
	}
	if c.BaseTargetJumps <= 0 || c.BaseTargetJumps > 1000 {
		c.BaseTargetJumps = def.BaseTargetJumps
		ok = false
	}
	if c.BaseTargetTime <= 0 || c.BaseTargetTime > 3600 {
		c.BaseTargetTime = def.BaseTargetTime
		ok = false
	}
	if c.TargetCalories <= 0 || c.TargetCalories > 10000 {
		c.TargetCalories = def.TargetCalories
		ok = false
	}
	if c.DataDir == "" {
		c.DataDir = def.DataDir
		ok = false
	}
	return ok
}
