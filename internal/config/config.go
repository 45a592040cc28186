// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for the invaders platform.
package config

// InvadersConfig contains all tunable gameplay configuration.
type InvadersConfig struct {
	Physics  InvadersPhysics  `yaml:"physics"`
	Gameplay InvadersGameplay `yaml:"gameplay"`
}

// InvadersPhysics defines movement parameters, in world units per second.
type InvadersPhysics struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	SpeedRamp   float64 `yaml:"speed_ramp"` // Formation speed gain per edge bounce
}

// InvadersGameplay defines round parameters.
type InvadersGameplay struct {
	Lives        int     `yaml:"lives"`
	FireCooldown float64 `yaml:"fire_cooldown"` // Seconds between shots
	FireChance   int     `yaml:"fire_chance"`   // Enemy fire odds, N in 5000 per tick
	RewardBase   int     `yaml:"reward_base"`   // Kill reward per wave number
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the preset name is known.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.FireChance = 5
		cfg.Physics.SpeedRamp = 0.015
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.FireChance = 25
		cfg.Physics.SpeedRamp = 0.05
		cfg.Physics.EnemySpeed = 30
	}
}
