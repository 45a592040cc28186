package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the classic gameplay configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Physics: InvadersPhysics{
			PlayerSpeed: 200,
			EnemySpeed:  20,
			BulletSpeed: 275,
			SpeedRamp:   0.025,
		},
		Gameplay: InvadersGameplay{
			Lives:        3,
			FireCooldown: 1.0,
			FireChance:   10,
			RewardBase:   10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
