// Package audio provides fire-and-forget sound effects for game events.
// Effects are synthesized at play time, so no asset files are needed.
package audio

// Effect identifies a sound effect.
type Effect int

const (
	// EffectFire plays when the player or an enemy shoots.
	EffectFire Effect = iota
	// EffectImpact plays when a bullet hits something or leaves the screen.
	EffectImpact
)

// Player is the audio sink consumed by game logic. Play must never block:
// triggers are fire-and-forget with no completion feedback.
type Player interface {
	Play(Effect)
}

// NopPlayer discards every effect. Used when audio is disabled or the
// audio device could not be initialized.
type NopPlayer struct{}

// Play does nothing.
func (NopPlayer) Play(Effect) {}
