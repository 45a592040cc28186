package invaders

// Snapshot captures the observable simulation state for determinism
// testing and replay.
type Snapshot struct {
	PlayerX   float64
	PlayerY   float64
	Score     int
	HighScore int
	Lives     int
	Wave      int
	Enemies   int
	Bullets   int
	Particles int
	Dir       int
	SpeedMult float64
	Playing   bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		PlayerX:   g.player.px,
		PlayerY:   g.player.py,
		Score:     g.player.score,
		HighScore: g.player.hiScore,
		Lives:     g.player.lives,
		Wave:      g.wave,
		Enemies:   g.enemies.size(),
		Bullets:   g.bullets.size(),
		Particles: g.particles.size(),
		Dir:       g.enemyDir,
		SpeedMult: g.speedMult,
		Playing:   g.playing,
	}
}
