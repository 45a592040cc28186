package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// resolveCollisions tests every live bullet against the enemies and then
// the player. Directional exclusivity holds throughout: upward bullets can
// only destroy enemies, downward bullets can only hit the player. A bullet
// destroyed mid-scan skips all of its remaining tests this tick.
func (g *Game) resolveCollisions() {
	playerBox := g.playerRect()

	g.bullets.forEach(func(bi int, b *bullet) {
		box := bulletRect(b)

		// Enemies first. One bullet takes out at most one enemy.
		if b.vy != dirDown {
			hit := -1
			g.enemies.forEach(func(ei int, e *enemy) {
				if hit < 0 && box.Intersects(enemyRect(e)) {
					hit = ei
				}
			})
			if hit >= 0 {
				e := g.enemies.at(hit)
				g.player.score += e.killReward
				g.spawnParticle(e.px, e.py, particleShipDestroyed)
				g.sound.Play(audio.EffectImpact)

				g.enemies.release(hit)
				g.bullets.release(bi)
				return
			}
		}

		// Then the player.
		if b.vy != dirUp && box.Intersects(playerBox) {
			g.spawnParticle(b.px, b.py, particleShipDestroyed)
			g.bullets.release(bi)
			g.sound.Play(audio.EffectImpact)

			g.player.lives--
			if g.player.lives <= 0 {
				g.gameOver = true
			}

			// Respawn the cannon immediately, even on the final life.
			g.player.px = PlayerStartX
			g.player.py = PlayerStartY
		}
	})
}

// checkRoundState runs after collision resolution every tick. It handles
// the two round transitions: game over (fold the score into the high
// score, reset the round at the current wave) and wave clear (advance the
// wave and refill lives). The two checks run in sequence and are not
// mutually exclusive.
func (g *Game) checkRoundState() core.StepResult {
	var result core.StepResult

	if g.gameOver {
		result.RoundOver = true
		result.RoundScore = g.player.score
		result.RoundWave = g.wave

		if g.player.score > g.player.hiScore {
			g.player.hiScore = g.player.score
		}

		g.resetPlayer()
		g.enemies.clear()
		g.bullets.clear()
		g.spawnWave()

		g.gameOver = false
	}

	if g.enemies.size() == 0 {
		result.WaveCleared = true
		g.wave++
		g.spawnWave()
		g.player.lives = g.tuning.Lives
	}

	return result
}
