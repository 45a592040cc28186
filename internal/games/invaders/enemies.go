package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// enemy is one ship in the formation. Position is the top-left corner in
// world units. Kill reward and the cooldown reset value are fixed at spawn
// time from the wave number.
type enemy struct {
	px, py     float64
	killReward int
	shootTimer float64
}

// spawnWave replaces the formation with a full grid of fresh enemies for
// the current wave. Slot index maps to grid position: column = i % 11,
// row = i / 11, so ascending slot order walks the grid left-to-right,
// top-to-bottom.
func (g *Game) spawnWave() {
	g.enemies.clear()
	for i := 0; i < MaxEnemies; i++ {
		slot, ok := g.enemies.alloc()
		if !ok {
			break
		}
		col := float64(i % FormationCols)
		row := float64(i / FormationCols)

		e := g.enemies.at(slot)
		e.px = col*EnemyW + 10*col + 100
		e.py = row*EnemyH + 10*row + 100
		e.killReward = g.tuning.RewardBase * g.wave
		e.shootTimer = enemyCooldown(g.wave)
	}
}

// enemyCooldown returns the initial fire cooldown for a freshly spawned
// enemy. Higher waves shoot sooner, floored so the cooldown never hits
// zero at high wave numbers.
func enemyCooldown(wave int) float64 {
	cd := 1.0 - 0.05*float64(wave)
	if cd < 0.20 {
		cd = 0.20
	}
	return cd
}

// stepEnemies moves the formation and handles edge bounces.
func (g *Game) stepEnemies(dt float64) {
	g.enemies.forEach(func(_ int, e *enemy) {
		e.px += g.tuning.EnemySpeed * g.speedMult * dt * float64(g.enemyDir)

		// Formation reached the player's row: round over.
		if e.py > WorldH-2*PlayerH-EnemyH {
			g.gameOver = true
		}
	})

	// Edge bounce: the first enemy in slot order found near either edge
	// flips the shared direction, drops the whole formation a quarter
	// enemy-height, and speeds it up. Only one bounce is processed per
	// tick, even if several enemies crossed the edge this tick.
	bounced := false
	g.enemies.forEach(func(_ int, e *enemy) {
		if bounced {
			return
		}
		if e.px < EnemyW || e.px > WorldW-2*EnemyW {
			bounced = true
			g.enemyDir = -g.enemyDir
			g.enemies.forEach(func(_ int, other *enemy) {
				other.py += DescendStep
			})
			g.speedMult += g.tuning.SpeedRamp
		}
	})
}

// enemyFire gives the bottom-most live enemy of each column a chance to
// shoot. The scan walks slots from the highest index downward, five rows
// deep across the 11 columns, marking each column once it has yielded an
// enemy - that enemy is the lowest live one in its column, approximating
// "only the front row may fire". Eligible enemies tick their cooldown down
// and fire on a small random draw once the cooldown has expired.
func (g *Game) enemyFire(dt float64) {
	index := MaxEnemies - 1
	var found [FormationCols]bool

	for row := 0; row < FormationRows; row++ {
		for col := 0; col < FormationCols; col++ {
			if g.enemies.live(index) && !found[col] {
				found[col] = true
				e := g.enemies.at(index)

				if g.rng.Intn(FireChanceIn) < g.tuning.FireChance && e.shootTimer <= 0 {
					g.spawnBullet(e.px, e.py, dirDown)
					g.sound.Play(audio.EffectFire)
					e.shootTimer = g.tuning.FireCooldown
				}

				e.shootTimer -= dt
			}
			index--
		}
	}
}

// enemyRect returns the bounding box of an enemy in world units.
func enemyRect(e *enemy) core.RectF {
	return core.NewRectF(e.px, e.py, EnemyW, EnemyH)
}
