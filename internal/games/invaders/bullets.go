package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Bullet directions. The sign doubles as the velocity multiplier and
// encodes who fired: upward bullets come from the player and can only hit
// enemies, downward bullets come from enemies and can only hit the player.
const (
	dirUp   = -1
	dirDown = 1
)

// bullet is a projectile travelling along the vertical axis.
type bullet struct {
	px, py float64
	vy     int // dirUp or dirDown
}

// spawnBullet fires a bullet from the entity at (x, y), offset by half the
// firing entity's size so the shot leaves from its middle. If the bullet
// pool is saturated the shot is dropped.
func (g *Game) spawnBullet(x, y float64, dir int) {
	var wOffset, hOffset float64
	switch dir {
	case dirUp:
		wOffset = PlayerW / 2
		hOffset = PlayerH / 2
	case dirDown:
		wOffset = EnemyW / 2
		hOffset = EnemyH / 2
	}

	slot, ok := g.bullets.alloc()
	if !ok {
		return
	}
	b := g.bullets.at(slot)
	b.px = x + wOffset
	b.py = y + hOffset
	b.vy = dir
}

// stepBullets advances every bullet and destroys the ones leaving the
// vertical bounds, leaving a short-lived impact particle behind.
func (g *Game) stepBullets(dt float64) {
	g.bullets.forEach(func(i int, b *bullet) {
		b.py += float64(b.vy) * g.tuning.BulletSpeed * dt

		if b.py < 0 || b.py > WorldH-BulletH {
			g.spawnParticle(b.px, b.py, particleBulletImpact)
			g.bullets.release(i)
			g.sound.Play(audio.EffectImpact)
		}
	})
}

// bulletRect returns the bounding box of a bullet in world units.
func bulletRect(b *bullet) core.RectF {
	return core.NewRectF(b.px, b.py, BulletW, BulletH)
}
