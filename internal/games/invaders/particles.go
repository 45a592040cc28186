package invaders

// particleKind selects the visual for a particle; it has no gameplay
// effect.
type particleKind int

const (
	particleBulletImpact particleKind = iota // Bullet left the screen
	particleShipDestroyed                    // Enemy or player ship hit
)

// particleLifetime is how long a particle stays on screen, in seconds.
const particleLifetime = 0.5

// particle is a short-lived cosmetic effect.
type particle struct {
	px, py   float64
	lifetime float64
	kind     particleKind
}

// spawnParticle creates a particle at (x, y). Dropped silently when the
// pool is full.
func (g *Game) spawnParticle(x, y float64, kind particleKind) {
	slot, ok := g.particles.alloc()
	if !ok {
		return
	}
	p := g.particles.at(slot)
	p.px = x
	p.py = y
	p.lifetime = particleLifetime
	p.kind = kind
}

// stepParticles counts lifetimes down and removes expired particles.
func (g *Game) stepParticles(dt float64) {
	g.particles.forEach(func(i int, p *particle) {
		p.lifetime -= dt
		if p.lifetime <= 0 {
			g.particles.release(i)
		}
	})
}
