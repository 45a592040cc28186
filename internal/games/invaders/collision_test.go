package invaders

import "testing"

// placeBullet force-spawns a bullet at an exact position for collision
// tests, bypassing the firing offsets.
func placeBullet(t *testing.T, g *Game, x, y float64, dir int) int {
	t.Helper()
	slot, ok := g.bullets.alloc()
	if !ok {
		t.Fatal("Bullet pool unexpectedly full")
	}
	b := g.bullets.at(slot)
	b.px = x
	b.py = y
	b.vy = dir
	return slot
}

func TestUpwardBulletDestroysEnemy(t *testing.T) {
	g := startGame(t, testConfig())

	target := g.enemies.at(0)
	slot := placeBullet(t, g, target.px+5, target.py+5, dirUp)
	reward := target.killReward

	g.resolveCollisions()

	if g.enemies.live(0) {
		t.Error("Enemy should be destroyed by an upward bullet")
	}
	if g.bullets.live(slot) {
		t.Error("Bullet should be consumed by the hit")
	}
	if g.player.score != reward {
		t.Errorf("Score = %d, expected %d", g.player.score, reward)
	}
	if g.particles.size() != 1 {
		t.Errorf("A ship-destroyed particle should spawn, got %d particles", g.particles.size())
	}
	if g.particles.at(0).kind != particleShipDestroyed {
		t.Error("Particle should be of the ship-destroyed kind")
	}
}

func TestDownwardBulletNeverDestroysEnemy(t *testing.T) {
	g := startGame(t, testConfig())

	target := g.enemies.at(0)
	slot := placeBullet(t, g, target.px+5, target.py+5, dirDown)

	g.resolveCollisions()

	if !g.enemies.live(0) {
		t.Error("A downward bullet must never destroy an enemy")
	}
	if !g.bullets.live(slot) {
		t.Error("Bullet should pass through the enemy untouched")
	}
	if g.player.score != 0 {
		t.Errorf("Score should be unchanged, got %d", g.player.score)
	}
}

func TestDownwardBulletHitsPlayer(t *testing.T) {
	g := startGame(t, testConfig())
	g.player.px = 200 // Away from spawn so the respawn is observable

	slot := placeBullet(t, g, g.player.px+5, g.player.py+5, dirDown)

	g.resolveCollisions()

	if g.player.lives != StartLives-1 {
		t.Errorf("Lives = %d, expected %d", g.player.lives, StartLives-1)
	}
	if g.bullets.live(slot) {
		t.Error("Bullet should be consumed by the hit")
	}
	if g.particles.size() != 1 || g.particles.at(0).kind != particleShipDestroyed {
		t.Error("A ship-destroyed particle should spawn at the impact")
	}
	if g.player.px != PlayerStartX || g.player.py != PlayerStartY {
		t.Errorf("Player should respawn at (%d, %d), got (%f, %f)",
			PlayerStartX, PlayerStartY, g.player.px, g.player.py)
	}
	if g.gameOver {
		t.Error("Losing one of three lives should not end the round")
	}
}

func TestUpwardBulletNeverHitsPlayer(t *testing.T) {
	g := startGame(t, testConfig())

	slot := placeBullet(t, g, g.player.px+5, g.player.py+5, dirUp)

	g.resolveCollisions()

	if g.player.lives != StartLives {
		t.Errorf("An upward bullet must never hurt the player, lives = %d", g.player.lives)
	}
	if !g.bullets.live(slot) {
		t.Error("Bullet should survive overlapping the player")
	}
}

func TestFinalLifeSetsGameOver(t *testing.T) {
	g := startGame(t, testConfig())
	g.player.lives = 1

	placeBullet(t, g, g.player.px+5, g.player.py+5, dirDown)

	g.resolveCollisions()

	if !g.gameOver {
		t.Error("Losing the last life should set the game-over flag")
	}
	// The respawn still happens on the lethal hit
	if g.player.px != PlayerStartX || g.player.py != PlayerStartY {
		t.Error("Player position resets even on the lethal hit")
	}
}

func TestOneBulletDestroysOneEnemy(t *testing.T) {
	g := startGame(t, testConfig())

	// Stack two enemies on top of each other; the bullet takes the one
	// with the lower slot index and is then spent.
	a := g.enemies.at(3)
	b := g.enemies.at(7)
	b.px = a.px
	b.py = a.py

	placeBullet(t, g, a.px+5, a.py+5, dirUp)

	g.resolveCollisions()

	if g.enemies.live(3) {
		t.Error("The lower-indexed enemy should be destroyed")
	}
	if !g.enemies.live(7) {
		t.Error("A spent bullet must not destroy a second enemy")
	}
}

func TestDestroyedBulletSkipsPlayerTest(t *testing.T) {
	g := startGame(t, testConfig())

	// Put an enemy directly on the player. A downward bullet placed on
	// both must hit only the player path; an upward bullet only the enemy.
	e := g.enemies.at(0)
	e.px = g.player.px
	e.py = g.player.py

	placeBullet(t, g, g.player.px+5, g.player.py+5, dirUp)

	g.resolveCollisions()

	if g.enemies.live(0) {
		t.Error("Upward bullet should destroy the overlapping enemy")
	}
	if g.player.lives != StartLives {
		t.Errorf("Spent bullet should skip the player test, lives = %d", g.player.lives)
	}
}

func TestBulletOffscreenLeavesImpactParticle(t *testing.T) {
	g := startGame(t, testConfig())

	// A bullet about to cross the top edge
	slot := placeBullet(t, g, 320, 1, dirUp)

	g.stepBullets(tickDt)

	if g.bullets.live(slot) {
		t.Error("Bullet should be destroyed at the vertical bound")
	}
	if g.particles.size() != 1 {
		t.Fatalf("Impact particle should spawn, got %d particles", g.particles.size())
	}
	if g.particles.at(0).kind != particleBulletImpact {
		t.Error("Off-screen bullets leave a bullet-impact particle")
	}
}

func TestParticleLifetimeExpiry(t *testing.T) {
	g := startGame(t, testConfig())

	g.spawnParticle(100, 100, particleBulletImpact)
	if g.particles.size() != 1 {
		t.Fatal("Particle should spawn")
	}

	// Lifetime is 0.5s; step past it
	for i := 0; i < 40; i++ {
		g.stepParticles(tickDt)
	}

	if g.particles.size() != 0 {
		t.Errorf("Expired particle should be removed, %d remain", g.particles.size())
	}
}

func TestBulletSpawnDroppedWhenPoolFull(t *testing.T) {
	g := startGame(t, testConfig())

	for i := 0; i < MaxBullets; i++ {
		placeBullet(t, g, 10+float64(i)*12, 300, dirUp)
	}

	// A full pool silently drops the spawn; firing must not panic
	g.spawnBullet(g.player.px, g.player.py, dirUp)

	if g.bullets.size() != MaxBullets {
		t.Errorf("Bullet count = %d, expected the spawn to be dropped at %d",
			g.bullets.size(), MaxBullets)
	}
}
