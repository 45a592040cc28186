package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestWaveSpawnLayout(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if g.enemies.size() != MaxEnemies {
		t.Fatalf("Fresh wave should have %d enemies, got %d", MaxEnemies, g.enemies.size())
	}

	for i := 0; i < MaxEnemies; i++ {
		col := float64(i % FormationCols)
		row := float64(i / FormationCols)

		e := g.enemies.at(i)
		wantX := col*EnemyW + 10*col + 100
		wantY := row*EnemyH + 10*row + 100
		if e.px != wantX || e.py != wantY {
			t.Errorf("Enemy %d at (%f, %f), expected (%f, %f)", i, e.px, e.py, wantX, wantY)
		}
		if e.killReward != 10 {
			t.Errorf("Enemy %d kill reward = %d, expected 10 on wave 1", i, e.killReward)
		}
	}
}

func TestEnemyCooldownFloor(t *testing.T) {
	tests := []struct {
		wave     int
		expected float64
	}{
		{1, 0.95},
		{2, 0.90},
		{10, 0.50},
		{16, 0.20}, // At the floor
		{50, 0.20}, // Floor holds at high waves
	}

	for _, tc := range tests {
		got := enemyCooldown(tc.wave)
		// Allow for float rounding in the wave scaling
		if got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("enemyCooldown(%d) = %f, expected %f", tc.wave, got, tc.expected)
		}
	}
}

func TestFormationMovesAsRigidBody(t *testing.T) {
	g := startGame(t, testConfig())

	before := make([]float64, MaxEnemies)
	for i := 0; i < MaxEnemies; i++ {
		before[i] = g.enemies.at(i).px
	}

	g.stepEnemies(tickDt)

	shift := EnemySpeed * g.speedMult * tickDt
	for i := 0; i < MaxEnemies; i++ {
		got := g.enemies.at(i).px
		if got != before[i]+shift {
			t.Errorf("Enemy %d moved to %f, expected %f", i, got, before[i]+shift)
		}
	}
}

func TestEdgeBounce(t *testing.T) {
	g := startGame(t, testConfig())

	// Park one enemy inside the left edge zone
	g.enemies.at(0).px = EnemyW - 5

	beforeY := make([]float64, MaxEnemies)
	for i := 0; i < MaxEnemies; i++ {
		beforeY[i] = g.enemies.at(i).py
	}
	beforeMult := g.speedMult
	beforeDir := g.enemyDir

	g.stepEnemies(tickDt)

	if g.enemyDir != -beforeDir {
		t.Errorf("Direction should flip on edge bounce, got %d", g.enemyDir)
	}
	if g.speedMult <= beforeMult {
		t.Errorf("Speed multiplier should strictly increase, was %f, now %f", beforeMult, g.speedMult)
	}
	for i := 0; i < MaxEnemies; i++ {
		got := g.enemies.at(i).py
		if got != beforeY[i]+DescendStep {
			t.Errorf("Enemy %d descended to %f, expected %f", i, got, beforeY[i]+DescendStep)
		}
	}
}

func TestSingleBouncePerTick(t *testing.T) {
	g := startGame(t, testConfig())

	// Two enemies inside the edge zone must still cause only one bounce
	g.enemies.at(0).px = 5
	g.enemies.at(1).px = 10
	beforeMult := g.speedMult
	beforeY := g.enemies.at(5).py

	g.stepEnemies(tickDt)

	if g.enemyDir != -1 {
		t.Errorf("Direction should have flipped exactly once, got %d", g.enemyDir)
	}
	if got := g.speedMult - beforeMult; got != SpeedRamp {
		t.Errorf("Speed multiplier grew by %f, expected a single increment of %f", got, SpeedRamp)
	}
	if got := g.enemies.at(5).py - beforeY; got != DescendStep {
		t.Errorf("Formation descended %f, expected a single step of %f", got, DescendStep)
	}
}

func TestFormationReachingPlayerEndsRound(t *testing.T) {
	g := startGame(t, testConfig())
	g.player.score = 50

	// Drop one enemy past the threshold near the player's row
	g.enemies.at(0).py = WorldH - 2*PlayerH - EnemyH + 1

	noInput := core.NewInputFrame()
	result := g.Step(noInput, tickDt)

	if !result.RoundOver {
		t.Error("Round should end when the formation reaches the player")
	}
	if g.player.hiScore != 50 {
		t.Errorf("High score = %d, expected 50", g.player.hiScore)
	}
}

func TestEnemyFireOnlyFromColumnFront(t *testing.T) {
	g := startGame(t, testConfig())

	before := g.enemies.at(0).shootTimer

	g.enemyFire(tickDt)

	// With the full grid alive, only the bottom row is eligible: its
	// cooldowns tick down while the rest of the formation is untouched.
	for i := 0; i < MaxEnemies-FormationCols; i++ {
		if g.enemies.at(i).shootTimer != before {
			t.Errorf("Enemy %d is covered and should not tick its cooldown", i)
		}
	}
	for i := MaxEnemies - FormationCols; i < MaxEnemies; i++ {
		if g.enemies.at(i).shootTimer != before-tickDt {
			t.Errorf("Bottom-row enemy %d should tick its cooldown", i)
		}
	}
}

func TestEnemyFireSpawnsDownwardBullet(t *testing.T) {
	g := startGame(t, testConfig())

	// Make every eligible enemy ready to fire and run until one does.
	// The random draw is sparse, so give it plenty of ticks.
	g.enemies.forEach(func(_ int, e *enemy) {
		e.shootTimer = 0
	})

	fired := false
	for i := 0; i < 5000 && !fired; i++ {
		g.enemyFire(tickDt)
		g.bullets.forEach(func(_ int, b *bullet) {
			if b.vy == dirDown {
				fired = true
			}
		})
	}

	if !fired {
		t.Fatal("Eligible enemies should eventually fire a downward bullet")
	}
}
