package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// tickDt is the fixed timestep used by tests: one tick at 60 FPS.
const tickDt = 1.0 / 60.0

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

// startGame returns a game that has left the attract screen.
func startGame(t *testing.T, cfg core.RuntimeConfig) *Game {
	t.Helper()
	g := New()
	g.Reset(cfg)

	start := core.NewInputFrame()
	start.Set(core.ActionFire)
	g.Step(start, tickDt)

	if !g.playing {
		t.Fatal("Fire on the attract screen should start the round")
	}
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical state
	cfg := testConfig()

	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%30 == 0 {
			inputSequence[i].Set(core.ActionFire)
		}
		if i%7 < 3 {
			inputSequence[i].Set(core.ActionLeft)
		} else {
			inputSequence[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := startGame(t, cfg)
		for _, in := range inputSequence {
			g.Step(in, tickDt)
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1 != s2 {
		t.Errorf("Determinism failed:\nrun1 = %+v\nrun2 = %+v", s1, s2)
	}
}

func TestGameReset(t *testing.T) {
	cfg := testConfig()
	g := startGame(t, cfg)

	// Play a while, then force some state
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	for i := 0; i < 120; i++ {
		g.Step(in, tickDt)
	}
	g.player.score = 500
	g.wave = 3

	g.Reset(cfg)

	if g.player.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.player.score)
	}
	if g.player.hiScore != 0 {
		t.Errorf("Reset should clear high score, got %d", g.player.hiScore)
	}
	if g.wave != 1 {
		t.Errorf("Reset should return to wave 1, got %d", g.wave)
	}
	if g.playing {
		t.Error("Reset should return to the attract screen")
	}
	if g.enemies.size() != MaxEnemies {
		t.Errorf("Reset should spawn a full wave, got %d enemies", g.enemies.size())
	}
	if g.bullets.size() != 0 || g.particles.size() != 0 {
		t.Error("Reset should clear bullets and particles")
	}
	if g.speedMult != 1.0 {
		t.Errorf("Reset should restore speed multiplier to 1.0, got %f", g.speedMult)
	}
}

func TestMenuIgnoresMovement(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in, tickDt)

	if g.playing {
		t.Error("Movement input should not start the round")
	}
	if g.player.px != PlayerStartX {
		t.Error("Player should not move on the attract screen")
	}
}

func TestPlayerMovement(t *testing.T) {
	g := startGame(t, testConfig())
	startX := g.player.px

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right, tickDt)

	expected := startX + PlayerSpeed*tickDt
	if g.player.px != expected {
		t.Errorf("Player x = %f, expected %f", g.player.px, expected)
	}

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g.Step(left, tickDt)

	if g.player.px != startX {
		t.Errorf("Player x = %f, expected %f after moving back", g.player.px, startX)
	}
}

func TestPlayerCanMoveOffscreen(t *testing.T) {
	// Horizontal position is intentionally unclamped
	g := startGame(t, testConfig())

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 600; i++ {
		g.Step(left, tickDt)
	}

	if g.player.px >= 0 {
		t.Errorf("Player should be able to leave the left edge, x = %f", g.player.px)
	}
}

func TestPlayerFire(t *testing.T) {
	g := startGame(t, testConfig())

	if g.player.shootTimer > 0 {
		t.Fatalf("Cooldown should start expired, got %f", g.player.shootTimer)
	}

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire, tickDt)

	if g.bullets.size() != 1 {
		t.Fatalf("Firing should spawn exactly one bullet, got %d", g.bullets.size())
	}

	b := g.bullets.at(0)
	if b.vy != dirUp {
		t.Errorf("Player bullet should travel upward, vy = %d", b.vy)
	}
	if b.px != g.player.px+PlayerW/2 {
		t.Errorf("Bullet x = %f, expected %f", b.px, g.player.px+PlayerW/2)
	}
	// The bullet spawned at the cannon offset and advanced once this tick
	expectedY := g.player.py + PlayerH/2 - BulletSpeed*tickDt
	if b.py != expectedY {
		t.Errorf("Bullet y = %f, expected %f", b.py, expectedY)
	}

	// Cooldown was reset to 1.0 and then ticked down once
	expectedCooldown := FireCooldown - tickDt
	if g.player.shootTimer != expectedCooldown {
		t.Errorf("Cooldown = %f, expected %f", g.player.shootTimer, expectedCooldown)
	}
}

func TestPlayerFireCooldownBlocksRepeat(t *testing.T) {
	g := startGame(t, testConfig())

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire, tickDt)
	g.Step(fire, tickDt)
	g.Step(fire, tickDt)

	if g.bullets.size() != 1 {
		t.Errorf("Cooldown should block repeat fire, got %d bullets", g.bullets.size())
	}

	// After the cooldown expires the player can fire again
	noInput := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(noInput, tickDt)
	}
	g.Step(fire, tickDt)

	if g.bullets.size() == 0 {
		t.Error("Player should fire again once the cooldown expires")
	}
}

func TestPoolsNeverExceedCapacity(t *testing.T) {
	g := startGame(t, testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	for i := 0; i < 3000; i++ {
		g.Step(in, tickDt)

		if g.enemies.size() > MaxEnemies {
			t.Fatalf("Enemy pool exceeded capacity: %d", g.enemies.size())
		}
		if g.bullets.size() > MaxBullets {
			t.Fatalf("Bullet pool exceeded capacity: %d", g.bullets.size())
		}
		if g.particles.size() > MaxParticles {
			t.Fatalf("Particle pool exceeded capacity: %d", g.particles.size())
		}
	}
}

func TestGamePause(t *testing.T) {
	g := startGame(t, testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, tickDt)

	if !g.paused {
		t.Error("Game should be paused")
	}

	before := g.Snapshot()
	noInput := core.NewInputFrame()
	g.Step(noInput, tickDt)

	if g.Snapshot() != before {
		t.Error("Simulation should not advance while paused")
	}

	g.Step(pause, tickDt)
	if g.paused {
		t.Error("Game should be unpaused")
	}
}

func TestGameOverResetsRound(t *testing.T) {
	g := startGame(t, testConfig())
	g.player.score = 340
	g.wave = 2
	g.player.px = 100 // Move the cannon away from its spawn point
	g.gameOver = true

	result := g.checkRoundState()

	if !result.RoundOver {
		t.Error("RoundOver should be reported")
	}
	if result.RoundScore != 340 {
		t.Errorf("RoundScore = %d, expected 340", result.RoundScore)
	}
	if result.RoundWave != 2 {
		t.Errorf("RoundWave = %d, expected 2", result.RoundWave)
	}

	if g.player.hiScore != 340 {
		t.Errorf("High score = %d, expected 340", g.player.hiScore)
	}
	if g.player.score != 0 {
		t.Errorf("Score should reset to 0, got %d", g.player.score)
	}
	if g.player.lives != StartLives {
		t.Errorf("Lives = %d, expected %d", g.player.lives, StartLives)
	}
	if g.player.px != PlayerStartX || g.player.py != PlayerStartY {
		t.Error("Player should respawn at the start position")
	}
	if g.wave != 2 {
		t.Errorf("Wave should stay at 2 after game over, got %d", g.wave)
	}
	if g.enemies.size() != MaxEnemies {
		t.Errorf("A fresh wave should spawn, got %d enemies", g.enemies.size())
	}
	if g.bullets.size() != 0 {
		t.Error("Bullets should be cleared on game over")
	}
	if g.gameOver {
		t.Error("Game-over flag should be consumed")
	}
}

func TestHighScoreIsMonotonic(t *testing.T) {
	g := startGame(t, testConfig())

	g.player.score = 500
	g.gameOver = true
	g.checkRoundState()

	if g.player.hiScore != 500 {
		t.Fatalf("High score = %d, expected 500", g.player.hiScore)
	}

	// A worse round must not lower it
	g.player.score = 120
	g.gameOver = true
	g.checkRoundState()

	if g.player.hiScore != 500 {
		t.Errorf("High score = %d, expected 500 to survive a worse round", g.player.hiScore)
	}
}

func TestWaveClearAdvancesWave(t *testing.T) {
	g := startGame(t, testConfig())
	g.player.score = 90
	g.player.lives = 1
	g.enemies.clear()

	noInput := core.NewInputFrame()
	result := g.Step(noInput, tickDt)

	if !result.WaveCleared {
		t.Error("WaveCleared should be reported")
	}
	if g.wave != 2 {
		t.Errorf("Wave = %d, expected 2", g.wave)
	}
	if g.enemies.size() != MaxEnemies {
		t.Errorf("New wave should have %d enemies, got %d", MaxEnemies, g.enemies.size())
	}
	if g.player.lives != StartLives {
		t.Errorf("Wave clear should refill lives to %d, got %d", StartLives, g.player.lives)
	}
	if g.player.score != 90 {
		t.Errorf("Wave clear should not touch the score, got %d", g.player.score)
	}

	// Rewards scale with the new wave number
	g.enemies.forEach(func(_ int, e *enemy) {
		if e.killReward != 10*g.wave {
			t.Errorf("Kill reward = %d, expected %d", e.killReward, 10*g.wave)
		}
	})
}

func TestGameRender(t *testing.T) {
	cfg := testConfig()
	g := startGame(t, cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("Render should draw something to the screen")
	}

	// HUD shows the score in the top-left corner
	if screen.Get(1, 0) != 'S' {
		t.Errorf("HUD should start with the score line, got %q", screen.Get(1, 0))
	}
}

func TestMenuRender(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	// The attract screen should not draw any enemies
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == EnemyChar {
				t.Fatal("Attract screen should not render the formation")
			}
		}
	}
}
