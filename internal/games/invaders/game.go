// Package invaders implements a Space Invaders-style game.
// The player controls a cannon at the bottom of the screen and shoots at a
// grid of enemies that advances as a rigid formation, descending and
// speeding up on every edge bounce.
//
// The simulation runs in a fixed 640x480 world coordinate space; the
// renderer projects world units onto terminal cells, so game logic is
// independent of the terminal size.
package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// World dimensions - all positions and sizes below are in world units.
const (
	WorldW = 640
	WorldH = 480
)

// Entity pool capacities. Spawns beyond capacity are silently dropped.
const (
	MaxEnemies   = 55
	MaxBullets   = 20
	MaxParticles = 20
)

// Movement speeds in world units per second.
const (
	PlayerSpeed = 200.0
	EnemySpeed  = 20.0
	BulletSpeed = 275.0
)

// Entity sizes in world units.
const (
	PlayerW = 20.0
	PlayerH = 20.0

	EnemyW = 30.0
	EnemyH = 30.0

	BulletW = 10.0
	BulletH = 15.0

	ParticleW = 20.0
	ParticleH = 20.0
)

// Formation layout and tuning.
const (
	FormationCols = 11              // Enemies per row
	FormationRows = 5               // Rows in a fresh wave
	SpeedRamp     = 0.025           // Speed multiplier gain per edge bounce
	DescendStep   = EnemyH / 4      // Vertical drop on edge bounce
	StartLives    = 3               // Lives at round start and wave clear
	FireCooldown  = 1.0             // Seconds between shots, player and enemy
	FireChanceIn  = 5000            // Enemy fire draw range per tick...
	FireChanceHit = 10              // ...fires when the draw lands below this
)

// Player spawn point. The cannon respawns here after every hit.
const (
	PlayerStartX = WorldW / 2
	PlayerStartY = WorldH - WorldH/14
)

// player is the cannon at the bottom of the screen.
type player struct {
	px, py     float64
	score      int
	hiScore    int
	lives      int
	shootTimer float64
}

// Tuning holds the gameplay parameters that configuration may override.
// Structural values (world size, entity sizes, pool capacities, formation
// layout) are fixed and not part of the tuning surface.
type Tuning struct {
	PlayerSpeed  float64 // Cannon speed, world units/sec
	EnemySpeed   float64 // Base formation speed, world units/sec
	BulletSpeed  float64 // Bullet speed, world units/sec
	SpeedRamp    float64 // Speed multiplier gain per edge bounce
	Lives        int     // Lives at round start and wave clear
	FireCooldown float64 // Seconds between shots, player and enemy
	FireChance   int     // Enemy fire odds: FireChance in 5000 per tick
	RewardBase   int     // Kill reward per wave number
}

// DefaultTuning returns the classic gameplay parameters.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:  PlayerSpeed,
		EnemySpeed:   EnemySpeed,
		BulletSpeed:  BulletSpeed,
		SpeedRamp:    SpeedRamp,
		Lives:        StartLives,
		FireCooldown: FireCooldown,
		FireChance:   FireChanceHit,
		RewardBase:   10,
	}
}

// Game implements the Space Invaders game logic.
type Game struct {
	config core.RuntimeConfig
	tuning Tuning
	rng    *rand.Rand
	sound  audio.Player

	player    player
	enemies   *pool[enemy]
	bullets   *pool[bullet]
	particles *pool[particle]

	// Formation state, shared by every live enemy.
	enemyDir  int     // +1 right, -1 left
	speedMult float64 // Strictly increasing, never resets mid-round
	wave      int     // 1-based wave counter

	gameOver bool // Set by collisions, consumed by the round-state check
	playing  bool // False while on the attract screen
	paused   bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{
		tuning:    DefaultTuning(),
		enemies:   newPool[enemy](MaxEnemies),
		bullets:   newPool[bullet](MaxBullets),
		particles: newPool[particle](MaxParticles),
		sound:     audio.NopPlayer{},
	}
}

// SetTuning replaces the gameplay parameters. Takes effect from the next
// Reset; mid-round changes to speeds apply immediately.
func (g *Game) SetTuning(tn Tuning) {
	g.tuning = tn
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// SetSound installs the audio sink for fire-and-forget sound effects.
// By default the game is silent.
func (g *Game) SetSound(p audio.Player) {
	if p == nil {
		p = audio.NopPlayer{}
	}
	g.sound = p
}

// Reset initializes the game to the attract screen with a fresh first wave.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.enemyDir = 1
	g.speedMult = 1.0
	g.wave = 1

	g.gameOver = false
	g.playing = false
	g.paused = false

	g.bullets.clear()
	g.particles.clear()

	g.resetPlayer()
	g.player.hiScore = 0
	g.spawnWave()
}

// resetPlayer puts the cannon back at its spawn point with a fresh round
// state. The high score is deliberately untouched.
func (g *Game) resetPlayer() {
	g.player.px = PlayerStartX
	g.player.py = PlayerStartY
	g.player.score = 0
	g.player.lives = g.tuning.Lives
	g.player.shootTimer = 0
}

// Step advances the simulation by one tick. dt is the wall-clock seconds
// since the previous tick, unclamped - a huge dt after a stall causes a
// correspondingly huge position jump, which is accepted behavior.
//
// Sub-steps run in a fixed order: player, bullets, enemies, particles,
// enemy fire, collisions, round state.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if !g.playing {
		if in.Has(core.ActionFire) {
			g.playing = true
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.stepPlayer(in, dt)
	g.stepBullets(dt)
	g.stepEnemies(dt)
	g.stepParticles(dt)

	g.enemyFire(dt)

	g.resolveCollisions()
	result := g.checkRoundState()

	result.State = g.State()
	return result
}

// stepPlayer applies horizontal movement and handles firing. Horizontal
// position is intentionally unclamped: the cannon can slide off-screen.
func (g *Game) stepPlayer(in core.InputFrame, dt float64) {
	if in.Has(core.ActionRight) {
		g.player.px += g.tuning.PlayerSpeed * dt
	}
	if in.Has(core.ActionLeft) {
		g.player.px -= g.tuning.PlayerSpeed * dt
	}

	if in.Has(core.ActionFire) && g.player.shootTimer <= 0 {
		g.spawnBullet(g.player.px, g.player.py, dirUp)
		g.sound.Play(audio.EffectFire)
		g.player.shootTimer = g.tuning.FireCooldown
	}

	g.player.shootTimer -= dt
}

// playerRect returns the cannon's bounding box in world units.
func (g *Game) playerRect() core.RectF {
	return core.NewRectF(g.player.px, g.player.py, PlayerW, PlayerH)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.player.score,
		HighScore: g.player.hiScore,
		Lives:     g.player.lives,
		Wave:      g.wave,
		Playing:   g.playing,
		Paused:    g.paused,
	}
}
