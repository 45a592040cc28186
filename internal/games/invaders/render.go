package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering.
const (
	PlayerChar     = '█'
	EnemyChar      = '▼'
	BulletUpChar   = '╹'
	BulletDownChar = '╻'
	ImpactChar     = '+'
	ExplosionChar  = '✶'
)

// Render draws the current game state to the screen. The world coordinate
// space is projected onto the screen cell grid, so any terminal size works
// without touching the simulation.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if !g.playing {
		g.renderMenu(dst)
		return
	}

	g.renderEntities(dst)
	g.renderStats(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// project converts a world-space rectangle to screen cells. Entities are
// never projected down to nothing: width and height floor at one cell.
func (g *Game) project(dst *core.Screen, r core.RectF) core.Rect {
	sx := float64(dst.Width()) / WorldW
	sy := float64(dst.Height()) / WorldH

	w := core.Max(1, int(r.W*sx))
	h := core.Max(1, int(r.H*sy))
	return core.NewRect(int(r.X*sx), int(r.Y*sy), w, h)
}

// renderEntities draws the cannon, formation, bullets, and particles.
func (g *Game) renderEntities(dst *core.Screen) {
	dst.FillRect(g.project(dst, g.playerRect()), PlayerChar, core.ColorBrightGreen)

	g.enemies.forEach(func(_ int, e *enemy) {
		dst.FillRect(g.project(dst, enemyRect(e)), EnemyChar, core.ColorBrightRed)
	})

	g.bullets.forEach(func(_ int, b *bullet) {
		ch := BulletUpChar
		color := core.ColorBrightYellow
		if b.vy == dirDown {
			ch = BulletDownChar
			color = core.ColorBrightMagenta
		}
		dst.FillRect(g.project(dst, bulletRect(b)), ch, color)
	})

	g.particles.forEach(func(_ int, p *particle) {
		ch := ImpactChar
		color := core.ColorYellow
		if p.kind == particleShipDestroyed {
			ch = ExplosionChar
			color = core.ColorOrange
		}
		box := core.NewRectF(p.px, p.py, ParticleW, ParticleH)
		dst.FillRect(g.project(dst, box), ch, color)
	})
}

// renderStats draws the HUD: score and high score on the left, lives and
// wave on the right.
func (g *Game) renderStats(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.player.score))
	dst.DrawText(1, 1, fmt.Sprintf("High score: %d", g.player.hiScore))

	lives := fmt.Sprintf("Lives: %d", g.player.lives)
	wave := fmt.Sprintf("Wave: %d", g.wave)
	dst.DrawText(dst.Width()-len(lives)-1, 0, lives)
	dst.DrawText(dst.Width()-len(wave)-1, 1, wave)
}

// renderMenu draws the attract screen.
func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()

	dst.DrawTextCentered(h/3, "S P A C E   I N V A D E R S")
	dst.DrawTextCentered(h/2, "Press SPACE to play")

	if g.player.hiScore > 0 {
		dst.DrawTextCentered(h/2+2, fmt.Sprintf("High score: %d", g.player.hiScore))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
