// Package survival implements a top-down zombie survival game.
// The player dodges zombies that spawn at the field edges ever faster,
// scoring a point for each second alive until health runs out.
package survival

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/zombie-survival/internal/config"
	"github.com/vovakirdan/zombie-survival/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar    = '@'
	BasicChar     = 'z'
	FastChar      = 'Z'
	minScreenW    = 24
	minScreenH    = 8
	hudRows       = 1
	frameBorder   = 1
	tooSmallTitle = "Terminal too small"
)

// Game adapts a World to the platform: seeding, terminal rendering and
// restarts. Each Reset starts an independent run.
type Game struct {
	cfg   config.SurvivalConfig
	world *World
}

// New creates a new survival game with the given tuning.
func New(cfg config.SurvivalConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "survival"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Zombie Survival"
}

// Reset starts a fresh run seeded from the runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.world = NewWorld(g.cfg, rand.New(rand.NewSource(cfg.Seed)))
}

// Step advances the run by elapsed time using the held keys.
func (g *Game) Step(held core.Keys, elapsed time.Duration) core.StepResult {
	res := g.world.Step(held, elapsed)

	events := make([]core.Event, len(res.Events))
	for i, e := range res.Events {
		events[i] = e
	}
	return core.StepResult{State: g.State(), Events: events}
}

// World returns the current run.
func (g *Game) World() *World {
	return g.world
}

// Snapshot returns the current run's render view.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Phase() == PhaseGameOver,
	}
}

// Render draws the field scaled to the screen, with a HUD line on top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		x := (dst.Width() - len(tooSmallTitle)) / 2
		dst.DrawTextColored(x, dst.Height()/2, tooSmallTitle, core.ColorGray)
		return
	}

	snap := g.world.Snapshot()
	frame := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	dst.DrawBox(frame)

	if snap.GameOver() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
		return
	}

	hud := fmt.Sprintf(" Health: %d   Score: %d   Zombies: %d ", snap.Health, snap.Score, len(snap.Enemies))
	dst.DrawTextColored(1, 0, hud, core.ColorYellow)

	inner := core.NewRect(frame.X+frameBorder, frame.Y+frameBorder, frame.W-2*frameBorder, frame.H-2*frameBorder)
	for _, e := range snap.Enemies {
		ch, color := BasicChar, core.ColorRed
		if e.Kind == KindFast {
			ch, color = FastChar, core.ColorBlue
		}
		if x, y, ok := toCell(e.Pos, snap.Field, inner); ok {
			dst.SetColored(x, y, ch, color)
		}
	}
	if x, y, ok := toCell(snap.Player, snap.Field, inner); ok {
		dst.SetColored(x, y, PlayerChar, core.ColorGreen)
	}
}

// toCell maps a field position into a cell of area. Positions off the field
// are not drawn.
func toCell(pos, field core.Vec2, area core.Rect) (int, int, bool) {
	if pos.X < 0 || pos.Y < 0 || pos.X > field.X || pos.Y > field.Y {
		return 0, 0, false
	}
	cx := core.Clamp(int(pos.X/field.X*float64(area.W)), 0, area.W-1)
	cy := core.Clamp(int(pos.Y/field.Y*float64(area.H)), 0, area.H-1)
	return area.X + cx, area.Y + cy, true
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
