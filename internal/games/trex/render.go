package trex

import (
	"fmt"
	"math"

	"github.com/vovakirdan/topsy-trex/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	PlayerEye  = '◆'
	ShortChar  = '▓'
	LongChar   = '▒'
	FlyingChar = '◄'
	GroundChar = '═'
)

// HUDRowCount is the number of screen rows reserved above the play field.
const HUDRowCount = 1

// viewport maps world coordinates onto screen cells below the HUD row.
type viewport struct {
	left, right, bottom, top float64
	w, h                     int
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.left) / (v.right - v.left) * float64(v.w)))
}

func (v viewport) row(y float64) int {
	return HUDRowCount + int(math.Floor((v.top-y)/(v.top-v.bottom)*float64(v.h)))
}

// box returns the cell rectangle covering a sprite centered at (x, y).
func (v viewport) box(x, y, radius float64) core.Rect {
	x0, x1 := v.col(x-radius), v.col(x+radius)
	y0, y1 := v.row(y+radius), v.row(y-radius)
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	world := g.cfg.World

	v := viewport{
		left:   world.ViewLeft,
		right:  world.ViewRight,
		bottom: world.ViewBottom,
		top:    world.ViewTop,
		w:      dst.Width(),
		h:      dst.Height() - HUDRowCount,
	}

	// Ground line sits under the player's feet at the baseline
	groundRow := v.row(g.cfg.Player.Y - g.cfg.Player.Size/2)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range snap.Obstacles {
		g.drawObstacle(dst, v, o)
	}

	if snap.Player != nil {
		g.drawPlayer(dst, v, *snap.Player)
	}

	g.drawHUD(dst, snap)

	if snap.State == Paused {
		g.drawPausedMessage(dst, snap)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport, p PlayerView) {
	r := v.box(p.X, p.Y, p.Radius)
	fill(dst, r, PlayerChar, core.ColorGreen)

	// The eye faces forward; below the ground line the sprite is upside down.
	eyeY := r.Y
	if p.Y < g.cfg.Player.Y {
		eyeY = r.Bottom() - 1
	}
	dst.SetColored(r.Right()-1, eyeY, PlayerEye, core.ColorBrightWhite)
}

func (g *Game) drawObstacle(dst *core.Screen, v viewport, o ObstacleView) {
	if o.Waiting {
		return
	}
	r := v.box(o.X, o.Y, o.Radius)
	switch o.Kind {
	case ShortObstacle:
		// Short cacti only fill the lower half of their box
		r.Y += r.H / 2
		r.H -= r.H / 2
		fill(dst, r, ShortChar, core.ColorYellow)
	case LongObstacle:
		fill(dst, r, LongChar, core.ColorRed)
	case FlyingObstacle:
		fill(dst, r, FlyingChar, core.ColorMagenta)
	}
}

func fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		dst.DrawHLine(r.X, y, r.W, ch, c)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(2, 0, " "+g.Title()+" ", core.ColorCyan)

	score := fmt.Sprintf(" Time: %5.1fs  Best: %5.1fs ", snap.Elapsed, snap.Best)
	dst.DrawText(dst.Width()-len(score)-2, 0, score)
}

// drawPausedMessage draws the restart prompt in the center of the screen.
func (g *Game) drawPausedMessage(dst *core.Screen, snap Snapshot) {
	title := "PAUSED"
	subtitle := "Press R to run"
	if snap.Best > 0 {
		subtitle = fmt.Sprintf("Best %.1fs  |  Press R to run", snap.Best)
	}

	w, h := dst.Width(), dst.Height()
	boxW := core.Max(len(title), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
