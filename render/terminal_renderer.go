package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/engine"
	"github.com/lixenwraith/collecta/entity"
	"github.com/lixenwraith/collecta/level"
	"github.com/lixenwraith/collecta/physics"
)

// World pixels covered by one terminal cell; cells are roughly twice as tall as wide
const (
	PixelsPerColumn = 16
	PixelsPerRow    = 32

	hudWidth = 18
)

// Screen is the part of tcell.Screen the renderer draws through
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
	Clear()
	Show()
}

// TerminalRenderer draws a session onto a character grid
type TerminalRenderer struct {
	screen Screen
	width  int
	height int

	worldPx   int
	worldCols int
	worldRows int
	originX   int
	originY   int

	Debug   bool
	ShowFPS bool
}

// NewTerminalRenderer creates a renderer for a square toroidal world of worldPx pixels
func NewTerminalRenderer(screen Screen, worldPx int) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:    screen,
		worldPx:   worldPx,
		worldCols: ceilDiv(worldPx, PixelsPerColumn),
		worldRows: ceilDiv(worldPx, PixelsPerRow),
	}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the layout for a new terminal size
func (r *TerminalRenderer) Resize(width, height int) {
	r.width, r.height = width, height
	// One column of border on each side of the world, then the HUD
	r.originX = max((width-r.worldCols-2-hudWidth)/2, 0) + 1
	r.originY = max((height-r.worldRows-2)/2, 0) + 1
}

// Origin returns the screen cell of world pixel (0, 0)
func (r *TerminalRenderer) Origin() (int, int) { return r.originX, r.originY }

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(s *engine.Session, fps float64) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)
	r.fillScreen(base)

	w := s.World()
	worldStyle := tcell.StyleDefault.Background(RgbWorld)
	for row := 0; row < r.worldRows; row++ {
		for col := 0; col < r.worldCols; col++ {
			r.put(col, row, ' ', worldStyle)
		}
	}

	if w.Level != nil {
		r.drawTiles(w.Level, w.Params.Scale, worldStyle)
	}
	r.drawWalls(w.WallList, worldStyle)
	r.drawLoot(w.Loot(), worldStyle)
	if w.Player != nil {
		r.drawPlayer(w.Player, worldStyle)
	}
	r.drawBorder(base)
	r.drawHUD(s, fps, base)
	if r.Debug && w.Player != nil {
		r.drawDebug(w.Player, base)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) fillScreen(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// put draws at a world cell, clipped to the world box
func (r *TerminalRenderer) put(col, row int, ch rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= r.worldCols || row >= r.worldRows {
		return
	}
	r.screen.SetContent(r.originX+col, r.originY+row, ch, nil, style)
}

func (r *TerminalRenderer) drawTiles(lv *level.Level, scale int, style tcell.Style) {
	tileStyle := style.Foreground(RgbTile)
	for _, layer := range lv.Layers {
		if layer.Type != level.LayerTiles {
			continue
		}
		for _, t := range layer.Tiles {
			r.put(floorDiv(t.X*scale, PixelsPerColumn), floorDiv(t.Y*scale, PixelsPerRow), '·', tileStyle)
		}
	}
}

func (r *TerminalRenderer) drawWalls(walls []*entity.Wall, style tcell.Style) {
	wallStyle := style.Foreground(RgbWall)
	for _, wall := range walls {
		r.fillRect(wall.Bounds(), func(_, _ int) rune { return '█' }, wallStyle)
	}
}

func (r *TerminalRenderer) drawLoot(items []*entity.Loot, style tcell.Style) {
	for _, item := range items {
		g := glyphFor(item.Kind)
		color := g.color
		if !item.Ready() {
			color = RgbLootFalling
		}
		b := item.Bounds()
		col := floorDiv(b.CenterX(), PixelsPerColumn)
		row := floorDiv(b.CenterY(), PixelsPerRow)
		r.put(col, row, g.r, style.Foreground(color))
	}
}

// drawPlayer draws the player and, near an edge, its wrapped copies on the far side
func (r *TerminalRenderer) drawPlayer(p *entity.Player, style tcell.Style) {
	b := p.Bounds()
	body := playerFrames[p.FrameCol%len(playerFrames)]
	facing := facingGlyph(p)
	bodyStyle := style.Foreground(RgbPlayer)
	faceStyle := style.Foreground(RgbPlayerFacing).Background(RgbPlayer)

	cx := floorDiv(b.CenterX(), PixelsPerColumn)
	cy := floorDiv(b.CenterY(), PixelsPerRow)
	r.fillRect(b, func(col, row int) rune {
		if col == cx && row == cy {
			return facing
		}
		return body
	}, bodyStyle)

	// Re-stamp the facing cell with its own style on every wrapped image
	for _, off := range r.wrapOffsets(b) {
		col := floorDiv(b.CenterX()+off.X, PixelsPerColumn)
		row := floorDiv(b.CenterY()+off.Y, PixelsPerRow)
		r.put(col, row, facing, faceStyle)
	}
}

func facingGlyph(p *entity.Player) rune {
	switch {
	case p.Dir.Idle():
		return '■'
	case p.Dir.Y < 0:
		return '▲'
	case p.Dir.Y > 0:
		return '▼'
	case p.Dir.X > 0:
		return '▶'
	}
	return '◀'
}

// fillRect paints every cell rect covers, including its wrapped images
// glyph receives cell coordinates relative to the unwrapped rect
func (r *TerminalRenderer) fillRect(rect core.Rect, glyph func(col, row int) rune, style tcell.Style) {
	for _, off := range r.wrapOffsets(rect) {
		moved := rect.Moved(off.X, off.Y)
		c0, c1 := floorDiv(moved.Left(), PixelsPerColumn), ceilDiv(moved.Right(), PixelsPerColumn)
		r0, r1 := floorDiv(moved.Top(), PixelsPerRow), ceilDiv(moved.Bottom(), PixelsPerRow)
		dc := floorDiv(off.X, PixelsPerColumn)
		dr := floorDiv(off.Y, PixelsPerRow)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				r.put(col, row, glyph(col-dc, row-dr), style)
			}
		}
	}
}

// wrapOffsets returns the pixel offsets of every image of rect that intersects the world
func (r *TerminalRenderer) wrapOffsets(rect core.Rect) []core.Point {
	world := core.NewRect(0, 0, r.worldPx, r.worldPx)
	var out []core.Point
	for _, dy := range []int{0, -r.worldPx, r.worldPx} {
		for _, dx := range []int{0, -r.worldPx, r.worldPx} {
			if physics.Overlaps(rect.Moved(dx, dy), world) {
				out = append(out, core.Point{X: dx, Y: dy})
			}
		}
	}
	return out
}

func (r *TerminalRenderer) drawBorder(style tcell.Style) {
	s := style.Foreground(RgbBorder)
	x0, y0 := r.originX-1, r.originY-1
	x1, y1 := r.originX+r.worldCols, r.originY+r.worldRows
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, s)
		r.screen.SetContent(x, y1, '─', nil, s)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, s)
		r.screen.SetContent(x1, y, '│', nil, s)
	}
	r.screen.SetContent(x0, y0, '┌', nil, s)
	r.screen.SetContent(x1, y0, '┐', nil, s)
	r.screen.SetContent(x0, y1, '└', nil, s)
	r.screen.SetContent(x1, y1, '┘', nil, s)
}

func (r *TerminalRenderer) hudX() int { return r.originX + r.worldCols + 2 }

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *TerminalRenderer) drawHUD(s *engine.Session, fps float64, base tcell.Style) {
	x := r.hudX()
	y := r.originY
	hud := base.Foreground(RgbHUD)
	dim := base.Foreground(RgbHUDDim)

	r.drawText(x, y, s.LevelName(), hud)
	if r.ShowFPS {
		r.drawText(x, y+1, fmt.Sprintf("%2.2f fps", fps), dim)
	}
	if left := s.Countdown(); left > 0 {
		r.drawText(x, y+3, fmt.Sprintf("GO  %4.1f", left.Seconds()), base.Foreground(RgbCountdown))
	}
	r.drawText(x, y+4, fmt.Sprintf("LOOT %d", s.World().Entities.Len()-1), dim)

	bottom := r.originY + r.worldRows - 1
	r.drawText(x, bottom-3, "TIME", dim)
	r.drawText(x, bottom-2, fmt.Sprintf("%06.1f", s.Timer().Seconds()), hud)
	r.drawText(x, bottom-1, "BEST", dim)
	r.drawText(x, bottom, fmt.Sprintf("%06.1f", s.Best().Seconds()), hud)
}

func (r *TerminalRenderer) drawDebug(p *entity.Player, base tcell.Style) {
	style := base.Foreground(RgbDebug)
	x := r.hudX()
	y := r.originY + 6
	for side := physics.SideUp; side <= physics.SideRight; side++ {
		if p.Blocked[side] {
			r.drawText(x, y+int(side), side.String(), style)
		}
	}
	px, py := p.Peaks()
	r.drawText(x, y+5, fmt.Sprintf("(%.2f, %.2f)", px, py), style)
	if p.Synced() {
		r.drawText(x, y+6, "SYNC", style)
	}
	r.drawText(x, y+7, fmt.Sprintf("(%d, %d)", p.Rect.X, p.Rect.Y), style)
	r.drawText(x, y+8, fmt.Sprintf("debt %.2f", p.Debt()), style)
	snap := p.SnapTarget()
	r.drawText(x, y+9, fmt.Sprintf("snap %d,%d", snap.X, snap.Y), style)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
