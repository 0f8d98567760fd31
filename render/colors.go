package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(12, 14, 24)
	RgbWorld      = tcell.NewRGBColor(25, 50, 100)
	RgbBorder     = tcell.NewRGBColor(255, 0, 0)
	RgbTile       = tcell.NewRGBColor(45, 70, 120)
	RgbWall       = tcell.NewRGBColor(150, 160, 185)

	RgbPlayer       = tcell.NewRGBColor(80, 220, 120)
	RgbPlayerFacing = tcell.NewRGBColor(255, 255, 255)

	RgbLootFalling = tcell.NewRGBColor(110, 110, 130)

	RgbHUD       = tcell.NewRGBColor(250, 250, 250)
	RgbHUDDim    = tcell.NewRGBColor(150, 150, 150)
	RgbDebug     = tcell.NewRGBColor(255, 165, 0)
	RgbCountdown = tcell.NewRGBColor(255, 220, 80)
)

// lootGlyph is the look of one loot kind
type lootGlyph struct {
	r     rune
	color tcell.Color
}

var lootGlyphs = map[string]lootGlyph{
	"gem":  {'◆', tcell.NewRGBColor(80, 220, 255)},
	"coin": {'●', tcell.NewRGBColor(255, 215, 0)},
	"star": {'★', tcell.NewRGBColor(255, 120, 220)},
}

var defaultLootGlyph = lootGlyph{'*', tcell.NewRGBColor(255, 255, 255)}

func glyphFor(kind string) lootGlyph {
	if g, ok := lootGlyphs[kind]; ok {
		return g
	}
	return defaultLootGlyph
}

// Player body shading per animation frame
var playerFrames = []rune{'█', '▓', '▒', '▓'}
