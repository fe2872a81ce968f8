//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"space  pause / resume",
	"n      reveal one row",
	"r      restart reveal",
	"s      reseed random row",
	"up/dn  next / previous rule",
	"b      toggle boundary",
	"m      toggle seed mode",
	"h      toggle this help",
	"q      quit",
}

// Overlay draws the reveal cursor and an optional key legend over the grid.
type Overlay struct {
	showHelp bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the help legend.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the cursor line at cursorY across [x0, x1) and the legend.
// A negative cursorY hides the cursor.
func (o *Overlay) Draw(screen *ebiten.Image, x0, x1, cursorY int) {
	if cursorY >= 0 && x1 > x0 {
		o.fillRect(screen, x0, cursorY, x1-x0, 2, color.RGBA{R: 220, G: 60, B: 60, A: 200})
	}
	if !o.showHelp {
		return
	}
	w := 240
	h := len(helpLines)*lineSpacing + 2*panelPadding
	o.fillRect(screen, panelPadding, panelPadding, w, h, color.RGBA{R: 16, G: 16, B: 20, A: 220})
	face := basicfont.Face7x13
	y := 2*panelPadding + headerBaseline/2
	for _, line := range helpLines {
		text.Draw(screen, line, face, 2*panelPadding, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
		y += lineSpacing
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
