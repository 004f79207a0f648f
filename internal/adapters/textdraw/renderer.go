package textdraw

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Renderer measures and draws single-line text with x/image/font
type Renderer struct{}

// NewRenderer creates a new text renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Measure returns the ink bounds of text drawn with its baseline origin at (0, 0).
// Min.Y is negative for glyphs above the baseline.
func (r *Renderer) Measure(face font.Face, text string) image.Rectangle {
	bounds, _ := font.BoundString(face, text)
	return image.Rect(
		bounds.Min.X.Floor(),
		bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(),
		bounds.Max.Y.Ceil(),
	)
}

// Draw renders text so the top-left corner of its ink box is at `at`
func (r *Renderer) Draw(dst draw.Image, face font.Face, text string, at image.Point, c color.Color) {
	box := r.Measure(face, text)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(at.X-box.Min.X, at.Y-box.Min.Y),
	}
	d.DrawString(text)
}
