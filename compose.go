package splashgen

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type Options struct {
	// Canvas size in pixels. The Checkpoint launch screen is a portrait
	// 400pt x 533pt asset at @3x, so 1200x1600.
	Width  int
	Height int
	// Side of the square the icon is resized to before pasting.
	IconSize int
	// Distance from the canvas top edge to the icon top edge.
	IconTop int
	// Vertical gap between the icon bottom edge and the label ink top.
	Gap int
	// Label point size at 72 DPI.
	TextSize float64
	// Text drawn beneath the icon. Empty disables the label.
	Label string
	// Canvas fill.
	Background color.NRGBA
	// Label fill.
	TextColor color.NRGBA
}

// DefaultOptions returns the Checkpoint launch-screen layout:
// a 520px icon 200px from the top of a black 1200x1600 canvas,
// with "Checkpoint" in white 44px below it.
func DefaultOptions() Options {
	return Options{
		Width:      1200,
		Height:     1600,
		IconSize:   520,
		IconTop:    200,
		Gap:        44,
		TextSize:   72,
		Label:      "Checkpoint",
		Background: color.NRGBA{A: 255},
		TextColor:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

type Composer struct {
	// Source icon at any size; resized with Lanczos before pasting.
	Icon image.Image
	// Face used for the label. Must not be nil when Opt.Label is set;
	// ResolveFace always returns a usable face.
	Face font.Face
	Opt  Options
}

func NewComposer(icon image.Image, face font.Face, opt Options) *Composer {
	return &Composer{
		Icon: icon,
		Face: face,
		Opt:  opt,
	}
}

// Compose renders the launch screen: solid background, icon pasted
// horizontally centered using its own alpha as the mask, label drawn
// beneath. The result is a new image; inputs are not mutated.
func (c *Composer) Compose() *image.NRGBA {
	icon := imaging.Resize(c.Icon, c.Opt.IconSize, c.Opt.IconSize, imaging.Lanczos)

	canvas := imaging.New(c.Opt.Width, c.Opt.Height, c.Opt.Background)
	xCenter := (c.Opt.Width - c.Opt.IconSize) / 2
	canvas = imaging.Overlay(canvas, icon, image.Pt(xCenter, c.Opt.IconTop), 1.0)

	c.drawLabel(canvas)
	return canvas
}

// drawLabel centers the label from the measured ink bounds of the exact
// string, so centering holds for any face the resolver picked. The dot is
// offset by -Min so the ink box lands at (x, top) rather than the baseline.
func (c *Composer) drawLabel(dst *image.NRGBA) {
	if c.Opt.Label == "" {
		return
	}
	bounds, _ := font.BoundString(c.Face, c.Opt.Label)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textTop := c.Opt.IconTop + c.Opt.IconSize + c.Opt.Gap

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.Opt.TextColor),
		Face: c.Face,
		Dot: fixed.Point26_6{
			X: fixed.I((c.Opt.Width-textWidth)/2) - bounds.Min.X,
			Y: fixed.I(textTop) - bounds.Min.Y,
		},
	}
	d.DrawString(c.Opt.Label)
}
