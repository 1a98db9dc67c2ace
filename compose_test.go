package splashgen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// solidIcon builds a square icon filled with one opaque color.
func solidIcon(t *testing.T, size int, c color.NRGBA) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// halfClearIcon builds an icon whose left half is fully transparent.
func halfClearIcon(t *testing.T, size int, c color.NRGBA) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := size / 2; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func nrgbaNear(a, b color.NRGBA, tol int) bool {
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			d = -d
		}
		return d
	}
	return diff(a.R, b.R) <= tol && diff(a.G, b.G) <= tol && diff(a.B, b.B) <= tol && diff(a.A, b.A) <= tol
}

func TestComposeDimensions(t *testing.T) {
	opt := DefaultOptions()
	icon := solidIcon(t, 100, color.NRGBA{R: 255, A: 255})
	out := NewComposer(icon, basicfont.Face7x13, opt).Compose()

	if got := out.Bounds().Dx(); got != opt.Width {
		t.Errorf("width = %d, want %d", got, opt.Width)
	}
	if got := out.Bounds().Dy(); got != opt.Height {
		t.Errorf("height = %d, want %d", got, opt.Height)
	}

	black := color.NRGBA{A: 255}
	for _, p := range []image.Point{{0, 0}, {opt.Width - 1, 0}, {0, opt.Height - 1}, {opt.Width - 1, opt.Height - 1}} {
		if got := out.NRGBAAt(p.X, p.Y); got != black {
			t.Errorf("corner %v = %v, want opaque black", p, got)
		}
	}
}

func TestComposeIconPlacement(t *testing.T) {
	opt := DefaultOptions()
	iconColor := color.NRGBA{R: 10, G: 200, B: 30, A: 255}
	icon := solidIcon(t, 100, iconColor)
	out := NewComposer(icon, basicfont.Face7x13, opt).Compose()

	x0 := (opt.Width - opt.IconSize) / 2
	y0 := opt.IconTop
	if x0 != 340 || y0 != 200 {
		t.Fatalf("icon origin = (%d, %d), want (340, 200)", x0, y0)
	}

	inside := []image.Point{
		{x0, y0},
		{x0 + opt.IconSize - 1, y0 + opt.IconSize - 1},
		{x0 + opt.IconSize/2, y0 + opt.IconSize/2},
	}
	for _, p := range inside {
		if got := out.NRGBAAt(p.X, p.Y); !nrgbaNear(got, iconColor, 1) {
			t.Errorf("pixel %v = %v, want icon color %v", p, got, iconColor)
		}
	}

	black := color.NRGBA{A: 255}
	outside := []image.Point{
		{x0 - 1, y0},
		{x0 + opt.IconSize, y0},
		{x0, y0 - 1},
		{x0, y0 + opt.IconSize},
	}
	for _, p := range outside {
		if got := out.NRGBAAt(p.X, p.Y); got != black {
			t.Errorf("pixel %v = %v, want background black", p, got)
		}
	}
}

func TestComposeAlphaMask(t *testing.T) {
	opt := DefaultOptions()
	iconColor := color.NRGBA{R: 240, G: 120, B: 0, A: 255}
	icon := halfClearIcon(t, opt.IconSize, iconColor)
	out := NewComposer(icon, basicfont.Face7x13, opt).Compose()

	x0 := (opt.Width - opt.IconSize) / 2
	y := opt.IconTop + opt.IconSize/2

	// Well inside the transparent half: background shows through.
	if got := out.NRGBAAt(x0+opt.IconSize/4, y); got != (color.NRGBA{A: 255}) {
		t.Errorf("transparent region = %v, want black", got)
	}
	// Well inside the opaque half.
	if got := out.NRGBAAt(x0+3*opt.IconSize/4, y); !nrgbaNear(got, iconColor, 1) {
		t.Errorf("opaque region = %v, want %v", got, iconColor)
	}
}

func TestComposeLabelPlacement(t *testing.T) {
	opt := DefaultOptions()
	face := basicfont.Face7x13
	icon := solidIcon(t, 100, color.NRGBA{R: 200, A: 255})
	out := NewComposer(icon, face, opt).Compose()

	bounds, _ := font.BoundString(face, opt.Label)
	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	th := (bounds.Max.Y - bounds.Min.Y).Ceil()
	boxX := (opt.Width - tw) / 2
	boxY := opt.IconTop + opt.IconSize + opt.Gap

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	found := false
	for y := opt.IconTop + opt.IconSize; y < opt.Height; y++ {
		for x := 0; x < opt.Width; x++ {
			if out.NRGBAAt(x, y) != white {
				continue
			}
			found = true
			if x < boxX || x >= boxX+tw {
				t.Fatalf("label pixel (%d, %d) outside centered box x[%d, %d)", x, y, boxX, boxX+tw)
			}
			if y < boxY || y >= boxY+th {
				t.Fatalf("label pixel (%d, %d) outside box y[%d, %d)", x, y, boxY, boxY+th)
			}
		}
	}
	if !found {
		t.Fatal("no label pixels drawn")
	}
}

func TestComposeEmptyLabel(t *testing.T) {
	opt := DefaultOptions()
	opt.Label = ""
	icon := solidIcon(t, 64, color.NRGBA{B: 255, A: 255})
	out := NewComposer(icon, nil, opt).Compose()

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for y := opt.IconTop + opt.IconSize; y < opt.Height; y++ {
		for x := 0; x < opt.Width; x++ {
			if out.NRGBAAt(x, y) == white {
				t.Fatalf("unexpected label pixel at (%d, %d)", x, y)
			}
		}
	}
}

func TestComposeDeterministic(t *testing.T) {
	opt := DefaultOptions()
	icon := halfClearIcon(t, 300, color.NRGBA{R: 40, G: 90, B: 250, A: 255})

	encode := func() []byte {
		t.Helper()
		out := NewComposer(icon, basicfont.Face7x13, opt).Compose()
		var buf bytes.Buffer
		if err := png.Encode(&buf, out); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}

	if !bytes.Equal(encode(), encode()) {
		t.Error("two runs produced different PNG bytes")
	}
}
