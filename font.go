package splashgen

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontCandidate names one face to try: a font file plus the face index
// inside it (index is only meaningful for .ttc collections; standalone
// fonts use index 0).
type FontCandidate struct {
	Path  string
	Index int
}

// DefaultFontCandidates returns the ranked system faces for the label,
// bold weight first. HelveticaNeue.ttc keeps Bold at face index 1.
func DefaultFontCandidates() []FontCandidate {
	return []FontCandidate{
		{Path: "/System/Library/Fonts/HelveticaNeue.ttc", Index: 1},
		{Path: "/System/Library/Fonts/HelveticaNeue.ttc", Index: 0},
		{Path: "/System/Library/Fonts/Supplemental/Avenir Next.ttc", Index: 0},
		{Path: "/System/Library/Fonts/Helvetica.ttc", Index: 0},
	}
}

// LoadFace loads one face from a font file at the given point size
// (72 DPI). Both standalone fonts and .ttc collections are accepted;
// a standalone font parses as a single-face collection.
func LoadFace(path string, index int, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("font %s: face index %d out of range (%d faces)", path, index, coll.NumFonts())
	}
	f, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("font %s face %d: %w", path, index, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font %s face %d: %w", path, index, err)
	}
	return face, nil
}

// ResolveFace returns the first candidate that loads, or the built-in
// bitmap face if none do. It never fails, so a host without any of the
// preferred fonts still produces a splash.
func ResolveFace(candidates []FontCandidate, size float64) font.Face {
	for _, c := range candidates {
		face, err := LoadFace(c.Path, c.Index, size)
		if err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}
