package img2ascii

import (
	"cmp"
	"fmt"
	"image"
	"os"
	"slices"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font names resolved to embedded fonts instead of files.
const (
	FontGoRegular = "goregular"
	FontGoMono    = "gomono"
)

var embeddedFonts = map[string][]byte{
	FontGoRegular: goregular.TTF,
	FontGoMono:    gomono.TTF,
}

// LoadFace loads a scalable font and returns a face of the given point
// size at 72 DPI. path is either a font file or one of the embedded font
// names. Failures are reported as *ResourceError.
func LoadFace(path string, size float64) (font.Face, error) {
	data, ok := embeddedFonts[path]
	if !ok {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, &ResourceError{Kind: ResourceFont, Path: path, Err: err}
		}
	}

	face, err := ParseFace(data, size)
	if err != nil {
		return nil, &ResourceError{Kind: ResourceFont, Path: path, Err: err}
	}
	return face, nil
}

// ParseFace parses TrueType font data, falling back to the OpenType
// parser for fonts freetype cannot read (CFF outlines, collections).
func ParseFace(data []byte, size float64) (font.Face, error) {
	if ttf, err := freetype.ParseFont(data); err == nil {
		return truetype.NewFace(ttf, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}), nil
	}

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	return face, nil
}

// GlyphInk returns the summed coverage (0-255 per pixel) of r rendered
// by face. Characters the face cannot draw have no ink.
func GlyphInk(face font.Face, r rune) int {
	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok || mask == nil || dr.Empty() {
		return 0
	}

	ink := 0
	if alpha, isAlpha := mask.(*image.Alpha); isAlpha {
		for y := 0; y < dr.Dy(); y++ {
			for x := 0; x < dr.Dx(); x++ {
				ink += int(alpha.AlphaAt(maskp.X+x, maskp.Y+y).A)
			}
		}
		return ink
	}
	for y := 0; y < dr.Dy(); y++ {
		for x := 0; x < dr.Dx(); x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			ink += int(a >> 8)
		}
	}
	return ink
}

// RankedGlyph is a character and the ink it takes to draw it.
type RankedGlyph struct {
	Rune rune
	Ink  int
}

// RankGlyphsDetailed measures every rune of charset and returns them
// from least to most ink. Glyphs with equal ink keep their order in
// charset.
func RankGlyphsDetailed(face font.Face, charset []rune) []RankedGlyph {
	measured := make(map[rune]int, len(charset))
	ranked := make([]RankedGlyph, 0, len(charset))
	for _, r := range charset {
		ink, ok := measured[r]
		if !ok {
			ink = GlyphInk(face, r)
			measured[r] = ink
		}
		ranked = append(ranked, RankedGlyph{Rune: r, Ink: ink})
	}

	slices.SortStableFunc(ranked, func(a, b RankedGlyph) int {
		return cmp.Compare(a.Ink, b.Ink)
	})
	return ranked
}

// RankGlyphs orders charset by ink density, sparsest first, or densest
// first when invert is set.
func RankGlyphs(face font.Face, charset []rune, invert bool) GlyphSequence {
	ranked := RankGlyphsDetailed(face, charset)
	glyphs := make(GlyphSequence, len(ranked))
	for i, g := range ranked {
		glyphs[i] = g.Rune
	}
	if invert {
		slices.Reverse(glyphs)
	}
	return glyphs
}
