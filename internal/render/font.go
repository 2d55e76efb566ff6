// Package render supplies the glyph metrics the text-measurement adapter
// (internal/textmeasure) needs to satisfy the layout engine's measure
// callback contract. It has no drawing surface of its own: the layout
// engine never renders, it only asks "how big".
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const defaultDPI = 72

// Font wraps a TrueType font with pixel-accurate metrics lookups.
type Font struct {
	tt            *truetype.Font // underlying TrueType font
	sizePt        float64        // logical font size in points
	dpi           float64        // dots per inch scaling
	letterPercent float64        // tracking as percent of font size
	capRatio      float64        // fallback cap height ratio
}

// LoadFont loads a .ttf file from disk and returns a Font object at the given point size.
// 1pt = 1/72 inch. Defaults to 72 DPI (1pt = 1px).
func LoadFont(path string, sizePt float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(data, sizePt)
}

// LoadFontFromBytes parses a TrueType font from memory.
func LoadFontFromBytes(data []byte, sizePt float64) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	f := &Font{
		tt:            ttf,
		dpi:           defaultDPI,
		letterPercent: 0.0,
		capRatio:      0.85,
	}
	return f.SetFontSizePt(sizePt), nil
}

// MustLoadFontFromBytes parses a TrueType font from bytes and panics on error.
// Intended for static initialization with Go's //go:embed.
func MustLoadFontFromBytes(data []byte, sizePt float64) *Font {
	f, err := LoadFontFromBytes(data, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// SetDPI sets the font's DPI scaling. Defaults to 72 if <= 0.
func (f *Font) SetDPI(dpi float64) *Font {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	f.dpi = dpi
	return f
}

// SetFontSizePt sets the font size in points (1pt = 1/72 inch).
func (f *Font) SetFontSizePt(pt float64) *Font {
	if pt <= 0 {
		pt = 0.01
	}
	f.sizePt = pt
	return f
}

// SetLetterSpacingPercent defines tracking (letter spacing) as a percentage of font size.
func (f *Font) SetLetterSpacingPercent(percent float64) *Font {
	f.letterPercent = percent
	return f
}

// HeightPx returns the font size converted to pixels for the current DPI.
func (f *Font) HeightPx() float64 { return f.sizePt * f.dpi / 72.0 }

// cacheKey builds a unique cache key for font face reuse.
func (f *Font) cacheKey() string {
	return fmt.Sprintf("%p_%.3f_%.1f", f.tt, f.sizePt, f.dpi)
}

// Face returns a truetype.Face configured with the current size and DPI.
// Faces are cached (glyphFaces) to avoid rebuilding hinting tables per call.
func (f *Font) Face() font.Face {
	key := f.cacheKey()
	if face, ok := glyphFaces.get(key); ok {
		return face
	}
	face := truetype.NewFace(f.tt, &truetype.Options{
		Size:    f.sizePt,
		DPI:     f.dpi,
		Hinting: font.HintingNone,
	})
	glyphFaces.put(key, face)
	return face
}

// TrackingPx returns the tracking offset (in pixels) applied between glyphs.
func (f *Font) TrackingPx() float64 {
	return (f.letterPercent / 100.0) * f.HeightPx()
}

// LineHeightPx returns the total line height (ascent + descent + leading) in pixels.
func (f *Font) LineHeightPx() float64 {
	m := f.Face().Metrics()
	return float64(m.Height >> 6)
}

// MeasureString measures the pixel width and height of a single-line string.
// Width includes glyph advances and tracking between characters; height is
// the font's line height.
func (f *Font) MeasureString(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	face := f.Face()
	adv := font.MeasureString(face, s)
	w = float64(adv >> 6)
	runes := []rune(s)
	if len(runes) > 1 {
		w += float64(len(runes)-1) * f.TrackingPx()
	}
	h = f.LineHeightPx()
	return
}

// MeasureMultilineString measures a multi-line text block in pixels.
// Width = widest line. Height = number of lines x lineHeightPx.
func (f *Font) MeasureMultilineString(s string, lineHeightPx float64) (width, height float64) {
	lines := strings.Split(s, "\n")
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return 0, 0
	}
	if lineHeightPx <= 0 {
		lineHeightPx = f.LineHeightPx()
	}
	for _, line := range lines {
		w, _ := f.MeasureString(line)
		if w > width {
			width = w
		}
	}
	height = float64(len(lines)) * lineHeightPx
	return
}
