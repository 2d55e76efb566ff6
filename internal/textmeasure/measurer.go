// Package textmeasure adapts internal/render's TrueType glyph metrics into
// the layout engine's measure callback contract. It is a reference
// integration, not part of the core engine: layout.Node never imports this
// package, only the measure callback's function signature.
package textmeasure

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/Krispeckt/flexlay/internal/render"
	"github.com/Krispeckt/flexlay/layout"
)

// Measurer adapts a render.Font into a layout.MeasureFunc for one fixed
// piece of text: given an available width, it word-wraps at Unicode word
// boundaries and reports the wrapped block's natural size. A single word
// wider than the available width is not broken; it takes a line of its
// own and that line is wider than the available width.
type Measurer struct {
	font *render.Font
	text string
}

// NewMeasurer builds a Measurer for text rendered in font. The engine has
// no notion of "this node's text changed" -- only style/tree dirtying --
// so a host must call SetText (and re-mark the node dirty) itself whenever
// the underlying content changes.
func NewMeasurer(font *render.Font, text string) *Measurer {
	return &Measurer{font: font, text: text}
}

// SetText replaces the measured text content.
func (m *Measurer) SetText(text string) { m.text = text }

// MeasureFunc returns the layout.MeasureFunc closure bound to this
// Measurer's current font and text, suitable for layout.Node.SetMeasureFunc.
func (m *Measurer) MeasureFunc() layout.MeasureFunc {
	return m.measure
}

func (m *Measurer) measure(availW float64, wMode layout.MeasureMode, availH float64, hMode layout.MeasureMode) (w, h float64) {
	if m.text == "" || m.font == nil {
		return 0, 0
	}

	lineHeight := m.font.LineHeightPx()

	if wMode == layout.MeasureModeUndefined {
		w, h = m.font.MeasureMultilineString(m.text, lineHeight)
		return clampHeight(w, h, availH, hMode)
	}

	lines, widest := wrapText(m.font, m.text, availW)
	w = widest
	h = float64(len(lines)) * lineHeight
	if wMode == layout.MeasureModeExactly {
		w = availW
	}
	return clampHeight(w, h, availH, hMode)
}

func clampHeight(w, h, availH float64, hMode layout.MeasureMode) (float64, float64) {
	switch hMode {
	case layout.MeasureModeExactly:
		h = availH
	case layout.MeasureModeAtMost:
		if !math.IsNaN(availH) && h > availH {
			h = availH
		}
	}
	return w, h
}

// wrapText breaks text into lines that each fit within maxWidth, returning
// every wrapped line and the width of the widest one.
func wrapText(font *render.Font, text string, maxWidth float64) (lines []string, widest float64) {
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		out = append(out, wrapParagraph(font, paragraph, maxWidth)...)
	}

	for _, l := range out {
		w, _ := font.MeasureString(l)
		if w > widest {
			widest = w
		}
	}
	return out, widest
}

// wrapParagraph greedily packs words onto each line via uniseg's Unicode
// word segmentation (grapheme-cluster aware, so it never splits a cluster
// mid-codepoint), starting a new line once the next word would overflow
// maxWidth.
func wrapParagraph(font *render.Font, paragraph string, maxWidth float64) []string {
	if paragraph == "" {
		return []string{""}
	}

	var lines []string
	var current strings.Builder
	remaining := paragraph
	state := -1

	for len(remaining) > 0 {
		word, rest, newState := uniseg.FirstWordInString(remaining, state)
		remaining, state = rest, newState

		candidate := current.String() + word
		w, _ := font.MeasureString(strings.TrimRight(candidate, " "))

		if current.Len() > 0 && w > maxWidth {
			lines = append(lines, strings.TrimRight(current.String(), " "))
			current.Reset()
			current.WriteString(strings.TrimLeft(word, " "))
			continue
		}
		current.WriteString(word)
	}

	if current.Len() > 0 || len(lines) == 0 {
		lines = append(lines, strings.TrimRight(current.String(), " "))
	}
	return lines
}
