package layout

import (
	"math"

	"github.com/Krispeckt/flexlay/internal/core/geom"
)

// positionItems implements Phase 8: for each item, resolve its final
// cross-axis size (stretching an auto cross dimension to the line's cross
// size when its effective alignment is STRETCH) and cross-axis offset
// within the line (flex-start/center/flex-end/stretch/baseline; baseline
// applies in row containers only, a BASELINE item in a column container
// sits at flex-start), then recurse into the child's own layoutNode with the computed offset. The
// same main/cross sizes are also passed through as the child's definite
// override, so an AUTO-styled item actually adopts the size flex
// distribution (main axis) or stretch (cross axis) decided for it, rather
// than falling through to shrink-to-fit.
//
// The main-axis size handed down is edge-rounded here, not left for the
// child's own layoutNode commit to round independently: two adjacent
// fractional items (say 33.33 each) would otherwise each round their own
// size to 33 and leave a 1px gap between them. Rounding each item's box
// as round(end) − round(start) instead guarantees the next item's rounded
// start always lands exactly on this one's rounded end (P4). The edges
// are the item's offsets within its parent's border box, not positions
// measured from the root, so rounding does not account for an ancestor's
// fractional offset. Cross-axis sizes are rounded independently; only
// same-axis adjacency needs this treatment.
func positionItems(ctx *scratchCtx, lines []lineInfo, crossStarts []float64, originX, originY float64, isRow bool, parentAlignItems Align, direction Direction, parentContentW, parentContentH float64) {
	for li := range lines {
		line := &lines[li]
		lineCrossStart := crossStarts[li]

		var lineBaseline float64
		for _, c := range line.items {
			if resolvedAlignSelf(c.style, parentAlignItems) == AlignBaseline {
				lineBaseline = math.Max(lineBaseline, c.flex.baselineOffset)
			}
		}

		for _, c := range line.items {
			align := resolvedAlignSelf(c.style, parentAlignItems)

			crossSize := c.flex.crossSize
			if align == AlignStretch && !styleHasCrossSize(c.style, isRow) {
				crossSize = line.crossSize - c.flex.marginCrossStart - c.flex.marginCrossEnd
				if crossSize < 0 {
					crossSize = 0
				}
			}
			c.flex.crossSize = crossSize

			var crossOffset float64
			switch align {
			case AlignCenter:
				crossOffset = (line.crossSize - crossSize - c.flex.marginCrossStart - c.flex.marginCrossEnd) / 2
			case AlignFlexEnd:
				crossOffset = line.crossSize - crossSize - c.flex.marginCrossStart - c.flex.marginCrossEnd
			case AlignBaseline:
				if isRow {
					crossOffset = lineBaseline - c.flex.baselineOffset
				}
			}
			if crossOffset < 0 {
				crossOffset = 0
			}

			var x, y, availW, availH float64
			if isRow {
				x = originX + c.flex.mainOffset
				y = originY + lineCrossStart + crossOffset + c.flex.marginCrossStart
				mainEdge := edgeRoundedSize(x, x+c.flex.mainSize)
				availW, availH = mainEdge, crossSize
			} else {
				y = originY + c.flex.mainOffset
				x = originX + lineCrossStart + crossOffset + c.flex.marginCrossStart
				mainEdge := edgeRoundedSize(y, y+c.flex.mainSize)
				availW, availH = crossSize, mainEdge
			}

			layoutNode(ctx, c, availW, availH, x, y, parentContentW, parentContentH, availW, availH, direction)
		}
	}
}

// edgeRoundedSize is round(end) − round(start): an item's rounded main-axis
// span, derived from its two absolute edges rather than rounding the
// fractional size on its own.
func edgeRoundedSize(start, end float64) float64 {
	return float64(geom.RoundPixel(end) - geom.RoundPixel(start))
}

func styleHasCrossSize(s Style, isRow bool) bool {
	if isRow {
		return s.Height.IsDefined()
	}
	return s.Width.IsDefined()
}
