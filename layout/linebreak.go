package layout

import "math"

// breakLines implements the line-breaking half of Phase 6: greedily places
// items on the current line while the running main-axis total (base sizes,
// margins, and gaps) fits availMain. NOWRAP always returns a single line.
// The first item placed on a line is never rejected for overflow, so an
// oversized lone item still gets a line to itself.
func breakLines(items []*Node, wrap FlexWrap, availMain, gap float64) [][]*Node {
	if len(items) == 0 {
		return nil
	}
	if wrap == WrapNoWrap {
		return [][]*Node{items}
	}

	var lines [][]*Node
	var current []*Node
	var used float64

	for _, c := range items {
		itemMain := c.flex.baseSize + outerMarginMain(c)
		g := 0.0
		if len(current) > 0 {
			g = gap
		}

		if len(current) > 0 && !math.IsNaN(availMain) && used+g+itemMain > availMain+1e-6 {
			lines = append(lines, current)
			current = nil
			used = 0
			g = 0
		}

		current = append(current, c)
		used += g + itemMain
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	if wrap == WrapWrapReverse {
		reverseLines(lines)
	}
	return lines
}

// outerMarginMain is an item's non-auto main-axis margin total; auto
// margins are excluded since they have no fixed width until Phase 6b.
func outerMarginMain(c *Node) float64 {
	m := c.flex.marginMainStart + c.flex.marginMainEnd
	if c.flex.autoMarginMainStart {
		m -= c.flex.marginMainStart
	}
	if c.flex.autoMarginMainEnd {
		m -= c.flex.marginMainEnd
	}
	return m
}

// reverseLines flips line order in place: WRAP_REVERSE stacks lines from
// the cross-end instead of the cross-start.
func reverseLines(lines [][]*Node) {
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
}
