package layout

import "math"

// collectFlexItems implements Phase 5: gather in-flow children (skipping
// DISPLAY_NONE and ABSOLUTE), resolve each one's base size via the
// flex-basis priority chain (explicit basis, then the main-axis
// width/height, then measured content size) and its cross-size estimate,
// and record the per-item margins and flex bounds the line breaker,
// distributor, and justifier need.
func collectFlexItems(n *Node, isRow bool, direction Direction, availMain, availCross float64, mainStart, mainEnd, crossStart, crossEnd Edge) []*Node {
	items := make([]*Node, 0, len(n.children))

	for _, c := range n.children {
		if c.style.Display == DisplayNone || c.style.PositionType == PositionTypeAbsolute {
			c.flex.relativeIndex = -1
			continue
		}

		refWidth := availCross
		if isRow {
			refWidth = availMain
		}
		csp := resolveSpacing(&c.style, refWidth, direction)

		c.flex.marginMainStart = csp.margin(mainStart)
		c.flex.marginMainEnd = csp.margin(mainEnd)
		c.flex.marginCrossStart = csp.margin(crossStart)
		c.flex.marginCrossEnd = csp.margin(crossEnd)
		c.flex.autoMarginMainStart = csp.marginAuto(mainStart)
		c.flex.autoMarginMainEnd = csp.marginAuto(mainEnd)

		base, crossEstimate := resolveBaseSize(c, isRow, direction, availMain, availCross)
		c.flex.baseSize = base
		c.flex.mainSize = base
		c.flex.crossSize = crossEstimate

		minMain, maxMain := axisMinMax(c, isRow, availMain)
		c.flex.minMain = minMain
		if math.IsNaN(maxMain) {
			c.flex.maxMain = math.Inf(1)
		} else {
			c.flex.maxMain = maxMain
		}
		if math.IsNaN(c.flex.minMain) {
			c.flex.minMain = 0
		}
		c.flex.flexFrozen = false

		items = append(items, c)
	}

	for i, c := range items {
		c.flex.relativeIndex = i
	}
	return items
}

// resolveBaseSize resolves an item's hypothetical main size (the flex-basis
// priority chain) and, as a side effect of the content measurement it may
// need to perform anyway, an estimate of its cross-axis size — used later
// for the line's cross-size estimate (Phase 7) and baseline alignment
// (Phase 6c).
func resolveBaseSize(c *Node, isRow bool, direction Direction, availMain, availCross float64) (base, crossEstimate float64) {
	explicitBasis := c.style.FlexBasis.IsDefined()
	if explicitBasis {
		base = math.Max(0, c.style.FlexBasis.ResolveSize(availMain))
	}

	axisSize := c.style.Height
	if isRow {
		axisSize = c.style.Width
	}
	haveAxisSize := false
	if !explicitBasis && axisSize.IsDefined() {
		if v := axisSize.ResolveSize(availMain); !math.IsNaN(v) {
			base = math.Max(0, v)
			haveAxisSize = true
		}
	}

	var w, h float64
	if isRow {
		w, h = measureNode(c, availMain, availCross, direction)
	} else {
		w, h = measureNode(c, availCross, availMain, direction)
	}

	if !explicitBasis && !haveAxisSize {
		if isRow {
			base = math.Max(0, w)
		} else {
			base = math.Max(0, h)
		}
	}

	if isRow {
		crossEstimate = h
	} else {
		crossEstimate = w
	}
	return base, crossEstimate
}

func axisMinMax(c *Node, isRow bool, availMain float64) (min, max float64) {
	if isRow {
		return c.style.MinWidth.ResolveSize(availMain), c.style.MaxWidth.ResolveSize(availMain)
	}
	return c.style.MinHeight.ResolveSize(availMain), c.style.MaxHeight.ResolveSize(availMain)
}
