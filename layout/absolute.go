package layout

import "math"

// layoutAbsoluteChildren implements Phase 11: an ABSOLUTE child is taken
// out of flex flow entirely and positioned against its containing block's
// padding box (the border box minus the border — the padding edge is the
// containing block for absolutely positioned descendants, per CSS). A set
// left/top/right/bottom pins that edge; an axis with neither edge set
// falls back to the padding box's own origin (this engine runs no
// independent static-position pass).
func layoutAbsoluteChildren(ctx *scratchCtx, n *Node, sp boxSpacing, outerW, outerH float64, direction Direction) {
	containingW := outerW - sp.borderLeft - sp.borderRight
	containingH := outerH - sp.borderTop - sp.borderBottom

	for _, c := range n.children {
		if c.style.PositionType != PositionTypeAbsolute || c.style.Display == DisplayNone {
			continue
		}

		csp := resolveSpacing(&c.style, containingW, direction)
		dims := resolveNodeDimensions(c, containingW, containingH, csp)

		left := c.style.Position.Resolve(EdgeLeft, direction, containingW)
		right := c.style.Position.Resolve(EdgeRight, direction, containingW)
		top := c.style.Position.Resolve(EdgeTop, direction, containingH)
		bottom := c.style.Position.Resolve(EdgeBottom, direction, containingH)

		hasLeft := c.style.Position.IsSet(EdgeLeft, direction)
		hasRight := c.style.Position.IsSet(EdgeRight, direction)
		hasTop := c.style.Position.IsSet(EdgeTop, direction)
		hasBottom := c.style.Position.IsSet(EdgeBottom, direction)

		width := dims.width
		height := dims.height
		if math.IsNaN(width) || math.IsNaN(height) {
			mw, mh := measureNode(c, containingW, containingH, direction)
			if math.IsNaN(width) {
				width = mw
			}
			if math.IsNaN(height) {
				height = mh
			}
		}
		width = ApplyMinMax(width, dims.minWidth, dims.maxWidth, 0)
		height = ApplyMinMax(height, dims.minHeight, dims.maxHeight, 0)
		if width < 0 {
			width = 0
		}
		if height < 0 {
			height = 0
		}

		var x, y float64
		switch {
		case hasLeft:
			x = sp.borderLeft + left + csp.marginLeft
		case hasRight:
			x = sp.borderLeft + containingW - right - width - csp.marginRight
		default:
			x = sp.borderLeft
		}
		switch {
		case hasTop:
			y = sp.borderTop + top + csp.marginTop
		case hasBottom:
			y = sp.borderTop + containingH - bottom - height - csp.marginBottom
		default:
			y = sp.borderTop
		}

		layoutNode(ctx, c, width, height, x, y, containingW, containingH, width, height, direction)
	}
}
