package layout

import "math"

// measureNode implements Phase 4.2: the position-free intrinsic-size pass
// used to size a flex item whose flex-basis is content-derived before the
// main layout pass commits to a final box, and to size absolutely
// positioned children whose width or height was left AUTO. It reuses
// Phases 2-4's spacing/dimension/leaf-sizing logic but never recurses into
// line-breaking or flex distribution: a container's intrinsic size here is
// the sum (main axis) / max (cross axis) of its children's own intrinsic
// sizes, i.e. min/max-content sizing, not a full flex solve.
func measureNode(n *Node, availW, availH float64, direction Direction) (w, h float64) {
	if n.style.Display == DisplayNone {
		return 0, 0
	}

	if cw, ch, ok := n.sizingCache.get(availW, availH); ok {
		return cw, ch
	}

	dir := resolveDirection(direction)
	sp := resolveSpacing(&n.style, availW, dir)
	dims := resolveNodeDimensions(n, availW, availH, sp)

	var contentW, contentH float64
	if len(n.children) == 0 {
		contentW, contentH = sizeLeaf(n, dims, sp, availW, availH)
	} else {
		contentW, contentH = measureContainerContent(n, availW, availH, dir)
	}

	outerW, outerH := finalizeBox(contentW, contentH, dims, sp)

	n.sizingCache.put(availW, availH, outerW, outerH)
	return outerW, outerH
}

// measureContainerContent sums (main axis) / maxes (cross axis) the
// intrinsic sizes of every in-flow child, approximating a shrink-to-fit
// container's natural content box without running the full distributor.
func measureContainerContent(n *Node, availW, availH float64, direction Direction) (contentW, contentH float64) {
	isRow := n.style.FlexDirection.IsRow()
	var mainSum, crossMax float64
	first := true

	for _, c := range n.children {
		if c.style.PositionType == PositionTypeAbsolute || c.style.Display == DisplayNone {
			continue
		}

		cw, ch := measureNode(c, availW, availH, direction)

		var mainSize, crossSize float64
		if isRow {
			mainSize, crossSize = cw, ch
		} else {
			mainSize, crossSize = ch, cw
		}

		gap := 0.0
		if !first {
			if isRow {
				gap = n.style.GapColumn
			} else {
				gap = n.style.GapRow
			}
		}
		first = false

		mainSum += mainSize + gap
		crossMax = math.Max(crossMax, crossSize)
	}

	if isRow {
		return mainSum, crossMax
	}
	return crossMax, mainSum
}
