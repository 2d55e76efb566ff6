package layout

import "math"

// sizeLeaf implements Phase 4: a node with no children gets its content box
// from its measure callback (if any), clamped by whatever the node's own
// dimensions already pinned. A leaf with neither a callback nor an
// explicit size collapses to zero content, contributing only its own
// box-model edges to its parent.
func sizeLeaf(n *Node, dims nodeDimensions, sp boxSpacing, availW, availH float64) (contentW, contentH float64) {
	if n.measureFunc == nil {
		contentW, contentH = 0, 0
	} else {
		innerAvailW := subtractSpacing(availW, sp.paddingBorderH()+sp.marginH())
		innerAvailH := subtractSpacing(availH, sp.paddingBorderV()+sp.marginV())

		wMode, wConstraint := measureConstraint(dims.width, innerAvailW)
		hMode, hConstraint := measureConstraint(dims.height, innerAvailH)

		if w, h, ok := n.measureCache.get(wConstraint, wMode, hConstraint, hMode); ok {
			contentW, contentH = w, h
		} else {
			contentW, contentH = n.measureFunc(wConstraint, wMode, hConstraint, hMode)
			if math.IsNaN(contentW) || contentW < 0 {
				contentW = 0
			}
			if math.IsNaN(contentH) || contentH < 0 {
				contentH = 0
			}
			n.measureCache.put(wConstraint, wMode, hConstraint, hMode, contentW, contentH)
		}
	}

	if !math.IsNaN(dims.width) {
		contentW = dims.width - sp.paddingBorderH()
	}
	if !math.IsNaN(dims.height) {
		contentH = dims.height - sp.paddingBorderV()
	}

	if contentW < 0 {
		contentW = 0
	}
	if contentH < 0 {
		contentH = 0
	}
	return contentW, contentH
}

// measureConstraint turns a resolved outer dimension (or NaN) plus the
// available space into the (mode, value) pair the measure callback
// contract expects: EXACTLY when the node's own size pins the axis,
// AT_MOST when only the parent's available space bounds it, UNDEFINED
// ("infinite") otherwise.
func measureConstraint(resolved, available float64) (MeasureMode, float64) {
	if !math.IsNaN(resolved) {
		return MeasureModeExactly, resolved
	}
	if !math.IsNaN(available) {
		return MeasureModeAtMost, available
	}
	return MeasureModeUndefined, math.Inf(1)
}

func subtractSpacing(avail, spacing float64) float64 {
	if math.IsNaN(avail) {
		return avail
	}
	v := avail - spacing
	if v < 0 {
		return 0
	}
	return v
}
