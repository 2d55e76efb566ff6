package layout

import "math"

// finalizeBox implements Phase 10: combine the content box just computed
// (leaf measurement, or the flex line solve) with the node's own pinned
// width/height, if any, and its min/max clamp, then apply the
// finite/non-negative safety net every layout_node call must satisfy
// before it returns.
func finalizeBox(contentW, contentH float64, dims nodeDimensions, sp boxSpacing) (outerW, outerH float64) {
	outerW = contentW + sp.paddingBorderH()
	outerH = contentH + sp.paddingBorderV()

	if !math.IsNaN(dims.width) {
		outerW = dims.width
	}
	if !math.IsNaN(dims.height) {
		outerH = dims.height
	}

	outerW = ApplyMinMax(outerW, dims.minWidth, dims.maxWidth, 0)
	outerH = ApplyMinMax(outerH, dims.minHeight, dims.maxHeight, 0)

	if !postConditionOK(outerW, outerH) {
		outerW, outerH = 0, 0
	}
	return outerW, outerH
}
