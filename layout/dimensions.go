package layout

import "math"

// nodeDimensions is Phase 3's resolved output: width/height are NaN when
// the node's final size is deferred to content (AUTO); min/max are always
// resolved to a finite point or left NaN ("no bound").
type nodeDimensions struct {
	width, height        float64
	minWidth, maxWidth   float64
	minHeight, maxHeight float64
}

// resolveNodeDimensions implements Phase 3: resolve width/height/min/max
// against the parent's content box, derive the missing dimension from
// aspect-ratio when exactly one of width/height is known, clamp a
// definite axis by its own min/max immediately (so a container's
// children are collected and distributed against an already-bounded
// content box, not merely clamped after the fact in Phase 10), then
// floor the result at the node's own padding+border — a box can never
// be smaller than its own box-model edges.
func resolveNodeDimensions(n *Node, parentWidth, parentHeight float64, sp boxSpacing) nodeDimensions {
	style := &n.style

	w := style.Width.ResolveSize(parentWidth)
	h := style.Height.ResolveSize(parentHeight)

	minW := style.MinWidth.ResolveSize(parentWidth)
	maxW := style.MaxWidth.ResolveSize(parentWidth)
	minH := style.MinHeight.ResolveSize(parentHeight)
	maxH := style.MaxHeight.ResolveSize(parentHeight)

	if !math.IsNaN(style.AspectRatio) && style.AspectRatio > 0 {
		switch {
		case math.IsNaN(w) && !math.IsNaN(h):
			w = h * style.AspectRatio
		case math.IsNaN(h) && !math.IsNaN(w):
			h = w / style.AspectRatio
		}
	}

	w = clampDefinite(w, minW, maxW)
	h = clampDefinite(h, minH, maxH)

	floorW := sp.paddingBorderH()
	floorH := sp.paddingBorderV()

	if !math.IsNaN(w) {
		w = math.Max(w, floorW)
	}
	if !math.IsNaN(h) {
		h = math.Max(h, floorH)
	}

	return nodeDimensions{
		width: w, height: h,
		minWidth: minW, maxWidth: maxW,
		minHeight: minH, maxHeight: maxH,
	}
}

// clampDefinite clamps a resolved (non-AUTO) size by min/max, leaving an
// AUTO (NaN) size untouched — unlike ApplyMinMax, it never materializes a
// size out of NaN, since that's Phase 10's job once content has had its
// chance to decide the size.
func clampDefinite(v, min, max float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	if !math.IsNaN(min) {
		v = math.Max(v, min)
	}
	if !math.IsNaN(max) {
		v = math.Min(v, max)
	}
	return v
}
