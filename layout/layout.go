package layout

import (
	"math"

	"github.com/Krispeckt/flexlay/internal/core/geom"
)

// layoutNode is the single recursive entry point every phase feeds into.
// avail* is the space offered by the parent (NaN means unconstrained);
// offsetX/offsetY is this node's position within its parent's border box,
// already decided by the caller (Phase 8 or Phase 11 of the parent, or
// (0,0) at the root); parentWidth/parentHeight are the parent's resolved
// content box, used to resolve this node's own percentages. definiteW/
// definiteH are the box size the caller has already DECIDED for this node
// on an axis where its own style leaves that axis AUTO — Phase 8 handing a
// flex item the main size distribute.go computed, or Phase 8's stretch
// handing it a cross size, or Phase 11 handing an absolutely positioned
// child its resolved size. NaN means the caller has no such override and
// the axis should fall through to shrink-to-fit, which is why the root
// call always passes NaN,NaN: an auto-sized root shrink-wraps its content
// rather than force-filling the space CalculateLayout was given.
func layoutNode(ctx *scratchCtx, n *Node, availW, availH, offsetX, offsetY, parentWidth, parentHeight, definiteW, definiteH float64, direction Direction) {
	dir := resolveDirection(direction)

	if n.style.Display == DisplayNone {
		n.layout = Layout{Left: geom.RoundPixel(offsetX), Top: geom.RoundPixel(offsetY)}
		n.flex.fp = fingerprint{availW: availW, availH: availH, offsetX: offsetX, offsetY: offsetY, direction: direction, valid: true}
		return
	}

	// Phase 1 early exit: if nothing about this node's own inputs changed
	// since the last pass, reuse the previous box outright and only move
	// it to its (possibly new) offset.
	if !n.dirty && n.flex.fp.matches(availW, availH, direction) {
		n.layout.Left = geom.RoundPixel(offsetX)
		n.layout.Top = geom.RoundPixel(offsetY)
		n.flex.fp.offsetX = offsetX
		n.flex.fp.offsetY = offsetY
		return
	}

	sp := resolveSpacing(&n.style, parentWidth, dir)
	dims := resolveNodeDimensions(n, parentWidth, parentHeight, sp)

	if math.IsNaN(dims.width) && !math.IsNaN(definiteW) {
		dims.width = math.Max(clampDefinite(definiteW, dims.minWidth, dims.maxWidth), sp.paddingBorderH())
	}
	if math.IsNaN(dims.height) && !math.IsNaN(definiteH) {
		dims.height = math.Max(clampDefinite(definiteH, dims.minHeight, dims.maxHeight), sp.paddingBorderV())
	}

	var contentW, contentH float64
	if len(n.children) == 0 {
		contentW, contentH = sizeLeaf(n, dims, sp, availW, availH)
	} else {
		contentW, contentH = layoutFlexContainer(ctx, n, dims, sp, availW, availH, dir)
	}

	outerW, outerH := finalizeBox(contentW, contentH, dims, sp)

	n.layout = Layout{
		Left:   geom.RoundPixel(offsetX),
		Top:    geom.RoundPixel(offsetY),
		Width:  geom.RoundPixel(outerW),
		Height: geom.RoundPixel(outerH),
	}

	layoutAbsoluteChildren(ctx, n, sp, outerW, outerH, dir)

	n.flex.fp = fingerprint{availW: availW, availH: availH, offsetX: offsetX, offsetY: offsetY, direction: direction, valid: true}
}

// layoutFlexContainer runs Phases 5-9 for a node with in-flow children,
// recursing into Phase 8's per-child layoutNode calls along the way. It
// returns the resulting content box (pre-padding/border): either the
// node's own pinned size, or the shrink-wrapped size Phase 9 derives.
func layoutFlexContainer(ctx *scratchCtx, n *Node, dims nodeDimensions, sp boxSpacing, availW, availH float64, direction Direction) (contentW, contentH float64) {
	isRow := n.style.FlexDirection.IsRow()
	mainStart, mainEnd, crossStart, crossEnd := axisEdges(n.style.FlexDirection)

	ownContentW := dims.width
	if !math.IsNaN(ownContentW) {
		ownContentW -= sp.paddingBorderH()
	}
	ownContentH := dims.height
	if !math.IsNaN(ownContentH) {
		ownContentH -= sp.paddingBorderV()
	}

	innerAvailW := subtractSpacing(availW, sp.paddingBorderH())
	innerAvailH := subtractSpacing(availH, sp.paddingBorderV())

	var availMain, availCross float64
	if isRow {
		availMain, availCross = pick(ownContentW, innerAvailW), pick(ownContentH, innerAvailH)
	} else {
		availMain, availCross = pick(ownContentH, innerAvailH), pick(ownContentW, innerAvailW)
	}

	mainGap, crossGap := n.style.GapColumn, n.style.GapRow
	if !isRow {
		mainGap, crossGap = n.style.GapRow, n.style.GapColumn
	}

	items := collectFlexItems(n, isRow, direction, availMain, availCross, mainStart, mainEnd, crossStart, crossEnd)
	lines := layoutLines(items, n.style.FlexWrap, availMain, mainGap)

	resolveLineCrossSizes(lines, n.style.AlignItems)
	for i := range lines {
		computeBaselines(&lines[i], n.style.AlignItems, isRow)
	}
	resolveLineCrossSizes(lines, n.style.AlignItems) // re-fold any baseline ascents into the estimate

	// A single-line flex container's line cross size is the container's
	// own definite inner cross size, not merely the tallest item's
	// estimate -- the rule that lets ALIGN_STRETCH fill a pinned
	// container even when every child left its cross dimension AUTO.
	if n.style.FlexWrap == WrapNoWrap && len(lines) == 1 && !math.IsNaN(availCross) {
		lines[0].crossSize = availCross
	}

	wrapReverse := n.style.FlexWrap == WrapWrapReverse
	resolvedContentCross, crossStarts := distributeAlignContent(lines, availCross, crossGap, n.style.AlignContent, wrapReverse)

	for i := range lines {
		justifyLine(&lines[i], availMain, mainGap, n.style.JustifyContent)
	}

	shrinkMain, shrinkCross := shrinkWrapSize(lines, crossGap)
	_ = shrinkCross // superseded by resolvedContentCross, which folds in align-content stretch/free-space

	if isRow {
		contentW = pick(ownContentW, shrinkMain)
		contentH = pick(ownContentH, resolvedContentCross)
	} else {
		contentH = pick(ownContentH, shrinkMain)
		contentW = pick(ownContentW, resolvedContentCross)
	}

	positionItems(ctx, lines, crossStarts, sp.borderLeft+sp.paddingLeft, sp.borderTop+sp.paddingTop, isRow, n.style.AlignItems, direction, contentW, contentH)

	return contentW, contentH
}

func pick(preferred, fallback float64) float64 {
	if !math.IsNaN(preferred) {
		return preferred
	}
	return fallback
}

// mainAxisMeasure backs the public Node.Measure method: it lets a
// caller request a node's intrinsic (position-free) size without a
// CalculateLayout call, useful for host integrations that need to probe a
// subtree's natural dimensions before committing to a parent size.
func mainAxisMeasure(n *Node, availW, availH float64, direction Direction) (float64, float64) {
	return measureNode(n, availW, availH, direction)
}
