package layout

import "math"

// Style setters, one per property, with point/percent/auto variants and
// per-edge variants where the property has edges. Every setter calls
// markDirty. Passing NaN to SetWidth/SetHeight is aliased to AUTO; passing
// NaN to SetPosition clears (UNDEFINED) the edge.

func (n *Node) SetDisplay(d Display) {
	n.style.Display = d
	n.markDirty()
}

func (n *Node) SetPositionType(p PositionType) {
	n.style.PositionType = p
	n.markDirty()
}

func (n *Node) SetPosition(edge Edge, points float64) {
	v := Point(points)
	if math.IsNaN(points) {
		v = Undefined
	}
	SetEdgeGroup(&n.style.Position, edge, v)
	n.markDirty()
}

func (n *Node) SetPositionPercent(edge Edge, percent float64) {
	SetEdgeGroup(&n.style.Position, edge, Percent(percent))
	n.markDirty()
}

func (n *Node) SetFlexDirection(d FlexDirection) {
	n.style.FlexDirection = d
	n.markDirty()
}

func (n *Node) SetFlexWrap(w FlexWrap) {
	n.style.FlexWrap = w
	n.markDirty()
}

func (n *Node) SetFlexGrow(v float64) {
	n.style.FlexGrow = v
	n.markDirty()
}

func (n *Node) SetFlexShrink(v float64) {
	n.style.FlexShrink = v
	n.markDirty()
}

func (n *Node) SetFlexBasis(points float64) {
	n.style.FlexBasis = Point(points)
	n.markDirty()
}

func (n *Node) SetFlexBasisPercent(percent float64) {
	n.style.FlexBasis = Percent(percent)
	n.markDirty()
}

func (n *Node) SetFlexBasisAuto() {
	n.style.FlexBasis = Auto
	n.markDirty()
}

func (n *Node) SetAlignItems(a Align) {
	n.style.AlignItems = a
	n.markDirty()
}

func (n *Node) SetAlignSelf(a Align) {
	n.style.AlignSelf = a
	n.markDirty()
}

func (n *Node) SetAlignContent(a Align) {
	n.style.AlignContent = a
	n.markDirty()
}

func (n *Node) SetJustifyContent(j Justify) {
	n.style.JustifyContent = j
	n.markDirty()
}

func widthOrAuto(points float64) Value {
	if math.IsNaN(points) {
		return Auto
	}
	return Point(points)
}

func (n *Node) SetWidth(points float64) {
	n.style.Width = widthOrAuto(points)
	n.markDirty()
}

func (n *Node) SetWidthPercent(percent float64) {
	n.style.Width = Percent(percent)
	n.markDirty()
}

func (n *Node) SetWidthAuto() {
	n.style.Width = Auto
	n.markDirty()
}

func (n *Node) SetHeight(points float64) {
	n.style.Height = widthOrAuto(points)
	n.markDirty()
}

func (n *Node) SetHeightPercent(percent float64) {
	n.style.Height = Percent(percent)
	n.markDirty()
}

func (n *Node) SetHeightAuto() {
	n.style.Height = Auto
	n.markDirty()
}

func (n *Node) SetMinWidth(points float64)         { n.style.MinWidth = Point(points); n.markDirty() }
func (n *Node) SetMinWidthPercent(percent float64) { n.style.MinWidth = Percent(percent); n.markDirty() }
func (n *Node) SetMinHeight(points float64)        { n.style.MinHeight = Point(points); n.markDirty() }
func (n *Node) SetMinHeightPercent(percent float64) {
	n.style.MinHeight = Percent(percent)
	n.markDirty()
}

func (n *Node) SetMaxWidth(points float64)         { n.style.MaxWidth = Point(points); n.markDirty() }
func (n *Node) SetMaxWidthPercent(percent float64) { n.style.MaxWidth = Percent(percent); n.markDirty() }
func (n *Node) SetMaxHeight(points float64)        { n.style.MaxHeight = Point(points); n.markDirty() }
func (n *Node) SetMaxHeightPercent(percent float64) {
	n.style.MaxHeight = Percent(percent)
	n.markDirty()
}

func (n *Node) SetAspectRatio(ratio float64) {
	n.style.AspectRatio = ratio
	n.markDirty()
}

func (n *Node) SetMargin(edge Edge, points float64) {
	SetEdgeGroup(&n.style.Margin, edge, Point(points))
	n.markDirty()
}

func (n *Node) SetMarginPercent(edge Edge, percent float64) {
	SetEdgeGroup(&n.style.Margin, edge, Percent(percent))
	n.markDirty()
}

func (n *Node) SetMarginAuto(edge Edge) {
	SetEdgeGroup(&n.style.Margin, edge, Auto)
	n.markDirty()
}

func (n *Node) SetPadding(edge Edge, points float64) {
	SetEdgeGroup(&n.style.Padding, edge, Point(points))
	n.markDirty()
}

func (n *Node) SetPaddingPercent(edge Edge, percent float64) {
	SetEdgeGroup(&n.style.Padding, edge, Percent(percent))
	n.markDirty()
}

func (n *Node) SetBorder(edge Edge, width float64) {
	switch edge {
	case EdgeHorizontal:
		n.style.Border[EdgeLeft] = width
		n.style.Border[EdgeRight] = width
	case EdgeVertical:
		n.style.Border[EdgeTop] = width
		n.style.Border[EdgeBottom] = width
	case EdgeAll:
		for i := range n.style.Border {
			n.style.Border[i] = width
		}
	default:
		n.style.Border[edge] = width
	}
	n.markDirty()
}

func (n *Node) SetGap(g Gutter, points float64) {
	switch g {
	case GutterColumn:
		n.style.GapColumn = points
	case GutterRow:
		n.style.GapRow = points
	case GutterAll:
		n.style.GapColumn = points
		n.style.GapRow = points
	}
	n.markDirty()
}

func (n *Node) SetOverflow(o Overflow) {
	n.style.Overflow = o
	n.markDirty()
}

func (n *Node) SetZIndex(z int) {
	n.style.ZIndex = z
	n.markDirty()
}
