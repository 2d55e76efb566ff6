package layout

// boxSpacing is the resolved margin/padding/border box for one node
// (Phase 2). Percentages always resolve against the available WIDTH, even
// for top/bottom margins and padding — CSS's actual rule for percentage
// block-direction spacing, and a common mistake when porting from engines
// that resolve top/bottom against height instead.
type boxSpacing struct {
	marginLeft, marginTop, marginRight, marginBottom                 float64
	marginAutoLeft, marginAutoTop, marginAutoRight, marginAutoBottom bool
	paddingLeft, paddingTop, paddingRight, paddingBottom              float64
	borderLeft, borderTop, borderRight, borderBottom                  float64
}

// resolveSpacing implements Phase 2: resolve every margin/padding/border
// edge of style against parentWidth (the sole percentage reference) and
// direction (logical start/end overrides).
func resolveSpacing(style *Style, parentWidth float64, direction Direction) boxSpacing {
	ref := parentWidth
	var b boxSpacing

	b.marginLeft = style.Margin.Resolve(EdgeLeft, direction, ref)
	b.marginTop = style.Margin.Resolve(EdgeTop, direction, ref)
	b.marginRight = style.Margin.Resolve(EdgeRight, direction, ref)
	b.marginBottom = style.Margin.Resolve(EdgeBottom, direction, ref)
	b.marginAutoLeft = style.Margin.IsAuto(EdgeLeft, direction)
	b.marginAutoTop = style.Margin.IsAuto(EdgeTop, direction)
	b.marginAutoRight = style.Margin.IsAuto(EdgeRight, direction)
	b.marginAutoBottom = style.Margin.IsAuto(EdgeBottom, direction)

	b.paddingLeft = style.Padding.Resolve(EdgeLeft, direction, ref)
	b.paddingTop = style.Padding.Resolve(EdgeTop, direction, ref)
	b.paddingRight = style.Padding.Resolve(EdgeRight, direction, ref)
	b.paddingBottom = style.Padding.Resolve(EdgeBottom, direction, ref)

	b.borderLeft = style.Border.Resolve(EdgeLeft, direction)
	b.borderTop = style.Border.Resolve(EdgeTop, direction)
	b.borderRight = style.Border.Resolve(EdgeRight, direction)
	b.borderBottom = style.Border.Resolve(EdgeBottom, direction)

	return b
}

func (b boxSpacing) margin(e Edge) float64 {
	switch e {
	case EdgeLeft:
		return b.marginLeft
	case EdgeTop:
		return b.marginTop
	case EdgeRight:
		return b.marginRight
	case EdgeBottom:
		return b.marginBottom
	}
	return 0
}

func (b boxSpacing) marginAuto(e Edge) bool {
	switch e {
	case EdgeLeft:
		return b.marginAutoLeft
	case EdgeTop:
		return b.marginAutoTop
	case EdgeRight:
		return b.marginAutoRight
	case EdgeBottom:
		return b.marginAutoBottom
	}
	return false
}

// marginH/marginV are the total non-auto margin consumed on an axis; auto
// margins contribute 0 here and are resolved once free space is known
// (Phase 6b, Phase 11).
func (b boxSpacing) marginH() float64 {
	l, r := b.marginLeft, b.marginRight
	if b.marginAutoLeft {
		l = 0
	}
	if b.marginAutoRight {
		r = 0
	}
	return l + r
}

func (b boxSpacing) marginV() float64 {
	t, bm := b.marginTop, b.marginBottom
	if b.marginAutoTop {
		t = 0
	}
	if b.marginAutoBottom {
		bm = 0
	}
	return t + bm
}

func (b boxSpacing) paddingBorderH() float64 {
	return b.paddingLeft + b.paddingRight + b.borderLeft + b.borderRight
}

func (b boxSpacing) paddingBorderV() float64 {
	return b.paddingTop + b.paddingBottom + b.borderTop + b.borderBottom
}
