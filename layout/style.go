package layout

import "math"

// Style is the fixed record of CSS-flexbox-like properties a node carries.
// A node is simultaneously a potential flex container (the
// container-facing fields) and a potential flex item of its parent (the
// item-facing fields) — exactly like every node in Yoga-style engines.
type Style struct {
	Display      Display
	PositionType PositionType
	Position     EdgeValues // left/top/right/bottom/start/end, for PositionTypeAbsolute

	FlexDirection FlexDirection
	FlexWrap      FlexWrap

	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Value

	AlignItems     Align
	AlignSelf      Align // AlignAuto means "inherit from parent's AlignItems"
	AlignContent   Align
	JustifyContent Justify

	Width, Height       Value
	MinWidth, MinHeight Value
	MaxWidth, MaxHeight Value

	AspectRatio float64 // NaN = unset

	Margin  EdgeValues
	Padding EdgeValues
	Border  BorderValues

	GapColumn float64
	GapRow    float64

	Overflow Overflow

	ZIndex int
}

// DefaultStyle returns a Style with the engine's documented defaults:
// COLUMN direction, zero flex-shrink, STRETCH align-items, AUTO
// basis/width/height, RELATIVE position-type.
func DefaultStyle() Style {
	return Style{
		Display:        DisplayFlex,
		PositionType:   PositionTypeRelative,
		FlexDirection:  FlexDirectionColumn,
		FlexWrap:       WrapNoWrap,
		FlexGrow:       0,
		FlexShrink:     0,
		FlexBasis:      Auto,
		AlignItems:     AlignStretch,
		AlignSelf:      AlignAuto,
		AlignContent:   AlignFlexStart,
		JustifyContent: JustifyFlexStart,
		Width:          Auto,
		Height:         Auto,
		MinWidth:       Undefined,
		MinHeight:      Undefined,
		MaxWidth:       Undefined,
		MaxHeight:      Undefined,
		AspectRatio:    math.NaN(),
		Margin:         EdgeValues{Undefined, Undefined, Undefined, Undefined, Undefined, Undefined},
		Padding:        EdgeValues{Undefined, Undefined, Undefined, Undefined, Undefined, Undefined},
		Border:         BorderValues{math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()},
		GapColumn:      0,
		GapRow:         0,
		Overflow:       OverflowVisible,
	}
}

// resolvedAlignSelf returns this item's effective cross-axis alignment:
// its own AlignSelf if not AUTO, else the parent's AlignItems.
func resolvedAlignSelf(item Style, parentAlignItems Align) Align {
	if item.AlignSelf != AlignAuto {
		return item.AlignSelf
	}
	return parentAlignItems
}
