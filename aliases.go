package flexlay

import (
	"github.com/Krispeckt/flexlay/internal/render"
	"github.com/Krispeckt/flexlay/internal/textmeasure"
	"github.com/Krispeckt/flexlay/layout"
)

// Type aliases for public API.
//
// These aliases re-export types from internal modules to present a unified
// and concise public interface under the `flexlay` namespace.
type (
	Node         = layout.Node         // A box-tree element: simultaneously a flex container and a flex item of its parent.
	Style        = layout.Style        // The full set of flex properties a Node carries.
	Value        = layout.Value        // A magnitude paired with a unit (point, percent, auto, undefined).
	Layout       = layout.Layout       // A Node's computed output rectangle.
	MeasureFunc  = layout.MeasureFunc  // The host callback contract for leaf-node intrinsic sizing.
	BaselineFunc = layout.BaselineFunc // The host callback contract for baseline alignment.

	Display       = layout.Display
	PositionType  = layout.PositionType
	FlexDirection = layout.FlexDirection
	FlexWrap      = layout.FlexWrap
	Align         = layout.Align
	Justify       = layout.Justify
	Edge          = layout.Edge
	Gutter        = layout.Gutter
	Overflow      = layout.Overflow
	Direction     = layout.Direction
	MeasureMode   = layout.MeasureMode
	Unit          = layout.Unit

	Font     = render.Font         // TrueType font resource with pixel-accurate metrics.
	Measurer = textmeasure.Measurer // Adapts a Font + text into a MeasureFunc.
)

// Node construction.
var (
	// NewNode constructs a node with the engine's default style.
	NewNode = layout.NewNode
)

// Enumeration constants, re-exported under the flexlay namespace.
const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone

	PositionTypeStatic   = layout.PositionTypeStatic
	PositionTypeRelative = layout.PositionTypeRelative
	PositionTypeAbsolute = layout.PositionTypeAbsolute

	FlexDirectionColumn        = layout.FlexDirectionColumn
	FlexDirectionColumnReverse = layout.FlexDirectionColumnReverse
	FlexDirectionRow           = layout.FlexDirectionRow
	FlexDirectionRowReverse    = layout.FlexDirectionRowReverse

	WrapNoWrap      = layout.WrapNoWrap
	WrapWrap        = layout.WrapWrap
	WrapWrapReverse = layout.WrapWrapReverse

	AlignAuto         = layout.AlignAuto
	AlignFlexStart    = layout.AlignFlexStart
	AlignCenter       = layout.AlignCenter
	AlignFlexEnd      = layout.AlignFlexEnd
	AlignStretch      = layout.AlignStretch
	AlignBaseline     = layout.AlignBaseline
	AlignSpaceBetween = layout.AlignSpaceBetween
	AlignSpaceAround  = layout.AlignSpaceAround

	JustifyFlexStart    = layout.JustifyFlexStart
	JustifyCenter       = layout.JustifyCenter
	JustifyFlexEnd      = layout.JustifyFlexEnd
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly

	EdgeLeft       = layout.EdgeLeft
	EdgeTop        = layout.EdgeTop
	EdgeRight      = layout.EdgeRight
	EdgeBottom     = layout.EdgeBottom
	EdgeStart      = layout.EdgeStart
	EdgeEnd        = layout.EdgeEnd
	EdgeHorizontal = layout.EdgeHorizontal
	EdgeVertical   = layout.EdgeVertical
	EdgeAll        = layout.EdgeAll

	GutterColumn = layout.GutterColumn
	GutterRow    = layout.GutterRow
	GutterAll    = layout.GutterAll

	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll

	DirectionInherit = layout.DirectionInherit
	DirectionLTR     = layout.DirectionLTR
	DirectionRTL     = layout.DirectionRTL

	MeasureModeUndefined = layout.MeasureModeUndefined
	MeasureModeExactly   = layout.MeasureModeExactly
	MeasureModeAtMost    = layout.MeasureModeAtMost
)

// Value constructors.
var (
	Undefined = layout.Undefined
	Auto      = layout.Auto
	Point     = layout.Point
	Percent   = layout.Percent
)

// Font management utilities, re-exported from internal/render.
var (
	// LoadFont loads a font from a file path.
	LoadFont = render.LoadFont

	// LoadFontFromBytes loads a font directly from an in-memory byte slice.
	LoadFontFromBytes = render.LoadFontFromBytes

	// MustLoadFontFromBytes loads a font from memory and panics on failure.
	MustLoadFontFromBytes = render.MustLoadFontFromBytes

	// SetFontCacheCapacity limits the number of cached font faces to conserve memory.
	SetFontCacheCapacity = render.SetFontCacheCapacity

	// ClearFontCache clears all cached font face data.
	ClearFontCache = render.ClearFontCache
)

// Text measurement adapter, re-exported from internal/textmeasure.
var (
	// NewMeasurer builds a Measurer binding a Font to a piece of text,
	// ready to hand to Node.SetMeasureFunc via its MeasureFunc method.
	NewMeasurer = textmeasure.NewMeasurer
)
