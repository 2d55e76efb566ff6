package layout

import (
	"math"

	"github.com/Krispeckt/flexlay/internal/core/geom"
)

// EdgeValues is the six-slot edge array: physical slots 0-3 (left, top,
// right, bottom) and logical slots 4-5 (start, end). Used for margin,
// padding, and the absolute-position edges.
type EdgeValues [6]Value

// logicalSlotFor returns the logical (start/end) slot that can override a
// physical left/right edge under the given direction. Block-axis edges
// (top, bottom) never take from a logical slot.
func logicalSlotFor(physical Edge, direction Direction) (Edge, bool) {
	rtl := direction == DirectionRTL
	switch physical {
	case EdgeLeft:
		if rtl {
			return EdgeEnd, true
		}
		return EdgeStart, true
	case EdgeRight:
		if rtl {
			return EdgeStart, true
		}
		return EdgeEnd, true
	default:
		return 0, false
	}
}

// Resolve returns the resolved scalar for a physical edge, honoring a
// logical override when present: when both are set, the logical slot wins.
func (e EdgeValues) Resolve(physical Edge, direction Direction, available float64) float64 {
	if slot, ok := logicalSlotFor(physical, direction); ok {
		if e[slot].Unit != UnitUndefined {
			return e[slot].ResolveSpacing(available)
		}
	}
	return e[physical].ResolveSpacing(available)
}

// IsAuto reports whether the chosen slot (logical if present and set, else
// physical) for an edge carries the AUTO unit.
func (e EdgeValues) IsAuto(physical Edge, direction Direction) bool {
	if slot, ok := logicalSlotFor(physical, direction); ok {
		if e[slot].Unit != UnitUndefined {
			return e[slot].Unit == UnitAuto
		}
	}
	return e[physical].Unit == UnitAuto
}

// IsSet reports whether the chosen slot for an edge carries any explicit
// value (point or percent) rather than the UNDEFINED sentinel.
func (e EdgeValues) IsSet(physical Edge, direction Direction) bool {
	if slot, ok := logicalSlotFor(physical, direction); ok {
		if e[slot].Unit != UnitUndefined {
			return e[slot].IsDefined()
		}
	}
	return e[physical].IsDefined()
}

// BorderValues holds plain numeric border widths; always points. NaN marks
// an unset logical slot.
type BorderValues [6]float64

// Resolve returns the resolved border width for a physical edge.
func (b BorderValues) Resolve(physical Edge, direction Direction) float64 {
	if slot, ok := logicalSlotFor(physical, direction); ok {
		if !math.IsNaN(b[slot]) {
			return b[slot]
		}
	}
	v := b[physical]
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// SetEdgeGroup assigns a Value to one or more physical slots of an
// EdgeValues based on an Edge group (LEFT/TOP/RIGHT/BOTTOM/START/END,
// HORIZONTAL, VERTICAL, or ALL).
func SetEdgeGroup(edges *EdgeValues, group Edge, v Value) {
	switch group {
	case EdgeHorizontal:
		edges[EdgeLeft] = v
		edges[EdgeRight] = v
	case EdgeVertical:
		edges[EdgeTop] = v
		edges[EdgeBottom] = v
	case EdgeAll:
		for i := range edges {
			edges[i] = v
		}
	default:
		edges[group] = v
	}
}

// ApplyMinMax clamps size into [min, max]. A NaN (auto) size materializes
// to min if min resolves to a real value; max alone never materializes a
// size out of NaN.
func ApplyMinMax(size, min, max, available float64) float64 {
	hasMin := !math.IsNaN(min)
	hasMax := !math.IsNaN(max)

	if math.IsNaN(size) {
		if hasMin {
			return min
		}
		return size
	}

	out := size
	if hasMin {
		out = geom.MaxF64(out, min)
	}
	if hasMax {
		out = math.Min(out, max)
	}
	return out
}
