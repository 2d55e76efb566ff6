package layout

import (
	"math"

	"github.com/Krispeckt/flexlay/internal/core/geom"
)

// Value is a scalar paired with a unit: POINT carries the
// magnitude directly, PERCENT resolves against a reference size supplied at
// resolve time, AUTO and UNDEFINED mean "unspecified".
type Value struct {
	Magnitude float64
	Unit      Unit
}

// Undefined is the zero Value: UNDEFINED unit, magnitude irrelevant.
var Undefined = Value{Unit: UnitUndefined}

// Auto is the "auto-sized" Value.
var Auto = Value{Unit: UnitAuto}

// Point constructs a point Value.
func Point(v float64) Value { return Value{Magnitude: v, Unit: UnitPoint} }

// Percent constructs a percentage Value (v in [0,100] by convention, not enforced).
func Percent(v float64) Value { return Value{Magnitude: v, Unit: UnitPercent} }

// IsDefined reports whether the value carries a concrete point or percent magnitude.
func (v Value) IsDefined() bool {
	return v.Unit == UnitPoint || v.Unit == UnitPercent
}

// Equal implements the NaN-aware equality fingerprint and cache-key
// comparisons require.
func (v Value) Equal(o Value) bool {
	return v.Unit == o.Unit && geom.FloatsEqual(v.Magnitude, o.Magnitude)
}

// ResolveSpacing resolves a Value used as a margin/padding/gap component.
// AUTO and UNDEFINED resolve to 0 for spacing.
func (v Value) ResolveSpacing(reference float64) float64 {
	switch v.Unit {
	case UnitPoint:
		return v.Magnitude
	case UnitPercent:
		if math.IsNaN(reference) {
			return 0
		}
		return reference * (v.Magnitude / 100)
	default: // AUTO, UNDEFINED
		return 0
	}
}

// ResolveSize resolves a Value used as a main/cross dimension. AUTO and
// UNDEFINED resolve to NaN ("unconstrained"), not 0 — the distinction that
// makes shrink-to-fit possible.
func (v Value) ResolveSize(reference float64) float64 {
	switch v.Unit {
	case UnitPoint:
		return v.Magnitude
	case UnitPercent:
		if math.IsNaN(reference) {
			return math.NaN()
		}
		return reference * (v.Magnitude / 100)
	default: // AUTO, UNDEFINED
		return math.NaN()
	}
}

// IsAuto reports whether the unit is AUTO.
func (v Value) IsAuto() bool { return v.Unit == UnitAuto }
