package layout

// axisEdges maps a flex-direction to the four physical edges that make up
// the main-start, main-end, cross-start, and cross-end of that direction's
// main axis.
func axisEdges(d FlexDirection) (mainStart, mainEnd, crossStart, crossEnd Edge) {
	switch d {
	case FlexDirectionRow:
		return EdgeLeft, EdgeRight, EdgeTop, EdgeBottom
	case FlexDirectionRowReverse:
		return EdgeRight, EdgeLeft, EdgeTop, EdgeBottom
	case FlexDirectionColumnReverse:
		return EdgeBottom, EdgeTop, EdgeLeft, EdgeRight
	default: // FlexDirectionColumn
		return EdgeTop, EdgeBottom, EdgeLeft, EdgeRight
	}
}

// resolveDirection turns INHERIT into LTR. A root styled INHERIT behaves as
// LTR; descendants are expected to be laid out with their parent's already-
// resolved direction rather than INHERIT itself.
func resolveDirection(d Direction) Direction {
	if d == DirectionInherit {
		return DirectionLTR
	}
	return d
}
