package layout

import "math"

// fingerprint is the tuple of inputs to layoutNode whose match lets a
// subtree be skipped entirely. offsetX/offsetY are updated every pass (so
// the next skip can compute a position delta) but are not part of what
// makes two fingerprints "the same reusable call".
type fingerprint struct {
	availW, availH   float64
	offsetX, offsetY float64
	direction        Direction
	valid            bool
}

func (f fingerprint) matches(availW, availH float64, direction Direction) bool {
	return f.valid &&
		floatsEq(f.availW, availW) &&
		floatsEq(f.availH, availH) &&
		f.direction == direction
}

// flexInfo is the mutable per-node scratch record the flex resolution
// passes read and write across a single layout call. It lives inline on
// Node, not behind a separately-allocated pointer, since every node
// carries exactly one. Nothing resets it between calls; each pass
// overwrites the fields it uses (Phase 5 onward) before reading them.
type flexInfo struct {
	// Main-axis sizing, resolved during Phase 5/6a and consumed through
	// Phase 8.
	baseSize   float64
	mainSize   float64
	minMain    float64
	maxMain    float64 // +Inf sentinel for "unset"
	flexFrozen bool

	// Margins resolved to points (Phase 2/5); always finite.
	marginMainStart, marginMainEnd         float64
	marginCrossStart, marginCrossEnd       float64
	autoMarginMainStart, autoMarginMainEnd bool

	lineIndex      int
	relativeIndex  int // -1 sentinel: skipped by flex (NONE or ABSOLUTE)
	baselineOffset float64

	// mainOffset is this item's main-axis offset from the line's
	// main-start, already including its own leading margin (Phase 6b).
	// crossSize is the item's resolved cross-axis size: first an
	// intrinsic estimate (Phase 5, used for the line's cross-size
	// estimate and baseline alignment in Phase 6c/7), then overwritten
	// with the final stretched value in Phase 8.
	mainOffset float64
	crossSize  float64

	fp fingerprint
}

func newFlexInfo() flexInfo {
	return flexInfo{
		maxMain:       math.Inf(1),
		relativeIndex: -1,
	}
}

func (fi *flexInfo) reset() {
	*fi = newFlexInfo()
}
