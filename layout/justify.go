package layout

import "math"

// justifyLine implements Phase 6b: distribute a line's main-axis free space
// after letting any auto main-axis margins absorb it first. Per CSS §8.1,
// auto margins take priority over justify-content — if any item on the
// line has an auto main-start or main-end margin, the entire free space
// goes to those margins and justify-content has nothing left to distribute.
func justifyLine(line *lineInfo, availMain, gap float64, justify Justify) {
	main := availMain
	if math.IsNaN(main) {
		main = line.mainUsed
	}
	// free can be negative: the line's content overflows its available
	// main size. Auto-margin absorption and every justify mode besides
	// FLEX_END treat that the same as zero (an item can't un-overflow by
	// centering), so the clamp happens per-branch below, not here.
	free := main - line.mainUsed

	n := len(line.items)
	extraStart := make([]float64, n)
	extraEnd := make([]float64, n)

	autoCount := 0
	for _, c := range line.items {
		if c.flex.autoMarginMainStart {
			autoCount++
		}
		if c.flex.autoMarginMainEnd {
			autoCount++
		}
	}
	// Auto margins only ever absorb positive free space; on an overflowing
	// line they act as zero and leave the overflow to justify-content.
	if autoCount > 0 && free > 0 {
		share := free / float64(autoCount)
		for i, c := range line.items {
			if c.flex.autoMarginMainStart {
				extraStart[i] = share
			}
			if c.flex.autoMarginMainEnd {
				extraEnd[i] = share
			}
		}
		free = 0
	}

	// Every mode except FLEX_END treats an overflowing line the same as
	// an exactly-full one: centering or spacing out over negative space
	// makes no sense, so they see free clamped at zero. FLEX_END alone
	// keeps the raw (possibly negative) value, letting content overflow
	// past the main-start edge instead of flushing back to it.
	clampedFree := free
	if clampedFree < 0 {
		clampedFree = 0
	}

	var leading, between float64
	switch justify {
	case JustifyFlexStart:
		leading, between = 0, gap
	case JustifyFlexEnd:
		leading, between = free, gap
	case JustifyCenter:
		leading, between = clampedFree/2, gap
	case JustifySpaceBetween:
		if n > 1 {
			between = gap + clampedFree/float64(n-1)
		} else {
			between = gap
		}
	case JustifySpaceAround:
		if n > 0 {
			leading = clampedFree/float64(n)/2
			between = gap + clampedFree/float64(n)
		}
	case JustifySpaceEvenly:
		if n > 0 {
			leading = clampedFree / float64(n+1)
			between = gap + clampedFree/float64(n+1)
		}
	default:
		leading, between = 0, gap
	}

	pos := leading
	for i, c := range line.items {
		pos += extraStart[i]
		c.flex.mainOffset = pos + c.flex.marginMainStart
		pos += c.flex.marginMainStart + c.flex.mainSize + c.flex.marginMainEnd + extraEnd[i]
		if i < n-1 {
			pos += between
		}
	}
}
