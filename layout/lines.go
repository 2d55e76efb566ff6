package layout

import "math"

// lineInfo is one flex line's working state across Phases 6-8: which items
// belong to it, how much main-axis space it used once items were
// distributed, and its resolved cross size (set in Phase 7, consumed by
// Phase 8's per-child cross positioning).
type lineInfo struct {
	items     []*Node
	mainUsed  float64
	crossSize float64
}

// layoutLines implements Phase 6a: break the collected items into lines,
// then run the flex distributor over each line independently.
func layoutLines(items []*Node, wrap FlexWrap, availMain, gap float64) []lineInfo {
	groups := breakLines(items, wrap, availMain, gap)
	lines := make([]lineInfo, 0, len(groups))

	for _, group := range groups {
		var marginsAndGaps, baseTotal float64
		for i, c := range group {
			marginsAndGaps += outerMarginMain(c)
			baseTotal += c.flex.baseSize
			if i > 0 {
				marginsAndGaps += gap
			}
		}

		var freeSpace float64
		if math.IsNaN(availMain) {
			freeSpace = 0
		} else {
			freeSpace = availMain - marginsAndGaps - baseTotal
		}

		distributeFlex(group, freeSpace)

		var used float64
		for i, c := range group {
			used += c.flex.mainSize + outerMarginMain(c)
			if i > 0 {
				used += gap
			}
		}

		lines = append(lines, lineInfo{items: group, mainUsed: used})
	}
	return lines
}
