package layout

import "math"

// shrinkWrapSize implements Phase 9: when a flex container's own main
// and/or cross size was not pinned by its style (AUTO), derive it from its
// lines — the longest line's used main space, and the sum of every line's
// cross size plus inter-line gaps.
func shrinkWrapSize(lines []lineInfo, gapCross float64) (mainSize, crossSize float64) {
	for _, l := range lines {
		mainSize = math.Max(mainSize, l.mainUsed)
	}
	for i, l := range lines {
		crossSize += l.crossSize
		if i > 0 {
			crossSize += gapCross
		}
	}
	return mainSize, crossSize
}
