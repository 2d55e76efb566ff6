package layout

// computeBaselines implements Phase 6c: for every item on a line whose
// effective cross-axis alignment is BASELINE, ask its baseline callback
// (falling back to its full cross-size estimate — effectively the bottom
// of its content box — when it has none; baseline alignment does not
// recurse into descendants here). Returns the line's shared baseline: the
// largest ascent among its baseline-aligned items, folded back into each
// item's crossSize estimate so Phase 7's line cross-size pass accounts for
// it.
func computeBaselines(line *lineInfo, parentAlignItems Align, isRow bool) float64 {
	var maxAscent float64
	found := false

	for _, c := range line.items {
		if resolvedAlignSelf(c.style, parentAlignItems) != AlignBaseline {
			continue
		}

		var w, h float64
		if isRow {
			w, h = c.flex.mainSize, c.flex.crossSize
		} else {
			w, h = c.flex.crossSize, c.flex.mainSize
		}

		var ascent float64
		if c.baselineFunc != nil {
			ascent = c.baselineFunc(w, h)
		} else {
			ascent = h
		}

		c.flex.baselineOffset = ascent
		if !found || ascent > maxAscent {
			maxAscent, found = ascent, true
		}
	}
	return maxAscent
}
