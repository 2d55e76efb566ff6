package layout

import "math"

// resolveLineCrossSizes is the first half of Phase 7: each line's cross
// size is the largest cross-size estimate among its items (their
// "hypothetical cross size"), with a baseline-aligned item's ascent
// folded in when it exceeds its own plain estimate.
func resolveLineCrossSizes(lines []lineInfo, parentAlignItems Align) {
	for i := range lines {
		line := &lines[i]
		var maxCross float64
		for _, c := range line.items {
			cross := c.flex.crossSize
			if resolvedAlignSelf(c.style, parentAlignItems) == AlignBaseline {
				cross = math.Max(cross, c.flex.baselineOffset)
			}
			maxCross = math.Max(maxCross, cross)
		}
		line.crossSize = maxCross
	}
}

// distributeAlignContent is the second half of Phase 7: position each
// line's cross-start offset within the container's cross-axis content box
// per align-content, and return the content box's required cross size.
// AlignStretch grows every line equally to consume the container's free
// cross space rather than leaving a gap.
func distributeAlignContent(lines []lineInfo, availCross, gap float64, align Align, wrapReverse bool) (contentCross float64, crossStarts []float64) {
	n := len(lines)
	crossStarts = make([]float64, n)
	if n == 0 {
		return 0, crossStarts
	}

	var used float64
	for i, l := range lines {
		used += l.crossSize
		if i > 0 {
			used += gap
		}
	}

	var free float64
	if !math.IsNaN(availCross) {
		free = availCross - used
		if free < 0 {
			free = 0
		}
	}

	var leading, between float64
	switch align {
	case AlignFlexEnd:
		leading = free
	case AlignCenter:
		leading = free / 2
	case AlignSpaceBetween:
		if n > 1 {
			between = free / float64(n-1)
		}
	case AlignSpaceAround:
		leading = free / float64(n) / 2
		between = free / float64(n)
	case AlignStretch:
		extra := free / float64(n)
		for i := range lines {
			lines[i].crossSize += extra
		}
		used += free
	}

	pos := leading
	for i := range lines {
		crossStarts[i] = pos
		pos += lines[i].crossSize + gap + between
	}

	contentCross = used
	if !math.IsNaN(availCross) && availCross > contentCross {
		contentCross = availCross
	}

	if wrapReverse {
		reverseCrossStarts(crossStarts, lines, contentCross)
	}
	return contentCross, crossStarts
}

func reverseCrossStarts(starts []float64, lines []lineInfo, containerCross float64) {
	for i := range starts {
		starts[i] = containerCross - starts[i] - lines[i].crossSize
	}
}
