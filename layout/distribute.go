package layout

import "math"

const flexResolutionEpsilon = 1e-3

// distributeFlex implements the CSS §9.7 "resolve the flexible lengths"
// freeze loop: repeatedly grow or shrink the unfrozen items on a line in
// proportion to their flex-grow (or scaled-shrink) factor until the
// remaining free space is consumed or every item is frozen at its min/max
// bound. When growing and the sum of flex-grow factors is below 1, the
// free space is not fully distributed — the container does not inflate
// items as if they summed to a full share; the quirk is inherited directly
// from the CSS algorithm, not a bug. The sole exception is a line with
// exactly one flexible item: it gets the entire free space outright, since
// the sub-1 floor only exists to stop a handful of small factors from
// collectively claiming more than their share of a shared pool.
func distributeFlex(items []*Node, freeSpace float64) {
	if len(items) == 0 || math.IsNaN(freeSpace) {
		return
	}

	growing := freeSpace > 0
	for _, c := range items {
		c.flex.flexFrozen = flexFactor(c, growing) == 0
		c.flex.mainSize = c.flex.baseSize
	}

	// Exactly one item can flex: it takes the whole of the initial free
	// space directly, clamped by its own min/max, bypassing the
	// grow-sum-below-1 quirk below (which only makes sense when multiple
	// items are competing for a shared pool).
	var sole *Node
	flexibleCount := 0
	for _, c := range items {
		if !c.flex.flexFrozen {
			flexibleCount++
			sole = c
		}
	}
	if flexibleCount == 1 {
		sole.flex.mainSize = clampMain(sole.flex.baseSize+freeSpace, sole.flex.minMain, sole.flex.maxMain)
		return
	}

	remaining := freeSpace
	for iter := 0; iter < len(items)+1; iter++ {
		active := make([]*Node, 0, len(items))
		var totalFlex float64
		for _, c := range items {
			if c.flex.flexFrozen {
				continue
			}
			active = append(active, c)
			totalFlex += flexFactor(c, growing)
		}
		if len(active) == 0 || math.Abs(remaining) < flexResolutionEpsilon {
			break
		}

		scale := totalFlex
		if growing && scale < 1 {
			scale = 1
		}
		if scale == 0 {
			break
		}
		shrinkTotal := scaledShrinkTotal(active)

		var consumed float64
		anyClamped := false
		for _, c := range active {
			factor := flexFactor(c, growing)

			var share float64
			if growing {
				share = remaining * (factor / scale)
			} else {
				share = remaining * (factor * c.flex.baseSize / shrinkTotal)
			}

			proposed := c.flex.mainSize + share
			clamped := clampMain(proposed, c.flex.minMain, c.flex.maxMain)

			if !floatsEq(clamped, proposed) {
				anyClamped = true
				c.flex.flexFrozen = true
			}
			consumed += clamped - c.flex.mainSize
			c.flex.mainSize = clamped
		}

		remaining -= consumed
		if !anyClamped {
			break
		}
	}
}

func flexFactor(c *Node, growing bool) float64 {
	if growing {
		return math.Max(0, c.style.FlexGrow)
	}
	return effectiveShrink(c)
}

// effectiveShrink is the item's flex-shrink factor after overflow
// promotion: an item whose overflow clips or scrolls its content shrinks
// at least as eagerly as flex-shrink: 1, regardless of what its own style
// requested.
func effectiveShrink(c *Node) float64 {
	shrink := math.Max(0, c.style.FlexShrink)
	if c.style.Overflow != OverflowVisible && shrink < 1 {
		shrink = 1
	}
	return shrink
}

// scaledShrinkTotal is the CSS §9.7 "scaled shrink factor" denominator: each
// item's flex-shrink weighted by its own base size, so bigger items shrink
// proportionally more for the same shrink factor.
func scaledShrinkTotal(items []*Node) float64 {
	var total float64
	for _, c := range items {
		total += effectiveShrink(c) * c.flex.baseSize
	}
	if total == 0 {
		return 1
	}
	return total
}

func clampMain(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}
