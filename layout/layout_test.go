package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Krispeckt/flexlay/layout"
)

type itemCase struct {
	name    string
	style   func(*layout.Node)
	wantX   int
	wantY   int
	wantW   int
	wantH   int
}

type testCase struct {
	name       string
	style      func(*layout.Node)
	availW     float64
	availH     float64
	items      []itemCase
	wantW      int
	wantH      int
}

func buildTree(tc testCase) *layout.Node {
	root := layout.NewNode()
	tc.style(root)
	for _, ic := range tc.items {
		child := layout.NewNode()
		ic.style(child)
		_ = root.InsertChild(child, root.ChildCount())
	}
	return root
}

func runCase(t *testing.T, tc testCase) {
	t.Helper()
	root := buildTree(tc)
	root.CalculateLayout(tc.availW, tc.availH, layout.DirectionLTR)

	require.Equal(t, tc.wantW, root.LayoutWidth(), "%s: root width", tc.name)
	require.Equal(t, tc.wantH, root.LayoutHeight(), "%s: root height", tc.name)

	for i, ic := range tc.items {
		c := root.GetChild(i)
		require.Equal(t, ic.wantX, c.LayoutLeft(), "%s/%s: left", tc.name, ic.name)
		require.Equal(t, ic.wantY, c.LayoutTop(), "%s/%s: top", tc.name, ic.name)
		require.Equal(t, ic.wantW, c.LayoutWidth(), "%s/%s: width", tc.name, ic.name)
		require.Equal(t, ic.wantH, c.LayoutHeight(), "%s/%s: height", tc.name, ic.name)
	}
}

func fixedSize(w, h float64) func(*layout.Node) {
	return func(n *layout.Node) {
		n.SetWidth(w)
		n.SetHeight(h)
	}
}

func TestRowThreeFixedChildren(t *testing.T) {
	// Three 100x50 children in a 300x50 row container: each keeps its own
	// size, laid out left to right with no gap.
	runCase(t, testCase{
		name: "row three fixed",
		style: func(n *layout.Node) {
			n.SetWidth(300)
			n.SetHeight(50)
			n.SetFlexDirection(layout.FlexDirectionRow)
		},
		availW: math.NaN(),
		availH: math.NaN(),
		items: []itemCase{
			{name: "a", style: fixedSize(100, 50), wantX: 0, wantY: 0, wantW: 100, wantH: 50},
			{name: "b", style: fixedSize(100, 50), wantX: 100, wantY: 0, wantW: 100, wantH: 50},
			{name: "c", style: fixedSize(100, 50), wantX: 200, wantY: 0, wantW: 100, wantH: 50},
		},
		wantW: 300,
		wantH: 50,
	})
}

func TestRowFlexGrowSplitsRemainder(t *testing.T) {
	// A 100-wide fixed item plus two flex-grow:1 items split the
	// remaining 200px of a 300-wide row evenly, 100px each.
	runCase(t, testCase{
		name: "row flex-grow",
		style: func(n *layout.Node) {
			n.SetWidth(300)
			n.SetHeight(50)
			n.SetFlexDirection(layout.FlexDirectionRow)
		},
		availW: math.NaN(),
		availH: math.NaN(),
		items: []itemCase{
			{
				name:  "fixed",
				style: fixedSize(100, 50),
				wantX: 0, wantY: 0, wantW: 100, wantH: 50,
			},
			{
				name: "grow-a",
				style: func(n *layout.Node) {
					n.SetHeight(50)
					n.SetFlexGrow(1)
					n.SetFlexBasis(0)
				},
				wantX: 100, wantY: 0, wantW: 100, wantH: 50,
			},
			{
				name: "grow-b",
				style: func(n *layout.Node) {
					n.SetHeight(50)
					n.SetFlexGrow(1)
					n.SetFlexBasis(0)
				},
				wantX: 200, wantY: 0, wantW: 100, wantH: 50,
			},
		},
		wantW: 300,
		wantH: 50,
	})
}

func TestJustifyContentCenter(t *testing.T) {
	// A single 50-wide child in a 200-wide row, JUSTIFY_CENTER, sits
	// centered with 75px free space on either side.
	runCase(t, testCase{
		name: "justify center",
		style: func(n *layout.Node) {
			n.SetWidth(200)
			n.SetHeight(50)
			n.SetFlexDirection(layout.FlexDirectionRow)
			n.SetJustifyContent(layout.JustifyCenter)
		},
		availW: math.NaN(),
		availH: math.NaN(),
		items: []itemCase{
			{name: "a", style: fixedSize(50, 50), wantX: 75, wantY: 0, wantW: 50, wantH: 50},
		},
		wantW: 200,
		wantH: 50,
	})
}

func TestAlignItemsStretchFillsCrossAxis(t *testing.T) {
	// A column container stretches a width-unset child to the full
	// container width (the default ALIGN_STRETCH).
	runCase(t, testCase{
		name: "align stretch",
		style: func(n *layout.Node) {
			n.SetWidth(120)
			n.SetHeight(40)
			n.SetFlexDirection(layout.FlexDirectionColumn)
		},
		availW: math.NaN(),
		availH: math.NaN(),
		items: []itemCase{
			{
				name: "a",
				style: func(n *layout.Node) {
					n.SetHeight(40)
				},
				wantX: 0, wantY: 0, wantW: 120, wantH: 40,
			},
		},
		wantW: 120,
		wantH: 40,
	})
}

func TestWrapProducesSecondLine(t *testing.T) {
	// Two 80-wide items in a 100-wide wrapping row container: the second
	// item cannot fit on line one, so it wraps to a second line below.
	runCase(t, testCase{
		name: "wrap",
		style: func(n *layout.Node) {
			n.SetWidth(100)
			n.SetHeight(100)
			n.SetFlexDirection(layout.FlexDirectionRow)
			n.SetFlexWrap(layout.WrapWrap)
		},
		availW: math.NaN(),
		availH: math.NaN(),
		items: []itemCase{
			{name: "a", style: fixedSize(80, 30), wantX: 0, wantY: 0, wantW: 80, wantH: 30},
			{name: "b", style: fixedSize(80, 30), wantX: 0, wantY: 30, wantW: 80, wantH: 30},
		},
		wantW: 100,
		wantH: 100,
	})
}

func TestCalculateLayoutFastPathSkipsUnchangedSubtree(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(200)
	root.SetHeight(100)
	root.SetFlexDirection(layout.FlexDirectionRow)

	child := layout.NewNode()
	child.SetWidth(50)
	child.SetHeight(50)
	require.NoError(t, root.InsertChild(child, 0))

	root.CalculateLayout(math.NaN(), math.NaN(), layout.DirectionLTR)
	require.True(t, root.HasNewLayout())
	root.MarkLayoutSeen()

	// No style/tree change: the second call should be a no-op fast path,
	// not producing a new layout pass.
	root.CalculateLayout(math.NaN(), math.NaN(), layout.DirectionLTR)
	require.False(t, root.HasNewLayout())
}

func TestMarkDirtyInvalidatesCachesUpToRoot(t *testing.T) {
	root := layout.NewNode()
	root.SetWidth(200)
	root.SetHeight(100)

	child := layout.NewNode()
	require.NoError(t, root.InsertChild(child, 0))

	root.CalculateLayout(math.NaN(), math.NaN(), layout.DirectionLTR)
	require.False(t, root.IsDirty())

	child.SetWidth(10)
	require.True(t, root.IsDirty(), "dirtying a child must propagate up to the root")
}

func TestRowWeightedShrinkSplitsOverflow(t *testing.T) {
	// Two 80-wide children with flex-shrink:1 in a 100-wide row: free
	// space is -60, split evenly since both children share the same base
	// size, so each loses 30 and ends up at 50.
	runCase(t, testCase{
		name: "weighted shrink",
		style: func(n *layout.Node) {
			n.SetWidth(100)
			n.SetHeight(50)
			n.SetFlexDirection(layout.FlexDirectionRow)
		},
		availW: math.NaN(),
		availH: math.NaN(),
		items: []itemCase{
			{
				name: "a",
				style: func(n *layout.Node) {
					n.SetHeight(50)
					n.SetFlexBasis(80)
					n.SetFlexShrink(1)
				},
				wantX: 0, wantY: 0, wantW: 50, wantH: 50,
			},
			{
				name: "b",
				style: func(n *layout.Node) {
					n.SetHeight(50)
					n.SetFlexBasis(80)
					n.SetFlexShrink(1)
				},
				wantX: 50, wantY: 0, wantW: 50, wantH: 50,
			},
		},
		wantW: 100,
		wantH: 50,
	})
}

func TestWrapSpaceBetweenPositionsEachLine(t *testing.T) {
	// Six 30-wide children wrap into two lines of three in a 100-wide row;
	// each line independently space-betweens its three children: free
	// space per line is 100-90=10, split into 2 gaps of 5, so x=0,35,70.
	runCase(t, testCase{
		name: "wrap space-between",
		style: func(n *layout.Node) {
			n.SetWidth(100)
			n.SetHeight(60)
			n.SetFlexDirection(layout.FlexDirectionRow)
			n.SetFlexWrap(layout.WrapWrap)
			n.SetJustifyContent(layout.JustifySpaceBetween)
		},
		availW: math.NaN(),
		availH: math.NaN(),
		items: []itemCase{
			{name: "a", style: fixedSize(30, 30), wantX: 0, wantY: 0, wantW: 30, wantH: 30},
			{name: "b", style: fixedSize(30, 30), wantX: 35, wantY: 0, wantW: 30, wantH: 30},
			{name: "c", style: fixedSize(30, 30), wantX: 70, wantY: 0, wantW: 30, wantH: 30},
			{name: "d", style: fixedSize(30, 30), wantX: 0, wantY: 30, wantW: 30, wantH: 30},
			{name: "e", style: fixedSize(30, 30), wantX: 35, wantY: 30, wantW: 30, wantH: 30},
			{name: "f", style: fixedSize(30, 30), wantX: 70, wantY: 30, wantW: 30, wantH: 30},
		},
		wantW: 100,
		wantH: 60,
	})
}

func TestRowGrowEdgeRoundingKeepsAdjacency(t *testing.T) {
	// Three flex-grow:1 children splitting a 100-wide row land on
	// fractional 33.33px each; edge-based rounding must keep them
	// gapless and summing to exactly 100 (P4), not each independently
	// rounded to 33 (which would leave a 1px hole).
	runCase(t, testCase{
		name: "edge rounding",
		style: func(n *layout.Node) {
			n.SetWidth(100)
			n.SetHeight(50)
			n.SetFlexDirection(layout.FlexDirectionRow)
		},
		availW: math.NaN(),
		availH: math.NaN(),
		items: []itemCase{
			{
				name: "a",
				style: func(n *layout.Node) {
					n.SetHeight(50)
					n.SetFlexGrow(1)
					n.SetFlexBasis(0)
				},
				wantX: 0, wantY: 0, wantW: 33, wantH: 50,
			},
			{
				name: "b",
				style: func(n *layout.Node) {
					n.SetHeight(50)
					n.SetFlexGrow(1)
					n.SetFlexBasis(0)
				},
				wantX: 33, wantY: 0, wantW: 34, wantH: 50,
			},
			{
				name: "c",
				style: func(n *layout.Node) {
					n.SetHeight(50)
					n.SetFlexGrow(1)
					n.SetFlexBasis(0)
				},
				wantX: 67, wantY: 0, wantW: 33, wantH: 50,
			},
		},
		wantW: 100,
		wantH: 50,
	})
}

func TestDirtyLeafDoesNotMoveCleanSiblings(t *testing.T) {
	// Row of three 30-wide children, root height left AUTO so it
	// shrink-wraps to the tallest child. Mutating only C's height must
	// leave A and B's committed position untouched bit-for-bit -- the
	// fingerprint skip must not be defeated by an unrelated sibling's
	// dirtiness -- while the root itself grows to match C.
	root := layout.NewNode()
	root.SetWidth(90)
	root.SetFlexDirection(layout.FlexDirectionRow)

	a := layout.NewNode()
	a.SetWidth(30)
	a.SetHeight(30)
	require.NoError(t, root.InsertChild(a, 0))

	b := layout.NewNode()
	b.SetWidth(30)
	b.SetHeight(30)
	require.NoError(t, root.InsertChild(b, 1))

	c := layout.NewNode()
	c.SetWidth(30)
	c.SetHeight(30)
	require.NoError(t, root.InsertChild(c, 2))

	root.CalculateLayout(math.NaN(), math.NaN(), layout.DirectionLTR)

	aBefore := a.Layout()
	bBefore := b.Layout()

	c.SetHeight(45)
	root.CalculateLayout(math.NaN(), math.NaN(), layout.DirectionLTR)

	require.Equal(t, aBefore, a.Layout(), "A must not move when only C changes")
	require.Equal(t, bBefore, b.Layout(), "B must not move when only C changes")
	require.Equal(t, 45, c.LayoutHeight())
	require.Equal(t, 45, root.LayoutHeight(), "root must grow to the tallest child")
}

func TestFreshLayoutEqualsIncrementalAfterDirtyingSubset(t *testing.T) {
	// P3: build a tree, lay it out, dirty an arbitrary subset of nodes,
	// lay out again -- the result must be pointwise identical to laying
	// out a freshly built, identical tree once.
	build := func() (*layout.Node, *layout.Node, *layout.Node) {
		root := layout.NewNode()
		root.SetWidth(300)
		root.SetHeight(50)
		root.SetFlexDirection(layout.FlexDirectionRow)

		fixed := layout.NewNode()
		fixed.SetWidth(100)
		fixed.SetHeight(50)
		_ = root.InsertChild(fixed, 0)

		growA := layout.NewNode()
		growA.SetHeight(50)
		growA.SetFlexGrow(1)
		growA.SetFlexBasis(0)
		_ = root.InsertChild(growA, 1)

		growB := layout.NewNode()
		growB.SetHeight(50)
		growB.SetFlexGrow(2)
		growB.SetFlexBasis(0)
		_ = root.InsertChild(growB, 2)

		return root, growA, growB
	}

	freshRoot, _, _ := build()
	freshRoot.CalculateLayout(math.NaN(), math.NaN(), layout.DirectionLTR)

	incRoot, incGrowA, incGrowB := build()
	incRoot.CalculateLayout(math.NaN(), math.NaN(), layout.DirectionLTR)
	incGrowA.MarkDirty()
	incGrowB.MarkDirty()
	incRoot.CalculateLayout(math.NaN(), math.NaN(), layout.DirectionLTR)

	require.Equal(t, freshRoot.Layout(), incRoot.Layout())
	for i := 0; i < freshRoot.ChildCount(); i++ {
		require.Equal(t, freshRoot.GetChild(i).Layout(), incRoot.GetChild(i).Layout(), "child %d", i)
	}
}
