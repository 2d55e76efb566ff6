package layout

import (
	"errors"
	"math"
)

// MeasureFunc is the host callback contract for leaf measurement: given
// available space and a constraint mode per axis, return the node's
// natural (width, height). The engine substitutes +Inf for NaN before
// calling. Must be deterministic for identical inputs — the measure cache
// relies on it.
type MeasureFunc func(availW float64, wMode MeasureMode, availH float64, hMode MeasureMode) (w, h float64)

// BaselineFunc is the pure baseline callback contract for baseline alignment.
type BaselineFunc func(width, height float64) (offsetFromTop float64)

// Layout is a node's computed output rectangle: left/top are relative to
// the parent's border box, width/height is the rendered box including
// border and padding.
type Layout struct {
	Left, Top, Width, Height int
}

// Node is one element of the layout tree: style, flex scratch, computed
// layout, and the two caches all live on Node, owned exclusively by it,
// merged into a single addressable tree node as a flex engine requires
// (every node can itself be a container of further nodes).
type Node struct {
	parent   *Node
	children []*Node

	style  Style
	layout Layout
	flex   flexInfo

	measureFunc  MeasureFunc
	baselineFunc BaselineFunc

	measureCache *measureCache
	sizingCache  *sizingCache

	dirty        bool
	hasNewLayout bool

	lastCalc fingerprint
}

// NewNode constructs a node with the engine's default style, marked
// dirty so the first CalculateLayout always does real work.
func NewNode() *Node {
	return &Node{
		style:        DefaultStyle(),
		flex:         newFlexInfo(),
		measureCache: newMeasureCache(),
		sizingCache:  newSizingCache(),
		dirty:        true,
	}
}

// Style returns the node's style by value; mutate via the Set* methods so
// that the node is marked dirty.
func (n *Node) Style() Style { return n.style }

// Layout returns the node's last computed output rectangle.
func (n *Node) Layout() Layout { return n.layout }

func (n *Node) LayoutLeft() int   { return n.layout.Left }
func (n *Node) LayoutTop() int    { return n.layout.Top }
func (n *Node) LayoutWidth() int  { return n.layout.Width }
func (n *Node) LayoutHeight() int { return n.layout.Height }

// Tree operations

// GetParent returns the node's parent, or nil at the root.
func (n *Node) GetParent() *Node { return n.parent }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// GetChild returns the child at index, or nil if out of range.
func (n *Node) GetChild(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

var errCyclicInsert = errors.New("flexlay: cannot insert a node as a descendant of itself")

// isAncestorOf reports whether n is an ancestor of (or equal to) other,
// walking other's parent chain.
func (n *Node) isAncestorOf(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// InsertChild attaches child at index, detaching it from any previous
// parent first. index is clamped into [0, len]. Every sibling from
// index+1 onward has its fingerprint invalidated, since their positions
// may shift. Returns an error, rather than corrupting the tree, if child
// is an ancestor of self — inserting it would create a cycle.
func (n *Node) InsertChild(child *Node, index int) error {
	if child == nil || child == n {
		return errCyclicInsert
	}
	if child.isAncestorOf(n) {
		return errCyclicInsert
	}

	if child.parent != nil {
		child.parent.detachChild(child)
	}

	if index < 0 {
		index = 0
	}
	if index > len(n.children) {
		index = len(n.children)
	}

	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n

	n.invalidateSiblingsFrom(index + 1)
	n.markDirty()
	return nil
}

// RemoveChild detaches child from n, if present, invalidating the
// fingerprint of every sibling from the removal index onward.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.invalidateSiblingsFrom(i)
			n.markDirty()
			return
		}
	}
}

// detachChild removes child from n's children without marking n dirty
// (the caller, InsertChild, marks the new parent dirty instead).
func (n *Node) detachChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.invalidateSiblingsFrom(i)
			return
		}
	}
}

func (n *Node) invalidateSiblingsFrom(index int) {
	for i := index; i < len(n.children); i++ {
		n.children[i].flex.fp.valid = false
	}
}

// Destroy detaches n from its parent and releases its caches and
// children links, without recursive teardown.
func (n *Node) Destroy() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	n.children = nil
	n.measureCache = nil
	n.sizingCache = nil
}

// Measure callback

func (n *Node) SetMeasureFunc(f MeasureFunc) {
	n.measureFunc = f
	n.markDirty()
}

func (n *Node) UnsetMeasureFunc() {
	n.measureFunc = nil
	n.markDirty()
}

func (n *Node) HasMeasureFunc() bool { return n.measureFunc != nil }

// Baseline callback

func (n *Node) SetBaselineFunc(f BaselineFunc) {
	n.baselineFunc = f
	n.markDirty()
}

func (n *Node) UnsetBaselineFunc() {
	n.baselineFunc = nil
	n.markDirty()
}

func (n *Node) HasBaselineFunc() bool { return n.baselineFunc != nil }

// Dirty propagation

// markDirty walks from n upward to the root. At every node touched it
// clears both caches and invalidates the fingerprint, then marks the node
// dirty. It stops after the first node that was ALREADY dirty -- but only
// after clearing that node's caches too, since an ancestor marked dirty
// by an earlier call may still be holding a now-stale cache entry from
// before this call if it stopped without clearing.
func (n *Node) markDirty() {
	for cur := n; cur != nil; cur = cur.parent {
		wasDirty := cur.dirty
		if cur.measureCache != nil {
			cur.measureCache.clear()
		}
		if cur.sizingCache != nil {
			cur.sizingCache.invalidateAll()
		}
		cur.flex.fp.valid = false
		cur.dirty = true
		if wasDirty {
			break
		}
	}
}

// MarkDirty is the public entry point for forcing a node dirty, e.g. after
// a host mutates data a MeasureFunc reads without going through a setter.
func (n *Node) MarkDirty() { n.markDirty() }

// IsDirty reports whether n has pending structural or style changes not
// yet reflected in its layout.
func (n *Node) IsDirty() bool { return n.dirty }

// HasNewLayout reports whether layout has produced fresh output for n
// since the last MarkLayoutSeen.
func (n *Node) HasNewLayout() bool { return n.hasNewLayout }

// MarkLayoutSeen clears the has-new-layout flag (consumer acknowledgment).
func (n *Node) MarkLayoutSeen() { n.hasNewLayout = false }

// CalculateLayout is the root entry point for laying out the tree rooted
// at n. avail* may be NaN ("unconstrained"); callers passing Go's untyped
// absence of a constraint should pass math.NaN() directly — there is no
// separate None type in Go.
func (n *Node) CalculateLayout(availW, availH float64, direction Direction) {
	if !n.dirty && n.lastCalc.matches(availW, availH, direction) {
		return // O(1) no-change fast path
	}

	n.lastCalc = fingerprint{availW: availW, availH: availH, direction: direction, valid: true}

	n.resetSizingCacheSubtree()

	ctx := newScratchCtx()
	layoutNode(ctx, n, availW, availH, 0, 0, 0, 0, math.NaN(), math.NaN(), direction)

	n.clearDirtySubtree()
}

func (n *Node) resetSizingCacheSubtree() {
	if n.sizingCache != nil {
		n.sizingCache.invalidateAll()
	}
	for _, c := range n.children {
		c.resetSizingCacheSubtree()
	}
}

func (n *Node) clearDirtySubtree() {
	n.dirty = false
	n.hasNewLayout = true
	for _, c := range n.children {
		c.clearDirtySubtree()
	}
}

// postConditionOK asserts the finite/non-negative output invariant: at
// the end of layoutNode, a node's committed layout width and height must
// always be finite and non-negative.
func postConditionOK(w, h float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0 &&
		!math.IsNaN(h) && !math.IsInf(h, 0) && h >= 0
}
