package layout

// Measure runs the position-free intrinsic-sizing pass on n without
// touching its stored Layout or dirty state — useful for a host that wants
// to know a subtree's natural size before committing to a parent size via
// CalculateLayout.
func (n *Node) Measure(availW, availH float64, direction Direction) (width, height float64) {
	return mainAxisMeasure(n, availW, availH, direction)
}
