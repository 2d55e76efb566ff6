package layout

// Both caches here share the same design: NaN-aware key equality, dirty
// nodes always miss (enforced by callers clearing these caches on
// mark-dirty), rotate-oldest-out insertion into a fixed entry array that
// is allocated in full when the node is created, and the measure cache is
// never read across a dirtying (likewise enforced by the caller).
//
// Grounded on internal/render's font LRU (container/list based, mutex
// protected): the layout engine's caches are tiny (capacity 2-4) and
// single-threaded, so a plain round-robin slice without locking or a
// linked list serves the same "bounded, oldest evicted first" contract
// with less machinery.

const (
	defaultMeasureCacheCapacity = 4
	defaultSizingCacheCapacity  = 2
	sizingCacheInvalidAvailW    = -1 // sentinel, not NaN -- NaN can't be compared for invalidation
)

type measureCacheEntry struct {
	allocated bool
	availW    float64
	wMode     MeasureMode
	availH    float64
	hMode     MeasureMode
	resultW   float64
	resultH   float64
}

// measureCache is the small fixed-capacity bounded cache keyed on a leaf's
// measure constraints.
type measureCache struct {
	entries  []measureCacheEntry
	next     int
	calls    int
	hits     int
}

func newMeasureCache() *measureCache {
	return &measureCache{entries: make([]measureCacheEntry, defaultMeasureCacheCapacity)}
}

func (c *measureCache) get(availW float64, wMode MeasureMode, availH float64, hMode MeasureMode) (w, h float64, ok bool) {
	c.calls++
	for i := range c.entries {
		e := &c.entries[i]
		if !e.allocated {
			continue
		}
		if e.wMode == wMode && e.hMode == hMode && floatsEq(e.availW, availW) && floatsEq(e.availH, availH) {
			c.hits++
			return e.resultW, e.resultH, true
		}
	}
	return 0, 0, false
}

func (c *measureCache) put(availW float64, wMode MeasureMode, availH float64, hMode MeasureMode, w, h float64) {
	e := &c.entries[c.next]
	*e = measureCacheEntry{
		allocated: true,
		availW:    availW,
		wMode:     wMode,
		availH:    availH,
		hMode:     hMode,
		resultW:   w,
		resultH:   h,
	}
	c.next = (c.next + 1) % len(c.entries)
}

func (c *measureCache) clear() {
	for i := range c.entries {
		c.entries[i] = measureCacheEntry{}
	}
	c.next = 0
}

// Calls and Hits expose hit-rate counters for test assertions.
func (c *measureCache) Calls() int { return c.calls }
func (c *measureCache) Hits() int  { return c.hits }

type sizingCacheEntry struct {
	availW float64
	availH float64
	w      float64
	h      float64
}

// sizingCache is the small fixed-capacity cache populated during
// intrinsic-sizing recursions (the position-free measurer). It is reset
// wholesale across the tree at the start of every root CalculateLayout
// call, and on each node that a dirty mark walks through.
type sizingCache struct {
	entries []sizingCacheEntry
	next    int
}

func newSizingCache() *sizingCache {
	c := &sizingCache{entries: make([]sizingCacheEntry, defaultSizingCacheCapacity)}
	c.invalidateAll()
	return c
}

func (c *sizingCache) get(availW, availH float64) (w, h float64, ok bool) {
	for i := range c.entries {
		e := &c.entries[i]
		if e.availW == sizingCacheInvalidAvailW {
			continue
		}
		if floatsEq(e.availW, availW) && floatsEq(e.availH, availH) {
			return e.w, e.h, true
		}
	}
	return 0, 0, false
}

func (c *sizingCache) put(availW, availH, w, h float64) {
	e := &c.entries[c.next]
	*e = sizingCacheEntry{availW: availW, availH: availH, w: w, h: h}
	c.next = (c.next + 1) % len(c.entries)
}

// invalidateAll marks every entry invalid via the -1 sentinel without
// freeing the backing array.
func (c *sizingCache) invalidateAll() {
	for i := range c.entries {
		c.entries[i].availW = sizingCacheInvalidAvailW
	}
	c.next = 0
}
