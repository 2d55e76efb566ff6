package render

import (
	"container/list"
	"sync"

	"golang.org/x/image/font"
)

// faceCacheEntry is one cached glyph face, keyed by the font+size+DPI
// tuple that produced it.
type faceCacheEntry struct {
	key  string
	face font.Face
}

// faceCache is a thread-safe LRU of hinted font.Face values. Building a
// face from a truetype.Font re-derives its hinting tables, which is the
// one cost MeasureString/LineHeightPx can't avoid per call otherwise --
// this cache exists solely so repeated measurement of the same font+size
// doesn't pay that cost twice.
type faceCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // front = least recently used
}

// newFaceCache returns an empty cache holding at most capacity faces.
// A capacity below 1 is raised to 1.
func newFaceCache(capacity int) *faceCache {
	if capacity < 1 {
		capacity = 1
	}
	return &faceCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *faceCache) get(key string) (font.Face, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		return el.Value.(*faceCacheEntry).face, true
	}
	return nil, false
}

// put inserts face under key, evicting the least recently used entry
// first if the cache is already at capacity. An evicted (or overwritten)
// face that implements Close() is closed.
func (c *faceCache) put(key string, face font.Face) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		el.Value.(*faceCacheEntry).face = face
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		if oldest != nil {
			ent := oldest.Value.(*faceCacheEntry)
			closeFace(ent.face)
			delete(c.items, ent.key)
			c.order.Remove(oldest)
		}
	}

	el := c.order.PushBack(&faceCacheEntry{key: key, face: face})
	c.items[key] = el
}

// clear evicts every entry, closing each face that implements Close().
func (c *faceCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, el := range c.items {
		closeFace(el.Value.(*faceCacheEntry).face)
	}

	c.items = make(map[string]*list.Element)
	c.order.Init()
}

func closeFace(f font.Face) {
	if closer, ok := f.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
