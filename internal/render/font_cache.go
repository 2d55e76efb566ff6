package render

// glyphFaces backs every Font.Face() call in the package; it's process-wide
// since the layout engine may measure the same embedded font from many
// concurrently laid-out trees.
var glyphFaces = newFaceCache(32)

// SetFontCacheCapacity changes the max number of cached font faces.
func SetFontCacheCapacity(capacity int) {
	glyphFaces = newFaceCache(capacity)
}

// ClearFontCache releases all cached font.Face objects.
func ClearFontCache() {
	glyphFaces.clear()
}
