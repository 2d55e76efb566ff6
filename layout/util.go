package layout

import "github.com/Krispeckt/flexlay/internal/core/geom"

// floatsEq is the NaN-aware equality every cache-key and fingerprint
// comparison in the engine requires.
func floatsEq(a, b float64) bool {
	return geom.FloatsEqual(a, b)
}
