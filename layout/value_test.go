package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Krispeckt/flexlay/layout"
)

func TestValueResolveSpacing(t *testing.T) {
	cases := []struct {
		name      string
		v         layout.Value
		reference float64
		want      float64
	}{
		{"point ignores reference", layout.Point(10), 999, 10},
		{"percent of reference", layout.Percent(50), 200, 100},
		{"percent with undefined reference is zero", layout.Percent(50), math.NaN(), 0},
		{"auto is zero", layout.Auto, 200, 0},
		{"undefined is zero", layout.Undefined, 200, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.v.ResolveSpacing(tc.reference))
		})
	}
}

func TestValueResolveSize(t *testing.T) {
	cases := []struct {
		name      string
		v         layout.Value
		reference float64
		wantNaN   bool
		want      float64
	}{
		{"point ignores reference", layout.Point(10), 999, false, 10},
		{"percent of reference", layout.Percent(25), 200, false, 50},
		{"auto is undefined", layout.Auto, 200, true, 0},
		{"undefined stays undefined", layout.Undefined, 200, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.ResolveSize(tc.reference)
			if tc.wantNaN {
				require.True(t, math.IsNaN(got))
				return
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestApplyMinMax(t *testing.T) {
	cases := []struct {
		name           string
		size, min, max float64
		want           float64
	}{
		{"within bounds unchanged", 50, 10, 100, 50},
		{"below min clamps up", 5, 10, 100, 10},
		{"above max clamps down", 150, 10, 100, 100},
		{"no bounds unchanged", 50, math.NaN(), math.NaN(), 50},
		{"undefined size materializes at min", math.NaN(), 10, math.NaN(), 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := layout.ApplyMinMax(tc.size, tc.min, tc.max, 0)
			if math.IsNaN(tc.want) {
				require.True(t, math.IsNaN(got))
				return
			}
			require.Equal(t, tc.want, got)
		})
	}
}
