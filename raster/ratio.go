package raster

import "math"

// Ratio is the horizontal stretch applied to each pixel when it is displayed.
// It is never applied to the pixel data itself.
type Ratio float32

// Supported ratios
const (
	Half   Ratio = 0.5
	Normal Ratio = 1.0
	Double Ratio = 2.0
)

// NormalizeRatio maps any value onto one of the supported ratios
func NormalizeRatio(f float32) Ratio {
	switch {
	case math.IsNaN(float64(f)), f < 0, f > 2:
		return Normal
	case f < 1:
		return Half
	case f > 1:
		return Double
	default:
		return Normal
	}
}

// Valid reports whether r is one of the supported ratios
func (r Ratio) Valid() bool {
	return r == Half || r == Normal || r == Double
}

func (r Ratio) String() string {
	switch r {
	case Half:
		return "Half Pixel"
	case Normal:
		return "Normal"
	case Double:
		return "Double Pixel"
	default:
		return "Unknown"
	}
}
