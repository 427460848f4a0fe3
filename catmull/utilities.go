package catmull

import (
	"fmt"

	"github.com/npillmayer/splinepath"
)

func ptstring(p splinepath.V3, issample bool) string {
	if !p.IsFinite() {
		return "(<unknown>)"
	}
	if issample {
		return fmt.Sprintf("(%.4f,%.4f,%.4f)", round(p.X), round(p.Y), round(p.Z))
	}
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round(p.X), round(p.Y), round(p.Z))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}

// SegmentCount returns the number of segments a spline through n control
// points has.
func SegmentCount(n int, closed bool) int {
	if closed {
		return n
	}
	return n - 1
}

// SampleCount returns the number of samples Calculate produces for n
// control points and a configuration, or 0 for invalid input.
func SampleCount(n int, cfg Config) int {
	if n < MinPoints || cfg.Subdivisions < 1 {
		return 0
	}
	return SegmentCount(n, cfg.Closed) * (cfg.Subdivisions + 1)
}

// Length returns the length of the polyline through the samples.
func Length(samples []splinepath.V3) float64 {
	l := 0.0
	for i := 1; i < len(samples); i++ {
		l += samples[i-1].Distance(samples[i])
	}
	return l
}
