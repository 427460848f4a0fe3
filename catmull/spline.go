package catmull

import (
	"fmt"
	"math"

	"github.com/npillmayer/splinepath"
)

// Validate checks if control points and configuration are suitable for
// spline construction.
func Validate(points []splinepath.V3, cfg Config) error {
	if len(points) < MinPoints {
		return fmt.Errorf("%w, got %d", ErrTooFewPoints, len(points))
	}
	if cfg.Subdivisions < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidSubdivisions, cfg.Subdivisions)
	}
	if math.IsNaN(cfg.Tension) || math.IsInf(cfg.Tension, 0) {
		return fmt.Errorf("%w, got %g", ErrInvalidTension, cfg.Tension)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("%w at point %d", ErrInvalidPoint, i)
		}
	}
	return nil
}

// Calculate constructs a cardinal spline through the control points and
// returns its samples. This is the central API function of this package.
//
// Each segment contributes cfg.Subdivisions+1 samples, the last of which is
// identical to the segment's end point, and thus to the first sample of the
// following segment. Cyclic splines have len(points) segments, open splines
// len(points)−1.
//
// Calculate fails with an error wrapping ErrInvalidInput if there are fewer
// than 3 points or less than 1 subdivision. It never returns partial
// results. The function is deterministic: identical input produces
// identical output.
func Calculate(points []splinepath.V3, cfg Config) ([]splinepath.V3, error) {
	segments, err := Segments(points, cfg)
	if err != nil {
		return nil, err
	}
	samples := make([]splinepath.V3, 0, len(segments)*(cfg.Subdivisions+1))
	for _, seg := range segments {
		samples = append(samples, seg.Sample(cfg.Subdivisions)...)
	}
	tracer().Infof("spline through %d points [%s]: %d segments, %d samples",
		len(points), cfg, len(segments), len(samples))
	return samples, nil
}

// CalculateDefault is Calculate with DefaultConfig().
func CalculateDefault(points []splinepath.V3) ([]splinepath.V3, error) {
	return Calculate(points, DefaultConfig())
}

// MustCalculate is a helper which panics on validation errors.
func MustCalculate(points []splinepath.V3, cfg Config) []splinepath.V3 {
	samples, err := Calculate(points, cfg)
	if err != nil {
		panic(err)
	}
	return samples
}
