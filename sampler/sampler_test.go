package sampler

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinepath"
	"github.com/npillmayer/splinepath/catmull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the eight-knot loop of the demo scene
func loop() []splinepath.V3 {
	return []splinepath.V3{
		splinepath.V(0, -0.375, 7),
		splinepath.V(-6, -0.375, 5),
		splinepath.V(-8, -0.375, 1),
		splinepath.V(-4, -0.375, -6),
		splinepath.V(0, -0.375, -7),
		splinepath.V(1, -0.375, -4),
		splinepath.V(4, -0.375, -3),
		splinepath.V(8, -0.375, 7),
	}
}

func mustBuild(t *testing.T, ps *PathSampler, minSpacing float64) []splinepath.V3 {
	t.Helper()
	pts, err := ps.Build(loop(), 0.5, 5, minSpacing)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return pts
}

func TestQueryBeforeBuild(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := New()
	_, err := ps.PointAt(0.5)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	assert.Nil(t, ps.Points())
	assert.Equal(t, 0, ps.Len())
	assert.False(t, ps.IsBuilt())
}

func TestZeroSpacingKeepsRaw(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	raw, err := catmull.Calculate(loop(), catmull.Config{Tension: 0.5, Subdivisions: 5, Closed: true})
	require.NoError(t, err)
	ps := New()
	pts := mustBuild(t, ps, 0)
	assert.Equal(t, raw, pts)
	assert.Equal(t, raw, ps.Points())
	assert.True(t, ps.IsBuilt())
}

func TestSpacingIsMonotonic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := New()
	prev := math.MaxInt
	for _, spacing := range []float64{0, 0.05, DefaultMinSpacing, 0.5, 1, 2.5, 100} {
		pts := mustBuild(t, ps, spacing)
		if len(pts) > prev {
			t.Errorf("min spacing %g produced %d samples, more than %d before", spacing, len(pts), prev)
		}
		prev = len(pts)
		assert.Equal(t, loop()[0], pts[0], "first raw sample must always be kept")
		for i := 1; i < len(pts); i++ {
			if d := pts[i-1].Distance(pts[i]); d < spacing {
				t.Errorf("spacing %g: samples %d and %d are only %g apart", spacing, i-1, i, d)
			}
		}
	}
	assert.Equal(t, 1, prev, "huge spacing keeps the first sample only")
}

func TestDuplicateJoinsAreRemoved(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := New()
	pts := mustBuild(t, ps, 1e-9)
	assert.Equal(t, len(loop())*5+1, len(pts))
}

func TestPointAt(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := New()
	pts := mustBuild(t, ps, DefaultMinSpacing)
	n := len(pts)
	require.Greater(t, n, 10)
	cases := []struct {
		alpha float64
		index int
	}{
		{0, 0},
		{-0.5, 0},
		{math.NaN(), 0},
		{0.5, n / 2},
		{3.5 / float64(n), 3},
		{1, n - 1},
		{1.7, n - 1},
		{math.Inf(1), n - 1},
	}
	for _, c := range cases {
		p, err := ps.PointAt(c.alpha)
		require.NoError(t, err)
		assert.Equal(t, pts[c.index], p, "alpha = %g", c.alpha)
	}
}

func TestFailedBuildKeepsState(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := New()
	pts := mustBuild(t, ps, DefaultMinSpacing)
	_, err := ps.Build(loop()[:2], 0.5, 5, DefaultMinSpacing)
	assert.True(t, errors.Is(err, catmull.ErrTooFewPoints), "got %v", err)
	_, err = ps.Build(loop(), 0.5, 0, DefaultMinSpacing)
	assert.True(t, errors.Is(err, catmull.ErrInvalidSubdivisions), "got %v", err)
	assert.Equal(t, pts, ps.Points())
}

func TestPointsAreCopies(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := New()
	pts := mustBuild(t, ps, DefaultMinSpacing)
	first := pts[0]
	pts[0] = splinepath.V(99, 99, 99)
	got := ps.Points()
	got[1] = splinepath.V(99, 99, 99)
	p, err := ps.PointAt(0)
	require.NoError(t, err)
	assert.Equal(t, first, p)
	assert.NotEqual(t, got[1], ps.Points()[1])
}

func TestBuildOpenPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := New()
	cfg := catmull.Config{Tension: 0.5, Subdivisions: 2, Closed: false}
	pts, err := ps.BuildConfig([]splinepath.V3{
		splinepath.V(0, 0, 0), splinepath.V(1, 0, 0), splinepath.V(2, 0, 0),
	}, cfg, 0.5)
	require.NoError(t, err)
	// raw x: 0, 0.4375, 1, 1, 1.5625, 2
	assert.Equal(t, []splinepath.V3{
		splinepath.V(0, 0, 0), splinepath.V(1, 0, 0), splinepath.V(1.5625, 0, 0),
	}, pts)
	last, err := ps.PointAt(1)
	require.NoError(t, err)
	assert.Equal(t, splinepath.V(1.5625, 0, 0), last)
}

func TestFilter(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Nil(t, Filter(nil, 1))
	raw := []splinepath.V3{
		splinepath.V(0, 0, 0), splinepath.V(0.5, 0, 0), splinepath.V(1, 0, 0),
		splinepath.V(1.2, 0, 0), splinepath.V(3, 0, 0),
	}
	assert.Equal(t, raw, Filter(raw, 0))
	assert.Equal(t, raw, Filter(raw, -1))
	assert.Equal(t, []splinepath.V3{raw[0], raw[2], raw[4]}, Filter(raw, 1))
	assert.Equal(t, splinepath.V(0.5, 0, 0), raw[1], "input must not be modified")
}

func TestConcurrentReaders(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := New()
	mustBuild(t, ps, DefaultMinSpacing)
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				if _, err := ps.PointAt(float64(k) / 100); err != nil {
					errs <- err
					return
				}
			}
		}(i)
	}
	for _, spacing := range []float64{0.2, 0.3, 0.4} {
		if _, err := ps.Build(loop(), 0.5, 5, spacing); err != nil {
			errs <- err
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}
}

// Move along a closed path at constant progress rate.
func ExamplePathSampler_PointAt() {
	ps := New()
	_, err := ps.Build([]splinepath.V3{
		splinepath.V(0, 0, 0),
		splinepath.V(1, 0, 1),
		splinepath.V(2, 0, 0),
		splinepath.V(1, 0, -1),
	}, 0.5, 4, DefaultMinSpacing)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, alpha := range []float64{0, 1} {
		p, _ := ps.PointAt(alpha)
		fmt.Println(p)
	}
	// Output:
	// (0,0,0)
	// (0,0,0)
}
