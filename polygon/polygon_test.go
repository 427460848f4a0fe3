package polygon

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinepath"
	"github.com/npillmayer/splinepath/catmull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(splinepath.V(0, 0, 0)).Knot(splinepath.V(1, 2, 3)).
		Knot(splinepath.V(3, 0, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.True(t, pg.IsCycle())
	assert.Equal(t, splinepath.V(1, 0, 3), pg.Z(1))
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(splinepath.V(0, 0, 5), splinepath.V(4, 0, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	assert.Equal(t, "(0,1) -- (4,1) -- (4,5) -- (0,5) -- cycle", AsString(box))
	assert.Equal(t, 16.0, box.Area())
	min, max := box.BoundingBox()
	assert.Equal(t, splinepath.V(0, 0, 1), min)
	assert.Equal(t, splinepath.V(4, 0, 5), max)
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(splinepath.V(0, 0, 0), splinepath.V(4, 0, 4))
	assert.True(t, box.Contains(splinepath.V(2, 7, 3)), "height must not matter")
	assert.False(t, box.Contains(splinepath.V(5, 0, 3)))
	assert.False(t, NullPolygon().Contains(splinepath.V(0, 0, 0)))
}

func TestBooleanOperations(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(splinepath.V(0, 0, 0), splinepath.V(4, 0, 4))
	b := Box(splinepath.V(2, 0, 2), splinepath.V(6, 0, 6))
	in := a.Intersection(b)
	require.Len(t, in, 1)
	assert.InDelta(t, 4.0, in[0].Area(), 1e-9)
	un := a.Union(b)
	require.Len(t, un, 1)
	assert.InDelta(t, 28.0, un[0].Area(), 1e-9)
	diff := a.Difference(b)
	require.Len(t, diff, 1)
	assert.InDelta(t, 12.0, diff[0].Area(), 1e-9)
	far := Box(splinepath.V(10, 0, 10), splinepath.V(11, 0, 11))
	assert.Empty(t, a.Intersection(far))
}

func TestFootprint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	diamond := []splinepath.V3{
		splinepath.V(0, 0, 0), splinepath.V(1, 0, 1), splinepath.V(2, 0, 0), splinepath.V(1, 0, -1),
	}
	samples, err := catmull.Calculate(diamond, catmull.Config{Tension: 0.5, Subdivisions: 4, Closed: true})
	require.NoError(t, err)
	fp := Footprint(samples)
	assert.Equal(t, 16, fp.N(), "joins and the closing point are merged")
	assert.True(t, fp.IsCycle())
	assert.Greater(t, fp.Area(), 2.0, "spline bulges beyond its control diamond")
	assert.True(t, fp.Contains(splinepath.V(1, 5, 0)))
	assert.False(t, fp.Contains(splinepath.V(3, 0, 0)))
	min, max := fp.BoundingBox()
	assert.LessOrEqual(t, min.X, 0.0)
	assert.GreaterOrEqual(t, max.X, 2.0)
}
