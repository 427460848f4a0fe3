package splinepath

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Zap(a) != 0 {
		t.Errorf("Expected zapped a to be 0, is %g", Zap(a))
	}
}

func TestVectorBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := V(3, 2, 1)
	q := V(-3, -2, -1)
	r := p.Add(q)
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0,0), is %v", r)
	}
	assert.Equal(t, V(6, 4, 2), p.Sub(q))
	assert.Equal(t, V(1.5, 1, 0.5), p.Scaled(0.5))
	assert.Equal(t, 14.0, p.Dot(p))
}

func TestDistance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 5.0, V(0, 10, 0).Distance(V(0, 5, 0)))
	assert.Equal(t, 3.0, V(1, 2, 2).Length())
	assert.Equal(t, V(1, 1, 1), V(0, 0, 0).Lerp(V(2, 2, 2), 0.5))
}

func TestRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := V(1, 3, 0).RotatedY(180 * Deg2Rad)
	if !p.Equal(V(-1, 3, 0)) {
		t.Errorf("Expected (1,3,0) rotated by 180° to be (-1,3,0), is %v", p)
	}
}

func TestFinite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, V(1, 2, 3).IsFinite())
	assert.False(t, V(math.NaN(), 2, 3).IsFinite())
	assert.False(t, V(1, math.Inf(-1), 3).IsFinite())
}

func TestFlatten(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []V3{V(1, 2, 3), V(4, 5, 6)}
	flat := Flatten(pts)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, flat)
	back, err := Unflatten(flat)
	assert.NoError(t, err)
	assert.Equal(t, pts, back)
	_, err = Unflatten([]float64{1, 2})
	assert.Error(t, err)
}
