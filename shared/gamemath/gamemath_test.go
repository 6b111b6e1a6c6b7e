package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 3.0, ClampSpeed(4, 3))
	assert.Equal(t, -3.0, ClampSpeed(-4, 3))
	assert.Equal(t, 1.5, ClampSpeed(1.5, 3))
}

func TestDisplacement(t *testing.T) {
	assert.InDelta(t, 0.1, Displacement(1, 0, 0.1), 1e-12)
	assert.InDelta(t, 0.1045, Displacement(1, 0.9, 0.1), 1e-12)
	assert.InDelta(t, 0.75, Displacement(8, -10, 0.1), 1e-12)
}

func TestPixelCrossingTime(t *testing.T) {
	tests := []struct {
		name string
		v, a float64
	}{
		{"constant speed", 1, 0},
		{"accelerating", 1, 0.9},
		{"negative accelerating", -1, -0.9},
		{"from rest", 0, -10},
		{"rising against gravity", 8, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := PixelCrossingTime(tt.v, tt.a, 100)
			assert.Greater(t, dt, 0.0)
			assert.InDelta(t, 1.0, math.Abs(100*Displacement(tt.v, tt.a, dt)), 1e-9)
		})
	}
}

func TestPixelCrossingTimeAtRest(t *testing.T) {
	assert.True(t, math.IsInf(PixelCrossingTime(0, 0, 100), 1))
}

func TestPixelCrossingTimeStopsBeforePixel(t *testing.T) {
	// 0.001 units/s decelerating at 10 units/s² stops within 0.0001 s,
	// long before covering a pixel.
	dt := PixelCrossingTime(0.001, -10, 100)
	assert.InDelta(t, 0.0001, dt, 1e-12)
}

func TestTimeToCap(t *testing.T) {
	assert.InDelta(t, 2/0.9, TimeToCap(1, 0.9, 3), 1e-12)
	assert.InDelta(t, 2/0.9, TimeToCap(-1, -0.9, 3), 1e-12)
	assert.True(t, math.IsInf(TimeToCap(3, 0.9, 3), 1))
	assert.True(t, math.IsInf(TimeToCap(1, -0.9, 3), 1))
	assert.True(t, math.IsInf(TimeToCap(1, 0, 3), 1))
}

func TestMinPositive(t *testing.T) {
	assert.Equal(t, 0.5, MinPositive(math.Inf(1), 0.5, 2, 0, -1))
	assert.True(t, math.IsInf(MinPositive(), 1))
}

func TestBoxAt(t *testing.T) {
	b := BoxAt(10.7, 3.2, 5, 8)
	assert.Equal(t, Box{X: 10, Y: 3, W: 5, H: 8}, b)
	assert.Equal(t, 15, b.Right())
	assert.Equal(t, 11, b.Top())
}

func TestBoxIntersects(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"overlapping", Box{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right", Box{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching top", Box{X: 0, Y: 10, W: 10, H: 10}, false},
		{"one pixel", Box{X: 9, Y: 9, W: 1, H: 1}, true},
		{"empty", Box{X: 2, Y: 2, W: 0, H: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a))
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 4, H: 6}
	assert.Equal(t, Box{X: 9, Y: 20, W: 1, H: 6}, b.LeftEdge())
	assert.Equal(t, Box{X: 14, Y: 20, W: 1, H: 6}, b.RightEdge())
	assert.Equal(t, Box{X: 10, Y: 26, W: 4, H: 1}, b.TopEdge())
	assert.Equal(t, Box{X: 10, Y: 19, W: 4, H: 1}, b.BottomEdge())
	assert.False(t, b.Intersects(b.LeftEdge()))
}
