package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  int
	}{
		{"idle", State{}, FrameIdle},
		{"idle ducking", State{Ducking: true}, FrameDuck},
		{"was moving right", State{LastMove: 0.4}, FrameFaceRight},
		{"was moving left", State{LastMove: -0.1}, FrameFaceLeft},
		{"jumping right", State{SpeedX: 1, LastMove: 1, Airborne: true}, FrameJumpRight},
		{"jumping left", State{SpeedX: -2, LastMove: -1, Airborne: true}, FrameJumpLeft},
		{"ducking while moving right", State{SpeedX: 1, LastMove: 1, Ducking: true}, FrameDuckRight},
		{"ducking while moving left in the air", State{SpeedX: -1, Ducking: true, Airborne: true}, FrameDuckLeft},
		{"ducking after moving right", State{LastMove: 0.5, Ducking: true}, FrameDuckRight},
		{"ducking after moving left", State{LastMove: -0.5, Ducking: true}, FrameDuckLeft},
		{"running right first frame", State{SpeedX: 1, LastMove: 1, FramesPerSide: 3}, 8},
		{"running right third frame", State{SpeedX: 1, Clock: 0.16, FramesPerSide: 3}, 10},
		{"running right wraps", State{SpeedX: 1, Clock: 0.23, FramesPerSide: 3}, 8},
		{"running left first frame", State{SpeedX: -1, FramesPerSide: 3}, 11},
		{"running left second frame", State{SpeedX: -3, Clock: 0.08, FramesPerSide: 3}, 12},
		{"no running cycle", State{SpeedX: 1}, FrameIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.state))
		})
	}
}

func TestSelectIsDeterministic(t *testing.T) {
	s := State{SpeedX: 2.5, LastMove: 1, Clock: 0.3, FramesPerSide: 5}
	first := Select(s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Select(s))
	}
}

func TestSelectStaysInSet(t *testing.T) {
	const total = 16
	n, err := FramesPerSide(total)
	require.NoError(t, err)

	for _, vx := range []float64{-3, -1, 0, 1, 3} {
		for _, last := range []float64{-1, -0.5, 0, 0.5, 1} {
			for _, duck := range []bool{false, true} {
				for _, air := range []bool{false, true} {
					for clock := 0.0; clock < CyclePeriod(n); clock += 0.01 {
						f := Select(State{SpeedX: vx, LastMove: last, Ducking: duck, Airborne: air, Clock: clock, FramesPerSide: n})
						assert.GreaterOrEqual(t, f, 0)
						assert.Less(t, f, total)
					}
				}
			}
		}
	}
}

func TestFramesPerSide(t *testing.T) {
	n, err := FramesPerSide(10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = FramesPerSide(22)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	for _, total := range []int{0, 8, 9, 11} {
		_, err := FramesPerSide(total)
		assert.Error(t, err, "total=%d", total)
	}
}

func TestWrapClock(t *testing.T) {
	const n = 4
	period := CyclePeriod(n)
	assert.InDelta(t, 0.3, period, 1e-12)

	for _, c := range []float64{0, 0.1, 0.29} {
		assert.InDelta(t, c, WrapClock(c, n), 1e-12)
	}
	for _, c := range []float64{0.3, 0.45, 1.0, 7.77} {
		want := WrapClock(c-period, n)
		assert.InDelta(t, want, WrapClock(c, n), 1e-9, "clock=%v", c)
		assert.Less(t, WrapClock(c, n), period)
	}
	assert.InDelta(t, 0.2, WrapClock(-0.1, n), 1e-12)
	assert.Equal(t, 0.0, WrapClock(5, 0))
}

func TestFrameIndex(t *testing.T) {
	assert.Equal(t, 0, FrameIndex(0))
	assert.Equal(t, 0, FrameIndex(0.074))
	assert.Equal(t, 1, FrameIndex(0.075))
	assert.Equal(t, 4, FrameIndex(0.31))
}
