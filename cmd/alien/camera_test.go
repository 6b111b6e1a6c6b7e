package main

import (
	"testing"

	"github.com/automoto/jumpingalien/animation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraClampsToLevel(t *testing.T) {
	c := newCamera(100, 50, 1000, 400)

	c.snap(0, 0)
	assert.Equal(t, float32(0), c.x)
	assert.Equal(t, float32(0), c.y)

	c.snap(2000, 2000)
	assert.Equal(t, float32(900), c.x)
	assert.Equal(t, float32(350), c.y)

	c.snap(500, 200)
	assert.Equal(t, float32(450), c.x)
	assert.Equal(t, float32(175), c.y)
}

func TestCameraSmallLevelPinnedToOrigin(t *testing.T) {
	c := newCamera(100, 50, 40, 20)
	c.snap(30, 10)
	assert.Equal(t, float32(0), c.x)
	assert.Equal(t, float32(0), c.y)
}

func TestCameraEasesToTarget(t *testing.T) {
	c := newCamera(100, 50, 1000, 400)
	c.snap(50, 25)

	c.follow(550, 25)
	require.NotNil(t, c.tweenX)

	c.update(0.01)
	assert.Greater(t, c.x, float32(0))
	assert.Less(t, c.x, float32(500))

	for i := 0; i < 100; i++ {
		c.update(0.01)
	}
	assert.InDelta(t, 500, c.x, 0.001)
	assert.Nil(t, c.tweenX)
}

func TestCameraIgnoresSubPixelMoves(t *testing.T) {
	c := newCamera(100, 50, 1000, 400)
	c.snap(500, 200)

	c.follow(500.5, 200.5)
	assert.Nil(t, c.tweenX)
	assert.Nil(t, c.tweenY)
}

func TestDefaultFramesFormAValidSpriteSet(t *testing.T) {
	frames := defaultFrames()
	perSide, err := animation.FramesPerSide(len(frames))
	require.NoError(t, err)
	assert.Equal(t, 11, perSide)

	assert.Less(t, frames[animation.FrameDuck].Y, frames[animation.FrameIdle].Y)
	assert.Equal(t, frames[animation.FrameDuckLeft], frames[animation.FrameDuck])
}
