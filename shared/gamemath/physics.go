package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Displacement is the constant-acceleration distance covered in dt:
// v*dt + a*dt²/2. Units follow the inputs.
func Displacement(v, a, dt float64) float64 {
	return v*dt + a*dt*dt/2
}

// PixelCrossingTime returns how long a body moving at v under acceleration a
// needs to cover one pixel, given pixelsPerUnit pixels per distance-unit.
// A body that decelerates to rest before covering a pixel returns the time to
// rest instead. A body at rest with no acceleration never crosses: +Inf.
func PixelCrossingTime(v, a, pixelsPerUnit float64) float64 {
	pixel := 1 / pixelsPerUnit
	speed := math.Abs(v)

	// acceleration measured along the direction of travel
	along := a
	switch {
	case v < 0:
		along = -a
	case v == 0:
		along = math.Abs(a)
	}

	if along == 0 {
		if speed == 0 {
			return math.Inf(1)
		}
		return pixel / speed
	}

	disc := speed*speed + 2*along*pixel
	if disc < 0 {
		return speed / -along
	}
	return (math.Sqrt(disc) - speed) / along
}

// TimeToCap returns how long acceleration a needs to bring |v| up to limit.
// It is +Inf when a does not push |v| toward the limit or the limit is
// already reached.
func TimeToCap(v, a, limit float64) float64 {
	if a == 0 || (v > 0 && a < 0) || (v < 0 && a > 0) {
		return math.Inf(1)
	}
	gap := limit - math.Abs(v)
	if gap <= 0 {
		return math.Inf(1)
	}
	return gap / math.Abs(a)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// MinPositive returns the smallest of the given values.
func MinPositive(values ...float64) float64 {
	m := math.Inf(1)
	for _, v := range values {
		if v > 0 && v < m {
			m = v
		}
	}
	return m
}
