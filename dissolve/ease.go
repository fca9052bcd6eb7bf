package dissolve

import "golang.org/x/exp/constraints"

// Clamp restricts x to the range [min, max].
func Clamp[F constraints.Float](x, min, max F) F {
	if x < min {
		return min
	} else if x > max {
		return max
	}
	return x
}

// Saturate clamps x to [0, 1].
func Saturate[F constraints.Float](x F) F {
	return Clamp(x, 0, 1)
}

// Lerp linearly interpolates from a to b.
func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

// Smoothstep is the Hermite ease between edge0 and edge1, returning 0 below
// edge0 and 1 above edge1.
func Smoothstep[F constraints.Float](edge0, edge1, x F) F {
	t := Saturate((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
