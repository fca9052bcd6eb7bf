package dissolve

import "github.com/unixpickle/model3d/model3d"

// MaxSweepIrregularity is the largest per-primitive speedup of the sweep
// front.
const MaxSweepIrregularity = 1.25

// AnimationParameter computes the animation progress in [0, 1] of an
// object-space position relative to a wipe plane.
//
// The progress is zero wherever the world-space position is on or behind
// the plane, and grows with the distance in front of it. Each primitive
// advances at a slightly different rate determined by its ID, which does
// not depend on the plane and is therefore the same for both frames.
func AnimationParameter(plane Plane, pos model3d.Coord3D, id uint32, toWorld ToWorld) float64 {
	d := plane.SignedDist(toWorld.Apply(pos))
	r := Lerp(1, MaxSweepIrregularity, StreamHash(id, SaltSweep))
	return Saturate(d * r)
}
