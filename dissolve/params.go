package dissolve

import "github.com/unixpickle/model3d/model3d"

// A Plane is the set of points p where Normal.Dot(p) == Distance.
type Plane struct {
	Normal   model3d.Coord3D
	Distance float64
}

// SignedDist is positive on the side the normal points toward.
func (p Plane) SignedDist(c model3d.Coord3D) float64 {
	return p.Normal.Dot(c) - p.Distance
}

// EffectParameters configure the effect for one frame.
//
// They are shared by every primitive of the frame and must not be modified
// while a frame is being transformed.
type EffectParameters struct {
	// CellDensity is the probability that an animated primitive becomes a
	// cell rather than shrinking away.
	CellDensity float64

	// CellSize is the half-extent of a fully grown cell.
	CellSize float64

	// HighlightProbability is the probability that a cell stays at full
	// emission instead of ramping to edge-only emission.
	HighlightProbability float64

	Inflation float64
	Swirl     float64
	Scatter   float64

	// Origin is the pivot for swirling and scattering.
	Origin model3d.Coord3D

	// Plane and PrevPlane are the wipe planes for the current and previous
	// frames, in world space.
	Plane     Plane
	PrevPlane Plane
}

// A Sweep moves a wipe plane along its normal at a constant speed.
type Sweep struct {
	Normal model3d.Coord3D
	Start  float64
	Speed  float64
}

// Plane returns the wipe plane at time t.
//
// The normal is normalized, so the plane distance is measured in world units.
// A zero normal yields a plane facing +Y.
func (s Sweep) Plane(t float64) Plane {
	n := s.Normal
	if norm := n.Norm(); norm == 0 {
		n = model3d.Y(1)
	} else {
		n = n.Scale(1 / norm)
	}
	return Plane{
		Normal:   n,
		Distance: s.Start + s.Speed*t,
	}
}

// Params copies base and fills in the planes for time t and the previous
// frame at t-dt.
func (s Sweep) Params(base EffectParameters, t, dt float64) EffectParameters {
	base.Plane = s.Plane(t)
	base.PrevPlane = s.Plane(t - dt)
	return base
}
