package dissolve

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

const (
	// swirlEpsilon keeps the inverse distance swirl bounded near the axis.
	swirlEpsilon = 1e-3

	// degenerateEpsilon is the horizontal distance below which a cell has
	// no outward direction.
	degenerateEpsilon = 1e-8

	// degenerateArea is the cross product magnitude below which a cell has
	// no well defined facing.
	degenerateArea = 1e-24
)

// A CellQuad is the quad produced for one primitive in one frame.
//
// The corners are ordered to match quad coordinates (0, 0), (1, 0), (0, 1)
// and (1, 1), forming a triangle strip.
type CellQuad struct {
	Corners [4]model3d.Coord3D
	Normal  model3d.Coord3D
}

// CellAnimation turns a triangle into a cell at the given progress.
//
// During the first fifth of the animation the triangle inflates around its
// center while blending into a quad. The quad then swirls around the
// vertical axis through the effect origin, drifts outward, and finally
// shrinks to nothing as param reaches 1.
//
// The result depends only on the arguments, so calling it separately for
// the current and previous frame yields consistent motion.
func CellAnimation(
	p *EffectParameters,
	id uint32,
	param float64,
	tri [3]model3d.Coord3D,
	center model3d.Coord3D,
) *CellQuad {
	// Inflation.
	inflate := 1 + p.Inflation*Smoothstep(0, 0.2, param)
	var inflated [3]model3d.Coord3D
	for i, c := range tri {
		inflated[i] = center.Add(c.Sub(center).Scale(inflate))
	}

	// Swirl. The swirl curve spans [0, 2] even though param never exceeds
	// 1, which keeps the rotation accelerating over the whole animation.
	rel := center.Sub(p.Origin)
	swirlDir := StreamHash(id, SaltSwirl)*2 - 1
	angle := Smoothstep(0, 2, param) * 2 * swirlDir * p.Swirl / (horizontalNorm(rel) + swirlEpsilon)
	rel = rotateY(rel, angle)

	tx, ty, tz := tangentFrame(rel)

	size := p.CellSize * (1 - Smoothstep(0.8, 1, param))
	size *= Lerp(0.5, 1, StreamHash(id, SaltCellSize))

	// Scatter horizontally away from the origin.
	scatter := 1 + p.Scatter*StreamHash(id, SaltScatter)*Smoothstep(0.1, 1, param)
	rel.X *= scatter
	rel.Z *= scatter
	quadCenter := rel.Add(p.Origin)

	sx := tx.Scale(size)
	sy := ty.Scale(size)
	quad := [4]model3d.Coord3D{
		quadCenter.Sub(sx).Sub(sy),
		quadCenter.Add(sx).Sub(sy),
		quadCenter.Sub(sx).Add(sy),
		quadCenter.Add(sx).Add(sy),
	}
	from := [4]model3d.Coord3D{inflated[0], inflated[1], inflated[2], inflated[2]}

	t2q := Smoothstep(0, 0.2, param)
	res := &CellQuad{}
	for i := range res.Corners {
		res.Corners[i] = lerpCoord(from[i], quad[i], t2q)
	}

	n := res.Corners[1].Sub(res.Corners[0]).Cross(res.Corners[2].Sub(res.Corners[0]))
	if norm := n.Norm(); norm > degenerateArea && !math.IsInf(norm, 0) {
		res.Normal = n.Scale(1 / norm)
	} else {
		// The cell has collapsed to a point or a line.
		res.Normal = tz
	}
	return res
}

// tangentFrame creates an orthonormal frame with y pointing up and z pointing
// horizontally away from the effect origin.
//
// Directly above or below the origin there is no horizontal direction, in
// which case z is the world +Z axis.
func tangentFrame(rel model3d.Coord3D) (tx, ty, tz model3d.Coord3D) {
	ty = model3d.Y(1)
	tz = model3d.XYZ(rel.X, 0, rel.Z)
	if norm := tz.Norm(); norm < degenerateEpsilon {
		tz = model3d.Z(1)
	} else {
		tz = tz.Scale(1 / norm)
	}
	tx = ty.Cross(tz).Normalize()
	return
}

func horizontalNorm(c model3d.Coord3D) float64 {
	return math.Sqrt(c.X*c.X + c.Z*c.Z)
}

// rotateY rotates c in the XZ plane.
func rotateY(c model3d.Coord3D, theta float64) model3d.Coord3D {
	sin, cos := math.Sincos(theta)
	return model3d.XYZ(
		cos*c.X-sin*c.Z,
		c.Y,
		sin*c.X+cos*c.Z,
	)
}

// lerpCoord returns exactly a at t=0 and exactly b at t=1.
func lerpCoord(a, b model3d.Coord3D, t float64) model3d.Coord3D {
	return a.Scale(1 - t).Add(b.Scale(t))
}
