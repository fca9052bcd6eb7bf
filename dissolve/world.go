package dissolve

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/unixpickle/model3d/model3d"
)

// ToWorld maps an object-space position into world space.
//
// A nil ToWorld is the identity.
type ToWorld func(c model3d.Coord3D) model3d.Coord3D

// Apply applies the conversion, treating nil as the identity.
func (t ToWorld) Apply(c model3d.Coord3D) model3d.Coord3D {
	if t == nil {
		return c
	}
	return t(c)
}

// MatrixToWorld creates a ToWorld from a homogeneous object-to-world matrix.
func MatrixToWorld(m mgl64.Mat4) ToWorld {
	return func(c model3d.Coord3D) model3d.Coord3D {
		v := mgl64.TransformCoordinate(mgl64.Vec3{c.X, c.Y, c.Z}, m)
		return model3d.XYZ(v[0], v[1], v[2])
	}
}
