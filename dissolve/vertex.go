package dissolve

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// NoQuadCoord marks vertices which are not part of a cell.
var NoQuadCoord = model2d.XY(-1, -1)

// Emission levels understood by downstream shading.
const (
	EmissionOff  = 0.0
	EmissionFull = 1.0
	EmissionEdge = 2.0
)

// An InputTriangle is one primitive of the source mesh.
type InputTriangle struct {
	// ID identifies the primitive. It must be the same for the current and
	// previous frame evaluation of a triangle.
	ID uint32

	Positions [3]model3d.Coord3D

	// Normals are optional per-vertex normals. If nil, the face normal is
	// used.
	Normals *[3]model3d.Coord3D

	// PrevPositions are optional positions from the previous frame. If nil,
	// the triangle is assumed to be static.
	PrevPositions *[3]model3d.Coord3D
}

// NewInputTriangle creates a static InputTriangle without normals.
func NewInputTriangle(id uint32, t *model3d.Triangle) InputTriangle {
	return InputTriangle{ID: id, Positions: *t}
}

// TriangleInputs converts triangles into inputs, using each triangle's
// index as its ID.
func TriangleInputs(tris []*model3d.Triangle) []InputTriangle {
	res := make([]InputTriangle, len(tris))
	for i, t := range tris {
		res[i] = NewInputTriangle(uint32(i), t)
	}
	return res
}

// Previous returns the previous frame positions.
func (i *InputTriangle) Previous() [3]model3d.Coord3D {
	if i.PrevPositions == nil {
		return i.Positions
	}
	return *i.PrevPositions
}

// Normal returns the normal of vertex idx.
func (i *InputTriangle) Normal(idx int) model3d.Coord3D {
	if i.Normals != nil {
		return i.Normals[idx]
	}
	t := model3d.Triangle(i.Positions)
	if t.Area() == 0 {
		return model3d.Y(1)
	}
	return t.Normal()
}

// Center returns the centroid of the current positions.
func (i *InputTriangle) Center() model3d.Coord3D {
	return centroid(i.Positions)
}

// PrevCenter returns the centroid of the previous positions.
func (i *InputTriangle) PrevCenter() model3d.Coord3D {
	return centroid(i.Previous())
}

func centroid(p [3]model3d.Coord3D) model3d.Coord3D {
	return p[0].Add(p[1]).Add(p[2]).Scale(1.0 / 3)
}

// A Vertex is one output record of the transform.
type Vertex struct {
	Position     model3d.Coord3D
	PrevPosition model3d.Coord3D
	Normal       model3d.Coord3D

	// QuadCoord is the corner of the cell, or NoQuadCoord.
	QuadCoord model2d.Coord

	// Emission is EmissionOff, EmissionFull, EmissionEdge, or a value in
	// between.
	Emission float64

	// Random is a per-primitive value in [0, 1).
	Random float64
}

var quadCoords = [4]model2d.Coord{
	model2d.XY(0, 0),
	model2d.XY(1, 0),
	model2d.XY(0, 1),
	model2d.XY(1, 1),
}
