package dissolve

import (
	"fmt"
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// A Branch is the output mode chosen for a primitive.
type Branch int

const (
	// PassThrough emits the original triangle.
	PassThrough Branch = iota

	// Shrink collapses the triangle toward its center.
	Shrink

	// Cell replaces the triangle with an animated quad.
	Cell
)

func (b Branch) String() string {
	switch b {
	case PassThrough:
		return "pass-through"
	case Shrink:
		return "shrink"
	case Cell:
		return "cell"
	default:
		return fmt.Sprintf("Branch(%d)", int(b))
	}
}

// Count returns the number of vertices emitted for the branch.
func (b Branch) Count() int {
	if b == Cell {
		return 4
	}
	return 3
}

// An Effect applies the dissolve transform to primitives.
type Effect struct {
	Params  EffectParameters
	ToWorld ToWorld
}

// A Decision is the branch taken for a primitive along with the values
// computed while choosing it.
type Decision struct {
	Branch Branch

	Param     float64
	PrevParam float64

	Center     model3d.Coord3D
	PrevCenter model3d.Coord3D
}

// Decide chooses the branch for a triangle.
func (e *Effect) Decide(tri *InputTriangle) Decision {
	d := Decision{
		Center:     tri.Center(),
		PrevCenter: tri.PrevCenter(),
	}
	d.Param = AnimationParameter(e.Params.Plane, d.Center, tri.ID, e.ToWorld)
	d.PrevParam = AnimationParameter(e.Params.PrevPlane, d.PrevCenter, tri.ID, e.ToWorld)

	if d.Param == 0 {
		d.Branch = PassThrough
	} else if StreamHash(tri.ID, SaltSelection) > Saturate(e.Params.CellDensity) {
		d.Branch = Shrink
	} else {
		d.Branch = Cell
	}
	return d
}

// Dispatch emits the vertices of one primitive into the sink, followed by a
// strip restart.
func (e *Effect) Dispatch(tri *InputTriangle, sink Sink) Branch {
	d := e.Decide(tri)
	e.Emit(tri, d, sink)
	return d.Branch
}

// Primitive returns the vertices Dispatch would emit.
func (e *Effect) Primitive(tri *InputTriangle) []Vertex {
	var s fixedSink
	e.Dispatch(tri, &s)
	return append([]Vertex{}, s.Vertices[:s.Count]...)
}

// Emit writes the output of a decision to the sink and terminates the strip.
func (e *Effect) Emit(tri *InputTriangle, d Decision, sink Sink) {
	switch d.Branch {
	case PassThrough:
		e.emitPassThrough(tri, sink)
	case Shrink:
		e.emitShrink(tri, d, sink)
	case Cell:
		e.emitCell(tri, d, sink)
	default:
		panic("unknown branch: " + d.Branch.String())
	}
	sink.RestartStrip()
}

func (e *Effect) emitPassThrough(tri *InputTriangle, sink Sink) {
	prev := tri.Previous()
	random := StreamHash(tri.ID, SaltShading)
	for i, p := range tri.Positions {
		sink.Append(Vertex{
			Position:     p,
			PrevPosition: prev[i],
			Normal:       tri.Normal(i),
			QuadCoord:    NoQuadCoord,
			Emission:     EmissionOff,
			Random:       random,
		})
	}
}

func (e *Effect) emitShrink(tri *InputTriangle, d Decision, sink Sink) {
	prev := tri.Previous()
	shrink := Smoothstep(0.05, 0.1, d.Param)
	prevShrink := Smoothstep(0.05, 0.1, d.PrevParam)
	random := StreamHash(tri.ID, SaltShading)
	for i, p := range tri.Positions {
		sink.Append(Vertex{
			Position:     lerpCoord(p, d.Center, shrink),
			PrevPosition: lerpCoord(prev[i], d.PrevCenter, prevShrink),
			Normal:       tri.Normal(i),
			QuadCoord:    NoQuadCoord,
			Emission:     d.Param,
			Random:       random,
		})
	}
}

func (e *Effect) emitCell(tri *InputTriangle, d Decision, sink Sink) {
	cur := CellAnimation(&e.Params, tri.ID, d.Param, tri.Positions, d.Center)
	prev := CellAnimation(&e.Params, tri.ID, d.PrevParam, tri.Previous(), d.PrevCenter)

	intensity := CellEmission(e.Params.HighlightProbability, tri.ID, d.Param)
	random := StreamHash(tri.ID, SaltShading)
	for i, p := range cur.Corners {
		sink.Append(Vertex{
			Position:     p,
			PrevPosition: prev.Corners[i],
			Normal:       cur.Normal,
			QuadCoord:    quadCoords[i],
			Emission:     intensity,
			Random:       random,
		})
	}
}

// CellEmission is the emission intensity of a cell.
//
// Intensity ramps from off to full emission and then on to edge-only
// emission, except for highlighted cells, which stay at full emission.
func CellEmission(highlightProbability float64, id uint32, param float64) float64 {
	ramp := Smoothstep(0.05, 0.1, param) + Smoothstep(0.1, 0.2, param)
	if Highlighted(highlightProbability, id) {
		return math.Min(ramp, EmissionFull)
	}
	return math.Min(ramp, EmissionEdge)
}

// Highlighted reports whether the primitive's cell is frozen at full
// emission.
func Highlighted(highlightProbability float64, id uint32) bool {
	return StreamHash(id, SaltHighlight) < Saturate(highlightProbability)
}
