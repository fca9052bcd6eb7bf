package dissolve

import "github.com/unixpickle/model3d/model3d"

// A Sink consumes the vertex stream of the transform.
//
// Vertices appended between two calls to RestartStrip form one triangle
// strip.
type Sink interface {
	Append(v Vertex)
	RestartStrip()
}

// fixedSink holds the output of a single primitive without allocating.
type fixedSink struct {
	Vertices [4]Vertex
	Count    int
	Strips   int
}

func (f *fixedSink) Append(v Vertex) {
	if f.Count == len(f.Vertices) {
		panic("too many vertices for one primitive")
	}
	f.Vertices[f.Count] = v
	f.Count++
}

func (f *fixedSink) RestartStrip() {
	f.Strips++
}

// A StripBuffer is a Sink which records every strip in order.
type StripBuffer struct {
	Vertices []Vertex

	// Lengths contains the number of vertices in each complete strip.
	Lengths []int

	pending int
}

func (s *StripBuffer) Append(v Vertex) {
	s.Vertices = append(s.Vertices, v)
	s.pending++
}

func (s *StripBuffer) RestartStrip() {
	if s.pending == 0 {
		return
	}
	s.Lengths = append(s.Lengths, s.pending)
	s.pending = 0
}

// NumStrips returns the number of complete strips.
func (s *StripBuffer) NumStrips() int {
	return len(s.Lengths)
}

// Iterate calls f with every complete strip in order.
//
// The slices passed to f alias the buffer.
func (s *StripBuffer) Iterate(f func(strip []Vertex)) {
	var offset int
	for _, n := range s.Lengths {
		f(s.Vertices[offset : offset+n])
		offset += n
	}
}

// Strip returns the i-th complete strip.
func (s *StripBuffer) Strip(i int) []Vertex {
	var offset int
	for _, n := range s.Lengths[:i] {
		offset += n
	}
	return s.Vertices[offset : offset+s.Lengths[i]]
}

// Emit replays the recorded strips into another sink.
func (s *StripBuffer) Emit(sink Sink) {
	s.Iterate(func(strip []Vertex) {
		for _, v := range strip {
			sink.Append(v)
		}
		sink.RestartStrip()
	})
}

// A MeshSink is a Sink which triangulates strips into a mesh.
//
// Degenerate triangles, such as those of fully collapsed primitives, are
// left out of the mesh.
type MeshSink struct {
	// Previous selects previous frame positions instead of current ones.
	Previous bool

	mesh    *model3d.Mesh
	pending []model3d.Coord3D
}

// NewMeshSink creates an empty MeshSink.
func NewMeshSink(previous bool) *MeshSink {
	return &MeshSink{
		Previous: previous,
		mesh:     model3d.NewMesh(),
	}
}

func (m *MeshSink) Append(v Vertex) {
	if m.Previous {
		m.pending = append(m.pending, v.PrevPosition)
	} else {
		m.pending = append(m.pending, v.Position)
	}
}

func (m *MeshSink) RestartStrip() {
	for _, t := range StripTriangles(m.pending) {
		if t.Area() > 0 {
			m.mesh.Add(t)
		}
	}
	m.pending = m.pending[:0]
}

// Mesh returns the mesh of all complete strips.
func (m *MeshSink) Mesh() *model3d.Mesh {
	return m.mesh
}

// StripTriangles converts a triangle strip into triangles.
//
// Every other triangle is flipped so that all of them share the winding of
// the first.
func StripTriangles(strip []model3d.Coord3D) []*model3d.Triangle {
	if len(strip) < 3 {
		return nil
	}
	res := make([]*model3d.Triangle, 0, len(strip)-2)
	for i := 2; i < len(strip); i++ {
		if i%2 == 0 {
			res = append(res, &model3d.Triangle{strip[i-2], strip[i-1], strip[i]})
		} else {
			res = append(res, &model3d.Triangle{strip[i-1], strip[i-2], strip[i]})
		}
	}
	return res
}
