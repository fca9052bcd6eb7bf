package dissolve

import (
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestStripBuffer(t *testing.T) {
	var buf StripBuffer
	buf.RestartStrip()
	for i := 0; i < 3; i++ {
		buf.Append(Vertex{Emission: float64(i)})
	}
	buf.RestartStrip()
	buf.RestartStrip()
	for i := 0; i < 4; i++ {
		buf.Append(Vertex{Emission: float64(10 + i)})
	}
	buf.RestartStrip()
	buf.Append(Vertex{})

	if buf.NumStrips() != 2 {
		t.Fatalf("expected 2 strips but got %d", buf.NumStrips())
	}
	if s := buf.Strip(1); len(s) != 4 || s[0].Emission != 10 {
		t.Fatalf("unexpected second strip %v", s)
	}
	var lengths []int
	buf.Iterate(func(strip []Vertex) {
		lengths = append(lengths, len(strip))
	})
	if len(lengths) != 2 || lengths[0] != 3 || lengths[1] != 4 {
		t.Fatalf("unexpected strip lengths %v", lengths)
	}

	var replay StripBuffer
	buf.Emit(&replay)
	if replay.NumStrips() != 2 || len(replay.Vertices) != 7 {
		t.Fatalf("replay has %d strips and %d vertices", replay.NumStrips(),
			len(replay.Vertices))
	}
}

func TestStripTrianglesWinding(t *testing.T) {
	strip := []model3d.Coord3D{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(1, 0, 0),
		model3d.XYZ(0, 1, 0),
		model3d.XYZ(1, 1, 0),
	}
	tris := StripTriangles(strip)
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles but got %d", len(tris))
	}
	for i, tri := range tris {
		if tri.Normal().Dist(model3d.Z(1)) > 1e-8 {
			t.Errorf("triangle %d: unexpected normal %v", i, tri.Normal())
		}
	}
	if len(StripTriangles(strip[:2])) != 0 {
		t.Error("expected no triangles for a short strip")
	}
}

func TestMeshSink(t *testing.T) {
	effect := testEffect()
	effect.Params.CellDensity = 0

	sink := NewMeshSink(false)
	effect.Dispatch(testInputTriangle(0, model3d.Y(-1)), sink)
	effect.Dispatch(testInputTriangle(1, model3d.Y(-2)), sink)

	// Fully collapsed triangles are dropped.
	effect.Dispatch(testInputTriangle(2, model3d.Y(5)), sink)

	if n := sink.Mesh().NumTriangles(); n != 2 {
		t.Errorf("expected 2 triangles but got %d", n)
	}

	effect.Params.CellDensity = 1
	effect.Dispatch(testInputTriangle(3, model3d.Y(0.5)), sink)
	if n := sink.Mesh().NumTriangles(); n != 4 {
		t.Errorf("expected 4 triangles but got %d", n)
	}
}
