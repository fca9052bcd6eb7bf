package dissolve

import (
	"reflect"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestTransformMatchesDispatch(t *testing.T) {
	effect := testEffect()
	mesh := model3d.NewMeshIcosphere(model3d.XYZ(0.2, 0.1, -0.3), 1, 3)
	tris := TriangleInputs(mesh.TriangleSlice())

	var buf StripBuffer
	stats := effect.Transform(tris, 4, &buf)

	if stats.Primitives() != len(tris) || buf.NumStrips() != len(tris) {
		t.Fatalf("expected %d primitives but got %d (%d strips)", len(tris),
			stats.Primitives(), buf.NumStrips())
	}
	if stats.Vertices() != len(buf.Vertices) {
		t.Fatalf("expected %d vertices but got %d", stats.Vertices(), len(buf.Vertices))
	}
	if stats.PassThrough == 0 || stats.Shrink == 0 || stats.Cell == 0 {
		t.Fatalf("expected all branches to be used: %+v", stats)
	}

	for i := range tris {
		expected := effect.Primitive(&tris[i])
		if actual := buf.Strip(i); !reflect.DeepEqual(expected, actual) {
			t.Fatalf("primitive %d: expected %v but got %v", i, expected, actual)
		}
	}
}

func TestTransformConcurrencyInvariant(t *testing.T) {
	effect := testEffect()
	mesh := model3d.NewMeshIcosphere(model3d.Origin, 1, 2)
	tris := TriangleInputs(mesh.TriangleSlice())

	var buf1, buf2 StripBuffer
	stats1 := effect.Transform(tris, 1, &buf1)
	stats2 := effect.Transform(tris, 0, &buf2)
	if stats1 != stats2 {
		t.Fatalf("stats differ: %+v != %+v", stats1, stats2)
	}
	if !reflect.DeepEqual(buf1, buf2) {
		t.Fatal("outputs differ between concurrency levels")
	}
}
