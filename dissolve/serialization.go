package dissolve

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

const vertexFloats = 13

// WriteStrips serializes the complete strips of s in a 32-bit precision
// binary format.
func WriteStrips(w io.Writer, s *StripBuffer) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(s.NumStrips())); err != nil {
		return errors.Wrap(err, "write strips")
	}
	var err error
	s.Iterate(func(strip []Vertex) {
		if err != nil {
			return
		}
		err = writeStrip(w, strip)
	})
	if err != nil {
		return errors.Wrap(err, "write strips")
	}
	return nil
}

func writeStrip(w io.Writer, strip []Vertex) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(strip))); err != nil {
		return err
	}
	values := make([]float32, 0, len(strip)*vertexFloats)
	for _, v := range strip {
		values = append(
			values,
			float32(v.Position.X),
			float32(v.Position.Y),
			float32(v.Position.Z),
			float32(v.PrevPosition.X),
			float32(v.PrevPosition.Y),
			float32(v.PrevPosition.Z),
			float32(v.Normal.X),
			float32(v.Normal.Y),
			float32(v.Normal.Z),
			float32(v.QuadCoord.X),
			float32(v.QuadCoord.Y),
			float32(v.Emission),
			float32(v.Random),
		)
	}
	return binary.Write(w, binary.LittleEndian, values)
}

// ReadStrips reads the output written by WriteStrips.
func ReadStrips(r io.Reader) (*StripBuffer, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "read strips")
	}
	res := &StripBuffer{}
	for i := 0; i < int(count); i++ {
		if err := readStrip(r, res); err != nil {
			return nil, errors.Wrapf(err, "read strips: strip %d", i)
		}
	}
	return res, nil
}

func readStrip(r io.Reader, s *StripBuffer) error {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return err
	}
	if n != 3 && n != 4 {
		return errors.Errorf("unexpected strip length %d", n)
	}
	values := make([]float32, n*vertexFloats)
	if err := binary.Read(r, binary.LittleEndian, values); err != nil {
		return err
	}
	for i := 0; i < int(n); i++ {
		v := values[i*vertexFloats : (i+1)*vertexFloats]
		s.Append(Vertex{
			Position:     model3d.XYZ(float64(v[0]), float64(v[1]), float64(v[2])),
			PrevPosition: model3d.XYZ(float64(v[3]), float64(v[4]), float64(v[5])),
			Normal:       model3d.XYZ(float64(v[6]), float64(v[7]), float64(v[8])),
			QuadCoord:    model2d.XY(float64(v[9]), float64(v[10])),
			Emission:     float64(v[11]),
			Random:       float64(v[12]),
		})
	}
	s.RestartStrip()
	return nil
}
