package dissolve

import (
	"runtime"

	"github.com/unixpickle/essentials"
)

// FrameStats counts the branches taken during a frame.
type FrameStats struct {
	PassThrough int `json:"pass_through"`
	Shrink      int `json:"shrink"`
	Cell        int `json:"cell"`
}

// Add records one primitive.
func (f *FrameStats) Add(b Branch) {
	switch b {
	case PassThrough:
		f.PassThrough++
	case Shrink:
		f.Shrink++
	case Cell:
		f.Cell++
	}
}

// Primitives returns the total number of primitives.
func (f *FrameStats) Primitives() int {
	return f.PassThrough + f.Shrink + f.Cell
}

// Vertices returns the total number of emitted vertices.
func (f *FrameStats) Vertices() int {
	return 3*(f.PassThrough+f.Shrink) + 4*f.Cell
}

// Transform applies the effect to every triangle and emits the results into
// the sink in input order.
//
// Primitives are processed independently across Goroutines. The concurrency
// argument specifies the maximum number of Goroutines to use. If it is 0,
// GOMAXPROCS is used.
func (e *Effect) Transform(tris []InputTriangle, concurrency int, sink Sink) FrameStats {
	if concurrency == 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	outputs := make([]fixedSink, len(tris))
	branches := make([]Branch, len(tris))
	essentials.ConcurrentMap(concurrency, len(tris), func(i int) {
		branches[i] = e.Dispatch(&tris[i], &outputs[i])
	})

	var stats FrameStats
	for i, out := range outputs {
		for _, v := range out.Vertices[:out.Count] {
			sink.Append(v)
		}
		sink.RestartStrip()
		stats.Add(branches[i])
	}
	return stats
}
