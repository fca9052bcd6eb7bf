package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/unixpickle/cell-dissolve/dissolve"
	"github.com/unixpickle/cell-dissolve/internal/config"
	"github.com/unixpickle/cell-dissolve/internal/logger"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap"
)

func main() {
	var flags config.Flags
	var frameTime float64
	var concurrency int
	var previous bool
	var streamPath string
	var metadataPath string
	flags.Register(flag.CommandLine)
	flag.Float64Var(&frameTime, "time", 0, "time of the frame to generate")
	flag.IntVar(&concurrency, "concurrency", 0, "maximum Goroutines (0 uses GOMAXPROCS)")
	flag.BoolVar(&previous, "previous", false, "output previous frame positions")
	flag.StringVar(&streamPath, "stream", "", "path to write the binary vertex stream")
	flag.StringVar(&metadataPath, "metadata", "", "path to write frame metadata JSON")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: dissolve_mesh [flags] <input.stl> <output.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	cfg, err := flags.Load()
	essentials.Must(err)
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()
	runID := uuid.NewString()
	log := logger.Log.With(zap.String("run", runID))

	log.Info("loading mesh", zap.String("path", inputPath))
	tris, err := dissolve.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	inputs := dissolve.TriangleInputs(tris)

	effect := cfg.EffectAt(frameTime)
	log.Debug(
		"effect parameters",
		zap.Float64("time", frameTime),
		zap.Float64("plane", effect.Params.Plane.Distance),
		zap.Float64("prev_plane", effect.Params.PrevPlane.Distance),
	)

	start := time.Now()
	var strips dissolve.StripBuffer
	stats := effect.Transform(inputs, concurrency, &strips)
	log.Info(
		"transformed frame",
		zap.Int("primitives", stats.Primitives()),
		zap.Int("pass_through", stats.PassThrough),
		zap.Int("shrink", stats.Shrink),
		zap.Int("cell", stats.Cell),
		zap.Duration("elapsed", time.Since(start)),
	)

	meshSink := dissolve.NewMeshSink(previous)
	strips.Emit(meshSink)
	mesh := meshSink.Mesh()
	log.Info("writing mesh", zap.String("path", outputPath),
		zap.Int("triangles", mesh.NumTriangles()))
	essentials.Must(mesh.SaveGroupedSTL(outputPath))

	if streamPath != "" {
		log.Info("writing vertex stream", zap.String("path", streamPath))
		essentials.Must(dissolve.Save(streamPath, &strips, dissolve.WriteStrips))
	}

	if metadataPath != "" {
		metadata := &Metadata{
			RunID:     runID,
			Input:     inputPath,
			Time:      frameTime,
			Stats:     stats,
			Vertices:  stats.Vertices(),
			Triangles: mesh.NumTriangles(),
		}
		log.Info("writing metadata", zap.String("path", metadataPath))
		essentials.Must(dissolve.Save(metadataPath, metadata, func(w io.Writer, m *Metadata) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		}))
	}
}

type Metadata struct {
	RunID     string              `json:"run_id"`
	Input     string              `json:"input"`
	Time      float64             `json:"time"`
	Stats     dissolve.FrameStats `json:"stats"`
	Vertices  int                 `json:"vertices"`
	Triangles int                 `json:"triangles"`
}
