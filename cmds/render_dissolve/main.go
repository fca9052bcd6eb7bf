package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unixpickle/cell-dissolve/dissolve"
	"github.com/unixpickle/cell-dissolve/internal/config"
	"github.com/unixpickle/cell-dissolve/internal/logger"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
	"go.uber.org/zap"
)

func main() {
	var flags config.Flags
	var startTime float64
	var frames int
	var imageSize int
	var concurrency int
	flags.Register(flag.CommandLine)
	flag.Float64Var(&startTime, "time", 0, "time of the first frame")
	flag.IntVar(&frames, "frames", 0, "number of frames (overrides config when positive)")
	flag.IntVar(&imageSize, "image-size", 0, "image size (overrides config when positive)")
	flag.IntVar(&concurrency, "concurrency", 0, "maximum Goroutines (0 uses GOMAXPROCS)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: render_dissolve [flags] <input.stl> <output.png|output_dir>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "When rendering more than one frame, the output is a directory.")
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
	if frames > 0 {
		cfg.Render.Frames = frames
	}
	if imageSize > 0 {
		cfg.Render.ImageSize = imageSize
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()
	log := logger.Log

	log.Info("loading mesh", zap.String("path", inputPath))
	tris, err := dissolve.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	inputs := dissolve.TriangleInputs(tris)

	inputMesh := model3d.NewMeshTriangles(tris)
	min, max := inputMesh.Min(), inputMesh.Max()
	center := min.Mid(max)
	eye := center.Add(model3d.XYZ(1, 0.8, 2).Normalize().Scale(2 * min.Dist(max)))

	if cfg.Render.Frames > 1 {
		essentials.Must(os.MkdirAll(outputPath, 0755))
	}
	for i := 0; i < cfg.Render.Frames; i++ {
		t := startTime + float64(i)*cfg.Sweep.FrameDelta
		effect := cfg.EffectAt(t)
		sink := dissolve.NewMeshSink(false)
		stats := effect.Transform(inputs, concurrency, sink)
		mesh := sink.Mesh()

		path := outputPath
		if cfg.Render.Frames > 1 {
			path = filepath.Join(outputPath, fmt.Sprintf("frame_%04d.png", i))
		}
		if mesh.NumTriangles() == 0 {
			log.Warn("frame is empty", zap.Int("frame", i), zap.Float64("time", t))
			continue
		}
		log.Info(
			"rendering frame",
			zap.Int("frame", i),
			zap.Float64("time", t),
			zap.Int("cell", stats.Cell),
			zap.Int("shrink", stats.Shrink),
			zap.String("path", path),
		)
		essentials.Must(render3d.SaveRendering(
			path,
			mesh,
			eye,
			cfg.Render.ImageSize,
			cfg.Render.ImageSize,
			nil,
		))
	}
}
