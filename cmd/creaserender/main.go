package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"crease-renderer/internal/batch"
	"crease-renderer/internal/config"
	"crease-renderer/internal/creasepattern"
	"crease-renderer/internal/export"
	"crease-renderer/internal/logger"
	"crease-renderer/internal/palette"
	"crease-renderer/internal/render"
	"crease-renderer/internal/watch"
)

const modes = "planar|reference|folded|combined|sequence"

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.yaml or .toml)")
	patternFile := flag.String("pattern", "", "Path to crease pattern YAML")
	mode := flag.String("mode", "combined", "What to render: "+modes)
	anglesFlag := flag.String("angles", "", "Comma-separated fold angles in radians (default: targets scaled by -t)")
	t := flag.Float64("t", 1, "Fraction of the target fold angles")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Image format: webp, png or tga")
	size := flag.Int("size", 0, "Folded view size in pixels")
	colormap := flag.String("colormap", "", "Face colormap name")
	frames := flag.Int("frames", 0, "Frames in a folding sequence")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	edges := flag.Bool("edges", false, "Draw black face edges")
	watchFlag := flag.Bool("watch", false, "Re-render whenever the pattern file changes")
	listColormaps := flag.Bool("list-colormaps", false, "Print the available colormap names and exit")

	flag.Parse()

	if *listColormaps {
		for _, n := range palette.Names() {
			fmt.Println(n)
		}
		return
	}

	if *patternFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -pattern is required")
		flag.Usage()
		os.Exit(2)
	}

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Format:    *format,
		Size:      *size,
		Colormap:  *colormap,
		Frames:    *frames,
		Workers:   *workers,
		LogLevel:  *logLevel,
		Edges:     *edges,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	job := func() error {
		return run(ctx, cfg, *patternFile, *mode, *anglesFlag, *t)
	}

	if err := job(); err != nil {
		logger.Error("render failed", zap.Error(err))
		if !*watchFlag {
			logger.Sync()
			os.Exit(1)
		}
	}

	if *watchFlag {
		if err := watch.File(ctx, *patternFile, watch.DefaultDebounce, job); err != nil {
			logger.Error("watch failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
	}
}

func run(ctx context.Context, cfg config.Config, patternFile, mode, anglesFlag string, t float64) error {
	p, err := creasepattern.Load(patternFile)
	if err != nil {
		return err
	}
	name := p.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(patternFile), filepath.Ext(patternFile))
	}

	if mode == "sequence" && anglesFlag != "" {
		return errors.New("-angles does not apply to sequence mode, frames follow the pattern's target angles")
	}

	angles := render.TargetAngles(p, t)
	if anglesFlag != "" {
		angles, err = parseAngles(anglesFlag)
		if err != nil {
			return err
		}
	}

	logger.Info("rendering",
		zap.String("pattern", name),
		zap.String("mode", mode),
		zap.Int("faces", p.NumFaces()),
		zap.Int("folds", p.NumFolds()),
	)
	start := time.Now()

	if mode == "sequence" {
		return runSequence(ctx, cfg, p, name)
	}

	var img image.Image
	switch mode {
	case "planar":
		img, err = render.Planar(p, cfg.Planar, cfg.Render.Supersample)
	case "reference":
		img, err = render.Reference(p, cfg.Render)
	case "folded":
		img, err = render.Folded(p, angles, cfg.Render)
	case "combined":
		img, err = render.Combined(p, angles, cfg)
	default:
		return fmt.Errorf("unknown mode %q, want %s", mode, modes)
	}
	if err != nil {
		return err
	}

	out := filepath.Join(cfg.Output.Dir, fmt.Sprintf("%s_%s.%s", name, mode, cfg.Output.Format))
	if err := export.Save(out, img); err != nil {
		return err
	}
	logger.Info("wrote image",
		zap.String("path", out),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func runSequence(ctx context.Context, cfg config.Config, p *creasepattern.Pattern, name string) error {
	cfg.Output.Dir = filepath.Join(cfg.Output.Dir, name)
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return err
	}
	logger.Info("rendering sequence",
		zap.Int("frames", cfg.Batch.Frames),
		zap.Int("workers", cfg.Batch.Workers),
		zap.String("output", cfg.Output.Dir),
	)

	start := time.Now()
	results := batch.Run(ctx, cfg, p, batch.Frames(p, cfg.Batch.Frames))

	// Count results
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			if failed <= 20 {
				logger.Warn("frame failed", zap.Int("frame", r.Frame.Index), zap.String("error", r.Error))
			}
		}
	}
	logger.Info("sequence done",
		zap.Int("rendered", len(results)-failed),
		zap.Int("total", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)

	// Write manifest
	manifestPath := filepath.Join(cfg.Output.Dir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, name, results); err != nil {
		logger.Warn("manifest write failed", zap.Error(err))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d frames failed", failed, len(results))
	}
	return nil
}

func parseAngles(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad angle %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
