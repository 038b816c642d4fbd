// Package config holds render settings loaded from YAML or TOML files and
// overridden by CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"crease-renderer/internal/export"
	"crease-renderer/internal/palette"
)

// Config holds all configurable paths and render settings.
type Config struct {
	Render  RenderConfig  `yaml:"render" toml:"render"`
	Planar  PlanarConfig  `yaml:"planar" toml:"planar"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Batch   BatchConfig   `yaml:"batch" toml:"batch"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// RenderConfig controls the folded (3D) view.
type RenderConfig struct {
	Size        int     `yaml:"size" toml:"size"`
	Supersample int     `yaml:"supersample" toml:"supersample"`
	Elevation   float64 `yaml:"elevation" toml:"elevation"` // degrees
	Azimuth     float64 `yaml:"azimuth" toml:"azimuth"`     // degrees
	Colormap    string  `yaml:"colormap" toml:"colormap"`
	Alpha       float64 `yaml:"alpha" toml:"alpha"`
	Edges       bool    `yaml:"edges" toml:"edges"`
	Background  string  `yaml:"background" toml:"background"` // #rrggbb or #rrggbbaa
}

// PlanarConfig controls the crease-pattern diagram.
type PlanarConfig struct {
	Colormap     string `yaml:"colormap" toml:"colormap"` // empty: mountain/valley colors
	FoldLabels   bool   `yaml:"fold_labels" toml:"fold_labels"`
	VertexLabels bool   `yaml:"vertex_labels" toml:"vertex_labels"`
	FaceLabels   bool   `yaml:"face_labels" toml:"face_labels"`
	WidthPx      int    `yaml:"width" toml:"width"`
	HeightPx     int    `yaml:"height" toml:"height"`
}

// OutputConfig controls where and how images are written.
type OutputConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Format string `yaml:"format" toml:"format"` // webp, png or tga
}

// BatchConfig controls folding-sequence export.
type BatchConfig struct {
	Frames  int `yaml:"frames" toml:"frames"`
	Workers int `yaml:"workers" toml:"workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Size:        512,
			Supersample: 2,
			Elevation:   30,
			Azimuth:     -60,
			Colormap:    "terrain",
			Alpha:       1.0,
			Background:  "#ffffff",
		},
		Planar: PlanarConfig{
			FoldLabels:   true,
			VertexLabels: true,
			FaceLabels:   true,
			WidthPx:      640,
			HeightPx:     480,
		},
		Output: OutputConfig{
			Dir:    "renders",
			Format: "webp",
		},
		Batch: BatchConfig{
			Frames: 24,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a config file on top of Default. The decoder is chosen by
// extension: .toml uses TOML, anything else YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Size      int
	Colormap  string
	Frames    int
	Workers   int
	LogLevel  string
	Edges     bool
}

// Resolve applies non-zero flags and fills remaining defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.Output.Dir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Output.Format = flags.Format
	}
	if flags.Size > 0 {
		c.Render.Size = flags.Size
	}
	if flags.Colormap != "" {
		c.Render.Colormap = flags.Colormap
	}
	if flags.Frames > 0 {
		c.Batch.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Batch.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.Logging.Level = flags.LogLevel
	}
	if flags.Edges {
		c.Render.Edges = true
	}

	if c.Render.Supersample <= 0 {
		c.Render.Supersample = 1
	}
	if c.Batch.Workers <= 0 {
		c.Batch.Workers = runtime.NumCPU()
	}
	c.Output.Format = strings.ToLower(strings.TrimPrefix(c.Output.Format, "."))
}

// Validate reports settings no renderer can honor.
func (c *Config) Validate() error {
	var errs []error
	if c.Render.Size <= 0 {
		errs = append(errs, fmt.Errorf("render.size must be positive, got %d", c.Render.Size))
	}
	if c.Render.Alpha < 0 || c.Render.Alpha > 1 {
		errs = append(errs, fmt.Errorf("render.alpha must be in [0,1], got %g", c.Render.Alpha))
	}
	if c.Planar.WidthPx <= 0 || c.Planar.HeightPx <= 0 {
		errs = append(errs, fmt.Errorf("planar size must be positive, got %dx%d", c.Planar.WidthPx, c.Planar.HeightPx))
	}
	if !slices.Contains(export.Formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format %q not supported, want one of %v", c.Output.Format, export.Formats))
	}
	if _, err := palette.Lookup(c.Render.Colormap); err != nil {
		errs = append(errs, fmt.Errorf("render.colormap: %w", err))
	}
	if c.Planar.Colormap != "" {
		if _, err := palette.Lookup(c.Planar.Colormap); err != nil {
			errs = append(errs, fmt.Errorf("planar.colormap: %w", err))
		}
	}
	if c.Batch.Frames < 2 {
		errs = append(errs, fmt.Errorf("batch.frames must be at least 2, got %d", c.Batch.Frames))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
