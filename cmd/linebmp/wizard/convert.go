package wizard

import (
	"fmt"
	"image"

	"github.com/mrsinham/linebmp/internal/generator"
	"github.com/mrsinham/linebmp/internal/util"
)

// Defaults used when a configuration leaves a field empty
const (
	DefaultSize      = 32
	DefaultThickness = 3
	DefaultOutput    = "output.bmp"
)

// ToGeneratorOptions converts a configuration into generator options.
// Empty fields take the command-line defaults.
func ToGeneratorOptions(cfg *Config) (generator.GeneratorOptions, error) {
	opts := generator.GeneratorOptions{
		Size:           cfg.Image.Size,
		Thickness:      cfg.Image.Thickness,
		Symmetry:       util.SymmetryMirrored,
		NumImages:      cfg.Batch.Count,
		Seed:           cfg.Batch.Seed,
		Output:         cfg.Batch.Output,
		Workers:        cfg.Batch.Workers,
		PreviewScale:   cfg.Preview.Scale,
		PreviewCaption: cfg.Preview.Caption,
	}

	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	if opts.Thickness == 0 {
		opts.Thickness = DefaultThickness
	}
	if opts.NumImages == 0 {
		opts.NumImages = 1
	}
	if opts.Output == "" {
		opts.Output = DefaultOutput
	}

	var err error
	if cfg.Image.Mode != "" {
		if opts.Mode, err = util.ParseMode(cfg.Image.Mode); err != nil {
			return opts, err
		}
	}
	if cfg.Image.Direction != "" {
		if opts.Direction, err = util.ParseDirection(cfg.Image.Direction); err != nil {
			return opts, err
		}
	}
	if cfg.Image.Symmetry != "" {
		if opts.Symmetry, err = util.ParseSymmetry(cfg.Image.Symmetry); err != nil {
			return opts, err
		}
	}
	if cfg.Image.Points != "" {
		if opts.Points, err = util.ParsePoints(cfg.Image.Points); err != nil {
			return opts, fmt.Errorf("points: %w", err)
		}
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// FromGeneratorOptions converts generator options back into a configuration
func FromGeneratorOptions(opts generator.GeneratorOptions) *Config {
	cfg := &Config{
		Image: ImageConfigYAML{
			Size:      opts.Size,
			Thickness: opts.Thickness,
			Mode:      opts.Mode.String(),
			Direction: opts.Direction.String(),
			Symmetry:  opts.Symmetry.String(),
		},
		Batch: BatchConfigYAML{
			Count:   opts.NumImages,
			Seed:    opts.Seed,
			Output:  opts.Output,
			Workers: opts.Workers,
		},
		Preview: PreviewConfigYAML{
			Scale:   opts.PreviewScale,
			Caption: opts.PreviewCaption,
		},
	}
	if opts.Points != nil {
		cfg.Image.Points = util.FormatPoints(opts.Points)
	}
	return cfg
}

// pointsOrDefault returns the configured points or the built-in path
func pointsOrDefault(points []image.Point) []image.Point {
	if points == nil {
		return util.DefaultPoints
	}
	return points
}
