package wizard

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/linebmp/internal/generator"
	"github.com/mrsinham/linebmp/internal/util"
)

// State holds the form values. huh binds to strings, so numbers are kept as
// text until the form is submitted.
type State struct {
	Size         string
	Thickness    string
	Mode         string
	Direction    string
	Symmetry     string
	Points       string
	Count        string
	Seed         string
	Output       string
	Workers      string
	PreviewScale string

	PreviewCaption bool
	SaveConfig     bool
	ConfigPath string
}

// NewState fills the form values from a configuration, or from the defaults when cfg is nil
func NewState(cfg *Config) *State {
	if cfg == nil {
		cfg = &Config{}
	}
	opts, err := ToGeneratorOptions(cfg)
	if err != nil {
		// Start from defaults when the loaded file is invalid
		opts, _ = ToGeneratorOptions(&Config{})
	}

	s := &State{
		Size:         strconv.Itoa(opts.Size),
		Thickness:    strconv.Itoa(opts.Thickness),
		Mode:         opts.Mode.String(),
		Direction:    opts.Direction.String(),
		Symmetry:     opts.Symmetry.String(),
		Points:       util.FormatPoints(pointsOrDefault(opts.Points)),
		Count:        strconv.Itoa(opts.NumImages),
		Seed:         strconv.FormatInt(opts.Seed, 10),
		Output:       opts.Output,
		Workers:      strconv.Itoa(opts.Workers),
		PreviewScale: strconv.Itoa(opts.PreviewScale),

		PreviewCaption: opts.PreviewCaption,
		ConfigPath:     "linebmp.yaml",
	}
	return s
}

// ToConfig converts the submitted form values into a configuration
func (s *State) ToConfig() (*Config, error) {
	size, err := strconv.Atoi(strings.TrimSpace(s.Size))
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	thickness, err := strconv.Atoi(strings.TrimSpace(s.Thickness))
	if err != nil {
		return nil, fmt.Errorf("thickness: %w", err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(s.Count))
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	seed, err := strconv.ParseInt(strings.TrimSpace(s.Seed), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	workers := 0
	if strings.TrimSpace(s.Workers) != "" {
		if workers, err = strconv.Atoi(strings.TrimSpace(s.Workers)); err != nil {
			return nil, fmt.Errorf("workers: %w", err)
		}
	}
	scale := 0
	if strings.TrimSpace(s.PreviewScale) != "" {
		if scale, err = strconv.Atoi(strings.TrimSpace(s.PreviewScale)); err != nil {
			return nil, fmt.Errorf("preview scale: %w", err)
		}
	}

	cfg := &Config{
		Image: ImageConfigYAML{
			Size:      size,
			Thickness: thickness,
			Mode:      s.Mode,
			Direction: s.Direction,
			Symmetry:  s.Symmetry,
		},
		Batch: BatchConfigYAML{
			Count:   count,
			Seed:    seed,
			Output:  s.Output,
			Workers: workers,
		},
		Preview: PreviewConfigYAML{Scale: scale, Caption: s.PreviewCaption},
	}
	if s.Mode == util.ModePolyline.String() {
		cfg.Image.Points = s.Points
	}
	return cfg, nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateSeed(s string) error {
	if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
		return fmt.Errorf("must be an integer (0 = derive from output name)")
	}
	return nil
}

func validatePoints(s string) error {
	points, err := util.ParsePoints(s)
	if err != nil {
		return err
	}
	if len(points) < 2 {
		return fmt.Errorf("at least 2 points are needed")
	}
	return nil
}

// newForm builds the wizard form bound to s
func newForm(s *State) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("mode").
				Title("Drawing mode").
				Options(
					huh.NewOption("Polyline - Bresenham through fixed points", util.ModePolyline.String()),
					huh.NewOption("Bar - solid thick bar", util.ModeBar.String()),
					huh.NewOption("Walk - random walk scatter", util.ModeWalk.String()),
				).
				Value(&s.Mode),

			huh.NewInput().
				Key("size").
				Title("Image size").
				Description("Width and height in pixels").
				Value(&s.Size).
				Validate(validatePositiveInt),

			huh.NewInput().
				Key("thickness").
				Title("Thickness").
				Value(&s.Thickness).
				Validate(validatePositiveInt),

			huh.NewSelect[string]().
				Key("direction").
				Title("Direction").
				Options(
					huh.NewOption("Vertical", util.DirectionVertical.String()),
					huh.NewOption("Horizontal", util.DirectionHorizontal.String()),
				).
				Value(&s.Direction),

			huh.NewSelect[string]().
				Key("symmetry").
				Title("Symmetry").
				Options(
					huh.NewOption("Mirrored", util.SymmetryMirrored.String()),
					huh.NewOption("None", util.SymmetryNone.String()),
				).
				Value(&s.Symmetry),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("points").
				Title("Polyline points").
				Placeholder("e.g., 10,10 20,5 25,20").
				Value(&s.Points).
				Validate(validatePoints),
		).WithHideFunc(func() bool {
			return s.Mode != util.ModePolyline.String()
		}),
		huh.NewGroup(
			huh.NewInput().
				Key("count").
				Title("Number of images").
				Value(&s.Count).
				Validate(validatePositiveInt),

			huh.NewInput().
				Key("seed").
				Title("Seed").
				Value(&s.Seed).
				Validate(validateSeed),

			huh.NewInput().
				Key("output").
				Title("Output file").
				Description("Placeholders: {index} {seed} {direction} {symmetry} {mode}").
				Value(&s.Output).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("output file is required")
					}
					return nil
				}),

			huh.NewInput().
				Key("workers").
				Title("Workers").
				Description("0 = one per CPU core").
				Value(&s.Workers).
				Validate(validateNonNegativeInt),

			huh.NewInput().
				Key("preview").
				Title("Preview scale").
				Description("0 = no PNG preview").
				Value(&s.PreviewScale).
				Validate(validateNonNegativeInt),

			huh.NewConfirm().
				Key("caption").
				Title("Caption under the preview?").
				Value(&s.PreviewCaption),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Key("save").
				Title("Save configuration?").
				Value(&s.SaveConfig),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("config_path").
				Title("Configuration file").
				Value(&s.ConfigPath),
		).WithHideFunc(func() bool {
			return !s.SaveConfig
		}),
	).WithShowHelp(true).WithShowErrors(true)
}

// Summary renders the options about to be used
func Summary(opts generator.GeneratorOptions) string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), ValueStyle.Render(value))
	}

	rows := []string{
		row("Mode", opts.Mode.String()),
		row("Size", fmt.Sprintf("%dx%d", opts.Size, opts.Size)),
		row("Thickness", strconv.Itoa(opts.Thickness)),
		row("Direction", opts.Direction.String()),
		row("Symmetry", opts.Symmetry.String()),
	}
	if opts.Mode == util.ModePolyline {
		rows = append(rows, row("Points", util.FormatPoints(pointsOrDefault(opts.Points))))
	}
	rows = append(rows,
		row("Images", strconv.Itoa(opts.NumImages)),
		row("Seed", strconv.FormatInt(generator.ResolveSeed(opts), 10)),
		row("Output", opts.Output),
	)
	if opts.PreviewScale > 0 {
		rows = append(rows, row("Preview", fmt.Sprintf("x%d", opts.PreviewScale)))
	}

	return TitleStyle.Render("linebmp") + "\n" + BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Run shows the form, then generates the images. A loaded configuration
// prefills the form when fromConfig is set.
func Run(fromConfig string) error {
	var cfg *Config

	// Load config if provided
	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	state := NewState(cfg)
	if err := newForm(state).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil // User cancelled, not an error
		}
		return fmt.Errorf("running wizard: %w", err)
	}

	cfg, err := state.ToConfig()
	if err != nil {
		return err
	}
	opts, err := ToGeneratorOptions(cfg)
	if err != nil {
		return err
	}

	fmt.Println(Summary(opts))
	fmt.Println()

	opts.Quiet = true
	opts.ProgressCallback = func(current, total int) {
		fmt.Printf("\r  Progress: %d/%d", current, total)
	}
	results, err := generator.GenerateBatch(opts)
	if err != nil {
		return err
	}
	fmt.Println()

	for _, r := range results {
		if r.Err != nil {
			fmt.Println(ErrorStyle.Render(fmt.Sprintf("✗ %s: %v", r.Path, r.Err)))
		}
	}
	failed := generator.Failed(results)
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("✓ %d image(s) written", len(results)-failed)))

	if state.SaveConfig && state.ConfigPath != "" {
		if err := SaveToYAML(FromGeneratorOptions(opts), state.ConfigPath); err != nil {
			return err
		}
		fmt.Printf("Configuration saved to %s\n", state.ConfigPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(results))
	}
	return nil
}
