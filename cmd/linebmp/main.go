package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"runtime"

	"github.com/mrsinham/linebmp/cmd/linebmp/wizard"
	"github.com/mrsinham/linebmp/internal/bmp"
	"github.com/mrsinham/linebmp/internal/generator"
	"github.com/mrsinham/linebmp/internal/util"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Subcommands (before flag.Parse)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "wizard":
			// Extract --from flag if present
			var fromConfig string
			for i, arg := range os.Args[2:] {
				if (arg == "--from" || arg == "-from") && i+3 < len(os.Args) {
					fromConfig = os.Args[i+3]
				}
			}
			if err := wizard.Run(fromConfig); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			os.Exit(0)
		case "inspect":
			os.Exit(inspect(os.Args[2:]))
		}
	}

	size := flag.Int("size", 32, "Image width and height in pixels")
	thickness := flag.Int("thickness", 3, "Line thickness in pixels")
	directionStr := flag.String("direction", "", "Line direction: vertical, horizontal (default: vertical)")
	symmetryStr := flag.String("symmetry", "", "Symmetry: mirrored, none (default: mirrored)")
	modeStr := flag.String("mode", "polyline", "Drawing mode: polyline, bar, walk")
	pointsStr := flag.String("points", "", "Polyline points, e.g. \"10,10 20,5 25,20\" (default: built-in path)")
	numImages := flag.Int("n", 1, "Number of images to generate")
	seed := flag.Int64("seed", 0, "Seed for reproducibility (optional, derived from the output name if not specified)")
	output := flag.String("o", "output.bmp", "Output file name or template ({index}, {seed}, {direction}, {symmetry}, {mode})")
	workers := flag.Int("workers", 0, fmt.Sprintf("Number of parallel workers (default: %d = CPU cores)", runtime.NumCPU()))
	previewScale := flag.Int("preview-scale", 0, "Write a PNG preview scaled by this factor next to each BMP (0 = off)")
	previewCaption := flag.Bool("preview-caption", false, "Add mode, direction and seed under the preview")
	quiet := flag.Bool("quiet", false, "Suppress progress output")

	// Short switches, applied in command-line order
	direction := util.DirectionVertical
	symmetry := util.SymmetryMirrored
	flag.BoolFunc("v", "Vertical line (same as --direction vertical)", func(string) error {
		direction = util.DirectionVertical
		return nil
	})
	flag.BoolFunc("h", "Horizontal line (same as --direction horizontal)", func(string) error {
		direction = util.DirectionHorizontal
		return nil
	})
	flag.BoolFunc("s", "Symmetric line (same as --symmetry mirrored)", func(string) error {
		symmetry = util.SymmetryMirrored
		return nil
	})
	flag.BoolFunc("a", "Asymmetric line (same as --symmetry none)", func(string) error {
		symmetry = util.SymmetryNone
		return nil
	})

	configFile := flag.String("config", "", "Load configuration from YAML file")
	saveConfig := flag.String("save-config", "", "Save configuration to YAML file (after generation)")

	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	if *showVersion {
		fmt.Printf("linebmp %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	// Handle config file loading
	if *configFile != "" {
		cfg, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		opts, err := wizard.ToGeneratorOptions(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting config: %v\n", err)
			os.Exit(1)
		}
		opts.Quiet = *quiet

		if !opts.Quiet {
			fmt.Println("linebmp")
			fmt.Println("=======")
			fmt.Printf("Loading config from %s\n\n", *configFile)
		}
		os.Exit(run(opts, *saveConfig))
	}

	// Long flags override the short switches
	if *directionStr != "" {
		d, err := util.ParseDirection(*directionStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		direction = d
	}
	if *symmetryStr != "" {
		s, err := util.ParseSymmetry(*symmetryStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		symmetry = s
	}

	mode, err := util.ParseMode(*modeStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var points []image.Point
	if *pointsStr != "" {
		points, err = util.ParsePoints(*pointsStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Validate required arguments
	if *size <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --size must be > 0\n")
		printUsage()
		os.Exit(1)
	}
	if *thickness <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --thickness must be > 0\n")
		printUsage()
		os.Exit(1)
	}
	if *numImages <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be > 0\n")
		printUsage()
		os.Exit(1)
	}

	opts := generator.GeneratorOptions{
		Size:           *size,
		Thickness:      *thickness,
		Direction:      direction,
		Symmetry:       symmetry,
		Mode:           mode,
		Points:         points,
		NumImages:      *numImages,
		Seed:           *seed,
		Output:         *output,
		Workers:        *workers,
		PreviewScale:   *previewScale,
		PreviewCaption: *previewCaption,
		Quiet:          *quiet,
	}

	if !opts.Quiet {
		fmt.Println("linebmp")
		fmt.Println("=======")
		fmt.Println()
	}
	os.Exit(run(opts, *saveConfig))
}

// run generates the batch and returns the process exit code
func run(opts generator.GeneratorOptions, saveConfig string) int {
	results, err := generator.GenerateBatch(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", r.Path, r.Err)
		} else if !opts.Quiet {
			fmt.Printf("  %s (seed %d)\n", r.Path, r.Seed)
		}
	}

	// Save config if requested
	if saveConfig != "" {
		cfg := wizard.FromGeneratorOptions(opts)
		if err := wizard.SaveToYAML(cfg, saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		} else if !opts.Quiet {
			fmt.Printf("Configuration saved to %s\n", saveConfig)
		}
	}

	if generator.Failed(results) > 0 {
		return 1
	}
	return 0
}

// inspect prints the header of each BMP file given
func inspect(paths []string) int {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: linebmp inspect <file.bmp>...")
		return 1
	}

	code := 0
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			code = 1
			continue
		}
		h, err := bmp.DecodeHeader(f)
		_ = f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", p, err)
			code = 1
			continue
		}
		fmt.Printf("%s: %s\n", p, h)
	}
	return code
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  linebmp [options]")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("linebmp")
	fmt.Println("=======")
	fmt.Println()
	fmt.Println("Generate square black-on-white BMP images containing a single line.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  linebmp [options]")
	fmt.Println("  linebmp inspect <file.bmp>...")
	fmt.Println("  linebmp wizard [--from <config.yaml>]")
	fmt.Println()
	fmt.Println("Image options:")
	fmt.Println("  --size <N>            Width and height in pixels (default: 32)")
	fmt.Println("  --thickness <N>       Line thickness in pixels (default: 3)")
	fmt.Println("  --mode <MODE>         polyline, bar or walk (default: polyline)")
	fmt.Println("  --points <LIST>       Polyline points, e.g. \"10,10 20,5 25,20\"")
	fmt.Println("  --direction <DIR>     vertical or horizontal (default: vertical)")
	fmt.Println("  --symmetry <SYM>      mirrored or none (default: mirrored)")
	fmt.Println("  -v, -h                Vertical / horizontal")
	fmt.Println("  -s, -a                Symmetric / asymmetric")
	fmt.Println()
	fmt.Println("Batch options:")
	fmt.Println("  -n <N>                Number of images (default: 1)")
	fmt.Println("  --seed <N>            Base seed; image i uses seed+i (derived from -o if not specified)")
	fmt.Println("  -o <NAME>             Output file or template (default: output.bmp)")
	fmt.Println("                        Placeholders: {index}, {seed}, {direction}, {symmetry}, {mode}")
	fmt.Printf("  --workers <N>         Number of parallel workers (default: %d = CPU cores)\n", runtime.NumCPU())
	fmt.Println()
	fmt.Println("Preview options:")
	fmt.Println("  --preview-scale <N>   Also write a PNG scaled N times (default: off)")
	fmt.Println("  --preview-caption     Add mode, direction and seed under the preview")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("  --config <FILE>       Load options from YAML")
	fmt.Println("  --save-config <FILE>  Save options to YAML after generation")
	fmt.Println("  --quiet               Suppress progress output")
	fmt.Println("  --help                Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Default mirrored polyline, 32x32")
	fmt.Println("  linebmp")
	fmt.Println()
	fmt.Println("  # 20 horizontal random walks, 64x64, named by seed")
	fmt.Println("  linebmp --mode walk -h --size 64 -n 20 --seed 7 -o \"walks/walk_{seed}.bmp\"")
	fmt.Println()
	fmt.Println("  # Thick vertical bar with an 8x preview")
	fmt.Println("  linebmp --mode bar --thickness 6 -a --preview-scale 8")
}
