package generator

import (
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/mrsinham/linebmp/internal/bmp"
	"github.com/mrsinham/linebmp/internal/raster"
	"github.com/mrsinham/linebmp/internal/util"
)

// GeneratorOptions contains all parameters needed to generate a batch of line images
type GeneratorOptions struct {
	Size      int // Image width and height in pixels
	Thickness int // Line thickness in pixels
	Direction util.Direction
	Symmetry  util.Symmetry
	Mode      util.Mode
	Points    []image.Point // Polyline points (nil = util.DefaultPoints)

	NumImages int    // Number of images to generate (0 = 1)
	Seed      int64  // Base seed (0 = derived from Output)
	Output    string // Output file name or template, see util.FormatFilename
	Workers   int    // Number of parallel workers (0 = auto-detect based on CPU cores)

	// Preview
	PreviewScale   int  // Scale factor for a PNG preview next to each BMP (0 = no preview)
	PreviewCaption bool // Print mode, direction and seed under the preview

	// Output control
	Quiet            bool                     // Suppress progress output
	ProgressCallback func(current, total int) // Optional callback for progress updates
}

// Result describes one image of a batch. Err is set when that image failed;
// other images of the batch are unaffected.
type Result struct {
	Index       int
	Seed        int64
	Path        string
	PreviewPath string
	Err         error
}

// imageTask contains all data needed to generate a single image
type imageTask struct {
	index       int
	seed        int64
	filePath    string
	previewPath string
	caption     string
}

// Validate rejects invalid parameters before anything is allocated or written
func (o *GeneratorOptions) Validate() error {
	if err := (raster.ImageSpec{Size: o.Size, Thickness: o.Thickness}).Validate(); err != nil {
		return err
	}
	if o.Mode == util.ModePolyline && o.Points != nil && len(o.Points) < 2 {
		return fmt.Errorf("%w: polyline needs at least 2 points, got %d", raster.ErrInvalidParameter, len(o.Points))
	}
	if o.NumImages < 0 {
		return fmt.Errorf("%w: number of images must be >= 0, got %d", raster.ErrInvalidParameter, o.NumImages)
	}
	if o.PreviewScale < 0 {
		return fmt.Errorf("%w: preview scale must be >= 0, got %d", raster.ErrInvalidParameter, o.PreviewScale)
	}
	return nil
}

// ResolveSeed returns the base seed of a batch. Without an explicit seed it is
// derived from the output name so that the same name gives the same images.
func ResolveSeed(opts GeneratorOptions) int64 {
	if opts.Seed != 0 {
		return opts.Seed
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(opts.Output)) // hash.Write never returns an error
	return int64(h.Sum64())
}

// NewDrawing builds the drawing selected by opts.Mode. The random source is
// only consumed by the walk mode.
func NewDrawing(opts GeneratorOptions, src raster.RandomSource) (raster.Drawing, error) {
	switch opts.Mode {
	case util.ModeBar:
		return &raster.Bar{Size: opts.Size, Thickness: opts.Thickness, Direction: opts.Direction}, nil
	case util.ModeWalk:
		offsets, err := raster.GeneratePath(src, opts.Size, opts.Thickness, opts.Symmetry == util.SymmetryMirrored)
		if err != nil {
			return nil, fmt.Errorf("generate path: %w", err)
		}
		return &raster.Walk{Offsets: offsets, Thickness: opts.Thickness, Direction: opts.Direction}, nil
	case util.ModePolyline:
		points := opts.Points
		if points == nil {
			points = util.DefaultPoints
		}
		return raster.NewPolyline(points)
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", raster.ErrInvalidParameter, opts.Mode)
	}
}

// Render produces the image for one seed: allocate, draw, then mirror
func Render(opts GeneratorOptions, seed int64) (*raster.PixelBuffer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	drawing, err := NewDrawing(opts, raster.NewPCGSource(seed))
	if err != nil {
		return nil, err
	}

	buf, err := raster.NewPixelBuffer(opts.Size, opts.Size)
	if err != nil {
		return nil, err
	}
	drawing.Draw(buf)
	raster.ApplySymmetry(buf, opts.Symmetry)
	return buf, nil
}

// generateImageFromTask renders and writes a single image
func generateImageFromTask(opts GeneratorOptions, task imageTask) error {
	buf, err := Render(opts, task.seed)
	if err != nil {
		return err
	}

	if err := bmp.WriteFile(task.filePath, buf); err != nil {
		return err
	}

	if task.previewPath != "" {
		if err := raster.WritePreview(task.previewPath, buf, opts.PreviewScale, task.caption); err != nil {
			return fmt.Errorf("%w: preview: %w", bmp.ErrIO, err)
		}
	}
	return nil
}

// previewPathFor returns the PNG path written next to a BMP
func previewPathFor(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
}

// GenerateImage renders the image with the given batch index and writes it
func GenerateImage(opts GeneratorOptions, index int) Result {
	tasks := buildTasks(opts, ResolveSeed(opts))
	if index < 0 || index >= len(tasks) {
		return Result{Index: index, Err: fmt.Errorf("%w: index %d out of range", raster.ErrInvalidParameter, index)}
	}
	task := tasks[index]
	return Result{
		Index:       task.index,
		Seed:        task.seed,
		Path:        task.filePath,
		PreviewPath: task.previewPath,
		Err:         generateImageFromTask(opts, task),
	}
}

func buildTasks(opts GeneratorOptions, baseSeed int64) []imageTask {
	numImages := opts.NumImages
	if numImages == 0 {
		numImages = 1
	}

	tasks := make([]imageTask, numImages)
	for i := range tasks {
		seed := baseSeed + int64(i)
		path := util.FormatFilename(opts.Output, util.NameFields{
			Index:     i,
			Seed:      seed,
			Direction: opts.Direction,
			Symmetry:  opts.Symmetry,
			Mode:      opts.Mode,
		}, numImages)

		task := imageTask{index: i, seed: seed, filePath: path}
		if opts.PreviewScale > 0 {
			task.previewPath = previewPathFor(path)
			if opts.PreviewCaption {
				task.caption = fmt.Sprintf("%s %s %d", opts.Mode, opts.Direction, seed)
			}
		}
		tasks[i] = task
	}
	return tasks
}

// GenerateBatch generates every image of the batch.
//
// An error is returned only when the options are invalid; per-image failures
// are reported in the matching Result and do not stop the other images.
// Results are ordered by index.
func GenerateBatch(opts GeneratorOptions) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	seed := ResolveSeed(opts)
	if !opts.Quiet {
		if opts.Seed != 0 {
			fmt.Printf("Using seed: %d\n", seed)
		} else {
			fmt.Printf("Auto-generated seed from '%s': %d\n", opts.Output, seed)
		}
	}

	// Phase 1: compute every file name and seed
	tasks := buildTasks(opts, seed)

	// Create output directories
	dirs := make(map[string]bool)
	for _, task := range tasks {
		dirs[filepath.Dir(task.filePath)] = true
	}
	for dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil && !opts.Quiet {
			fmt.Printf("Warning: create output directory %s: %v\n", dir, err)
		}
	}

	// Phase 2: Process tasks in parallel
	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	// Don't use more workers than tasks
	if numWorkers > len(tasks) {
		numWorkers = len(tasks)
	}

	if !opts.Quiet {
		fmt.Printf("Generating %d %s image(s) %dx%d with %d worker(s)...\n",
			len(tasks), opts.Mode, opts.Size, opts.Size, numWorkers)
	}

	taskChan := make(chan imageTask, len(tasks))
	resultChan := make(chan struct {
		index int
		err   error
	}, len(tasks))

	// Start workers
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChan {
				err := generateImageFromTask(opts, task)
				resultChan <- struct {
					index int
					err   error
				}{task.index, err}
			}
		}()
	}

	// Send all tasks to workers
	for _, task := range tasks {
		taskChan <- task
	}
	close(taskChan)

	// Wait for all workers to finish
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results and track progress
	results := make([]Result, len(tasks))
	for i, task := range tasks {
		results[i] = Result{
			Index:       task.index,
			Seed:        task.seed,
			Path:        task.filePath,
			PreviewPath: task.previewPath,
		}
	}

	completed := 0
	for result := range resultChan {
		results[result.index].Err = result.err
		completed++
		if opts.ProgressCallback != nil {
			opts.ProgressCallback(completed, len(tasks))
		}
		if !opts.Quiet && result.err != nil {
			fmt.Printf("  Image %d failed: %v\n", result.index, result.err)
		}
		if !opts.Quiet && (completed%10 == 0 || completed == len(tasks)) {
			progress := float64(completed) / float64(len(tasks)) * 100
			fmt.Printf("  Progress: %d/%d (%.0f%%)\n", completed, len(tasks), progress)
		}
	}

	if !opts.Quiet {
		failed := Failed(results)
		fmt.Printf("\n✓ %d BMP file(s) created", len(results)-failed)
		if failed > 0 {
			fmt.Printf(", %d failed", failed)
		}
		fmt.Println()
	}

	return results, nil
}

// Failed returns the number of results carrying an error
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// IsInvalidParameter reports whether err was caused by rejected parameters
func IsInvalidParameter(err error) bool {
	return errors.Is(err, raster.ErrInvalidParameter)
}
