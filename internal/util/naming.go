package util

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// NameFields holds the values substituted into an output file name template
type NameFields struct {
	Index     int
	Seed      int64
	Direction Direction
	Symmetry  Symmetry
	Mode      Mode
}

// FormatFilename expands an output file name template.
//
// Supported placeholders: {index} (zero-padded to 3 digits), {seed}, {direction},
// {symmetry}, {mode}. Only {index} and {seed} change from one image to the next,
// so when the batch holds more than one image and the template has neither,
// "_NNN" is inserted before the extension.
func FormatFilename(template string, f NameFields, total int) string {
	if template == "" {
		template = "output.bmp"
	}

	r := strings.NewReplacer(
		"{index}", fmt.Sprintf("%03d", f.Index),
		"{seed}", strconv.FormatInt(f.Seed, 10),
		"{direction}", f.Direction.String(),
		"{symmetry}", f.Symmetry.String(),
		"{mode}", f.Mode.String(),
	)
	name := r.Replace(template)

	if total > 1 && !IsUniquePerImage(template) {
		ext := filepath.Ext(name)
		name = fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(name, ext), f.Index, ext)
	}
	return name
}

// IsUniquePerImage reports whether the template gives every image of a batch
// its own name
func IsUniquePerImage(template string) bool {
	return strings.Contains(template, "{index}") || strings.Contains(template, "{seed}")
}
