package raster

import "github.com/mrsinham/linebmp/internal/util"

// Mirror overwrites the right half of every row with a reflection of the left half.
// A middle column of an odd-width image is left as is.
func Mirror(buf *PixelBuffer) {
	w := buf.Width()
	for row := 0; row < buf.Height(); row++ {
		for col := 0; col < w/2; col++ {
			buf.SetPixel(w-1-col, row, buf.ReadPixel(col, row))
		}
	}
}

// ApplySymmetry runs Mirror when mode is SymmetryMirrored
func ApplySymmetry(buf *PixelBuffer, mode util.Symmetry) {
	if mode == util.SymmetryMirrored {
		Mirror(buf)
	}
}
