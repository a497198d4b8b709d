package raster

import (
	"fmt"
	"image"

	"github.com/mrsinham/linebmp/internal/util"
)

// Drawing paints black pixels into a buffer. Each implementation owns its
// own policy for coordinates that fall outside the buffer.
type Drawing interface {
	Draw(buf *PixelBuffer)
}

// Polyline draws Bresenham segments between consecutive points.
// A segment stops at its first out-of-bounds coordinate; nothing is clamped.
type Polyline struct {
	Points []image.Point
}

// NewPolyline returns a Polyline, rejecting fewer than two points
func NewPolyline(points []image.Point) (*Polyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: polyline needs at least 2 points, got %d", ErrInvalidParameter, len(points))
	}
	return &Polyline{Points: points}, nil
}

// Draw implements Drawing.
func (p *Polyline) Draw(buf *PixelBuffer) {
	for i := 0; i+1 < len(p.Points); i++ {
		drawSegment(buf, p.Points[i], p.Points[i+1])
	}
}

func drawSegment(buf *PixelBuffer, from, to image.Point) {
	walkSegment(from, to, func(x, y int) bool {
		if !buf.InBounds(x, y) {
			return false
		}
		buf.SetPixel(x, y, Black)
		return true
	})
}

// walkSegment steps from one point to the other with Bresenham's algorithm,
// calling visit for every coordinate including both ends. The walk ends early
// when visit returns false.
func walkSegment(from, to image.Point, visit func(x, y int) bool) {
	dx := abs(to.X - from.X)
	dy := abs(to.Y - from.Y)
	sx := 1
	if from.X > to.X {
		sx = -1
	}
	sy := 1
	if from.Y > to.Y {
		sy = -1
	}
	err := dx - dy
	x, y := from.X, from.Y

	for {
		if !visit(x, y) {
			return
		}
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Bar draws Thickness solid rows (vertical direction) or columns (horizontal
// direction) centred on the image. Indices before the image are skipped and
// the bar stops at the first index past the end.
type Bar struct {
	Size      int
	Thickness int
	Direction util.Direction
}

// Start returns the first row or column index of the bar
func (b *Bar) Start() int {
	return b.Size/2 - b.Thickness/2
}

// Draw implements Drawing.
func (b *Bar) Draw(buf *PixelBuffer) {
	start := b.Start()
	for i := 0; i < b.Thickness; i++ {
		idx := start + i
		if idx < 0 {
			continue
		}
		if b.Direction == util.DirectionHorizontal {
			if idx >= buf.Width() {
				return
			}
			for y := 0; y < buf.Height(); y++ {
				buf.SetPixel(idx, y, Black)
			}
		} else {
			if idx >= buf.Height() {
				return
			}
			for x := 0; x < buf.Width(); x++ {
				buf.SetPixel(x, idx, Black)
			}
		}
	}
}

// Walk draws a Thickness-pixel run at each offset of a random-walk path.
// With the horizontal direction there is one offset per row (the run extends
// along x); with the vertical direction one offset per column (the run
// extends along y). Coordinates past the far edge saturate to the last pixel.
type Walk struct {
	Offsets   []int
	Thickness int
	Direction util.Direction
}

// Draw implements Drawing.
func (w *Walk) Draw(buf *PixelBuffer) {
	lines, span := buf.Width(), buf.Height()
	if w.Direction == util.DirectionHorizontal {
		lines, span = buf.Height(), buf.Width()
	}
	last := span - 1

	for i := 0; i < lines && i < len(w.Offsets); i++ {
		for t := 0; t < w.Thickness; t++ {
			pos := max(w.Offsets[i]+t, 0)
			if pos > last {
				pos = last
			}
			if w.Direction == util.DirectionHorizontal {
				buf.SetPixel(pos, i, Black)
			} else {
				buf.SetPixel(i, pos, Black)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
