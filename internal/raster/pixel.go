// Package raster builds the black-on-white line images: the RGB pixel buffer,
// the three drawing strategies, the random-walk path generator and the mirror
// post-processing step.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// BytesPerPixel is the number of bytes per pixel (24-bit RGB)
const BytesPerPixel = 3

// maxPixelBytes keeps 54 + data size inside the 32-bit BMP file size field
const maxPixelBytes = math.MaxUint32 - 54

var (
	// ErrInvalidParameter is returned for parameters rejected before any allocation
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrAllocation is returned when a pixel buffer cannot be created
	ErrAllocation = errors.New("cannot allocate pixel buffer")
)

// RGB is a single 24-bit pixel
type RGB struct {
	R, G, B uint8
}

var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)

// ImageSpec holds the dimensions shared by every drawing strategy
type ImageSpec struct {
	Size      int // width = height = Size
	Thickness int
}

// Validate checks that size and thickness are both at least 1.
// Thickness larger than size is allowed.
func (s ImageSpec) Validate() error {
	if s.Size < 1 {
		return fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidParameter, s.Size)
	}
	if s.Thickness < 1 {
		return fmt.Errorf("%w: thickness must be >= 1, got %d", ErrInvalidParameter, s.Thickness)
	}
	return nil
}

// PixelBuffer is a row-major RGB image with a stride of exactly width*3 bytes
type PixelBuffer struct {
	data          []byte
	width, height int
	stride        int
}

// NewPixelBuffer allocates a width x height buffer filled with white.
//
// Returns ErrAllocation if the dimensions are not positive, if the byte count
// would overflow, or if the encoded file would not fit a 32-bit size field.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrAllocation, width, height)
	}

	// Check for potential overflow on 32-bit systems
	maxSize := int(^uint(0) >> 1)
	if width > maxSize/height/BytesPerPixel {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrAllocation, width, height)
	}
	size := width * height * BytesPerPixel
	if uint64(size) > maxPixelBytes {
		return nil, fmt.Errorf("%w: %dx%d exceeds the BMP size limit", ErrAllocation, width, height)
	}

	data := make([]byte, size)
	for i := range data {
		data[i] = 0xff
	}

	return &PixelBuffer{
		data:   data,
		width:  width,
		height: height,
		stride: width * BytesPerPixel,
	}, nil
}

// NewPixelBufferFromBytes wraps an existing RGB byte slice without copying it
func NewPixelBufferFromBytes(width, height int, data []byte) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrInvalidParameter, width, height)
	}
	if len(data) != width*height*BytesPerPixel {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d", ErrInvalidParameter, len(data), width, height)
	}
	return &PixelBuffer{
		data:   data,
		width:  width,
		height: height,
		stride: width * BytesPerPixel,
	}, nil
}

func (b *PixelBuffer) Width() int {
	return b.width
}

func (b *PixelBuffer) Height() int {
	return b.height
}

func (b *PixelBuffer) Stride() int {
	return b.stride
}

// Bytes returns the underlying RGB data. The slice is shared, not copied.
func (b *PixelBuffer) Bytes() []byte {
	return b.data
}

// InBounds reports whether (x, y) lies inside the buffer
func (b *PixelBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetPixel writes c at (x, y). Coordinates must already be in bounds.
func (b *PixelBuffer) SetPixel(x, y int, c RGB) {
	i := y*b.stride + x*BytesPerPixel
	b.data[i] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
}

// ReadPixel returns the pixel at (x, y). Coordinates must already be in bounds.
func (b *PixelBuffer) ReadPixel(x, y int) RGB {
	i := y*b.stride + x*BytesPerPixel
	return RGB{b.data[i], b.data[i+1], b.data[i+2]}
}

// Clone returns a deep copy of the buffer
func (b *PixelBuffer) Clone() *PixelBuffer {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &PixelBuffer{data: data, width: b.width, height: b.height, stride: b.stride}
}

// Equal reports whether both buffers have the same dimensions and bytes
func (b *PixelBuffer) Equal(o *PixelBuffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// ColorModel implements image.Image.
func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image. Points outside the buffer are transparent.
func (b *PixelBuffer) At(x, y int) color.Color {
	if !b.InBounds(x, y) {
		return color.RGBA{}
	}
	p := b.ReadPixel(x, y)
	return color.RGBA{p.R, p.G, p.B, 255}
}
