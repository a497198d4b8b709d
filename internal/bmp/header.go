// Package bmp writes and reads the uncompressed 24-bit BMP files produced by
// linebmp.
//
// Pixel rows are stored exactly as held in the raster buffer: top row first,
// R,G,B byte order and a stride of width*3 with no padding to a 4-byte
// boundary. Readers that expect strict BMP rows see a valid image only when
// width*3 is a multiple of 4.
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// HeaderSize is the size of the file header plus the info header
	HeaderSize = 54
	// InfoHeaderSize is the size of the BITMAPINFOHEADER part
	InfoHeaderSize = 40

	Signature    = 0x4D42 // "BM"
	BitsPerPixel = 24
	// Resolution is 72 DPI expressed in pixels per meter
	Resolution = 2835
)

// ErrFormat is returned when decoding bytes that are not a linebmp file
var ErrFormat = errors.New("unsupported bmp format")

// Header holds every field of the 54-byte header, in file order
type Header struct {
	Signature       uint16
	FileSize        uint32
	Reserved        uint32
	DataOffset      uint32
	InfoSize        uint32
	Width           uint32
	Height          uint32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter uint32
	YPixelsPerMeter uint32
	ColorsUsed      uint32
	ImportantColors uint32
}

// NewHeader returns the header for a width x height 24-bit image
func NewHeader(width, height int) Header {
	dataSize := uint32(width * height * 3)
	return Header{
		Signature:       Signature,
		FileSize:        HeaderSize + dataSize,
		DataOffset:      HeaderSize,
		InfoSize:        InfoHeaderSize,
		Width:           uint32(width),
		Height:          uint32(height),
		Planes:          1,
		BitsPerPixel:    BitsPerPixel,
		ImageSize:       dataSize,
		XPixelsPerMeter: Resolution,
		YPixelsPerMeter: Resolution,
	}
}

// MarshalBinary serializes the header field by field at fixed offsets
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)
	le := binary.LittleEndian

	// File header
	le.PutUint16(b[0:2], h.Signature)
	le.PutUint32(b[2:6], h.FileSize)
	le.PutUint32(b[6:10], h.Reserved)
	le.PutUint32(b[10:14], h.DataOffset)

	// Info header
	le.PutUint32(b[14:18], h.InfoSize)
	le.PutUint32(b[18:22], h.Width)
	le.PutUint32(b[22:26], h.Height)
	le.PutUint16(b[26:28], h.Planes)
	le.PutUint16(b[28:30], h.BitsPerPixel)
	le.PutUint32(b[30:34], h.Compression)
	le.PutUint32(b[34:38], h.ImageSize)
	le.PutUint32(b[38:42], h.XPixelsPerMeter)
	le.PutUint32(b[42:46], h.YPixelsPerMeter)
	le.PutUint32(b[46:50], h.ColorsUsed)
	le.PutUint32(b[50:54], h.ImportantColors)

	return b, nil
}

// UnmarshalBinary parses a 54-byte header. It does not validate field values.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("%w: header is %d bytes, want %d", ErrFormat, len(b), HeaderSize)
	}
	le := binary.LittleEndian

	h.Signature = le.Uint16(b[0:2])
	h.FileSize = le.Uint32(b[2:6])
	h.Reserved = le.Uint32(b[6:10])
	h.DataOffset = le.Uint32(b[10:14])
	h.InfoSize = le.Uint32(b[14:18])
	h.Width = le.Uint32(b[18:22])
	h.Height = le.Uint32(b[22:26])
	h.Planes = le.Uint16(b[26:28])
	h.BitsPerPixel = le.Uint16(b[28:30])
	h.Compression = le.Uint32(b[30:34])
	h.ImageSize = le.Uint32(b[34:38])
	h.XPixelsPerMeter = le.Uint32(b[38:42])
	h.YPixelsPerMeter = le.Uint32(b[42:46])
	h.ColorsUsed = le.Uint32(b[46:50])
	h.ImportantColors = le.Uint32(b[50:54])
	return nil
}

// Validate checks that the header describes an uncompressed, unpadded 24-bit image
func (h Header) Validate() error {
	switch {
	case h.Signature != Signature:
		return fmt.Errorf("%w: signature 0x%04X", ErrFormat, h.Signature)
	case h.DataOffset != HeaderSize:
		return fmt.Errorf("%w: pixel data offset %d", ErrFormat, h.DataOffset)
	case h.InfoSize != InfoHeaderSize:
		return fmt.Errorf("%w: info header size %d", ErrFormat, h.InfoSize)
	case h.Planes != 1:
		return fmt.Errorf("%w: %d planes", ErrFormat, h.Planes)
	case h.BitsPerPixel != BitsPerPixel:
		return fmt.Errorf("%w: %d bits per pixel", ErrFormat, h.BitsPerPixel)
	case h.Compression != 0:
		return fmt.Errorf("%w: compression %d", ErrFormat, h.Compression)
	case h.Width == 0 || h.Height == 0:
		return fmt.Errorf("%w: empty image %dx%d", ErrFormat, h.Width, h.Height)
	}

	want := uint64(h.Width) * uint64(h.Height) * 3
	if uint64(h.ImageSize) != want {
		return fmt.Errorf("%w: image size %d, want %d", ErrFormat, h.ImageSize, want)
	}
	if uint64(h.FileSize) != HeaderSize+want {
		return fmt.Errorf("%w: file size %d, want %d", ErrFormat, h.FileSize, HeaderSize+want)
	}
	return nil
}

// String formats the header for display
func (h Header) String() string {
	return fmt.Sprintf("BMP %dx%d, %d bpp, %d bytes (data %d at offset %d), %d ppm",
		h.Width, h.Height, h.BitsPerPixel, h.FileSize, h.ImageSize, h.DataOffset, h.XPixelsPerMeter)
}
