package bmp

import (
	"fmt"
	"io"
	"os"

	"github.com/mrsinham/linebmp/internal/raster"
)

// DecodeHeader reads and validates the 54-byte header
func DecodeHeader(r io.Reader) (Header, error) {
	var h Header
	b := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, b); err != nil {
		return h, fmt.Errorf("%w: read header: %w", ErrFormat, err)
	}
	if err := h.UnmarshalBinary(b); err != nil {
		return h, err
	}
	return h, h.Validate()
}

// Decode reads a file written by Encode back into a pixel buffer.
//
// Pixel data is read before the buffer is built, so a header announcing more
// data than the input holds fails without allocating the announced size.
func Decode(r io.Reader) (*raster.PixelBuffer, Header, error) {
	h, err := DecodeHeader(r)
	if err != nil {
		return nil, h, err
	}

	data, err := io.ReadAll(io.LimitReader(r, int64(h.ImageSize)))
	if err != nil {
		return nil, h, fmt.Errorf("%w: read pixel data: %w", ErrFormat, err)
	}
	if uint64(len(data)) != uint64(h.ImageSize) {
		return nil, h, fmt.Errorf("%w: pixel data is %d bytes, want %d: %w",
			ErrFormat, len(data), h.ImageSize, io.ErrUnexpectedEOF)
	}

	buf, err := raster.NewPixelBufferFromBytes(int(h.Width), int(h.Height), data)
	if err != nil {
		return nil, h, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return buf, h, nil
}

// ReadFile decodes the file at path
func ReadFile(path string) (*raster.PixelBuffer, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}
