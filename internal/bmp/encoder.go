package bmp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrsinham/linebmp/internal/raster"
)

// ErrIO is returned when the destination cannot be created or written
var ErrIO = errors.New("bmp write failed")

// Encode writes the header followed by the raw pixel bytes of buf
func Encode(w io.Writer, buf *raster.PixelBuffer) error {
	header, err := NewHeader(buf.Width(), buf.Height()).MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w: header: %w", ErrIO, err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: pixel data: %w", ErrIO, err)
	}
	return nil
}

// WriteFile encodes buf to path.
//
// The file is written under a temporary name in the same directory and
// renamed into place once complete. On failure the temporary file is removed.
func WriteFile(path string, buf *raster.PixelBuffer) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = Encode(f, buf); err != nil {
		return err
	}
	if err = f.Chmod(0644); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", ErrIO, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIO, path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: rename to %s: %w", ErrIO, path, err)
	}
	return nil
}
