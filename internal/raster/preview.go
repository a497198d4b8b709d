package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// captionHeight is the height of the caption strip, in preview pixels
const captionHeight = 17

// Preview returns the buffer scaled up by an integer factor with
// nearest-neighbour sampling, so that every source pixel becomes a hard
// scale x scale block. When caption is not empty a white strip with the
// caption in black is added under the image.
func Preview(buf *PixelBuffer, scale int, caption string) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: preview scale must be >= 1, got %d", ErrInvalidParameter, scale)
	}

	w, h := buf.Width()*scale, buf.Height()*scale
	total := h
	if caption != "" {
		total += captionHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, w, total))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(img, image.Rect(0, 0, w, h), buf, buf.Bounds(), draw.Src, nil)

	if caption != "" {
		face := basicfont.Face7x13
		drawer := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.Black),
			Face: face,
			Dot:  fixed.Point26_6{X: fixed.I(2), Y: fixed.I(h + 13)}, // baseline inside the strip
		}
		drawer.DrawString(caption)
	}

	return img, nil
}

// EncodePreview writes the preview as PNG
func EncodePreview(w io.Writer, buf *PixelBuffer, scale int, caption string) error {
	img, err := Preview(buf, scale, caption)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WritePreview writes the PNG preview to path. The image is written to a
// temporary file in the same directory and renamed into place, so an existing
// file at path is left untouched on failure.
func WritePreview(path string, buf *PixelBuffer, scale int, caption string) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = EncodePreview(f, buf, scale, caption); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	if err = f.Chmod(0644); err != nil {
		return fmt.Errorf("chmod preview: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close preview: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename preview: %w", err)
	}
	return nil
}
