package raster

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPreview_Scaled(t *testing.T) {
	buf := newBuffer(t, 4)
	buf.SetPixel(1, 2, Black)

	img, err := Preview(buf, 5, "")
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("Bounds() = %v, want 20x20", b)
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			c := img.RGBAAt(x, y)
			wantBlack := x/5 == 1 && y/5 == 2
			if wantBlack && (c.R != 0 || c.G != 0 || c.B != 0) {
				t.Fatalf("Pixel (%d,%d) = %v, want black", x, y, c)
			}
			if !wantBlack && (c.R != 255 || c.G != 255 || c.B != 255) {
				t.Fatalf("Pixel (%d,%d) = %v, want white", x, y, c)
			}
		}
	}
}

func TestPreview_Caption(t *testing.T) {
	buf := newBuffer(t, 8)
	img, err := Preview(buf, 4, "seed 42")
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if b := img.Bounds(); b.Dy() != 32+captionHeight {
		t.Fatalf("Height = %d, want %d", b.Dy(), 32+captionHeight)
	}

	dark := 0
	for y := 32; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("Caption strip has no text pixels")
	}
}

func TestPreview_InvalidScale(t *testing.T) {
	buf := newBuffer(t, 2)
	if _, err := Preview(buf, 0, ""); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestEncodePreview_PNG(t *testing.T) {
	buf := newBuffer(t, 3)
	var out bytes.Buffer
	if err := EncodePreview(&out, buf, 2, ""); err != nil {
		t.Fatalf("EncodePreview failed: %v", err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Errorf("Decoded bounds = %v, want 6x6", b)
	}
}

func TestWritePreview_BadPath(t *testing.T) {
	buf := newBuffer(t, 3)
	path := filepath.Join(t.TempDir(), "missing", "dir", "p.png")
	if err := WritePreview(path, buf, 2, ""); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestWritePreview(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.png")
	if err := WritePreview(path, newBuffer(t, 3), 2, ""); err != nil {
		t.Fatalf("WritePreview failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("png.Decode failed: %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected only the preview file, found %d entries", len(entries))
	}
}

func TestWritePreview_FailureKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.png")
	if err := os.WriteFile(path, []byte("previous"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WritePreview(path, newBuffer(t, 3), 0, ""); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Expected ErrInvalidParameter, got %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "previous" {
		t.Errorf("Existing file was modified: %q", got)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Temporary file left behind: %d entries", len(entries))
	}
}
