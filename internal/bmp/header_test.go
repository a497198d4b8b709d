package bmp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestNewHeader_Fields(t *testing.T) {
	b, err := NewHeader(32, 32).MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if len(b) != 54 {
		t.Fatalf("Header is %d bytes, want 54", len(b))
	}

	le := binary.LittleEndian
	fields := []struct {
		name   string
		offset int
		width  int
		want   uint32
	}{
		{"signature", 0, 2, 0x4D42},
		{"file size", 2, 4, 54 + 32*32*3},
		{"reserved", 6, 4, 0},
		{"data offset", 10, 4, 54},
		{"header size", 14, 4, 40},
		{"width", 18, 4, 32},
		{"height", 22, 4, 32},
		{"planes", 26, 2, 1},
		{"bits per pixel", 28, 2, 24},
		{"compression", 30, 4, 0},
		{"image size", 34, 4, 32 * 32 * 3},
		{"x resolution", 38, 4, 2835},
		{"y resolution", 42, 4, 2835},
		{"colors used", 46, 4, 0},
		{"important colors", 50, 4, 0},
	}

	for _, f := range fields {
		var got uint32
		if f.width == 2 {
			got = uint32(le.Uint16(b[f.offset:]))
		} else {
			got = le.Uint32(b[f.offset:])
		}
		if got != f.want {
			t.Errorf("%s at offset %d = %d, want %d", f.name, f.offset, got, f.want)
		}
	}

	if !bytes.Equal(b[0:2], []byte("BM")) {
		t.Errorf("Signature bytes = %q, want BM", b[0:2])
	}
}

func TestHeader_UnmarshalMatchesMarshal(t *testing.T) {
	h := NewHeader(17, 5)
	b, _ := h.MarshalBinary()

	var got Header
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if got != h {
		t.Errorf("got %+v, want %+v", got, h)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate failed on a fresh header: %v", err)
	}
}

func TestHeader_UnmarshalShort(t *testing.T) {
	var h Header
	if err := h.UnmarshalBinary(make([]byte, 20)); !errors.Is(err, ErrFormat) {
		t.Errorf("Expected ErrFormat, got %v", err)
	}
}

func TestHeader_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(h *Header)
	}{
		{"signature", func(h *Header) { h.Signature = 0x4142 }},
		{"offset", func(h *Header) { h.DataOffset = 138 }},
		{"info size", func(h *Header) { h.InfoSize = 124 }},
		{"planes", func(h *Header) { h.Planes = 2 }},
		{"bpp", func(h *Header) { h.BitsPerPixel = 8 }},
		{"compression", func(h *Header) { h.Compression = 1 }},
		{"empty", func(h *Header) { h.Width = 0 }},
		{"image size", func(h *Header) { h.ImageSize++ }},
		{"file size", func(h *Header) { h.FileSize-- }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeader(8, 8)
			tt.modify(&h)
			if err := h.Validate(); !errors.Is(err, ErrFormat) {
				t.Errorf("Expected ErrFormat, got %v", err)
			}
		})
	}
}
