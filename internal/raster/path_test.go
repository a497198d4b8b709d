package raster

import (
	"errors"
	"testing"
)

// scriptedSource replays fixed values, ignoring the requested range
type scriptedSource struct {
	values []int
	pos    int
}

func (s *scriptedSource) IntRange(lo, hi int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func TestGeneratePath_Bounds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		size, thickness := 32, 3
		offsets, err := GeneratePath(NewPCGSource(seed), size, thickness, false)
		if err != nil {
			t.Fatalf("GeneratePath failed: %v", err)
		}
		if len(offsets) != size {
			t.Fatalf("Expected %d offsets, got %d", size, len(offsets))
		}
		for i, o := range offsets {
			if o < 0 || o > size-1 {
				t.Fatalf("seed %d: offset[%d] = %d out of [0,%d]", seed, i, o, size-1)
			}
			if i > 0 && abs(o-offsets[i-1]) > thickness {
				t.Fatalf("seed %d: step %d -> %d exceeds thickness %d", seed, offsets[i-1], o, thickness)
			}
		}
	}
}

func TestGeneratePath_SaturatingClamp(t *testing.T) {
	// start at 1, then steps of -3, -3, +3, +3, +3
	src := &scriptedSource{values: []int{1, -3, -3, 3, 3, 3}}
	offsets, err := GeneratePath(src, 6, 3, false)
	if err != nil {
		t.Fatalf("GeneratePath failed: %v", err)
	}
	want := []int{1, 0, 0, 3, 5, 5}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("offsets = %v, want %v", offsets, want)
			break
		}
	}
}

func TestGeneratePath_Symmetric(t *testing.T) {
	for _, size := range []int{1, 2, 9, 32} {
		offsets, err := GeneratePath(NewPCGSource(7), size, 2, true)
		if err != nil {
			t.Fatalf("GeneratePath failed: %v", err)
		}
		for i := 0; i < size/2; i++ {
			if offsets[i] != offsets[size-1-i] {
				t.Errorf("size %d: offset[%d]=%d != offset[%d]=%d", size, i, offsets[i], size-1-i, offsets[size-1-i])
			}
		}
	}
}

func TestGeneratePath_Deterministic(t *testing.T) {
	a, _ := GeneratePath(NewPCGSource(42), 64, 4, false)
	b, _ := GeneratePath(NewPCGSource(42), 64, 4, false)
	c, _ := GeneratePath(NewPCGSource(43), 64, 4, false)

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same seed produced different offsets at %d", i)
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Error("Different seeds should produce different paths")
	}
}

func TestGeneratePath_InvalidParameters(t *testing.T) {
	tests := []struct {
		name      string
		src       RandomSource
		size      int
		thickness int
	}{
		{"zero size", NewPCGSource(1), 0, 3},
		{"zero thickness", NewPCGSource(1), 10, 0},
		{"nil source", nil, 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeneratePath(tt.src, tt.size, tt.thickness, false)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestPCGSource_IntRange(t *testing.T) {
	src := NewPCGSource(1)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := src.IntRange(-2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("IntRange(-2,2) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("Expected all 5 values in 1000 draws, got %v", seen)
	}
	if v := src.IntRange(4, 4); v != 4 {
		t.Errorf("IntRange(4,4) = %d, want 4", v)
	}
}

func TestWalk_WithGeneratedPath(t *testing.T) {
	size, thickness := 32, 3
	offsets, err := GeneratePath(NewPCGSource(9), size, thickness, true)
	if err != nil {
		t.Fatalf("GeneratePath failed: %v", err)
	}
	buf := newBuffer(t, size)
	(&Walk{Offsets: offsets, Thickness: thickness}).Draw(buf)

	// Every column holds a run of 1..thickness black pixels (saturation can shorten it)
	for x := 0; x < size; x++ {
		black := 0
		for y := 0; y < size; y++ {
			if buf.ReadPixel(x, y) == Black {
				black++
			}
		}
		if black < 1 || black > thickness {
			t.Errorf("Column %d has %d black pixels", x, black)
		}
	}
}
