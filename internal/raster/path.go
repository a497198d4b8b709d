package raster

import (
	"fmt"
	"math/rand/v2"
)

// RandomSource yields uniformly distributed integers in [lo, hi]
type RandomSource interface {
	IntRange(lo, hi int) int
}

// PCGSource is a RandomSource backed by a seeded PCG generator.
// It is not safe for concurrent use; give each image its own source.
type PCGSource struct {
	rng *rand.Rand
}

// NewPCGSource creates a reproducible source for the given seed
func NewPCGSource(seed int64) *PCGSource {
	return &PCGSource{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

// IntRange implements RandomSource.
func (s *PCGSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// GeneratePath produces size offsets in [0, size-1] for the Walk drawing.
//
// The first offset is uniform over the image; each next one moves by a uniform
// step in [-thickness, +thickness] and saturates at the edges. When symmetric
// is set the second half of the sequence mirrors the first.
func GeneratePath(src RandomSource, size, thickness int, symmetric bool) ([]int, error) {
	if err := (ImageSpec{Size: size, Thickness: thickness}).Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParameter)
	}

	offsets := make([]int, size)
	offsets[0] = src.IntRange(0, size-1)
	for i := 1; i < size; i++ {
		offsets[i] = clamp(offsets[i-1]+src.IntRange(-thickness, thickness), 0, size-1)
	}

	if symmetric {
		for i := 0; i < size/2; i++ {
			offsets[size-1-i] = offsets[i]
		}
	}
	return offsets, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
