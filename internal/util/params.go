// internal/util/params.go
package util

import (
	"fmt"
	"strings"
)

// Direction selects the axis along which the bar and random-walk drawings vary.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// String returns the lowercase name used on the command line and in file names
func (d Direction) String() string {
	switch d {
	case DirectionHorizontal:
		return "horizontal"
	default:
		return "vertical"
	}
}

// ParseDirection parses a string into a Direction.
// Single-letter forms "v" and "h" are accepted.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return DirectionVertical, nil
	case "horizontal", "h":
		return DirectionHorizontal, nil
	default:
		return DirectionVertical, fmt.Errorf("invalid direction: %s (valid: vertical, horizontal)", s)
	}
}

// Symmetry controls the mirror post-processing step
type Symmetry int

const (
	SymmetryNone Symmetry = iota
	SymmetryMirrored
)

// String returns the lowercase name used on the command line and in file names
func (s Symmetry) String() string {
	switch s {
	case SymmetryMirrored:
		return "mirrored"
	default:
		return "none"
	}
}

// ParseSymmetry parses a string into a Symmetry
func ParseSymmetry(s string) (Symmetry, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mirrored", "mirror", "symmetric", "s":
		return SymmetryMirrored, nil
	case "none", "asymmetric", "a":
		return SymmetryNone, nil
	default:
		return SymmetryNone, fmt.Errorf("invalid symmetry: %s (valid: mirrored, none)", s)
	}
}

// Mode selects the drawing strategy
type Mode int

const (
	ModePolyline Mode = iota
	ModeBar
	ModeWalk
)

// AllModes returns all valid drawing modes
func AllModes() []Mode {
	return []Mode{ModePolyline, ModeBar, ModeWalk}
}

// String returns the lowercase name of the mode
func (m Mode) String() string {
	switch m {
	case ModeBar:
		return "bar"
	case ModeWalk:
		return "walk"
	default:
		return "polyline"
	}
}

// ParseMode parses a string into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "polyline", "points":
		return ModePolyline, nil
	case "bar":
		return ModeBar, nil
	case "walk", "random":
		return ModeWalk, nil
	default:
		return ModePolyline, fmt.Errorf("invalid mode: %s (valid: %v)", s, AllModes())
	}
}
