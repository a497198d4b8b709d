package util

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// DefaultPoints is the polyline drawn when no points are given
var DefaultPoints = []image.Point{
	{X: 10, Y: 10},
	{X: 20, Y: 5},
	{X: 25, Y: 20},
	{X: 15, Y: 25},
	{X: 5, Y: 15},
}

// ParsePoints parses a list of "x,y" pairs separated by spaces or semicolons,
// e.g. "10,10 20,5;25,20".
func ParsePoints(s string) ([]image.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no points given")
	}

	points := make([]image.Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: expected x,y", f)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("invalid x in point %q: %w", f, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("invalid y in point %q: %w", f, err)
		}
		points = append(points, image.Pt(x, y))
	}
	return points, nil
}

// FormatPoints is the inverse of ParsePoints
func FormatPoints(points []image.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}
