package util

import (
	"image"
	"reflect"
	"testing"
)

func TestParsePoints(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []image.Point
		wantErr bool
	}{
		{
			name:  "space separated",
			input: "10,10 20,5",
			want:  []image.Point{{10, 10}, {20, 5}},
		},
		{
			name:  "semicolon separated",
			input: "1,2;3,4;5,6",
			want:  []image.Point{{1, 2}, {3, 4}, {5, 6}},
		},
		{
			name:  "negative coordinates",
			input: "-3,4 7,-1",
			want:  []image.Point{{-3, 4}, {7, -1}},
		},
		{
			name:    "empty",
			input:   "  ",
			wantErr: true,
		},
		{
			name:    "missing comma",
			input:   "10 10",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "a,1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoints(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePoints() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePoints() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatPoints_ParsesBack(t *testing.T) {
	s := FormatPoints(DefaultPoints)
	if s != "10,10 20,5 25,20 15,25 5,15" {
		t.Errorf("FormatPoints(DefaultPoints) = %q", s)
	}
	got, err := ParsePoints(s)
	if err != nil {
		t.Fatalf("ParsePoints(%q) failed: %v", s, err)
	}
	if !reflect.DeepEqual(got, DefaultPoints) {
		t.Errorf("got %v, want %v", got, DefaultPoints)
	}
}
