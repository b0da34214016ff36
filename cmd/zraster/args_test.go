package main

import (
	"errors"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		pos     []string
		want    args
		wantErr error
	}{
		{"depth", []string{"a.obj", "b.png", "1", "1"}, args{meshFile: "a.obj", imageFile: "b.png", width: 1, height: 1}, nil},
		{"wireframe short", []string{"a", "b", "3", "2", "-w"}, args{meshFile: "a", imageFile: "b", width: 3, height: 2, wireframe: true}, nil},
		{"wireframe long", []string{"a", "b", "3", "2", "--wireframe"}, args{meshFile: "a", imageFile: "b", width: 3, height: 2, wireframe: true}, nil},
		{"no args", nil, args{}, errBadLength},
		{"too few", []string{"a", "b", "1"}, args{}, errBadLength},
		{"too many", []string{"a", "b", "1", "1", "-w", "x"}, args{}, errBadLength},
		{"zero width", []string{"a", "b", "0", "1"}, args{}, errImageDimensions},
		{"negative height", []string{"a", "b", "1", "-1"}, args{}, errImageDimensions},
		{"non-numeric", []string{"a", "b", "wide", "1"}, args{}, errImageDimensions},
		{"empty mode", []string{"a", "b", "1", "1", ""}, args{}, errBadMode},
		{"garbage mode", []string{"a", "b", "1", "1", "garbage"}, args{}, errBadMode},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseArgs(tc.pos)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("parseArgs() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("parseArgs() = %+v, want %+v", got, tc.want)
			}
		})
	}
}
