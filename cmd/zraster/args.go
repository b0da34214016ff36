package main

import (
	"errors"
	"fmt"
	"strconv"
)

const usageLine = "Usage: zraster [options] <mesh-file> <image-file> <width> <height> [-w | --wireframe]"

var (
	errBadLength       = errors.New("expected 4 or 5 arguments")
	errImageDimensions = errors.New("image dimensions must be positive integers")
	errBadMode         = errors.New("optional 5th argument must be -w or --wireframe")
)

// args are the positional command-line arguments.
type args struct {
	meshFile  string
	imageFile string
	width     int
	height    int
	wireframe bool
}

// parseArgs parses the positional arguments left after flag parsing.
func parseArgs(pos []string) (args, error) {
	if len(pos) != 4 && len(pos) != 5 {
		return args{}, fmt.Errorf("%w, got %d", errBadLength, len(pos))
	}

	width, err := parseDimension(pos[2])
	if err != nil {
		return args{}, fmt.Errorf("%w: width %q", errImageDimensions, pos[2])
	}
	height, err := parseDimension(pos[3])
	if err != nil {
		return args{}, fmt.Errorf("%w: height %q", errImageDimensions, pos[3])
	}

	a := args{
		meshFile:  pos[0],
		imageFile: pos[1],
		width:     width,
		height:    height,
	}
	if len(pos) == 5 {
		switch pos[4] {
		case "-w", "--wireframe":
			a.wireframe = true
		default:
			return args{}, fmt.Errorf("%w, got %q", errBadMode, pos[4])
		}
	}
	return a, nil
}

func parseDimension(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errImageDimensions
	}
	return n, nil
}
