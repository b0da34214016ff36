package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported mesh format")

// Load picks an importer from the file extension and validates the result.
func Load(path string) (*Scene, error) {
	var (
		scene *Scene
		err   error
	)

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".obj":
		scene, err = LoadOBJ(path)
	case ".gltf", ".glb":
		scene, err = LoadGLTF(path)
	default:
		return nil, fmt.Errorf("%w: %q (use .obj, .gltf or .glb)", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return scene, nil
}
