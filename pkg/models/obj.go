package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// defaultSubmodelName names geometry that appears before any o/g statement.
const defaultSubmodelName = "default"

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	return ParseOBJ(f, filepath.Base(path))
}

// ParseOBJ reads OBJ geometry from r.
//
// Only positions (v) and faces (f) are used. Each o or g statement starts a
// new submodel; polygons are fan-triangulated. Texture and normal references
// in face tokens are accepted and ignored.
func ParseOBJ(r io.Reader, name string) (*Scene, error) {
	p := &objParser{scene: NewScene(name)}
	p.begin(defaultSubmodelName)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	p.finish()
	p.scene.CalculateBounds()
	return p.scene, nil
}

// objParser holds the state of one OBJ read. OBJ vertex indices are global
// to the file, so each submodel keeps a remap from global to local index.
type objParser struct {
	scene    *Scene
	vertices [][3]float64

	current *Submodel
	remap   map[int]uint32
}

func (p *objParser) begin(name string) {
	p.current = &Submodel{Name: name}
	p.remap = make(map[int]uint32)
}

// finish keeps the current submodel if it produced any triangles.
func (p *objParser) finish() {
	if p.current != nil && len(p.current.Indices) > 0 {
		p.scene.Submodels = append(p.scene.Submodels, *p.current)
	}
	p.current = nil
}

func (p *objParser) parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		return p.parseVertex(fields[1:])
	case "f":
		return p.parseFace(fields[1:])
	case "o", "g":
		name := strings.Join(fields[1:], " ")
		if name == "" {
			name = defaultSubmodelName
		}
		if len(p.current.Indices) == 0 {
			// Nothing drawn yet, just rename
			p.current.Name = name
			return nil
		}
		p.finish()
		p.begin(name)
	}
	// vt, vn, usemtl, mtllib, s, l, p and friends carry nothing we draw
	return nil
}

func (p *objParser) parseVertex(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("vertex needs 3 coordinates, got %d", len(args))
	}
	var v [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("vertex coordinate %q: %w", args[i], err)
		}
		v[i] = f
	}
	p.vertices = append(p.vertices, v)
	return nil
}

func (p *objParser) parseFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(args))
	}

	local := make([]uint32, len(args))
	for i, tok := range args {
		global, err := p.resolveIndex(tok)
		if err != nil {
			return err
		}
		local[i] = p.localIndex(global)
	}

	// Fan: (0, i, i+1)
	for i := 1; i+1 < len(local); i++ {
		p.current.Indices = append(p.current.Indices, local[0], local[i], local[i+1])
	}
	return nil
}

// resolveIndex turns a face token ("7", "7/2", "7//3", "-1/-1/-1") into a
// zero-based index into p.vertices.
func (p *objParser) resolveIndex(tok string) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("face index %q: %w", tok, err)
	}

	var idx int
	switch {
	case n > 0:
		idx = n - 1
	case n < 0:
		idx = len(p.vertices) + n
	default:
		return 0, fmt.Errorf("face index 0 is not valid")
	}
	if idx < 0 || idx >= len(p.vertices) {
		return 0, fmt.Errorf("face index %d out of range (%d vertices)", n, len(p.vertices))
	}
	return idx, nil
}

func (p *objParser) localIndex(global int) uint32 {
	if idx, ok := p.remap[global]; ok {
		return idx
	}
	idx := uint32(p.current.VertexCount())
	v := p.vertices[global]
	p.current.Positions = append(p.current.Positions, v[0], v[1], v[2])
	p.remap[global] = idx
	return idx
}
