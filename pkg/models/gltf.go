package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a GLTF (.gltf) or binary GLTF (.glb) file.
// Every triangle primitive becomes one submodel; node transforms are not
// applied since the scene is normalized afterwards anyway.
func LoadGLTF(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	scene, err := sceneFromDocument(doc, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	scene.CalculateBounds()
	return scene, nil
}

// sceneFromDocument extracts triangle geometry from every mesh in doc.
func sceneFromDocument(doc *gltf.Document, name string) (*Scene, error) {
	scene := NewScene(name)

	for mi, m := range doc.Meshes {
		meshName := m.Name
		if meshName == "" {
			meshName = fmt.Sprintf("mesh%d", mi)
		}

		for pi, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				// Skip non-triangle primitives (lines, points, etc)
				continue
			}

			sm, ok, err := readPrimitive(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("process mesh %q primitive %d: %w", meshName, pi, err)
			}
			if !ok {
				continue
			}

			sm.Name = meshName
			if len(m.Primitives) > 1 {
				sm.Name = fmt.Sprintf("%s.%d", meshName, pi)
			}
			scene.Submodels = append(scene.Submodels, sm)
		}
	}

	return scene, nil
}

// readPrimitive reads positions and indices of one primitive. ok is false
// when the primitive has no POSITION attribute.
func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) (sm Submodel, ok bool, err error) {
	posIdx, found := prim.Attributes[gltf.POSITION]
	if !found {
		return Submodel{}, false, nil
	}
	if posIdx < 0 || posIdx >= len(doc.Accessors) {
		return Submodel{}, false, fmt.Errorf("position accessor %d out of range", posIdx)
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return Submodel{}, false, fmt.Errorf("read positions: %w", err)
	}

	sm.Positions = make([]float64, 0, len(positions)*3)
	for _, p := range positions {
		sm.Positions = append(sm.Positions, float64(p[0]), float64(p[1]), float64(p[2]))
	}

	if prim.Indices != nil {
		if *prim.Indices < 0 || *prim.Indices >= len(doc.Accessors) {
			return Submodel{}, false, fmt.Errorf("index accessor %d out of range", *prim.Indices)
		}
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return Submodel{}, false, fmt.Errorf("read indices: %w", err)
		}
		// Trailing partial triangle is dropped
		sm.Indices = indices[:len(indices)-len(indices)%3]
	} else {
		// No indices, assume sequential triangles
		n := len(positions) - len(positions)%3
		sm.Indices = make([]uint32, n)
		for i := range n {
			sm.Indices[i] = uint32(i)
		}
	}

	return sm, true, nil
}
