package mesh

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"gonum.org/v1/gonum/spatial/r3"
)

// LoadGLTF reads a glTF or GLB file. Triangle primitives from every mesh in
// the document are concatenated; non-triangle primitives are skipped.
// glTF geometry is Y-up, so vertices are remapped to the Z-up world:
// (x, y, z) → (x, −z, y). Only embedded buffers are supported.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf: open %s: %w", path, err)
	}

	m := &Mesh{Name: filepath.Base(path)}
	for _, gm := range doc.Meshes {
		if err := appendPrimitives(doc, gm, m); err != nil {
			return nil, fmt.Errorf("gltf: mesh %q: %w", gm.Name, err)
		}
	}
	return m, nil
}

func appendPrimitives(doc *gltf.Document, gm *gltf.Mesh, m *Mesh) error {
	for _, prim := range gm.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		base := len(m.Verts)
		for _, p := range positions {
			// Y-up → Z-up
			m.Verts = append(m.Verts, r3.Vec{
				X: float64(p[0]),
				Y: -float64(p[2]),
				Z: float64(p[1]),
			})
		}

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				m.Faces = append(m.Faces, [3]int{
					base + indices[i],
					base + indices[i+1],
					base + indices[i+2],
				})
			}
		} else {
			// No indices: sequential triangles.
			for i := 0; i+2 < len(positions); i += 3 {
				m.Faces = append(m.Faces, [3]int{base + i, base + i + 1, base + i + 2})
			}
		}
	}
	return nil
}

// readPositions reads a float32 VEC3 accessor.
func readPositions(doc *gltf.Document, accessorIdx int) ([][3]float32, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("POSITION accessor is %v/%v, want float VEC3", accessor.Type, accessor.ComponentType)
	}

	data, start, stride, err := accessorData(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([][3]float32, accessor.Count)
	for i := range result {
		offset := start + i*stride
		for j := range 3 {
			result[i][j] = math.Float32frombits(binary.LittleEndian.Uint32(data[offset+j*4:]))
		}
	}
	return result, nil
}

// readIndices reads a scalar index accessor of any of the three glTF index
// widths.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("index accessor is %v, want SCALAR", accessor.Type)
	}

	var width int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		width = 1
	case gltf.ComponentUshort:
		width = 2
	case gltf.ComponentUint:
		width = 4
	default:
		return nil, fmt.Errorf("unexpected index component type %v", accessor.ComponentType)
	}

	data, start, stride, err := accessorData(doc, accessor, width)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		offset := start + i*stride
		switch width {
		case 1:
			result[i] = int(data[offset])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(data[offset:]))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(data[offset:]))
		}
	}
	return result, nil
}

// accessorData resolves an accessor to its raw buffer bytes, start offset
// and element stride. defaultStride applies when the buffer view is tightly
// packed.
func accessorData(doc *gltf.Document, accessor *gltf.Accessor, defaultStride int) ([]byte, int, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	if buffer.URI != "" {
		return nil, 0, 0, fmt.Errorf("external buffers are not supported")
	}
	if buffer.Data == nil {
		return nil, 0, 0, fmt.Errorf("buffer has no data")
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = defaultStride
	}
	return buffer.Data, bufferView.ByteOffset + accessor.ByteOffset, stride, nil
}
