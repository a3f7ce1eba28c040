// Package mesh provides CPU-side processing of indexed triangle meshes
// before upload to the GPU.
package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/glprogram/pkg/math"
)

// ErrInvalidMesh is returned when vertex or index data violates the layout
// contract of GenerateNormals.
var ErrInvalidMesh = errors.New("mesh: invalid mesh")

// Index is the set of element types accepted as triangle indices.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// GenerateNormals computes one unit normal per vertex for an indexed
// triangle list.
//
// positions holds vertexCount interleaved records of stride floats each,
// with the 3-component position starting offset floats into every record.
// Each triangle adds its unnormalized face normal (v1-v0)×(v2-v0) to its
// three vertices, so larger faces weigh more. The sums are then normalized.
// A vertex that no triangle touches, or whose contributions cancel out,
// keeps the zero vector.
//
// The result is a new slice of 3*vertexCount floats. Inputs are not modified.
func GenerateNormals[I Index](positions []float32, stride, offset, vertexCount int, indices []I) ([]float32, error) {
	if err := validate(len(positions), stride, offset, vertexCount, indices); err != nil {
		return nil, err
	}

	normals := make([]float32, 3*vertexCount)

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := int(indices[i]), int(indices[i+1]), int(indices[i+2])

		a := vec3At(positions, stride, offset, i0)
		b := vec3At(positions, stride, offset, i1)
		c := vec3At(positions, stride, offset, i2)

		n := b.Sub(a).Cross(c.Sub(a))

		addVec3At(normals, i0, n)
		addVec3At(normals, i1, n)
		addVec3At(normals, i2, n)
	}

	for i := 0; i < vertexCount; i++ {
		x, y, z := normals[i*3], normals[i*3+1], normals[i*3+2]
		l2 := x*x + y*y + z*z
		if l2 > 0 {
			inv := 1 / math32.Sqrt(l2)
			normals[i*3] = x * inv
			normals[i*3+1] = y * inv
			normals[i*3+2] = z * inv
		}
	}

	return normals, nil
}

// WriteNormals copies a dense normal buffer, as returned by GenerateNormals,
// into an interleaved vertex buffer at the given stride and offset.
func WriteNormals(dst []float32, stride, offset int, normals []float32) error {
	count := len(normals) / 3
	if len(normals)%3 != 0 {
		return fmt.Errorf("%w: normal buffer length %d is not a multiple of 3", ErrInvalidMesh, len(normals))
	}
	if stride < offset+3 || offset < 0 {
		return fmt.Errorf("%w: stride %d too small for offset %d", ErrInvalidMesh, stride, offset)
	}
	if count > 0 && len(dst) < (count-1)*stride+offset+3 {
		return fmt.Errorf("%w: destination holds fewer than %d records", ErrInvalidMesh, count)
	}
	for i := 0; i < count; i++ {
		base := i*stride + offset
		copy(dst[base:base+3], normals[i*3:i*3+3])
	}
	return nil
}

func validate[I Index](n, stride, offset, vertexCount int, indices []I) error {
	if vertexCount < 0 {
		return fmt.Errorf("%w: negative vertex count %d", ErrInvalidMesh, vertexCount)
	}
	if offset < 0 || stride < offset+3 {
		return fmt.Errorf("%w: stride %d too small for offset %d", ErrInvalidMesh, stride, offset)
	}
	if vertexCount > 0 && n < (vertexCount-1)*stride+offset+3 {
		return fmt.Errorf("%w: %d floats cannot hold %d vertices at stride %d", ErrInvalidMesh, n, vertexCount, stride)
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidMesh, len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("%w: index %d at position %d out of range [0,%d)", ErrInvalidMesh, idx, i, vertexCount)
		}
	}
	return nil
}

func vec3At(buf []float32, stride, offset, index int) math.Vec3 {
	base := index*stride + offset
	return math.Vec3{X: buf[base], Y: buf[base+1], Z: buf[base+2]}
}

func addVec3At(buf []float32, index int, v math.Vec3) {
	buf[index*3] += v.X
	buf[index*3+1] += v.Y
	buf[index*3+2] += v.Z
}
