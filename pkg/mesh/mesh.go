package mesh

// Mesh is an interleaved vertex buffer with a position and a normal slot
// per record, plus a triangle index list.
type Mesh struct {
	Vertices       []float32
	Stride         int // floats per vertex record
	PositionOffset int
	NormalOffset   int
	Indices        []uint32
}

// VertexStride is the record layout used by the built-in primitives:
// position (3) followed by normal (3).
const VertexStride = 6

// VertexCount returns the number of vertex records.
func (m *Mesh) VertexCount() int {
	if m.Stride == 0 {
		return 0
	}
	return len(m.Vertices) / m.Stride
}

// ComputeNormals generates smooth normals from the positions and stores them
// in the normal slot of every vertex record.
func (m *Mesh) ComputeNormals() error {
	normals, err := GenerateNormals(m.Vertices, m.Stride, m.PositionOffset, m.VertexCount(), m.Indices)
	if err != nil {
		return err
	}
	return WriteNormals(m.Vertices, m.Stride, m.NormalOffset, normals)
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) [3]float32 {
	return vec3At(m.Vertices, m.Stride, m.PositionOffset, i).Array()
}

// Normal returns the normal slot of vertex i.
func (m *Mesh) Normal(i int) [3]float32 {
	return vec3At(m.Vertices, m.Stride, m.NormalOffset, i).Array()
}

func newMesh(positions [][3]float32, indices []uint32) *Mesh {
	m := &Mesh{
		Vertices:       make([]float32, len(positions)*VertexStride),
		Stride:         VertexStride,
		PositionOffset: 0,
		NormalOffset:   3,
		Indices:        indices,
	}
	for i, p := range positions {
		copy(m.Vertices[i*VertexStride:], p[:])
	}
	return m
}

// Cube returns a closed cube of half-extent 1 centred on the origin with
// eight shared corners and outward counter-clockwise winding. Normals are
// left zero.
func Cube() *Mesh {
	positions := [][3]float32{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	indices := []uint32{
		4, 5, 6, 4, 6, 7, // +Z
		0, 2, 1, 0, 3, 2, // -Z
		1, 2, 6, 1, 6, 5, // +X
		0, 4, 7, 0, 7, 3, // -X
		3, 7, 6, 3, 6, 2, // +Y
		0, 1, 5, 0, 5, 4, // -Y
	}
	return newMesh(positions, indices)
}

// Grid returns an n×n quad grid on the XZ plane spanning [-1,1], facing +Y.
// Normals are left zero.
func Grid(n int) *Mesh {
	if n < 1 {
		n = 1
	}
	side := n + 1
	step := 2 / float32(n)

	positions := make([][3]float32, 0, side*side)
	for j := 0; j < side; j++ {
		for i := 0; i < side; i++ {
			positions = append(positions, [3]float32{-1 + float32(i)*step, 0, -1 + float32(j)*step})
		}
	}

	indices := make([]uint32, 0, n*n*6)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v00 := uint32(j*side + i)
			v10 := v00 + 1
			v01 := v00 + uint32(side)
			v11 := v01 + 1
			indices = append(indices, v00, v01, v10, v10, v01, v11)
		}
	}
	return newMesh(positions, indices)
}
