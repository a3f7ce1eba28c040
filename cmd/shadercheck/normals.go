package main

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/glprogram/pkg/mesh"
)

func cmdNormals(args []string) error {
	shape := "cube"
	if len(args) > 0 {
		shape = args[0]
	}

	var m *mesh.Mesh
	switch shape {
	case "cube":
		m = mesh.Cube()
	case "grid":
		n := 2
		if len(args) > 1 {
			v, err := strconv.Atoi(args[1])
			if err != nil || v < 1 {
				return fmt.Errorf("invalid grid size %q", args[1])
			}
			n = v
		}
		m = mesh.Grid(n)
	default:
		return fmt.Errorf("unknown shape %q (want cube or grid)", shape)
	}

	if err := m.ComputeNormals(); err != nil {
		return err
	}

	fmt.Printf("Mesh: %s, %d vertices, %d triangles\n", shape, m.VertexCount(), len(m.Indices)/3)
	for i := 0; i < m.VertexCount(); i++ {
		p, n := m.Position(i), m.Normal(i)
		fmt.Printf("  %3d  pos (%6.3f %6.3f %6.3f)  normal (%6.3f %6.3f %6.3f)\n",
			i, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return nil
}
