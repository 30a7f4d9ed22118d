package main

import (
	"fmt"
	"os"

	"turntable-renderer/internal/mesh"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <mesh-file>...")
		os.Exit(1)
	}

	failed := 0
	for _, path := range os.Args[1:] {
		if err := inspect(path); err != nil {
			fmt.Printf("%s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func inspect(path string) error {
	m, err := mesh.Load(path)
	if err != nil {
		return err
	}

	min, max := m.Bounds()
	c := m.Center()
	fmt.Printf("%s\n", m.Name)
	fmt.Printf("  Vertices: %d, Triangles: %d\n", m.VertexCount(), m.TriangleCount())
	fmt.Printf("  BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n",
		min.X, max.X, min.Y, max.Y, min.Z, max.Z)
	fmt.Printf("  Size: %.2f x %.2f x %.2f\n", max.X-min.X, max.Y-min.Y, max.Z-min.Z)
	fmt.Printf("  Center: (%.2f, %.2f, %.2f), Bounding radius: %.2f\n", c.X, c.Y, c.Z, m.BoundingRadius())

	if err := m.Validate(); err != nil {
		fmt.Printf("  Topology: INVALID (%v)\n", err)
	} else {
		fmt.Printf("  Topology: ok\n")
	}
	return nil
}
