package meshing

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vertex(x, y, z float32) []float32 {
	return []float32{x, y, z, 0, 0, y}
}

// TestFlatGridNormalsPointUp pins the winding: a flat clockwise grid must
// get +Y normals on both triangles of every quad
func TestFlatGridNormalsPointUp(t *testing.T) {
	const width, step = 512, 64
	nodes := width / step
	verts, idx, _ := EmitTerrainMesh(flatHeights(nodes, 2), -10, width, step)

	for i, n := range ComputeVertexNormals(verts, idx) {
		if n != (mgl32.Vec3{0, 1, 0}) {
			t.Fatalf("normal %d = %v, want (0,1,0)", i, n)
		}
	}
}

func TestSlopedQuadNormal(t *testing.T) {
	// Single quad rising along +x with slope 1.
	verts := append(append(append(
		vertex(0, 0, 0),
		vertex(1, 1, 0)...),
		vertex(0, 0, 1)...),
		vertex(1, 1, 1)...)
	idx := gridIndices(2, 0)

	want := mgl32.Vec3{-1, 1, 0}.Normalize()
	for i, n := range ComputeVertexNormals(verts, idx) {
		if !n.ApproxEqualThreshold(want, 1e-6) {
			t.Errorf("normal %d = %v, want %v", i, n, want)
		}
	}
}

func TestNormalsUnitLength(t *testing.T) {
	const width, step = 256, 16
	nodes := width / step
	heights := make([]float64, nodes*nodes)
	for j := range nodes {
		for i := range nodes {
			heights[j*nodes+i] = 1.5 + math.Sin(float64(i)*0.7)*math.Cos(float64(j)*0.4)
		}
	}
	verts, idx, _ := EmitTerrainMesh(heights, 1.0, width, step)

	for i, n := range ComputeVertexNormals(verts, idx) {
		if l := n.Len(); math.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("normal %d = %v has length %v", i, n, l)
		}
		if n[1] <= 0 {
			t.Errorf("normal %d = %v points down", i, n)
		}
	}
}

// TestDegenerateNormalsAreZero covers vertices no triangle touches and
// triangles with zero area
func TestDegenerateNormalsAreZero(t *testing.T) {
	verts := append(append(append(append(
		vertex(0, 0, 0),
		vertex(1, 0, 0)...),
		vertex(2, 0, 0)...), // collinear with the first two
		vertex(5, 5, 5)...), // isolated
		vertex(0, 0, 0)...)

	normals := ComputeVertexNormals(verts, []uint32{0, 1, 2, 0, 4, 0})
	for i, n := range normals {
		if n != (mgl32.Vec3{}) {
			t.Errorf("normal %d = %v, want zero", i, n)
		}
		for _, c := range n {
			if math.IsNaN(float64(c)) {
				t.Fatalf("normal %d has NaN", i)
			}
		}
	}
}

func TestInterleaveNormals(t *testing.T) {
	raw := []float32{1, 2, 3, 0.25, 0.5, 7, 4, 5, 6, 0.75, 1, 8}
	normals := []mgl32.Vec3{{0, 1, 0}, {1, 0, 0}}

	got := InterleaveNormals(raw, normals)
	want := []float32{
		1, 2, 3, 0, 1, 0, 0.25, 0.5, 7,
		4, 5, 6, 1, 0, 0, 0.75, 1, 8,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("interleaved = %v, want %v", got, want)
		}
	}
}

func TestFaceNormalOrder(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{1, 0, 0}
	c := mgl32.Vec3{0, 0, 1}
	if n := faceNormal(a, b, c); n != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("faceNormal(a, b, c) = %v, want (0,-1,0)", n)
	}
	if n := faceNormal(a, c, b); n != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("faceNormal(a, c, b) = %v, want (0,1,0)", n)
	}
}

func BenchmarkComputeVertexNormals(b *testing.B) {
	const width, step = 1024, 4
	nodes := width / step
	verts, idx, _ := EmitTerrainMesh(flatHeights(nodes, 2), 1, width, step)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ComputeVertexNormals(verts, idx)
	}
}
