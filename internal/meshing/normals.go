package meshing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ComputeVertexNormals averages face normals over the triangles in indices.
// vertices uses RawStride; one normal is returned per vertex.
//
// Triangles are taken as (v1, v3, v2) so that the clockwise grid winding
// produces normals facing +Y. Vertices with no non-degenerate adjacent face
// get the zero vector.
func ComputeVertexNormals(vertices []float32, indices []uint32) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(vertices)/RawStride)

	for i := 0; i+2 < len(indices); i += 3 {
		i1, i2, i3 := indices[i], indices[i+1], indices[i+2]
		v1 := position(vertices, i1)
		v2 := position(vertices, i2)
		v3 := position(vertices, i3)

		n := faceNormal(v1, v3, v2)

		normals[i1] = normals[i1].Add(n)
		normals[i2] = normals[i2].Add(n)
		normals[i3] = normals[i3].Add(n)
	}

	for i, n := range normals {
		normals[i] = normalize(n)
	}
	return normals
}

// InterleaveNormals merges normals into a RawStride vertex stream, producing
// a Stride stream laid out x, y, z, nx, ny, nz, u, v, height.
func InterleaveNormals(vertices []float32, normals []mgl32.Vec3) []float32 {
	count := len(vertices) / RawStride
	out := make([]float32, 0, count*Stride)
	for i := range count {
		v := vertices[i*RawStride : (i+1)*RawStride]
		n := normals[i]
		out = append(out,
			v[0], v[1], v[2],
			n[0], n[1], n[2],
			v[3], v[4], v[5],
		)
	}
	return out
}

func position(vertices []float32, index uint32) mgl32.Vec3 {
	o := int(index) * RawStride
	return mgl32.Vec3{vertices[o], vertices[o+1], vertices[o+2]}
}

// faceNormal returns the unit normal of (a, b, c): (b-a) x (c-a).
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	return normalize(edge1.Cross(edge2))
}

// normalize is mgl32's Normalize without the division by zero. The length
// is taken in float64 so an axis-aligned vector normalizes exactly.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	x, y, z := float64(v[0]), float64(v[1]), float64(v[2])
	l := float32(math.Sqrt(x*x + y*y + z*z))
	if l == 0 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{v[0] / l, v[1] / l, v[2] / l}
}
