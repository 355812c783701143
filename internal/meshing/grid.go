package meshing

import (
	"island-gen/internal/terrain"
)

const (
	// RawStride is the float count of a vertex before normals are merged in:
	// x, y, z, u, v, height.
	RawStride = 6
	// Stride is the float count of a finished vertex:
	// x, y, z, nx, ny, nz, u, v, height.
	Stride = 9
)

// horizontalScale converts grid coordinates into mesh units.
const horizontalScale = 0.1

// EmitTerrainMesh turns a square grid of raw heights into a vertex stream
// and a triangle index list. Each height is shaped with
// terrain.AdjustForBoundary and scaled into mesh units; the scaled heights
// are also returned, in node order, for EmitWaterMesh.
//
// For N nodes per axis this yields N*N vertices and 6*(N-1)*(N-1) indices.
func EmitTerrainMesh(heights []float64, waterLevel float64, width, step int) (vertices []float32, indices []uint32, heightMap []float32) {
	nodes := width / step
	vertices = make([]float32, 0, nodes*nodes*RawStride)
	heightMap = make([]float32, 0, nodes*nodes)

	i := 0
	forEachNode(width, step, func(x, z int) {
		h := terrain.AdjustForBoundary(heights[i], x, z, width, width, step, waterLevel)
		i++

		scaled := terrain.ScaleHeight(h, width)
		heightMap = append(heightMap, scaled)

		u, v := texCoord(x, z, width)
		vertices = append(vertices,
			float32(x)*horizontalScale, scaled, float32(z)*horizontalScale,
			u, v,
			scaled,
		)
	})

	return vertices, gridIndices(nodes, 0), heightMap
}

// EmitWaterMesh builds a flat plane at waterLevel with the same topology as
// the terrain. The last field of every vertex carries the terrain height
// from heightMap, so a fragment shader can tell where the terrain pokes
// through. Indices are offset by len(heightMap), the terrain vertex count,
// so the water block can be appended after the terrain block.
func EmitWaterMesh(heightMap []float32, waterLevel float64, width, step int) (vertices []float32, indices []uint32) {
	nodes := width / step
	level := terrain.ScaleHeight(waterLevel, width)
	vertices = make([]float32, 0, nodes*nodes*RawStride)

	j := 0
	forEachNode(width, step, func(x, z int) {
		u, v := texCoord(x, z, width)
		vertices = append(vertices,
			float32(x)*horizontalScale, level, float32(z)*horizontalScale,
			u, v,
			heightMap[j],
		)
		j++
	})

	return vertices, gridIndices(nodes, uint32(len(heightMap)))
}

// forEachNode walks the width/step x width/step grid row-major, z outer.
// Node i sits at -width/2 + i*step on either axis, matching
// terrain.Heightfield.Coord, so odd widths yield the same node count here
// as in the heightfield.
func forEachNode(width, step int, fn func(x, z int)) {
	nodes := width / step
	origin := -width / 2
	for j := range nodes {
		z := origin + j*step
		for i := range nodes {
			fn(origin+i*step, z)
		}
	}
}

// texCoord maps a grid coordinate into [0,1).
func texCoord(x, z, width int) (float32, float32) {
	w := float32(width)
	return (float32(x) + float32(width/2)) / w, (float32(z) + float32(width/2)) / w
}

// gridIndices splits each quad of a nodes x nodes grid into two clockwise
// triangles (seen from +Y), offsetting every index by base.
func gridIndices(nodes int, base uint32) []uint32 {
	if nodes < 2 {
		return nil
	}
	n := uint32(nodes)
	indices := make([]uint32, 0, 6*(nodes-1)*(nodes-1))
	for y := uint32(0); y < n-1; y++ {
		for x := uint32(0); x < n-1; x++ {
			start := base + y*n + x
			indices = append(indices,
				start, start+1, start+n+1,
				start+n+1, start+n, start,
			)
		}
	}
	return indices
}
