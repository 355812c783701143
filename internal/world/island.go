package world

import (
	"crypto/sha256"
	"encoding/binary"
	"math"

	"island-gen/internal/meshing"
	"island-gen/internal/terrain"
)

// ShadingHints are the scalar uniforms the terrain shader needs. All four
// are in mesh units.
type ShadingHints struct {
	WaterLevel           float32
	HeightDifferenceLow  float32
	HeightDifferenceHigh float32
	WaterDepthMax        float32
}

// Island is a generated terrain and water mesh ready for upload.
//
// Vertices holds meshing.Stride floats per vertex, the terrain block first
// and the water block after it. Indices holds the terrain triangles first
// and the water triangles after them; water indices already point into the
// water block.
type Island struct {
	Vertices []float32
	Indices  []uint32

	TerrainVertexCount int
	TerrainIndexCount  int
	Nodes              int // grid nodes per axis

	MinHeight float64
	MaxHeight float64
	Water     terrain.WaterParameters
	Hints     ShadingHints
}

// VertexCount returns the total vertex count, terrain and water.
func (is *Island) VertexCount() int {
	return len(is.Vertices) / meshing.Stride
}

// TerrainVertices returns the terrain block of Vertices.
func (is *Island) TerrainVertices() []float32 {
	return is.Vertices[:is.TerrainVertexCount*meshing.Stride]
}

// WaterVertices returns the water block of Vertices.
func (is *Island) WaterVertices() []float32 {
	return is.Vertices[is.TerrainVertexCount*meshing.Stride:]
}

// TerrainIndices returns the terrain block of Indices.
func (is *Island) TerrainIndices() []uint32 {
	return is.Indices[:is.TerrainIndexCount]
}

// WaterIndices returns the water block of Indices.
func (is *Island) WaterIndices() []uint32 {
	return is.Indices[is.TerrainIndexCount:]
}

// Vertex returns the Stride floats of vertex i.
func (is *Island) Vertex(i int) []float32 {
	return is.Vertices[i*meshing.Stride : (i+1)*meshing.Stride]
}

// Digest hashes the little-endian vertex and index buffers. Two islands
// with equal digests have byte-identical buffers.
func (is *Island) Digest() [32]byte {
	h := sha256.New()
	buf := make([]byte, 4)
	for _, f := range is.Vertices {
		binary.LittleEndian.PutUint32(buf, math.Float32bits(f))
		h.Write(buf)
	}
	for _, idx := range is.Indices {
		binary.LittleEndian.PutUint32(buf, idx)
		h.Write(buf)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
