package world

import (
	"context"
	"fmt"

	"island-gen/internal/config"
	"island-gen/internal/meshing"
	"island-gen/internal/noise"
	"island-gen/internal/profiling"
	"island-gen/internal/terrain"
)

// Generate runs the whole pipeline for s: sample the heightfield, derive
// the water level, emit the terrain and water meshes, and merge in vertex
// normals. Only s.ValidateCore is applied; command-line ranges are the
// caller's business.
func Generate(ctx context.Context, s config.WorldGenSettings) (*Island, error) {
	if err := s.ValidateCore(); err != nil {
		return nil, err
	}
	sampler, err := noise.NewSampler(s.Sampler, s.Seed)
	if err != nil {
		return nil, err
	}
	return GenerateWith(ctx, s, sampler)
}

// GenerateWith is Generate with an explicit noise sampler; s.Sampler and
// s.Seed are ignored.
func GenerateWith(ctx context.Context, s config.WorldGenSettings, sampler noise.Sampler) (*Island, error) {
	stop := profiling.Track("terrain.BuildHeightfield")
	hf, err := terrain.BuildHeightfield(ctx, s.Width, s.Step, sampler, s.OctaveParams(), s.Workers)
	stop()
	if err != nil {
		return nil, fmt.Errorf("sample heightfield: %w", err)
	}

	water := terrain.DeriveWaterParameters(hf.Min, hf.Max, s.Width)

	stop = profiling.Track("meshing.EmitTerrainMesh")
	terrainVerts, terrainIdx, heightMap := meshing.EmitTerrainMesh(hf.Heights, water.Level, s.Width, s.Step)
	stop()

	stop = profiling.Track("meshing.EmitWaterMesh")
	waterVerts, waterIdx := meshing.EmitWaterMesh(heightMap, water.Level, s.Width, s.Step)
	stop()

	raw := append(terrainVerts, waterVerts...)
	indices := append(terrainIdx, waterIdx...)

	stop = profiling.Track("meshing.ComputeVertexNormals")
	normals := meshing.ComputeVertexNormals(raw, indices)
	vertices := meshing.InterleaveNormals(raw, normals)
	stop()

	return &Island{
		Vertices:           vertices,
		Indices:            indices,
		TerrainVertexCount: len(heightMap),
		TerrainIndexCount:  len(terrainIdx),
		Nodes:              hf.Nodes,
		MinHeight:          hf.Min,
		MaxHeight:          hf.Max,
		Water:              water,
		Hints: ShadingHints{
			WaterLevel:           terrain.ScaleHeight(water.Level, s.Width),
			HeightDifferenceLow:  float32(water.HeightDifferenceLow),
			HeightDifferenceHigh: float32(water.HeightDifferenceHigh),
			WaterDepthMax:        float32(water.DepthMax),
		},
	}, nil
}
