package terrain

import (
	"context"
	"math"

	"island-gen/internal/noise"
)

// heightBias lifts the fractal signal so the terrain sits above zero.
const heightBias = 1.5

// sampleDepth is the constant third coordinate fed to the noise.
const sampleDepth = 0.5

// Heightfield is a square grid of raw (unshaped) heights. Heights is
// row-major with z as the outer axis; node (i, j) sits at
// x = -Width/2 + i*Step, z = -Width/2 + j*Step.
type Heightfield struct {
	Width   int
	Step    int
	Nodes   int
	Heights []float64
	Min     float64
	Max     float64
}

// At returns the height of node (i, j).
func (h *Heightfield) At(i, j int) float64 {
	return h.Heights[j*h.Nodes+i]
}

// Coord returns the grid coordinate of node index i along either axis.
func (h *Heightfield) Coord(i int) int {
	return -h.Width/2 + i*h.Step
}

// BuildHeightfield samples s over a width x width square centred on the
// origin, one node every step units, and records the extrema.
//
// Rows are spread over workers goroutines. Each node depends only on its
// own coordinates, so the result does not depend on the worker count.
func BuildHeightfield(ctx context.Context, width, step int, s noise.Sampler, o noise.Octaves, workers int) (*Heightfield, error) {
	nodes := width / step
	hf := &Heightfield{
		Width:   width,
		Step:    step,
		Nodes:   nodes,
		Heights: make([]float64, nodes*nodes),
	}

	depth := width
	sampleRow := func(row, z int) {
		nz := float64(z) / float64(depth)
		out := hf.Heights[row*nodes : (row+1)*nodes]
		for i := range out {
			x := -width/2 + i*step
			nx := float64(x) / float64(width)
			out[i] = noise.Fractal(s, nx, nz, sampleDepth, o) + heightBias
		}
	}

	if workers <= 1 {
		for row := range nodes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			sampleRow(row, -depth/2+row*step)
		}
	} else {
		pool := NewRowPool(ctx, workers, nodes, sampleRow)
		for row := range nodes {
			if !pool.Submit(row, -depth/2+row*step) {
				break
			}
		}
		if err := pool.Wait(); err != nil {
			return nil, err
		}
	}

	// All rows are in; extrema can be taken now.
	hf.Min, hf.Max = math.Inf(1), math.Inf(-1)
	for _, h := range hf.Heights {
		hf.Min = math.Min(hf.Min, h)
		hf.Max = math.Max(hf.Max, h)
	}

	return hf, nil
}
