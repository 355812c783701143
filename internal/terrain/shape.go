package terrain

// boundaryLift is the fraction of the underwater depth by which a
// boundary sample is raised above the water level.
const boundaryLift = 0.2

// AdjustForBoundary lifts samples on the boundary ring above waterLevel so
// the island never opens a hole at the map edge.
//
// The ring is x == width/2-step, z == depth/2-step, x == -width/2 or
// z == -width/2. The negative z edge is tested against width, not depth.
// Samples at or above waterLevel, and all interior samples, are returned
// unchanged.
func AdjustForBoundary(height float64, x, z, width, depth, step int, waterLevel float64) float64 {
	if !onBoundary(x, z, width, depth, step) {
		return height
	}
	if height < waterLevel {
		return (waterLevel-height)*boundaryLift + waterLevel
	}
	return height
}

func onBoundary(x, z, width, depth, step int) bool {
	fx, fz := float64(x), float64(z)
	w, d, s := float64(width), float64(depth), float64(step)
	return fx == w/2-s || fz == d/2-s || fx == -w/2 || fz == -w/2
}

// ScaleHeight converts a shaped height into mesh units.
func ScaleHeight(h float64, width int) float32 {
	return float32(h * float64(width) / 60)
}
