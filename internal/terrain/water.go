package terrain

// WaterParameters holds the water level and the shading thresholds derived
// from the extrema of a heightfield. Level is in heightfield units; the
// other three are already in mesh units.
type WaterParameters struct {
	Level                float64
	HeightDifferenceLow  float64
	HeightDifferenceHigh float64
	DepthMax             float64
}

// DeriveWaterParameters places the water level at 35% of the height range
// and derives the renderer's shading thresholds from it.
func DeriveWaterParameters(minHeight, maxHeight float64, width int) WaterParameters {
	span := maxHeight - minHeight
	w := float64(width)

	level := span*0.35 + minHeight
	low := (minHeight + span*0.4) * w / 60

	return WaterParameters{
		Level:                level,
		HeightDifferenceLow:  low,
		HeightDifferenceHigh: low * 0.1,
		DepthMax:             (level - minHeight) * w / 60,
	}
}
