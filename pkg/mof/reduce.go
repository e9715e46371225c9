package mof

import (
	"github.com/JunhuaPAN/MomentOfFluid/pkg/geom"
)

// vsmall floors the volume divisor so an empty or fully degenerate
// tetrahedron list reduces to a zero centroid instead of NaN.
const vsmall = 1e-300

// VolumeCentroid reduces a tetrahedron list to its total volume and
// volume-weighted centroid. Per-tet volumes are taken unsigned, so
// the result is independent of vertex winding (and winding errors in
// the input are masked rather than detected). An empty list returns
// volume 0 and the zero vector; the zero vector is a placeholder, not
// a meaningful centroid.
func VolumeCentroid(tets []geom.Tetrahedron) (float64, geom.Vec) {
	volume := 0.0
	var centre geom.Vec

	for _, t := range tets {
		tV := t.Volume()
		volume += tV
		centre = centre.Add(t.Centroid().MulScalar(tV))
	}

	return volume, centre.DivScalar(volume + vsmall)
}
