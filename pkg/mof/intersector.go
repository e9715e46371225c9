package mof

import (
	"github.com/JunhuaPAN/MomentOfFluid/pkg/geom"
	"github.com/JunhuaPAN/MomentOfFluid/pkg/mesh"
)

// Intersector evaluates half-space intersections against one cell at
// a time. It decomposes the cell once and then reuses the cached
// tetrahedra across many plane evaluations, which is the access
// pattern of an interface-reconstruction solver probing candidate
// plane offsets.
//
// The intersector owns two internal buffers that are mutated by every
// call, so a single instance must not be shared between concurrently
// executing goroutines; give each worker its own. The package-level
// Decompose/Clip/VolumeCentroid functions are pure and have no such
// restriction.
type Intersector struct {
	mesh *mesh.Mesh

	centre  geom.Vec
	decomp  []geom.Tetrahedron
	clipped []geom.Tetrahedron
}

// NewIntersector returns an intersector over m with no cell selected.
func NewIntersector(m *mesh.Mesh) *Intersector {
	return &Intersector{mesh: m}
}

// DecomposeCell caches the tetrahedral decomposition of cell celli.
// The cell centre becomes both the fan apex and the local origin, so
// cached tetrahedra are expressed in cell-local coordinates.
func (ix *Intersector) DecomposeCell(celli int) {
	ix.centre = ix.mesh.CellCentre(celli)
	ix.decomp = AppendDecompose(ix.decomp[:0], ix.mesh, celli, ix.centre, ix.centre)
}

// CellCentre returns the local origin of the cached decomposition.
func (ix *Intersector) CellCentre() geom.Vec {
	return ix.centre
}

// CellVolume returns the total volume of the cached decomposition.
func (ix *Intersector) CellVolume() float64 {
	v, _ := VolumeCentroid(ix.decomp)
	return v
}

// Evaluate clips the cached decomposition against p and returns the
// volume and centroid of the negative-side portion. Both p and the
// returned centroid are in cell-local coordinates; add CellCentre to
// recover the global position.
func (ix *Intersector) Evaluate(p geom.Plane) (float64, geom.Vec) {
	ix.clipped = ix.clipped[:0]
	for _, t := range ix.decomp {
		ix.clipped = AppendClip(ix.clipped, p, t)
	}
	return VolumeCentroid(ix.clipped)
}
