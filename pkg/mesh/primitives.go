package mesh

import "github.com/JunhuaPAN/MomentOfFluid/pkg/geom"

// Box returns a single-cell mesh for the axis-aligned box spanning
// min to max. Face loops wind so that face normals point out of the
// cell.
func Box(min, max geom.Vec) *Mesh {
	return &Mesh{
		Points: []geom.Vec{
			geom.V(min.X, min.Y, min.Z),
			geom.V(max.X, min.Y, min.Z),
			geom.V(max.X, max.Y, min.Z),
			geom.V(min.X, max.Y, min.Z),
			geom.V(min.X, min.Y, max.Z),
			geom.V(max.X, min.Y, max.Z),
			geom.V(max.X, max.Y, max.Z),
			geom.V(min.X, max.Y, max.Z),
		},
		Faces: []Face{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4},
			{2, 3, 7, 6},
			{0, 4, 7, 3},
			{1, 2, 6, 5},
		},
		Cells: []Cell{{0, 1, 2, 3, 4, 5}},
	}
}

// Tet returns a single-cell mesh for the tetrahedron with the given
// corners. Face loops wind outward when the corners are positively
// oriented (SignedVolume > 0).
func Tet(p0, p1, p2, p3 geom.Vec) *Mesh {
	return &Mesh{
		Points: []geom.Vec{p0, p1, p2, p3},
		Faces: []Face{
			{0, 2, 1},
			{0, 1, 3},
			{1, 2, 3},
			{0, 3, 2},
		},
		Cells: []Cell{{0, 1, 2, 3}},
	}
}
