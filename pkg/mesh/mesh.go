// Package mesh describes polyhedral cells to the moment-of-fluid
// kernel: a shared point list, faces as ordered vertex-index loops,
// and cells as ordered face-index lists. It also provides the
// well-formedness validation that the kernel itself, by contract,
// does not perform.
package mesh

import (
	"sort"

	"github.com/JunhuaPAN/MomentOfFluid/pkg/geom"
)

// Face is an ordered loop of vertex indices into a point list.
type Face []int

// Centre returns the face centroid. Triangles use the plain vertex
// average. Larger faces are fan-decomposed about the vertex average
// and sub-triangle centroids are weighted by twice-area, which is
// exact for planar faces even when they are non-convex. Faces with
// near-zero total area fall back to the vertex average.
func (f Face) Centre(points []geom.Vec) geom.Vec {
	n := len(f)
	if n == 3 {
		return points[f[0]].Add(points[f[1]]).Add(points[f[2]]).DivScalar(3.0)
	}

	var avg geom.Vec
	for _, pi := range f {
		avg = avg.Add(points[pi])
	}
	avg = avg.DivScalar(float64(n))

	var centre geom.Vec
	sumA := 0.0
	for i := 0; i < n; i++ {
		p0 := points[f[i]]
		p1 := points[f[(i+1)%n]]

		a := p1.Sub(p0).Cross(avg.Sub(p0)).Length()
		c := p0.Add(p1).Add(avg).DivScalar(3.0)

		centre = centre.Add(c.MulScalar(a))
		sumA += a
	}

	if sumA < 1e-300 {
		return avg
	}
	return centre.DivScalar(sumA)
}

// Cell is an ordered list of face indices bounding one polyhedron.
type Cell []int

// Mesh is a minimal face-indexed polyhedral mesh. It carries just
// enough connectivity for cell decomposition: points, faces, cells.
type Mesh struct {
	Points []geom.Vec
	Faces  []Face
	Cells  []Cell
}

// NumPoints returns the number of points.
func (m *Mesh) NumPoints() int { return len(m.Points) }

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// NumCells returns the number of cells.
func (m *Mesh) NumCells() int { return len(m.Cells) }

// CellPoints returns the sorted distinct vertex indices referenced by
// the faces of cell celli.
func (m *Mesh) CellPoints(celli int) []int {
	seen := make(map[int]struct{})
	for _, facei := range m.Cells[celli] {
		for _, pi := range m.Faces[facei] {
			seen[pi] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for pi := range seen {
		out = append(out, pi)
	}
	sort.Ints(out)
	return out
}

// CellCentre returns the average of the cell's face centres. For the
// convex cells this kernel targets it is a valid interior reference
// point for fan decomposition; callers with better estimates may pass
// their own point to Decompose instead.
func (m *Mesh) CellCentre(celli int) geom.Vec {
	var sum geom.Vec
	faces := m.Cells[celli]
	for _, facei := range faces {
		sum = sum.Add(m.Faces[facei].Centre(m.Points))
	}
	return sum.DivScalar(float64(len(faces)))
}
