package mof

import (
	"github.com/JunhuaPAN/MomentOfFluid/pkg/geom"
	"github.com/JunhuaPAN/MomentOfFluid/pkg/mesh"
)

// Decompose converts cell celli of m into tetrahedra whose union tiles
// the cell. xC is an interior reference point (typically the cell
// centre) used as the fan apex; xT is a local-origin translation
// subtracted from every output vertex for numerical conditioning.
//
// Cells with exactly 4 bounding faces take a fast path that reads the
// 4 corners directly: the first face supplies corners 0-2 and the
// second face is scanned for the one vertex not on the first face.
// The cell must be a well-formed tetrahedron for this to hold;
// Decompose does not check it (see mesh.Validate) and a malformed
// 4-face cell yields garbage geometry rather than an error.
//
// All other cells are fan-decomposed: each triangular face emits one
// tetrahedron against xC, and larger faces are first fanned about
// their centre. The union tiles the cell exactly when faces are
// planar and the cell is star-shaped with respect to xC. Degenerate
// faces may emit zero-volume tetrahedra; they are not filtered here
// and downstream stages tolerate them.
func Decompose(m *mesh.Mesh, celli int, xC, xT geom.Vec) []geom.Tetrahedron {
	return AppendDecompose(nil, m, celli, xC, xT)
}

// AppendDecompose appends the decomposition of cell celli to dst and
// returns the extended slice. Semantics are those of Decompose; the
// append form lets callers reuse one buffer across many cells.
func AppendDecompose(dst []geom.Tetrahedron, m *mesh.Mesh, celli int, xC, xT geom.Vec) []geom.Tetrahedron {
	cell := m.Cells[celli]

	if len(cell) == 4 {
		first := m.Faces[cell[0]]
		second := m.Faces[cell[1]]

		var tet geom.Tetrahedron
		tet[0] = m.Points[first[0]].Sub(xT)
		tet[1] = m.Points[first[1]].Sub(xT)
		tet[2] = m.Points[first[2]].Sub(xT)

		// The isolated fourth corner lives on the second face.
		for _, pi := range second {
			if pi != first[0] && pi != first[1] && pi != first[2] {
				tet[3] = m.Points[pi].Sub(xT)
				break
			}
		}

		return append(dst, tet)
	}

	apex := xC.Sub(xT)

	for _, facei := range cell {
		f := m.Faces[facei]

		if len(f) == 3 {
			dst = append(dst, geom.Tetrahedron{
				m.Points[f[0]].Sub(xT),
				m.Points[f[1]].Sub(xT),
				m.Points[f[2]].Sub(xT),
				apex,
			})
			continue
		}

		fc := f.Centre(m.Points).Sub(xT)
		for i := range f {
			dst = append(dst, geom.Tetrahedron{
				m.Points[f[i]].Sub(xT),
				m.Points[f[(i+1)%len(f)]].Sub(xT),
				fc,
				apex,
			})
		}
	}

	return dst
}
