package mof

import (
	"github.com/JunhuaPAN/MomentOfFluid/pkg/geom"
)

// Clip splits a tetrahedron against a half-space and returns the
// portion on the negative side (signed distance <= 0) as 0 to 3
// tetrahedra, using the tetrahedron / half-space decomposition given
// in:
//
//	D.H. Eberly, 3D Game Engine Design: A Practical Approach to
//	Real-time Computer Graphics, Morgan Kaufmann, 2001.
//
// Vertices are classified against the plane with an exact zero
// comparison. Near-coplanar vertices can therefore flip class under
// floating-point rounding, changing which split case fires; use a
// Clipper with a nonzero Tolerance to absorb that when upstream
// coordinates are noisy.
func Clip(p geom.Plane, tet geom.Tetrahedron) []geom.Tetrahedron {
	return AppendClip(nil, p, tet)
}

// AppendClip appends the negative-side portion of tet to dst and
// returns the extended slice. Semantics are those of Clip; the append
// form lets callers reuse one buffer across many tetrahedra.
func AppendClip(dst []geom.Tetrahedron, p geom.Plane, tet geom.Tetrahedron) []geom.Tetrahedron {
	var cl Clipper
	return cl.AppendClip(dst, p, tet)
}

// Clipper clips tetrahedra against half-spaces. The zero value
// classifies vertices with an exact zero comparison; a positive
// Tolerance treats vertices with |signed distance| <= Tolerance as
// lying on the plane.
type Clipper struct {
	Tolerance float64
}

// Clip returns the negative-side portion of tet as a fresh slice.
func (cl Clipper) Clip(p geom.Plane, tet geom.Tetrahedron) []geom.Tetrahedron {
	return cl.AppendClip(nil, p, tet)
}

// AppendClip appends the negative-side portion of tet to dst.
//
// The vertex signs admit six non-trivial configurations. Each has a
// fixed re-triangulation recipe for the negative region; together
// they cover the split exhaustively with no gaps or double-counted
// volume. Zero-distance vertices are never interpolated: they pass
// through as corners of the output.
func (cl Clipper) AppendClip(dst []geom.Tetrahedron, p geom.Plane, tet geom.Tetrahedron) []geom.Tetrahedron {
	var c [4]float64
	var pos, neg, zero [4]int
	var nPos, nNeg, nZero int

	for i := 0; i < 4; i++ {
		c[i] = p.SignedDistance(tet[i])
		switch {
		case c[i] > cl.Tolerance:
			pos[nPos] = i
			nPos++
		case c[i] < -cl.Tolerance:
			neg[nNeg] = i
			nNeg++
		default:
			zero[nZero] = i
			nZero++
		}
	}

	if nNeg == 0 {
		// Entirely on or in front of the plane.
		return dst
	}
	if nPos == 0 {
		// Entirely on or behind the plane.
		return append(dst, tet)
	}

	// The plane cuts the interior. cut gives the point on edge
	// (pos,neg) where the signed distance interpolates to zero.
	cut := func(pi, ni int) geom.Vec {
		inv := 1.0 / (c[pi] - c[ni])
		w0 := -c[ni] * inv
		w1 := +c[pi] * inv
		return tet[pi].MulScalar(w0).Add(tet[ni].MulScalar(w1))
	}

	var intp [4]geom.Vec

	switch {
	case nPos == 3 && nNeg == 1:
		// +++- : pull the three positive corners onto the plane.
		for i := 0; i < 3; i++ {
			tet[pos[i]] = cut(pos[i], neg[0])
		}
		dst = append(dst, tet)

	case nPos == 2 && nNeg == 2:
		// ++-- : 4 cut points; the negative region is a wedge split
		// into 3 tetrahedra sharing the intp[1]-intp[2] diagonal.
		intp[0] = cut(pos[0], neg[0])
		intp[1] = cut(pos[1], neg[0])
		intp[2] = cut(pos[0], neg[1])
		intp[3] = cut(pos[1], neg[1])

		tet[pos[0]] = intp[2]
		tet[pos[1]] = intp[1]
		dst = append(dst, tet)

		dst = append(dst, geom.Tetrahedron{tet[neg[1]], intp[3], intp[2], intp[1]})
		dst = append(dst, geom.Tetrahedron{tet[neg[0]], intp[0], intp[1], intp[2]})

	case nPos == 2 && nNeg == 1:
		// ++-0 : like +++- with the zero vertex passing through.
		for i := 0; i < 2; i++ {
			tet[pos[i]] = cut(pos[i], neg[0])
		}
		dst = append(dst, tet)

	case nPos == 1 && nNeg == 3:
		// +--- : 3 cut points; the negative region keeps all three
		// negative corners and is covered by 3 tetrahedra.
		for i := 0; i < 3; i++ {
			intp[i] = cut(pos[0], neg[i])
		}

		tet[pos[0]] = intp[0]
		dst = append(dst, tet)

		dst = append(dst, geom.Tetrahedron{intp[0], tet[neg[1]], tet[neg[2]], intp[1]})
		dst = append(dst, geom.Tetrahedron{tet[neg[2]], intp[1], intp[2], intp[0]})

	case nPos == 1 && nNeg == 2:
		// +--0 : 2 cut points; one tetrahedron from the in-place
		// replacement plus a second for the remaining wedge.
		for i := 0; i < 2; i++ {
			intp[i] = cut(pos[0], neg[i])
		}

		tet[pos[0]] = intp[0]
		dst = append(dst, tet)

		dst = append(dst, geom.Tetrahedron{intp[1], tet[zero[0]], tet[neg[1]], intp[0]})

	case nPos == 1 && nNeg == 1:
		// +-00 : both zero vertices pass through unchanged.
		tet[pos[0]] = cut(pos[0], neg[0])
		dst = append(dst, tet)
	}

	return dst
}
