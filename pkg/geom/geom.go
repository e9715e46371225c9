// Package geom defines the shared geometry primitives for the
// moment-of-fluid kernel: points/vectors, tetrahedra, and oriented
// planes (half-spaces). All coordinates are float64 and all types are
// plain values; nothing in this package allocates or retains state.
package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vec is a 3-component coordinate, used both as an absolute position
// and as a displacement.
type Vec = v3.Vec

// V is shorthand for constructing a Vec.
func V(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Tetrahedron is four ordered vertices. Volume and centroid are
// insensitive to vertex order; the clipping code relies on the index
// positions 0-3 only as stable labels within a single clip call.
type Tetrahedron [4]Vec

// SignedVolume returns the signed volume ((v1-v0)x(v2-v0)).(v3-v0)/6.
// The sign reflects vertex winding; summing signed volumes over a
// decomposition is a cheap winding audit.
func (t Tetrahedron) SignedVolume() float64 {
	e1 := t[1].Sub(t[0])
	e2 := t[2].Sub(t[0])
	e3 := t[3].Sub(t[0])
	return e1.Cross(e2).Dot(e3) / 6.0
}

// Volume returns the unsigned volume. Winding errors from upstream
// stages are masked, not detected; use SignedVolume to diagnose them.
func (t Tetrahedron) Volume() float64 {
	v := t.SignedVolume()
	if v < 0 {
		return -v
	}
	return v
}

// Centroid returns the unweighted average of the four vertices.
func (t Tetrahedron) Centroid() Vec {
	return t[0].Add(t[1]).Add(t[2]).Add(t[3]).MulScalar(0.25)
}

// Translated returns a copy of the tetrahedron with every vertex
// shifted by the given displacement.
func (t Tetrahedron) Translated(by Vec) Tetrahedron {
	return Tetrahedron{
		t[0].Add(by),
		t[1].Add(by),
		t[2].Add(by),
		t[3].Add(by),
	}
}

// Plane is an oriented plane dividing space into a positive and a
// negative half-space. A point p lies at signed distance
// p.Normal - Offset; d > 0 is the positive side, d < 0 the negative
// side, d == 0 on the plane. The normal need not be unit length, but
// signed distances scale with its length.
type Plane struct {
	Normal Vec
	Offset float64
}

// PlaneThrough returns the plane with the given normal passing through
// the given point.
func PlaneThrough(point, normal Vec) Plane {
	return Plane{Normal: normal, Offset: normal.Dot(point)}
}

// SignedDistance returns p.Normal - Offset.
func (p Plane) SignedDistance(pt Vec) float64 {
	return pt.Dot(p.Normal) - p.Offset
}

// Flipped returns the complementary half-space: the negative side of
// the flipped plane is the closed positive side of the original.
func (p Plane) Flipped() Plane {
	return Plane{Normal: p.Normal.Neg(), Offset: -p.Offset}
}
