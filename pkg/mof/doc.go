// Package mof implements the geometric kernel of moment-of-fluid
// interface reconstruction: decomposing a convex polyhedral cell into
// tetrahedra, clipping tetrahedra against a half-space, and reducing
// the surviving pieces to a volume and centroid. The three stages are
// pure functions composed through tetrahedron slices; an outer solver
// (not part of this package) iterates on the plane offset until the
// clipped volume matches a target fraction.
package mof
