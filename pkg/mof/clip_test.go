package mof_test

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/JunhuaPAN/MomentOfFluid/pkg/geom"
	"github.com/JunhuaPAN/MomentOfFluid/pkg/mof"
)

const tol = 1e-12

func unitTet() geom.Tetrahedron {
	return geom.Tetrahedron{
		geom.V(0, 0, 0),
		geom.V(1, 0, 0),
		geom.V(0, 1, 0),
		geom.V(0, 0, 1),
	}
}

func totalVolume(tets []geom.Tetrahedron) float64 {
	v := 0.0
	for _, t := range tets {
		v += t.Volume()
	}
	return v
}

// matchesInputOrPlane checks that every output vertex is either one of
// the input corners or lies on the clip plane: the case table never
// invents points anywhere else.
func matchesInputOrPlane(t *testing.T, p geom.Plane, in geom.Tetrahedron, out []geom.Tetrahedron) {
	t.Helper()
	for ti, tet := range out {
		for vi, v := range tet {
			if math.Abs(p.SignedDistance(v)) <= 1e-12 {
				continue
			}
			orig := false
			for _, iv := range in {
				if v.Equals(iv, tol) {
					orig = true
					break
				}
			}
			if !orig {
				t.Errorf("output tet %d vertex %d = %v is neither an input corner nor on the plane", ti, vi, v)
			}
		}
	}
}

func TestClipCaseTable(t *testing.T) {
	// Each case fires a distinct sign configuration of the x = 0.5
	// plane against a hand-built tetrahedron.
	plane := geom.Plane{Normal: geom.V(1, 0, 0), Offset: 0.5}

	tests := []struct {
		name     string
		plane    geom.Plane
		tet      geom.Tetrahedron
		wantTets int
	}{
		{
			// d = 0.5 - x: three corners at x=0 positive, one at x=1 negative.
			name:     "+++-",
			plane:    geom.Plane{Normal: geom.V(-1, 0, 0), Offset: -0.5},
			tet:      unitTet(),
			wantTets: 1,
		},
		{
			name:  "++--",
			plane: plane,
			tet: geom.Tetrahedron{
				geom.V(0, 0, 0),
				geom.V(0, 1, 0),
				geom.V(1, 0, 0),
				geom.V(1, 0, 1),
			},
			wantTets: 3,
		},
		{
			name:  "++-0",
			plane: plane,
			tet: geom.Tetrahedron{
				geom.V(0.5, 0, 0),
				geom.V(1, 0, 1),
				geom.V(1, 1, 0),
				geom.V(0, 0, 0),
			},
			wantTets: 1,
		},
		{
			name:     "+---",
			plane:    plane,
			tet:      unitTet(),
			wantTets: 3,
		},
		{
			name:  "+--0",
			plane: plane,
			tet: geom.Tetrahedron{
				geom.V(0.5, 0, 1),
				geom.V(1, 0, 0),
				geom.V(0, 1, 0),
				geom.V(0, 0, 0),
			},
			wantTets: 2,
		},
		{
			name:  "+-00",
			plane: plane,
			tet: geom.Tetrahedron{
				geom.V(0.5, 0, 0),
				geom.V(0.5, 1, 0),
				geom.V(1, 0, 1),
				geom.V(0, 0, 0),
			},
			wantTets: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mof.Clip(tt.plane, tt.tet)
			if len(got) != tt.wantTets {
				t.Fatalf("Clip() returned %d tetrahedra, want %d", len(got), tt.wantTets)
			}

			// The two half-space portions must tile the input exactly.
			other := mof.Clip(tt.plane.Flipped(), tt.tet)
			sum := totalVolume(got) + totalVolume(other)
			if want := tt.tet.Volume(); !scalar.EqualWithinAbs(sum, want, tol) {
				t.Errorf("volume split %v + %v = %v, want %v",
					totalVolume(got), totalVolume(other), sum, want)
			}

			matchesInputOrPlane(t, tt.plane, tt.tet, got)

			// Everything returned lies on the negative side.
			for _, tet := range got {
				if d := tt.plane.SignedDistance(tet.Centroid()); d > tol {
					t.Errorf("output centroid at signed distance %v, want <= 0", d)
				}
			}
		})
	}
}

func TestClipCornerCapVolume(t *testing.T) {
	// Clipping the unit tetrahedron at x = 0.5 cuts off a corner cap
	// similar to the whole at scale 1/2, so the negative side keeps
	// 1/6 - 1/48 = 7/48.
	plane := geom.Plane{Normal: geom.V(1, 0, 0), Offset: 0.5}

	kept := mof.Clip(plane, unitTet())
	if got := totalVolume(kept); !scalar.EqualWithinAbs(got, 7.0/48.0, tol) {
		t.Errorf("negative-side volume = %v, want 7/48", got)
	}

	cut := mof.Clip(plane.Flipped(), unitTet())
	if got := totalVolume(cut); !scalar.EqualWithinAbs(got, 1.0/48.0, tol) {
		t.Errorf("positive-side volume = %v, want 1/48", got)
	}
}

func TestClipPassThrough(t *testing.T) {
	tet := unitTet()

	// All four corners strictly negative: same tetrahedron back,
	// vertices untouched and in order.
	behind := geom.Plane{Normal: geom.V(1, 0, 0), Offset: 2}
	got := mof.Clip(behind, tet)
	if len(got) != 1 {
		t.Fatalf("Clip() returned %d tetrahedra, want 1", len(got))
	}
	for i := range tet {
		if !got[0][i].Equals(tet[i], 0) {
			t.Errorf("vertex %d changed: got %v, want %v", i, got[0][i], tet[i])
		}
	}

	// All four corners strictly positive: nothing back.
	inFront := geom.Plane{Normal: geom.V(1, 0, 0), Offset: -2}
	if got := mof.Clip(inFront, tet); len(got) != 0 {
		t.Errorf("Clip() returned %d tetrahedra, want 0", len(got))
	}
}

func TestClipFaceCoincidentPlane(t *testing.T) {
	tet := unitTet()

	// Plane through the z=0 face, negative side containing the
	// tetrahedron: passed through whole, no fragments.
	keep := geom.Plane{Normal: geom.V(0, 0, -1), Offset: 0}
	if got := mof.Clip(keep, tet); len(got) != 1 || !scalar.EqualWithinAbs(totalVolume(got), 1.0/6.0, tol) {
		t.Errorf("coincident keep: %d tetrahedra, volume %v; want 1 tetrahedron, volume 1/6",
			len(got), totalVolume(got))
	}

	// Same plane flipped: the tetrahedron is entirely on or in front,
	// so it is dropped entirely.
	if got := mof.Clip(keep.Flipped(), tet); len(got) != 0 {
		t.Errorf("coincident drop: %d tetrahedra, want 0", len(got))
	}
}

func TestClipVolumeConservationRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	randVec := func() geom.Vec {
		return geom.V(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
	}

	for trial := 0; trial < 500; trial++ {
		tet := geom.Tetrahedron{randVec(), randVec(), randVec(), randVec()}
		plane := geom.Plane{
			Normal: randVec().Normalize(),
			Offset: rng.Float64() - 0.5,
		}

		neg := mof.Clip(plane, tet)
		pos := mof.Clip(plane.Flipped(), tet)

		sum := totalVolume(neg) + totalVolume(pos)
		if want := tet.Volume(); !scalar.EqualWithinAbs(sum, want, 1e-10) {
			t.Fatalf("trial %d: volume split %v, want %v (tet %v, plane %v)",
				trial, sum, want, tet, plane)
		}
	}
}

func TestClipperTolerance(t *testing.T) {
	// One corner sits 0.05 in front of the plane. Exact
	// classification sees ++--; a 0.1 band reclassifies it as
	// on-plane, firing +--0 instead.
	plane := geom.Plane{Normal: geom.V(1, 0, 0), Offset: 0.5}
	tet := geom.Tetrahedron{
		geom.V(0.55, 0, 0),
		geom.V(0, 1, 0),
		geom.V(0, 0, 1),
		geom.V(1, 1, 1),
	}

	exact := mof.Clipper{}
	if got := exact.Clip(plane, tet); len(got) != 3 {
		t.Errorf("exact Clip() returned %d tetrahedra, want 3", len(got))
	}

	banded := mof.Clipper{Tolerance: 0.1}
	got := banded.Clip(plane, tet)
	if len(got) != 2 {
		t.Errorf("banded Clip() returned %d tetrahedra, want 2", len(got))
	}
}

func TestAppendClipReusesBuffer(t *testing.T) {
	plane := geom.Plane{Normal: geom.V(1, 0, 0), Offset: 0.5}

	buf := make([]geom.Tetrahedron, 0, 16)
	buf = mof.AppendClip(buf, plane, unitTet())
	n := len(buf)
	if n == 0 {
		t.Fatal("AppendClip() appended nothing")
	}

	buf = mof.AppendClip(buf, plane, unitTet())
	if len(buf) != 2*n {
		t.Errorf("second AppendClip() grew buffer to %d, want %d", len(buf), 2*n)
	}
}
