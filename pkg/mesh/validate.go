package mesh

import "fmt"

// ValidationError describes a single well-formedness finding. The
// decomposition and clipping code treats malformed input as undefined
// behavior rather than returning errors, so callers that cannot trust
// their input should run Validate first.
type ValidationError struct {
	Face    int // face index, -1 if not face-related
	Cell    int // cell index, -1 if not cell-related
	Message string
}

func (e ValidationError) Error() string {
	switch {
	case e.Cell >= 0 && e.Face >= 0:
		return fmt.Sprintf("cell %d, face %d: %s", e.Cell, e.Face, e.Message)
	case e.Cell >= 0:
		return fmt.Sprintf("cell %d: %s", e.Cell, e.Message)
	case e.Face >= 0:
		return fmt.Sprintf("face %d: %s", e.Face, e.Message)
	default:
		return e.Message
	}
}

// Validate runs all well-formedness checks on the mesh and returns a
// slice of findings. An empty slice means every cell satisfies the
// preconditions of Decompose, including the tetrahedral fast path for
// 4-face cells. Validate is read-only and never mutates the mesh.
func Validate(m *Mesh) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateFaces(m)...)
	errs = append(errs, validateCells(m)...)
	errs = append(errs, validateTetCells(m)...)
	return errs
}

// validateFaces checks that every face is a loop of at least 3
// in-range vertex indices.
func validateFaces(m *Mesh) []ValidationError {
	var errs []ValidationError
	for facei, f := range m.Faces {
		if len(f) < 3 {
			errs = append(errs, ValidationError{
				Face:    facei,
				Cell:    -1,
				Message: fmt.Sprintf("face has %d vertices, need at least 3", len(f)),
			})
		}
		for _, pi := range f {
			if pi < 0 || pi >= len(m.Points) {
				errs = append(errs, ValidationError{
					Face:    facei,
					Cell:    -1,
					Message: fmt.Sprintf("vertex index %d out of range [0,%d)", pi, len(m.Points)),
				})
			}
		}
	}
	return errs
}

// validateCells checks that every cell is bounded by at least 4
// in-range face indices.
func validateCells(m *Mesh) []ValidationError {
	var errs []ValidationError
	for celli, c := range m.Cells {
		if len(c) < 4 {
			errs = append(errs, ValidationError{
				Face:    -1,
				Cell:    celli,
				Message: fmt.Sprintf("cell has %d faces, need at least 4", len(c)),
			})
		}
		for _, facei := range c {
			if facei < 0 || facei >= len(m.Faces) {
				errs = append(errs, ValidationError{
					Face:    -1,
					Cell:    celli,
					Message: fmt.Sprintf("face index %d out of range [0,%d)", facei, len(m.Faces)),
				})
			}
		}
	}
	return errs
}

// validateTetCells checks the fast-path precondition on 4-face cells:
// the cell references exactly 4 distinct points, its first face is a
// triangle, and its second face contributes exactly one point not on
// the first. Decompose reads the 4 corners directly from those two
// faces, so a 4-face cell violating this yields garbage geometry.
func validateTetCells(m *Mesh) []ValidationError {
	var errs []ValidationError
	for celli, c := range m.Cells {
		if len(c) != 4 {
			continue
		}
		if hasBrokenReference(m, c) {
			continue // already reported by validateCells
		}

		if np := len(m.CellPoints(celli)); np != 4 {
			errs = append(errs, ValidationError{
				Face:    -1,
				Cell:    celli,
				Message: fmt.Sprintf("4-face cell references %d distinct points, want 4", np),
			})
			continue
		}

		first := m.Faces[c[0]]
		if len(first) != 3 {
			errs = append(errs, ValidationError{
				Face:    c[0],
				Cell:    celli,
				Message: fmt.Sprintf("first face of 4-face cell has %d vertices, want 3", len(first)),
			})
			continue
		}

		isolated := 0
		for _, pi := range m.Faces[c[1]] {
			if pi != first[0] && pi != first[1] && pi != first[2] {
				isolated++
			}
		}
		if isolated != 1 {
			errs = append(errs, ValidationError{
				Face:    c[1],
				Cell:    celli,
				Message: fmt.Sprintf("second face of 4-face cell has %d vertices off the first face, want 1", isolated),
			})
		}
	}
	return errs
}

func hasBrokenReference(m *Mesh, c Cell) bool {
	for _, facei := range c {
		if facei < 0 || facei >= len(m.Faces) {
			return true
		}
		for _, pi := range m.Faces[facei] {
			if pi < 0 || pi >= len(m.Points) {
				return true
			}
		}
	}
	return false
}
