// errors.go — sentinel errors for OFF parsing and topology validation.
// A malformed or topologically invalid input surfaces as a failed
// construction; misusing FlipEdge on a bad handle is a programming
// error instead (see flip.go).
package mesh

import "errors"

var (
	// ErrBadHeader indicates the input did not start with the literal
	// line "OFF".
	ErrBadHeader = errors.New("mesh: input does not start with OFF header")

	// ErrBadCounts indicates the V F E header line could not be parsed
	// as three non-negative integers.
	ErrBadCounts = errors.New("mesh: malformed vertex/face/edge count line")

	// ErrBadVertex indicates a vertex line could not be parsed as three
	// coordinates.
	ErrBadVertex = errors.New("mesh: malformed vertex line")

	// ErrNotTriangle indicates a face line's degree was not exactly 3.
	ErrNotTriangle = errors.New("mesh: face is not a triangle")

	// ErrBadFaceIndex indicates a face referenced a vertex index outside
	// [0, V) or repeated a vertex within one face.
	ErrBadFaceIndex = errors.New("mesh: face references an invalid vertex index")

	// ErrClockwiseFace indicates a face's three vertices are not in
	// strict CCW (left-turn) order.
	ErrClockwiseFace = errors.New("mesh: face vertices are not in CCW order")

	// ErrCoincidentFaces indicates two faces claim the same directed
	// edge, which would make twin() ambiguous.
	ErrCoincidentFaces = errors.New("mesh: two faces share the same directed edge")

	// ErrMultipleBoundaries indicates the input has more than one
	// boundary cycle (a hole).
	ErrMultipleBoundaries = errors.New("mesh: mesh has more than one boundary cycle")

	// ErrNonConvexBoundary indicates the outer boundary is not convex.
	ErrNonConvexBoundary = errors.New("mesh: boundary is not convex")

	// ErrIsolatedVertex indicates a declared vertex is not incident to
	// any face.
	ErrIsolatedVertex = errors.New("mesh: isolated vertex with no incident face")

	// ErrDanglingEdge indicates an edge whose two halfedges are both on
	// the boundary (no face claims either direction).
	ErrDanglingEdge = errors.New("mesh: edge with both halfedges on the boundary")
)
