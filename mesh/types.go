// types.go — arena storage and stable integer handles for the halfedge
// mesh: a single arena owning three slices, addressed by integer
// handles, so an edge flip only needs to mutate handle fields.
package mesh

import "github.com/lvlath-labs/pddelaunay/kernel"

// VertexHandle, HalfedgeHandle, and FaceHandle are stable, non-owning
// references into a Mesh's arenas. They remain valid for the Mesh's
// whole lifetime, including across any sequence of flips.
type (
	VertexHandle   int
	HalfedgeHandle int
	FaceHandle     int
)

// NullHalfedge, NullFace are the sentinel values (-1) for "no such
// handle" — a Vertex with NullHalfedge was never attached to a face
// (rejected by validation); a Halfedge with NullFace lies on the
// boundary.
const (
	NullHalfedge HalfedgeHandle = -1
	NullFace     FaceHandle     = -1
)

// vertex holds a Point and one incident outgoing halfedge.
type vertex[T kernel.Real] struct {
	point    kernel.Point[T]
	halfedge HalfedgeHandle
}

// halfedge holds the target vertex, its twin, its next/prev CCW
// neighbours within its face cycle, and its face (NullFace if on the
// boundary).
type halfedge struct {
	target     VertexHandle
	twin       HalfedgeHandle
	next, prev HalfedgeHandle
	face       FaceHandle
}

// face holds one incident halfedge; every face here is a triangle.
type face struct {
	halfedge HalfedgeHandle
}

// Mesh is a halfedge triangulation over scalar type T. The zero value
// is not usable; construct via ReadOFF.
type Mesh[T kernel.Real] struct {
	vertices  []vertex[T]
	halfedges []halfedge
	faces     []face
}

// NumVertices, NumHalfedges, and NumFaces report arena sizes. They
// never change after construction: flips mutate handle fields, not
// arena length.
func (m *Mesh[T]) NumVertices() int  { return len(m.vertices) }
func (m *Mesh[T]) NumHalfedges() int { return len(m.halfedges) }
func (m *Mesh[T]) NumFaces() int     { return len(m.faces) }

// VertexPoint returns the point stored at v.
func (m *Mesh[T]) VertexPoint(v VertexHandle) kernel.Point[T] { return m.vertices[v].point }

// VertexHalfedge returns one halfedge outgoing from v.
func (m *Mesh[T]) VertexHalfedge(v VertexHandle) HalfedgeHandle { return m.vertices[v].halfedge }

// Target returns the vertex h points at.
func (m *Mesh[T]) Target(h HalfedgeHandle) VertexHandle { return m.halfedges[h].target }

// Source returns the vertex h points away from: Target(Prev(h)).
func (m *Mesh[T]) Source(h HalfedgeHandle) VertexHandle {
	return m.halfedges[m.halfedges[h].prev].target
}

// Twin returns h's mutual twin. Twin(Twin(h)) == h always.
func (m *Mesh[T]) Twin(h HalfedgeHandle) HalfedgeHandle { return m.halfedges[h].twin }

// Next returns the next halfedge CCW around h's face.
func (m *Mesh[T]) Next(h HalfedgeHandle) HalfedgeHandle { return m.halfedges[h].next }

// Prev returns the previous halfedge around h's face. Prev(Next(h)) == h.
func (m *Mesh[T]) Prev(h HalfedgeHandle) HalfedgeHandle { return m.halfedges[h].prev }

// Face returns h's incident face, or NullFace if h is on the boundary.
func (m *Mesh[T]) Face(h HalfedgeHandle) FaceHandle { return m.halfedges[h].face }

// IsBoundary reports whether h has no incident face.
func (m *Mesh[T]) IsBoundary(h HalfedgeHandle) bool { return m.halfedges[h].face == NullFace }

// FaceHalfedge returns one halfedge incident to f.
func (m *Mesh[T]) FaceHalfedge(f FaceHandle) HalfedgeHandle { return m.faces[f].halfedge }

// FaceVertices returns the (ordered, CCW) three vertices of the
// triangular face f.
func (m *Mesh[T]) FaceVertices(f FaceHandle) [3]VertexHandle {
	h0 := m.faces[f].halfedge
	h1 := m.halfedges[h0].next
	h2 := m.halfedges[h1].next
	return [3]VertexHandle{m.halfedges[h0].target, m.halfedges[h1].target, m.halfedges[h2].target}
}
