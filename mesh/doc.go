// Package mesh implements a halfedge triangulation: a directed-edge
// mesh with twin/next/prev/face pointers, an OFF reader that validates
// topology at load time, an OFF writer, and the in-place FlipEdge
// operation.
//
// # Storage
//
// The mesh is a single arena owning three slices (vertices, halfedges,
// faces) addressed by integer handles (VertexHandle, HalfedgeHandle,
// FaceHandle). FlipEdge mutates handle fields in place; it never grows
// or shrinks the arena, so handle identity survives any sequence of
// flips.
//
// # Construction
//
// The only way to build a Mesh is ReadOFF, a staged builder: parse
// vertices, parse and link triangular faces (canonicalising each
// undirected edge into a pair of mutual twins), synthesize the
// boundary halfedges left unclaimed by any face, link them into
// cycles, then validate every topology invariant before handing back a
// usable Mesh. Any failure at any stage discards the partial mesh and
// returns a structured error; there is no partially-built mesh
// observable by a caller.
package mesh
