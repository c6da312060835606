// flip.go — the in-place edge flip. FlipEdge is the only mutator a
// Mesh ever sees after construction.
package mesh

// FlipEdge replaces the diagonal h (running a -> c, with incident
// triangles (a,b,c) and (a,c,d)) by the other diagonal of the
// quadrilateral, b -> d. h is returned unchanged as a handle — after
// the call it identifies the new diagonal in the b -> d direction,
// Twin(h) the d -> b direction.
//
// Precondition: h and Twin(h) are both interior (not on the boundary),
// and the quadrilateral (a,b,c,d) is strictly convex — the caller's
// duty, via IsStrictlyConvexQuad. Violating this precondition is
// undefined behavior, not a recoverable error: FlipEdge panics if h or
// Twin(h) lies on the boundary, but does not check convexity, so a
// non-convex quadrilateral is rewired all the same.
func (m *Mesh[T]) FlipEdge(h HalfedgeHandle) HalfedgeHandle {
	ht := m.halfedges[h].twin
	if m.halfedges[h].face == NullFace || m.halfedges[ht].face == NullFace {
		panic("mesh: FlipEdge on a boundary edge")
	}

	f2 := m.halfedges[h].face  // triangle (a,c,d)
	f1 := m.halfedges[ht].face // triangle (a,b,c)

	eCD := m.halfedges[h].next  // c -> d
	eDA := m.halfedges[eCD].next // d -> a
	eAB := m.halfedges[ht].next  // a -> b
	eBC := m.halfedges[eAB].next // b -> c

	b := m.halfedges[eAB].target
	d := m.halfedges[eCD].target

	// New triangle (a,b,d) in face slot f2: edges eAB, h(b->d), eDA.
	m.halfedges[h].target = d
	m.halfedges[h].face = f2
	m.halfedges[h].next = eDA
	m.halfedges[h].prev = eAB
	m.halfedges[eAB].face = f2
	m.halfedges[eAB].next = h
	m.halfedges[eAB].prev = eDA
	m.halfedges[eDA].face = f2
	m.halfedges[eDA].next = eAB
	m.halfedges[eDA].prev = h

	// New triangle (b,c,d) in face slot f1: edges eBC, eCD, ht(d->b).
	m.halfedges[ht].target = b
	m.halfedges[ht].face = f1
	m.halfedges[ht].next = eBC
	m.halfedges[ht].prev = eCD
	m.halfedges[eBC].face = f1
	m.halfedges[eBC].next = eCD
	m.halfedges[eBC].prev = ht
	m.halfedges[eCD].face = f1
	m.halfedges[eCD].next = ht
	m.halfedges[eCD].prev = eBC

	m.faces[f2].halfedge = h
	m.faces[f1].halfedge = ht

	// a and c may have lost their only stored outgoing halfedge (if it
	// was h or ht); eAB/eCD are still valid outgoing edges for them.
	a := m.halfedges[eDA].target
	c := m.halfedges[eBC].target
	m.vertices[a].halfedge = eAB
	m.vertices[c].halfedge = eCD
	m.vertices[b].halfedge = h
	m.vertices[d].halfedge = ht

	return h
}
