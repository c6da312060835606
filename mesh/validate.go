// validate.go — the topology invariants checked once at the end of
// ReadOFF. Any failure here means construction as a whole failed.
package mesh

import "github.com/lvlath-labs/pddelaunay/kernel"

func (m *Mesh[T]) validate() error {
	if err := m.validateNoIsolatedVertices(); err != nil {
		return err
	}
	boundary, err := m.boundaryCycle()
	if err != nil {
		return err
	}
	if err := m.validateSingleBoundaryCycle(boundary); err != nil {
		return err
	}
	if err := m.validateConvexBoundary(boundary); err != nil {
		return err
	}
	return m.validateNoDanglingEdge()
}

func (m *Mesh[T]) validateNoIsolatedVertices() error {
	for _, v := range m.vertices {
		if v.halfedge == NullHalfedge {
			return ErrIsolatedVertex
		}
	}
	return nil
}

// boundaryCycle walks the boundary cycle reachable from the first
// boundary halfedge found, via Next, and returns it in order.
func (m *Mesh[T]) boundaryCycle() ([]HalfedgeHandle, error) {
	start := NullHalfedge
	for hh := range m.halfedges {
		if m.halfedges[hh].face == NullFace {
			start = HalfedgeHandle(hh)
			break
		}
	}
	if start == NullHalfedge {
		// A closed mesh with no boundary is not a planar triangulation
		// of a point set; treat it the same as "no boundary cycle found".
		return nil, ErrMultipleBoundaries
	}

	cycle := []HalfedgeHandle{start}
	for cur := m.halfedges[start].next; cur != start; cur = m.halfedges[cur].next {
		cycle = append(cycle, cur)
		if len(cycle) > len(m.halfedges) {
			return nil, ErrMultipleBoundaries
		}
	}
	return cycle, nil
}

func (m *Mesh[T]) validateSingleBoundaryCycle(cycle []HalfedgeHandle) error {
	total := 0
	for i := range m.halfedges {
		if m.halfedges[i].face == NullFace {
			total++
		}
	}
	if total != len(cycle) {
		return ErrMultipleBoundaries
	}
	return nil
}

func (m *Mesh[T]) validateConvexBoundary(cycle []HalfedgeHandle) error {
	n := len(cycle)
	for i := 0; i < n; i++ {
		b := cycle[i]
		bn := cycle[(i+1)%n]
		a := m.VertexPoint(m.Source(b))
		c := m.VertexPoint(m.Target(b))
		d := m.VertexPoint(m.Target(bn))
		if kernel.Orient(a, c, d) == kernel.LeftTurn {
			return ErrNonConvexBoundary
		}
	}
	return nil
}

func (m *Mesh[T]) validateNoDanglingEdge() error {
	for hh, h := range m.halfedges {
		if h.face == NullFace && m.halfedges[h.twin].face == NullFace && h.twin > HalfedgeHandle(hh) {
			return ErrDanglingEdge
		}
	}
	return nil
}
