// flipper.go — the worklist loop itself.
package flipper

import (
	"github.com/lvlath-labs/pddelaunay/kernel"
	"github.com/lvlath-labs/pddelaunay/mesh"
)

// walker encapsulates the mutable worklist state for one Flip run: a
// queue, a membership set, and the loop that drains it.
type walker[T kernel.Real] struct {
	m     *mesh.Mesh[T]
	u, v  kernel.Vector[T]
	cfg   config
	dirty map[mesh.HalfedgeHandle]bool
	queue []mesh.HalfedgeHandle
}

// Flip mutates m in place by repeated edge flips until every interior
// edge is locally PD-Delaunay with respect to (u, v), or is not
// flippable (its quadrilateral is not strictly convex). It returns
// ErrNilMesh for a nil mesh, and otherwise an error only if opts
// supplies a context that is cancelled mid-run.
//
// Flip does not check u and v itself. The fixpoint above holds for a
// pair accepted by kernel.ValidateDirections; with an orthogonal pair,
// a cocircular quadrilateral that ties under both u and v fails the
// test with either diagonal, and the diagonal left by its last flip
// stays.
func Flip[T kernel.Real](m *mesh.Mesh[T], u, v kernel.Vector[T], opts ...Option) error {
	if m == nil {
		return ErrNilMesh
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &walker[T]{
		m:     m,
		u:     u,
		v:     v,
		cfg:   cfg,
		dirty: make(map[mesh.HalfedgeHandle]bool),
	}
	w.seed()
	return w.loop()
}

// canon picks a stable representative halfedge for an undirected edge:
// the smaller of h and its twin.
func (w *walker[T]) canon(h mesh.HalfedgeHandle) mesh.HalfedgeHandle {
	t := w.m.Twin(h)
	if h < t {
		return h
	}
	return t
}

func (w *walker[T]) markDirty(h mesh.HalfedgeHandle) {
	c := w.canon(h)
	if w.dirty[c] {
		return
	}
	w.dirty[c] = true
	w.queue = append(w.queue, c)
}

// seed marks every interior (flippable-candidate) edge dirty exactly
// once.
func (w *walker[T]) seed() {
	for i := 0; i < w.m.NumHalfedges(); i++ {
		h := mesh.HalfedgeHandle(i)
		if w.m.IsBoundary(h) || w.m.IsBoundary(w.m.Twin(h)) {
			continue
		}
		if c := w.canon(h); c == h {
			w.dirty[c] = true
			w.queue = append(w.queue, c)
		}
	}
}

func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.cfg.ctx.Done():
			return w.cfg.ctx.Err()
		default:
		}

		h := w.queue[0]
		w.queue = w.queue[1:]
		if !w.dirty[h] {
			continue // stale entry, already cleaned by a later pop
		}
		w.dirty[h] = false

		w.visit(h)
	}
	return nil
}

// visit implements one worklist step: test h's quadrilateral and
// either mark it clean or flip it and re-dirty its four neighbours.
func (w *walker[T]) visit(h mesh.HalfedgeHandle) {
	m := w.m
	ht := m.Twin(h)

	a, c := m.Source(h), m.Target(h)
	d := m.Target(m.Next(h))
	b := m.Target(m.Next(ht))

	pa, pb, pc, pd := m.VertexPoint(a), m.VertexPoint(b), m.VertexPoint(c), m.VertexPoint(d)

	if !kernel.IsStrictlyConvexQuad(pa, pb, pc, pd) {
		return // not flippable; stays clean
	}
	if kernel.IsLocallyPDDelaunayEdge(pa, pb, pc, pd, w.u, w.v) {
		return // already PD-Delaunay; stays clean
	}

	m.FlipEdge(h)
	w.cfg.onFlip(int(h))

	for _, nh := range [4]mesh.HalfedgeHandle{m.Next(h), m.Prev(h), m.Next(ht), m.Prev(ht)} {
		if !m.IsBoundary(nh) && !m.IsBoundary(m.Twin(nh)) {
			w.markDirty(nh)
		}
	}
}
