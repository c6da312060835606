// options.go — functional options for Flip.
package flipper

import "context"

// Option configures a Flip run.
type Option func(*config)

type config struct {
	ctx    context.Context
	onFlip func(edgeIndex int)
}

func defaultConfig() config {
	return config{
		ctx:    context.Background(),
		onFlip: func(int) {},
	}
}

// WithContext makes Flip check ctx for cancellation between worklist
// pops. Flip is otherwise synchronous and never blocks.
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// WithOnFlip registers a hook called after every edge flip, with the
// canonical halfedge index identifying the flipped edge. Useful for
// progress logging and tests; never called for edges that were
// inspected and found already PD-Delaunay.
func WithOnFlip(fn func(edgeIndex int)) Option {
	return func(c *config) { c.onFlip = fn }
}
