// Package flipper implements a PD-Delaunay worklist algorithm:
// starting from every interior edge marked dirty, repeatedly pop a
// dirty edge, test it against kernel.IsLocallyPDDelaunayEdge, flip it
// if it fails, and re-dirty the (up to) four edges bounding the
// quadrilateral the flip touched. The loop halts when the worklist is
// empty, at which point the mesh is locally PD-Delaunay everywhere a
// flip is possible.
//
// The algorithm's shape — a mutable walker holding a queue and a
// visited/dirty set, driven by a loop() that drains it — follows the
// same pattern as a breadth-first search, adapted from graph traversal
// to mesh worklist maintenance.
package flipper
