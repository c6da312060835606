// Package fixture generates synthetic OFF triangulations for tests: a
// 2x2 square split along one diagonal, a rectangular grid of unit
// cells, and a "sliver" pentagon whose naive fan triangulation
// contains a non-Delaunay edge. Each generator returns OFF text ready
// for mesh.ReadOFF; the row/column fan-out for Grid uses the same
// row-major indexing convention common to grid-graph code, adapted
// here from integer cell values to triangulated coordinates.
package fixture
