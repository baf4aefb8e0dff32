// Package mcfssp is a minimum-cost flow solver for directed graphs with
// integer or floating-point capacities and costs.
//
// It implements successive shortest paths (SSP) with a reduced-cost
// Dijkstra inner loop, an intrusive saturated/non-saturated arc
// partition for O(1) residual-capacity transitions, and an in-place
// arc-array compaction pass for cache-friendly adjacency scans once a
// graph's topology has settled:
//
//	ssp/       - the solver core: residual graph, Dijkstra, driver loop,
//	             arc reordering, incremental update primitives
//	dimacs/    - DIMACS min-cost-flow text format reader and writer
//	gonumflow/ - adapters to and from gonum.org/v1/gonum/graph
//
// Integer costs are exact; floating-point costs carry a documented
// epsilon tolerance (see ssp.Options). An Instance takes no internal
// locks, so independent instances run freely on independent goroutines,
// but a single Instance must not be shared across goroutines without
// external synchronization.
//
// Quick example:
//
//	inst := ssp.New[int64](6, 8)
//	inst.AddNodeExcess(0, 10)
//	inst.AddNodeExcess(5, -10)
//	inst.AddEdge(0, 1, 0, 4, 1)
//	// ... remaining edges ...
//	cost := inst.Solve()
//
// See ssp's package doc for the full operation set, DESIGN.md for the
// grounding of every component in this repository, and SPEC_FULL.md for
// the complete specification this module implements.
package mcfssp
