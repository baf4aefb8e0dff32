// Package gonumflow adapts between gonum.org/v1/gonum/graph graphs and
// ssp.Instance, so a minimum-cost flow problem can be assembled from
// (or a solved instance's flow handed back as) a gonum graph.
//
// FromWeighted walks a gonum graph.Directed + graph.Weighted pair's
// nodes and edges and builds an Instance via ssp.New/AddEdge, returning
// the gonum-node-ID -> ssp node index mapping used along the way.
// ToWeightedDirected runs the other direction: it renders a solved
// Instance's non-zero-flow edges as a simple.WeightedDirectedGraph
// weighted by flow, so gonum's own graph/path or graph/topo algorithms
// can run against the result directly (e.g. topo.Sort to confirm the
// flow decomposes into a DAG of positive-flow arcs).
//
// gonumflow does not attempt to mirror gonum's own graph/flow package;
// that package analyzes control-flow graphs (dominance, intervals), an
// unrelated namesake rather than a minimum- or maximum-flow solver.
package gonumflow

import "errors"

// ErrNegativeWeight is returned by FromWeighted when a caller-supplied
// lower/upper/cost callback produces a value that cannot form a valid
// arc (upper < 0, or lower > upper).
var ErrNegativeWeight = errors.New("gonumflow: invalid arc bounds from graph weight")

// ErrUnknownNode is returned by ToWeightedDirected when the supplied
// ids slice is shorter than the instance's node count.
var ErrUnknownNode = errors.New("gonumflow: ids slice does not cover every instance node")
