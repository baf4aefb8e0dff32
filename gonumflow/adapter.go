package gonumflow

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mcfssp/ssp"
)

// DirectedWeighted is the minimal gonum graph surface FromWeighted
// needs: node/edge enumeration (graph.Directed) plus per-edge weights
// (graph.Weighted). *simple.WeightedDirectedGraph satisfies it.
type DirectedWeighted interface {
	graph.Directed
	graph.Weighted
}

// BoundsFunc derives an arc's [lower, upper] residual bounds from a
// gonum edge; CostFunc derives its per-unit cost from the edge's
// weight. Both are supplied by the caller because gonum's WeightedEdge
// carries a single float64 weight, while an ssp.Instance arc needs
// three independent numbers.
type BoundsFunc func(e graph.Edge) (lower, upper float64)
type CostFunc func(e graph.WeightedEdge) float64

// FromWeighted walks g's nodes in ascending gonum node-ID order, so the
// ssp node indices are deterministic, and each node's outgoing edges in
// the order g.From yields them, which is not sorted; it builds an
// *ssp.Instance[T] with one arc per gonum edge. It returns the gonum node ID -> ssp node index
// mapping so callers can translate supplies/demands (via
// Instance.AddNodeExcess) and read flows back by gonum node identity.
func FromWeighted[T ssp.Number](g DirectedWeighted, bounds BoundsFunc, cost CostFunc) (*ssp.Instance[T], map[int64]int, error) {
	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	ids := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		ids[n.ID()] = i
	}

	numArcs := 0
	for _, n := range nodes {
		numArcs += len(graph.NodesOf(g.From(n.ID())))
	}

	inst := ssp.New[T](len(nodes), numArcs)

	for _, u := range nodes {
		for _, v := range graph.NodesOf(g.From(u.ID())) {
			we := g.WeightedEdge(u.ID(), v.ID())
			lower, upper := bounds(we)
			if upper < 0 || lower > upper {
				return nil, nil, ErrNegativeWeight
			}
			c := cost(we)
			if _, err := inst.AddEdge(ids[u.ID()], ids[v.ID()], T(lower), T(upper), T(c)); err != nil {
				return nil, nil, err
			}
		}
	}

	return inst, ids, nil
}

// ToWeightedDirected renders inst's non-zero-flow edges as a
// simple.WeightedDirectedGraph weighted by flow. ids[i] is the gonum
// node ID to use for ssp node index i; it must have at least
// inst.NumNodes() entries.
func ToWeightedDirected[T ssp.Number](inst *ssp.Instance[T], ids []int64) (*simple.WeightedDirectedGraph, error) {
	if len(ids) < inst.NumNodes() {
		return nil, ErrUnknownNode
	}

	g := simple.NewWeightedDirectedGraph(0, 0)
	for i := 0; i < inst.NumNodes(); i++ {
		g.AddNode(simple.Node(ids[i]))
	}

	for e := 0; e < inst.NumEdges(); e++ {
		flow, err := inst.Flow(e)
		if err != nil {
			return nil, err
		}
		if flow == 0 {
			continue
		}
		tail, err := inst.Tail(2 * e)
		if err != nil {
			return nil, err
		}
		head, err := inst.Head(2 * e)
		if err != nil {
			return nil, err
		}
		from := g.Node(ids[tail])
		to := g.Node(ids[head])
		g.SetWeightedEdge(g.NewWeightedEdge(from, to, float64(flow)))
	}

	return g, nil
}
