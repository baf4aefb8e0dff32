package gonumflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mcfssp/gonumflow"
)

// buildGonumScenarioA renders spec.md §8 Scenario A as a gonum
// simple.WeightedDirectedGraph, node IDs 0..5, weighted by cost.
func buildGonumScenarioA(t *testing.T) *simple.WeightedDirectedGraph {
	t.Helper()
	g := simple.NewWeightedDirectedGraph(0, 0)
	for i := int64(0); i < 6; i++ {
		g.AddNode(simple.Node(i))
	}
	edges := []struct {
		tail, head int64
		cost       float64
	}{
		{0, 1, 1}, {0, 2, 5}, {1, 2, 0}, {2, 4, 1},
		{3, 1, 1}, {3, 5, 1}, {4, 3, 0}, {4, 5, 9},
	}
	for _, e := range edges {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.tail), simple.Node(e.head), e.cost))
	}
	return g
}

func TestFromWeighted_ScenarioA(t *testing.T) {
	g := buildGonumScenarioA(t)

	inst, ids, err := gonumflow.FromWeighted[int64](g,
		func(e graph.Edge) (float64, float64) { return 0, 10 },
		func(e graph.WeightedEdge) float64 { return e.Weight() },
	)
	require.NoError(t, err)
	require.Len(t, ids, 6)

	require.NoError(t, inst.AddNodeExcess(ids[0], 10))
	require.NoError(t, inst.AddNodeExcess(ids[5], -10))

	// Capacities here are at least Scenario A's exact per-edge caps
	// (cap 10 for all, vs. the original 4/8/5/10/8/8/8/8), so this only
	// checks the adapter round-trips a feasible, non-negative solve,
	// not the exact objective 70 from the narrower fixture.
	cost := inst.Solve()
	require.GreaterOrEqual(t, cost, int64(0))
}

func TestToWeightedDirected(t *testing.T) {
	g := buildGonumScenarioA(t)
	inst, ids, err := gonumflow.FromWeighted[int64](g,
		func(e graph.Edge) (float64, float64) { return 0, 10 },
		func(e graph.WeightedEdge) float64 { return e.Weight() },
	)
	require.NoError(t, err)
	require.NoError(t, inst.AddNodeExcess(ids[0], 10))
	require.NoError(t, inst.AddNodeExcess(ids[5], -10))
	inst.Solve()

	gonumIDs := make([]int64, inst.NumNodes())
	for gonumID, sspID := range ids {
		gonumIDs[sspID] = gonumID
	}

	out, err := gonumflow.ToWeightedDirected(inst, gonumIDs)
	require.NoError(t, err)
	require.NotNil(t, out.Node(int64(ids[0])))
}
