package ssp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcfssp/ssp"
)

// scenarioAEdge is one row of spec.md §8 Scenario A's edge table
// (tail, head, lower, upper, cost); lower is always 0 in this fixture.
type scenarioAEdge struct {
	tail, head int
	upper      int64
	cost       int64
}

var scenarioAEdges = []scenarioAEdge{
	{0, 1, 4, 1},
	{0, 2, 8, 5},
	{1, 2, 5, 0},
	{2, 4, 10, 1},
	{3, 1, 8, 1},
	{3, 5, 8, 1},
	{4, 3, 8, 0},
	{4, 5, 8, 9},
}

func buildScenarioA(t *testing.T) *ssp.Instance[int64] {
	t.Helper()
	inst := ssp.New[int64](6, len(scenarioAEdges))
	for _, e := range scenarioAEdges {
		_, err := inst.AddEdge(e.tail, e.head, 0, e.upper, e.cost)
		require.NoError(t, err)
	}
	require.NoError(t, inst.AddNodeExcess(0, 10))
	require.NoError(t, inst.AddNodeExcess(5, -10))
	return inst
}

// TestScenarioA_CanonicalInstance is spec.md §8 Scenario A.
func TestScenarioA_CanonicalInstance(t *testing.T) {
	inst := buildScenarioA(t)

	cost := inst.Solve()
	require.Equal(t, int64(70), cost)
	require.True(t, inst.TestOptimality())
	require.True(t, inst.TestCosts())
	require.Equal(t, cost, inst.Objective())
}

// TestScenarioA_UniversalInvariants checks the post-solve invariants
// spec.md §8 states for every node and arc, independent of the
// TestOptimality/TestCosts helper methods themselves.
func TestScenarioA_UniversalInvariants(t *testing.T) {
	inst := buildScenarioA(t)
	inst.Solve()

	// excess(i) == 0 for every node is exactly what TestOptimality's
	// first check establishes; it has no dedicated exported accessor.
	require.True(t, inst.TestOptimality())

	for a := 0; a < inst.NumArcs(); a++ {
		rc, err := inst.ResidualCapacity(a)
		require.NoError(t, err)
		require.GreaterOrEqual(t, rc, int64(0))

		sisterResidual := sisterResidualOf(t, inst, a)
		upper, err := upperOfArc(t, inst, a)
		require.NoError(t, err)
		require.Equal(t, upper, rc+sisterResidual)
	}
}

func sisterResidualOf(t *testing.T, inst *ssp.Instance[int64], a int) int64 {
	t.Helper()
	sister := a ^ 1
	rc, err := inst.ResidualCapacity(sister)
	require.NoError(t, err)
	return rc
}

// upperOfArc returns upper(a) - lower(a), i.e. capacity[a] + capacity[sister]
// folded the way spec.md states residual_capacity(a)+residual_capacity(sister)
// should equal it. For our fixture lower is always 0 for edges, but the
// sister arc's "upper" bound is -lower of the forward edge, so we derive
// the edge id directly instead of re-deriving bounds from arc ids.
func upperOfArc(t *testing.T, inst *ssp.Instance[int64], a int) (int64, error) {
	t.Helper()
	e := a / 2
	upper, err := inst.UpperBound(e)
	if err != nil {
		return 0, err
	}
	lower, err := inst.LowerBound(e)
	if err != nil {
		return 0, err
	}
	return upper - lower, nil
}

// TestScenarioC_UpdateCostReoptimization is spec.md §8 Scenario C.
func TestScenarioC_UpdateCostReoptimization(t *testing.T) {
	inst := buildScenarioA(t)
	before := inst.Solve()

	// find the most expensive saturated forward arc (residual == 0,
	// arc index even) after the first solve.
	bestArc, bestCost := -1, int64(-1<<62)
	var bestCap int64
	for e := 0; e < inst.NumEdges(); e++ {
		rc, err := inst.ResidualCapacity(2 * e)
		require.NoError(t, err)
		if rc != 0 {
			continue
		}
		cost, err := inst.Cost(2 * e)
		require.NoError(t, err)
		if cost > bestCost {
			bestCost = cost
			bestArc = 2 * e
			bestCap, err = inst.UpperBound(e)
			require.NoError(t, err)
		}
	}
	require.GreaterOrEqual(t, bestArc, 0, "expected at least one saturated forward arc")

	delta := bestCost // double the most expensive saturated arc's cost
	if delta == 0 {
		delta = 1
	}
	require.NoError(t, inst.UpdateCost(bestArc, delta))

	after := inst.Solve()
	require.GreaterOrEqual(t, after, before)
	require.LessOrEqual(t, after, before+bestCap*delta)
}

// TestScenarioD_ArcLayoutAfterOrder is spec.md §8 Scenario D.
func TestScenarioD_ArcLayoutAfterOrder(t *testing.T) {
	inst := buildScenarioA(t)
	inst.Order()

	wantFirst := []int{0, 2, 5, 8, 11, 14}
	wantCount := []int{2, 3, 3, 3, 3, 2}

	for i := 0; i < 6; i++ {
		first, err := inst.FirstOutgoingArc(i)
		require.NoError(t, err)
		require.Equalf(t, wantFirst[i], first, "node %d FirstOutgoingArc", i)

		count, err := inst.NoOutgoingArcs(i)
		require.NoError(t, err)
		require.Equalf(t, wantCount[i], count, "node %d NoOutgoingArcs", i)
	}
}

// TestScenarioE_ReorderIdempotence is spec.md §8 Scenario E: calling
// Order twice yields identical layouts and identical Solve results.
func TestScenarioE_ReorderIdempotence(t *testing.T) {
	inst := buildScenarioA(t)
	inst.Order()

	firstBefore := snapshotLayout(t, inst)
	inst.Order()
	firstAfter := snapshotLayout(t, inst)
	if diff := cmp.Diff(firstBefore, firstAfter); diff != "" {
		t.Errorf("arc layout changed on idempotent Order() (-before +after):\n%s", diff)
	}

	costA := inst.Clone().Solve()
	inst2 := buildScenarioA(t)
	inst2.Order()
	costB := inst2.Solve()
	require.Equal(t, costA, costB)
}

func snapshotLayout(t *testing.T, inst *ssp.Instance[int64]) [][2]int {
	t.Helper()
	out := make([][2]int, inst.NumArcs())
	for a := range out {
		tail, err := inst.Tail(a)
		require.NoError(t, err)
		head, err := inst.Head(a)
		require.NoError(t, err)
		out[a] = [2]int{tail, head}
	}
	return out
}

// TestScenarioB_Assignment is spec.md §8 Scenario B: a 3x3 assignment
// problem must resolve to a perfect matching of minimum cost, with
// every arc's flow in {0,1}.
func TestScenarioB_Assignment(t *testing.T) {
	costs := [3][3]int64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}

	inst := ssp.New[int64](6, 9)
	for s := 0; s < 3; s++ {
		for d := 0; d < 3; d++ {
			_, err := inst.AddEdge(s, 3+d, 0, 1, costs[s][d])
			require.NoError(t, err)
		}
	}
	for s := 0; s < 3; s++ {
		require.NoError(t, inst.AddNodeExcess(s, 1))
	}
	for d := 0; d < 3; d++ {
		require.NoError(t, inst.AddNodeExcess(3+d, -1))
	}

	inst.Solve()

	matchedDemand := make(map[int]bool)
	unitFlows := 0
	for e := 0; e < inst.NumEdges(); e++ {
		flow, err := inst.Flow(e)
		require.NoError(t, err)
		require.Contains(t, []int64{0, 1}, flow)
		if flow == 1 {
			unitFlows++
			head, err := inst.Head(2 * e)
			require.NoError(t, err)
			require.False(t, matchedDemand[head], "demand node matched twice")
			matchedDemand[head] = true
		}
	}
	require.Equal(t, 3, unitFlows)
	require.Len(t, matchedDemand, 3)
}
