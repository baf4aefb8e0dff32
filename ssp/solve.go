package ssp

import "github.com/katalvlaran/mcfssp/internal/xmath"

// Init pre-saturates every arc with positive residual capacity and
// negative reduced cost, and rebuilds the active-node list from
// scratch. Solve calls Init itself; exported so callers that want to
// inspect the post-Init state (e.g. before a first Dijkstra scan, for
// testing) can do so directly. Grounded on Init.
func (inst *Instance[T]) Init() {
	for a := arcID(0); a < arcID(inst.NumArcs()); a++ {
		arcRef := &inst.arcs[a]
		if arcRef.residual > 0 && inst.reducedCost(a) < 0 {
			inst.pushFlow(a, arcRef.residual)
		}
	}

	inst.firstActive = noNode
	tail := noNode
	for i := range inst.nodes {
		inst.nodes[i].nextActive = noNode
		inst.active[i] = inst.nodes[i].excess > 0
		if inst.active[i] {
			if tail == noNode {
				inst.firstActive = nodeID(i)
			} else {
				inst.nodes[tail].nextActive = nodeID(i)
			}
			tail = nodeID(i)
		}
	}
}

// Solve runs the successive-shortest-paths driver loop to completion
// and returns the total cost of the minimum-cost flow found. It calls
// Init first, then repeatedly pops a node with positive excess off the
// active list and runs a Dijkstra scan from it until no active node
// remains. Solve panics if TestCosts or TestOptimality fail afterward,
// which would indicate a bug in the solver rather than an infeasible
// instance — an infeasible or unbounded instance (net excess != 0, or
// a node left with positive excess and no reachable negative-excess
// node) is a precondition violation the caller is responsible for
// avoiding, mirroring the reference implementation's use of assert
// for both checks.
func (inst *Instance[T]) Solve() T {
	inst.Init()

	for inst.firstActive != noNode {
		i := inst.firstActive
		inst.firstActive = inst.nodes[i].nextActive
		inst.nodes[i].nextActive = noNode
		inst.active[i] = false

		if inst.nodes[i].excess > 0 {
			inst.dijkstra(i)
			if inst.nodes[i].excess > 0 && !inst.active[i] {
				inst.nodes[i].nextActive = inst.firstActive
				inst.firstActive = i
				inst.active[i] = true
			}
		}
	}

	if !inst.TestCosts() {
		panic("ssp: TestCosts failed after Solve: arc residual/capacity invariant or running cost diverged")
	}
	if !inst.TestOptimality() {
		panic("ssp: TestOptimality failed after Solve: a residual arc violates the reduced-cost invariant")
	}

	return inst.totalCost
}

// Objective recomputes the total cost directly from each arc's flow
// and cost, independent of the incrementally maintained running total
// TestCosts checks it against. Grounded on objective().
func (inst *Instance[T]) Objective() T {
	var c T
	for a := 0; a < inst.NumArcs(); a++ {
		flow := inst.capacity[a] - inst.arcs[a].residual
		c += flow * inst.arcs[a].cost
	}
	return c / 2
}

// TestOptimality reports whether every node has zero excess and every
// residual arc satisfies the reduced-cost invariant: saturated arcs may
// carry any reduced cost, but every arc with positive residual capacity
// must have reduced cost >= -epsilon (epsilon is derived from
// Options.epsilon by optimalitySlack, for every Number instantiation).
// Grounded on TestOptimality.
func (inst *Instance[T]) TestOptimality() bool {
	slack := inst.optimalitySlack()
	for i := range inst.nodes {
		n := &inst.nodes[i]
		if n.excess != 0 {
			return false
		}
		for a := n.firstSaturated; a != noArc; a = inst.arcs[a].next {
			if inst.arcs[a].residual != 0 {
				return false
			}
		}
		for a := n.firstNonsaturated; a != noArc; a = inst.arcs[a].next {
			if inst.arcs[a].residual <= 0 {
				return false
			}
			if float64(inst.reducedCost(a)) < slack {
				return false
			}
		}
	}
	return true
}

// optimalitySlack is the -1e-5 tolerance from spec.md §9, scaled by
// Options.epsilon relative to the package default so WithEpsilon can
// tighten or loosen it; for integer Number instantiations the default
// slack admits no negative reduced cost, while an epsilon of 1e-3 or
// more lets negative integer reduced costs pass.
func (inst *Instance[T]) optimalitySlack() float64 {
	return -1e-5 * (inst.opts.epsilon / 1e-8)
}

// TestCosts reports whether the capacity/residual bookkeeping is
// internally consistent (r_cap(a)+r_cap(sister(a)) == original span for
// every arc) and whether the incrementally maintained running cost
// matches a direct recomputation via Objective, within a tolerance of
// 1e-8*|E| scaled the same way as TestOptimality's slack. Grounded on
// TestCosts.
func (inst *Instance[T]) TestCosts() bool {
	for a := 0; a < inst.NumArcs(); a++ {
		sister := inst.arcs[a].sister
		if inst.arcs[a].residual+inst.arcs[sister].residual != inst.capacity[a]+inst.capacity[sister] {
			return false
		}
	}

	if inst.numEdges == 0 {
		return true
	}
	tol := (inst.opts.epsilon / 1e-8) * 1e-8 * float64(inst.numEdges)
	diff := xmath.AbsDiff(float64(inst.Objective()), float64(inst.totalCost))
	return diff <= tol
}
