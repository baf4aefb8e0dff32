package ssp

// AddEdge appends an arc i->j with residual bounds [lower, upper] and
// per-unit cost. It returns the edge id (stable until the next Order
// call) that indexes Flow, ResidualCapacity(2*e) and (2*e+1), Cost, and
// ReducedCost. lower must be <= 0 and upper >= 0 so the reverse arc's
// residual capacity (-lower) and the forward arc's (upper) are both
// non-negative; lower must also be strictly less than upper.
//
// Grounded on original_source/mcf_ssp.hxx's add_edge: the forward arc
// is threaded onto node i's non-saturated list if upper > 0 (saturated
// otherwise), the reverse arc onto node j's non-saturated list if
// lower < 0 (saturated otherwise), and either direction is immediately
// pushed to saturation if it already has negative reduced cost, exactly
// as the reference does before returning the new edge id.
func (inst *Instance[T]) AddEdge(i, j int, lower, upper, cost T) (int, error) {
	if err := inst.checkNode(i); err != nil {
		return 0, &EdgeError{Tail: i, Head: j, Lower: lower, Upper: upper, Err: err}
	}
	if err := inst.checkNode(j); err != nil {
		return 0, &EdgeError{Tail: i, Head: j, Lower: lower, Upper: upper, Err: err}
	}
	if i == j {
		return 0, &EdgeError{Tail: i, Head: j, Lower: lower, Upper: upper, Err: ErrSelfLoop}
	}
	if inst.numEdges >= len(inst.arcs)/2 {
		return 0, &EdgeError{Tail: i, Head: j, Lower: lower, Upper: upper, Err: ErrEdgeCapacityExceeded}
	}
	if upper < 0 || lower > 0 || lower >= upper {
		return 0, &EdgeError{Tail: i, Head: j, Lower: lower, Upper: upper, Err: ErrInvalidBounds}
	}

	e := inst.numEdges
	inst.numEdges++
	inst.ordered = false

	fwd := arcID(2 * e)
	rev := arcID(2*e + 1)

	inst.capacity[fwd] = upper
	inst.capacity[rev] = -lower

	ti, tj := nodeID(i), nodeID(j)

	a, ar := &inst.arcs[fwd], &inst.arcs[rev]
	a.sister = rev
	ar.sister = fwd

	if upper > 0 {
		inst.linkNonsaturated(ti, fwd)
	} else {
		inst.linkSaturated(ti, fwd)
	}
	if lower < 0 {
		inst.linkNonsaturated(tj, rev)
	} else {
		inst.linkSaturated(tj, rev)
	}

	a.head = tj
	ar.head = ti
	a.residual = upper
	ar.residual = -lower
	a.cost = cost
	ar.cost = -cost

	if a.residual > 0 && inst.reducedCost(fwd) < 0 {
		inst.pushFlow(fwd, a.residual)
	}
	if ar.residual > 0 && inst.reducedCost(rev) < 0 {
		inst.pushFlow(rev, ar.residual)
	}

	return e, nil
}

func (inst *Instance[T]) linkNonsaturated(tail nodeID, a arcID) {
	n := &inst.nodes[tail]
	arcRef := &inst.arcs[a]
	if n.firstNonsaturated != noArc {
		inst.arcs[n.firstNonsaturated].prev = a
	}
	arcRef.next = n.firstNonsaturated
	arcRef.prev = noArc
	n.firstNonsaturated = a
}

func (inst *Instance[T]) linkSaturated(tail nodeID, a arcID) {
	n := &inst.nodes[tail]
	arcRef := &inst.arcs[a]
	if n.firstSaturated != noArc {
		inst.arcs[n.firstSaturated].prev = a
	}
	arcRef.next = n.firstSaturated
	arcRef.prev = noArc
	n.firstSaturated = a
}

// unlink removes a from whichever list it currently lives in, without
// knowing (or caring) which one that is; the caller relinks it.
func (inst *Instance[T]) unlink(a arcID) {
	arcRef := &inst.arcs[a]
	tail := inst.arcs[arcRef.sister].head
	n := &inst.nodes[tail]
	if arcRef.next != noArc {
		inst.arcs[arcRef.next].prev = arcRef.prev
	}
	if arcRef.prev != noArc {
		inst.arcs[arcRef.prev].next = arcRef.next
	} else if n.firstNonsaturated == a {
		n.firstNonsaturated = arcRef.next
	} else if n.firstSaturated == a {
		n.firstSaturated = arcRef.next
	}
}

// decreaseResidual subtracts delta from a's residual capacity, moving a
// to its tail's saturated list if the residual capacity has just
// reached zero. Grounded on DecreaseRCap.
func (inst *Instance[T]) decreaseResidual(a arcID, delta T) {
	arcRef := &inst.arcs[a]
	arcRef.residual -= delta
	if arcRef.residual == 0 {
		tail := inst.arcs[arcRef.sister].head
		inst.unlink(a)
		inst.linkSaturated(tail, a)
	}
}

// increaseResidual adds delta to a's residual capacity, moving a to its
// tail's non-saturated list first if the residual capacity was zero.
// Grounded on IncreaseRCap.
func (inst *Instance[T]) increaseResidual(a arcID, delta T) {
	arcRef := &inst.arcs[a]
	if arcRef.residual == 0 {
		tail := inst.arcs[arcRef.sister].head
		inst.unlink(a)
		inst.linkNonsaturated(tail, a)
	}
	arcRef.residual += delta
}

// setResidual sets a's residual capacity outright, relinking at most
// twice (once to non-saturated to clear the zero-capacity invariant,
// once more to saturated if new_rcap is itself zero). Grounded on
// SetRCap.
func (inst *Instance[T]) setResidual(a arcID, newResidual T) {
	arcRef := &inst.arcs[a]
	tail := inst.arcs[arcRef.sister].head
	if arcRef.residual == 0 {
		inst.unlink(a)
		inst.linkNonsaturated(tail, a)
	}
	arcRef.residual = newResidual
	if arcRef.residual == 0 {
		inst.unlink(a)
		inst.linkSaturated(tail, a)
	}
}

// pushFlow sends delta units of flow along arc a (or, for negative
// delta, -delta units along its sister), updating both residual
// capacities, both endpoints' excess, the active list, and the running
// objective. Grounded on PushFlow.
func (inst *Instance[T]) pushFlow(a arcID, delta T) {
	if delta < 0 {
		a = inst.arcs[a].sister
		delta = -delta
	}
	inst.decreaseResidual(a, delta)
	inst.increaseResidual(inst.arcs[a].sister, delta)

	head := inst.arcs[a].head
	tail := inst.arcs[inst.arcs[a].sister].head
	inst.nodes[head].excess += delta
	inst.nodes[tail].excess -= delta
	inst.totalCost += delta * inst.arcs[a].cost

	inst.activate(head)

	inst.tracef("push %v units along arc %d->%d (cost %v)", delta, tail, head, inst.arcs[a].cost)
}
