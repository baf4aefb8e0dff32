package ssp

// PushFlow sends delta units of flow along edge e's forward arc (a
// negative delta sends -delta units along its reverse), maintaining
// every saturation-list and active-list invariant. It is exported so
// callers can seed or patch a flow by hand between Solve calls, per
// spec.md §4.9's incremental-update primitives.
func (inst *Instance[T]) PushFlow(e int, delta T) error {
	if err := inst.checkEdgeID(e); err != nil {
		return err
	}
	inst.pushFlow(arcID(2*e), delta)
	return nil
}

// SetResidualCapacity sets edge e's forward residual capacity outright.
// newCap must be non-negative.
func (inst *Instance[T]) SetResidualCapacity(e int, newCap T) error {
	if err := inst.checkEdgeID(e); err != nil {
		return err
	}
	if newCap < 0 {
		return ErrInvalidBounds
	}
	inst.setResidual(arcID(2*e), newCap)
	return nil
}

// SetReverseResidualCapacity sets edge e's reverse residual capacity
// outright. newCap must be non-negative.
func (inst *Instance[T]) SetReverseResidualCapacity(e int, newCap T) error {
	if err := inst.checkEdgeID(e); err != nil {
		return err
	}
	if newCap < 0 {
		return ErrInvalidBounds
	}
	inst.setResidual(arcID(2*e+1), newCap)
	return nil
}

// UpdateCost adds delta to arc a's per-unit cost (and subtracts it from
// the sister arc's cost, keeping cost(a) == -cost(sister(a))), adjusts
// the running objective for flow already committed on a, and
// re-saturates or re-pushes flow across a if the new cost makes its
// reduced cost negative. Grounded on update_cost.
func (inst *Instance[T]) UpdateCost(a int, delta T) error {
	if err := inst.checkArc(a); err != nil {
		return err
	}
	id := arcID(a)
	arcRef := &inst.arcs[id]

	flow := inst.capacity[id] - arcRef.residual
	inst.totalCost += delta * flow
	arcRef.cost += delta
	inst.arcs[arcRef.sister].cost = -arcRef.cost

	candidate := id
	if inst.reducedCost(candidate) > 0 {
		candidate = arcRef.sister
	}
	if inst.arcs[candidate].residual > 0 && inst.reducedCost(candidate) < 0 {
		inst.pushFlow(candidate, inst.arcs[candidate].residual)
	}

	return nil
}

// ResetCosts zeroes every arc's cost and the running objective, driving
// each arc's cost to zero through UpdateCost so any flow the zeroing
// pushes around is accounted for correctly. Grounded on reset_costs.
func (inst *Instance[T]) ResetCosts() {
	for a := 0; a < inst.NumArcs(); a++ {
		_ = inst.UpdateCost(a, -inst.arcs[a].cost)
	}
	inst.totalCost = 0
}
