package ssp

// Clone returns a deep copy of inst: an independent Instance with its
// own node/arc/capacity arrays, safe to Solve on a different goroutine
// while the original is mutated concurrently. Grounded on the copy
// constructor in original_source/mcf_ssp.hxx, which translates raw
// pointers by their delta from the source arrays' base address; Go
// indices need no translation since they are already
// allocation-independent, so this reduces to three slice copies plus
// the scalar fields.
func (inst *Instance[T]) Clone() *Instance[T] {
	out := &Instance[T]{
		nodes:       make([]node[T], len(inst.nodes)),
		arcs:        make([]arc[T], len(inst.arcs)),
		capacity:    make([]T, len(inst.capacity)),
		active:      make([]bool, len(inst.active)),
		numEdges:    inst.numEdges,
		firstActive: inst.firstActive,
		counter:     inst.counter,
		totalCost:   inst.totalCost,
		ordered:     inst.ordered,
		opts:        inst.opts,
	}
	copy(out.nodes, inst.nodes)
	copy(out.arcs, inst.arcs)
	copy(out.capacity, inst.capacity)
	copy(out.active, inst.active)
	if inst.outgoingStart != nil {
		out.outgoingStart = make([]int, len(inst.outgoingStart))
		copy(out.outgoingStart, inst.outgoingStart)
	}
	out.queue.reset()

	return out
}

// Swap exchanges inst's entire state with other's in place, the
// move-assignment analogue of spec.md §5's copy/move semantics.
// Grounded on the reference's free-function swap(); Go slices and
// scalars already carry cheap, correct swap semantics so no field-by-
// field pointer-delta rewrite is needed.
func (inst *Instance[T]) Swap(other *Instance[T]) {
	inst.nodes, other.nodes = other.nodes, inst.nodes
	inst.arcs, other.arcs = other.arcs, inst.arcs
	inst.capacity, other.capacity = other.capacity, inst.capacity
	inst.active, other.active = other.active, inst.active
	inst.numEdges, other.numEdges = other.numEdges, inst.numEdges
	inst.firstActive, other.firstActive = other.firstActive, inst.firstActive
	inst.counter, other.counter = other.counter, inst.counter
	inst.totalCost, other.totalCost = other.totalCost, inst.totalCost
	inst.ordered, other.ordered = other.ordered, inst.ordered
	inst.outgoingStart, other.outgoingStart = other.outgoingStart, inst.outgoingStart
	inst.opts, other.opts = other.opts, inst.opts
	inst.queue, other.queue = other.queue, inst.queue
}
