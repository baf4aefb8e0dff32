package ssp

import "sort"

func (inst *Instance[T]) tailOf(a arcID) int {
	return int(inst.arcs[inst.arcs[a].sister].head)
}

// exchange swaps arcs a and b in place: their payload (head, residual
// capacity, cost, original capacity), their sisters' backpointers, the
// surrounding saturation-list links, and their tails' list-head
// pointers if either tail currently points at a or b. Grounded on
// exchange(), adapted from raw pointer juggling to arcID indices; the
// three adjacency cases (a immediately before b, b immediately before
// a, and non-adjacent) are preserved because a naive swap of next/prev
// alone corrupts the list when the two arcs are neighbors.
func (inst *Instance[T]) exchange(a, b arcID) {
	if a == b {
		return
	}
	arcs := inst.arcs

	sa, sb := arcs[a].sister, arcs[b].sister
	aTail, bTail := nodeID(inst.tailOf(a)), nodeID(inst.tailOf(b))
	na, nb := arcs[a].next, arcs[b].next
	pa, pb := arcs[a].prev, arcs[b].prev

	arcs[a].head, arcs[b].head = arcs[b].head, arcs[a].head
	arcs[a].residual, arcs[b].residual = arcs[b].residual, arcs[a].residual
	arcs[a].cost, arcs[b].cost = arcs[b].cost, arcs[a].cost
	inst.capacity[a], inst.capacity[b] = inst.capacity[b], inst.capacity[a]

	if a != sb {
		arcs[a].sister, arcs[b].sister = arcs[b].sister, arcs[a].sister
		arcs[sa].sister = b
		arcs[sb].sister = a
	}

	switch {
	case na == b:
		bNext, aPrev := nb, pa
		arcs[b].next = a
		arcs[a].prev = b
		arcs[a].next = bNext
		arcs[b].prev = aPrev
		if bNext != noArc {
			arcs[bNext].prev = a
		}
		if aPrev != noArc {
			arcs[aPrev].next = b
		}
	case nb == a:
		aNext, bPrev := na, pb
		arcs[b].prev = a
		arcs[a].next = b
		arcs[a].prev = bPrev
		arcs[b].next = aNext
		if aNext != noArc {
			arcs[aNext].prev = b
		}
		if bPrev != noArc {
			arcs[bPrev].next = a
		}
	default:
		arcs[a].next, arcs[b].next = arcs[b].next, arcs[a].next
		arcs[a].prev, arcs[b].prev = arcs[b].prev, arcs[a].prev
		if na != noArc {
			arcs[na].prev = b
		}
		if nb != noArc {
			arcs[nb].prev = a
		}
		if pa != noArc {
			arcs[pa].next = b
		}
		if pb != noArc {
			arcs[pb].next = a
		}
	}

	if aTail != bTail {
		ta, tb := &inst.nodes[aTail], &inst.nodes[bTail]
		if ta.firstSaturated == a {
			ta.firstSaturated = b
		}
		if ta.firstNonsaturated == a {
			ta.firstNonsaturated = b
		}
		if tb.firstSaturated == b {
			tb.firstSaturated = a
		}
		if tb.firstNonsaturated == b {
			tb.firstNonsaturated = a
		}
	} else {
		t := &inst.nodes[aTail]
		if t.firstSaturated == a {
			t.firstSaturated = b
		} else if t.firstSaturated == b {
			t.firstSaturated = a
		}
		if t.firstNonsaturated == a {
			t.firstNonsaturated = b
		} else if t.firstNonsaturated == b {
			t.firstNonsaturated = a
		}
	}
}

// orderInterNodes groups the arc array by tail node via a counting-sort
// style prefix-sum permutation, realized in place with exchange so no
// auxiliary arc array is allocated. Grounded on order_inter_nodes.
func (inst *Instance[T]) orderInterNodes() {
	n := len(inst.nodes)
	m := inst.NumArcs()

	arcFirst := make([]int, n+1)
	outgoingArcIndex := make([]int, n)
	for e := 0; e < m; e++ {
		t := inst.tailOf(arcID(e))
		arcFirst[t+1]++
		outgoingArcIndex[t]++
	}
	for i := 1; i <= n; i++ {
		arcFirst[i] += arcFirst[i-1]
	}
	for i := 1; i < n; i++ {
		outgoingArcIndex[i] += outgoingArcIndex[i-1]
	}

	for i := 0; i < n-1; i++ {
		last := outgoingArcIndex[i]
		for arcNum := arcFirst[i]; arcNum < last; arcNum++ {
			tailNode := inst.tailOf(arcID(arcNum))
			for tailNode != i {
				arcNewNum := arcFirst[tailNode]
				inst.exchange(arcID(arcNum), arcID(arcNewNum))
				arcFirst[tailNode]++
				tailNode = inst.tailOf(arcID(arcNum))
			}
		}
	}
}

// orderIntraNodes sorts each node's now-contiguous outgoing-arc run by
// head node id, realizing the sort permutation in place by following
// its cycles with exchange. Must run after orderInterNodes. Grounded on
// order_intra_nodes.
func (inst *Instance[T]) orderIntraNodes() {
	n := len(inst.nodes)
	m := inst.NumArcs()

	outgoingArcBegin := make([]int, n+1)
	for e := 0; e < m; e++ {
		outgoingArcBegin[inst.tailOf(arcID(e))+1]++
	}
	for i := 1; i <= n; i++ {
		outgoingArcBegin[i] += outgoingArcBegin[i-1]
	}

	perm := make([]int, m)
	for i := 0; i < n; i++ {
		base := outgoingArcBegin[i]
		count := outgoingArcBegin[i+1] - base
		group := perm[:count]
		for k := range group {
			group[k] = k
		}
		sort.Slice(group, func(x, y int) bool {
			return inst.arcs[arcID(base+group[x])].head < inst.arcs[arcID(base+group[y])].head
		})

		for c := 0; c < count; c++ {
			nextIdx := group[c]
			if nextIdx == c || nextIdx < 0 {
				continue
			}
			curIdx := c
			for group[nextIdx] >= 0 {
				inst.exchange(arcID(base+curIdx), arcID(base+nextIdx))
				group[curIdx] -= count
				curIdx = nextIdx
				nextIdx = group[nextIdx]
			}
		}
	}

	inst.outgoingStart = outgoingArcBegin
}

// Order compacts the arc array so that all arcs sharing a tail node are
// contiguous and sorted by head node id, enabling O(1) FirstOutgoingArc
// and NoOutgoingArcs lookups. Safe to call more than once: a second
// call with no intervening AddEdge performs zero exchanges, since the
// array is already in the target order. Grounded on spec.md §4.8's
// two-pass design (order_inter_nodes then order_intra_nodes).
func (inst *Instance[T]) Order() {
	inst.orderInterNodes()
	inst.orderIntraNodes()
	inst.ordered = true
}
