package ssp

// flagTemp and flagPerm mark a node as temporarily or permanently
// labeled during a single Dijkstra scan. Grounded on
// original_source/mcf_ssp.hxx's FLAG0/FLAG1 counters: rather than
// resetting every node's flag to "unvisited" before each scan (O(N)
// per scan), the scan allocates two fresh monotone counter values and
// compares against those, so a node's flag from a previous scan can
// never alias the current one.
func (inst *Instance[T]) nextFlag() uint64 {
	inst.counter++
	return inst.counter
}

// dijkstra runs one reduced-cost Dijkstra scan from start, which must
// have positive excess, stopping as soon as it reaches any node with
// negative excess and augmenting along the shortest path found. It
// updates node potentials for every permanently labeled node so the
// reduced-cost invariant (cost(u,v)+π(v)-π(u) >= 0 on every residual
// arc) holds after the call returns.
func (inst *Instance[T]) dijkstra(start nodeID) {
	flagPerm := inst.nextFlag()
	flagTemp := inst.nextFlag()

	inst.nodes[start].parent = noArc
	inst.nodes[start].flag = flagTemp
	inst.queue.reset()
	inst.queue.push(inst.nodes, start, 0)

	permHead := noNode

	for !inst.queue.empty() {
		i, d := inst.queue.popMin(inst.nodes)

		if inst.nodes[i].excess < 0 {
			delta := inst.augment(start, i)
			inst.totalCost += delta * (d - inst.nodes[i].potential + inst.nodes[start].potential)
			for p := permHead; p != noNode; p = nodeID(inst.nodes[p].scratch) {
				inst.nodes[p].potential += d
			}
			return
		}

		inst.nodes[i].potential -= d
		inst.nodes[i].flag = flagPerm
		inst.nodes[i].scratch = int(permHead)
		permHead = i

		for a := inst.nodes[i].firstNonsaturated; a != noArc; a = inst.arcs[a].next {
			j := inst.arcs[a].head
			if inst.nodes[j].flag == flagPerm {
				continue
			}
			rc := inst.reducedCost(a)
			if inst.nodes[j].flag == flagTemp {
				if rc >= inst.queue.dist[inst.nodes[j].scratch] {
					continue
				}
				inst.queue.decreaseKey(inst.nodes, j, rc)
			} else {
				inst.queue.push(inst.nodes, j, rc)
				inst.nodes[j].flag = flagTemp
			}
			inst.nodes[j].parent = a
		}
	}
}

// augment pushes flow from start to end along the shortest-path tree
// recorded in each node's parent field, by the largest amount the path
// capacity and the two endpoints' excess allow, and returns that
// amount. Grounded on Augment.
func (inst *Instance[T]) augment(start, end nodeID) T {
	delta := inst.nodes[start].excess
	if -inst.nodes[end].excess < delta {
		delta = -inst.nodes[end].excess
	}

	for a := inst.nodes[end].parent; a != noArc; a = inst.nodes[inst.arcs[inst.arcs[a].sister].head].parent {
		if delta > inst.arcs[a].residual {
			delta = inst.arcs[a].residual
		}
	}

	inst.nodes[end].excess += delta
	for a := inst.nodes[end].parent; a != noArc; {
		next := inst.nodes[inst.arcs[inst.arcs[a].sister].head].parent
		inst.decreaseResidual(a, delta)
		inst.increaseResidual(inst.arcs[a].sister, delta)
		a = next
	}
	inst.nodes[start].excess -= delta

	return delta
}
