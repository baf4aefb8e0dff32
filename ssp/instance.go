package ssp

// node is a flat node record. firstNonsaturated/firstSaturated are the
// two intrusive outgoing-arc list heads (split by residual capacity);
// parent is the Dijkstra shortest-path-tree backpointer from the most
// recent scan; nextActive threads the singly-linked active list;
// flag/scratch are the two scan-scoped scratch fields described in
// SPEC_FULL.md / spec.md §3 — scratch holds either a heap index (while
// the node is resident in the priority queue) or a next-permanent
// backpointer (once the node has been permanently labeled), the two
// uses being lifetime-disjoint within a single Dijkstra scan.
type node[T Number] struct {
	excess    T
	potential T

	firstNonsaturated arcID
	firstSaturated    arcID

	parent     arcID
	nextActive nodeID

	flag    uint64
	scratch int
}

// arc is a flat arc record. Forward arc 2e and its reverse 2e+1 are
// always allocated together; sister points each at the other. prev/next
// link the arc into whichever of its tail's two saturation lists it
// currently belongs to.
type arc[T Number] struct {
	head   nodeID
	sister arcID
	prev   arcID
	next   arcID

	residual T
	cost     T
}

// Instance is a minimum-cost flow problem: N implicit nodes (0..N) and
// up to maxEdges undirected-pair arcs, solved in place by Solve. It
// takes no internal locks (see SPEC_FULL.md §5): callers that need to
// mutate the same Instance from multiple goroutines must synchronize
// externally, but independent Instances never contend with each other.
type Instance[T Number] struct {
	nodes []node[T]
	arcs  []arc[T]

	// capacity mirrors spec.md's capacity[2E] shadow array: capacity[2e]
	// holds the original upper bound, capacity[2e+1] the original lower
	// bound negated (-lower), so capacity[e] always equals
	// arcs[e].residual + flow(e) at quiescence.
	capacity []T

	numEdges int // arcs added so far; arcs has length 2*maxEdges

	firstActive nodeID // head of the active-node list; noNode if empty

	// active tracks active-list membership independent of nextActive's
	// link value, so a node that is the last element of the list (whose
	// nextActive is necessarily noNode) is not confused with a node that
	// was never inserted. The original C reference instead terminates
	// the list with a dedicated one-past-the-end sentinel node; Go's
	// slices have no natural "address past the last real element" to
	// reuse for that, so membership is tracked explicitly instead.
	active []bool

	counter   uint64 // monotone source of per-scan flag values
	totalCost T

	ordered bool // Order has been called since the last AddEdge

	// outgoingStart[i] is the index of the first arc with tail i once
	// the arc array has been compacted by Order; outgoingStart[numNodes]
	// is NumArcs(). Populated by Order, which groups and sorts arcs by
	// tail exactly as spec.md §4.8 describes.
	outgoingStart []int

	opts Options

	queue pqueue[T]
}

// New allocates an Instance for a problem with the given number of
// nodes and an upper bound on the number of edges that will be added
// via AddEdge. Nodes are implicit, indexed 0..numNodes; edges are
// appended with AddEdge and returned edge ids are stable until the next
// Order call.
func New[T Number](numNodes, maxEdges int, opts ...Option) *Instance[T] {
	if numNodes < 0 {
		panic("ssp: numNodes must be non-negative")
	}
	if maxEdges < 0 {
		panic("ssp: maxEdges must be non-negative")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()

	inst := &Instance[T]{
		nodes:       make([]node[T], numNodes),
		arcs:        make([]arc[T], 2*maxEdges),
		capacity:    make([]T, 2*maxEdges),
		active:      make([]bool, numNodes),
		firstActive: noNode,
		opts:        o,
	}
	for i := range inst.nodes {
		inst.nodes[i].firstNonsaturated = noArc
		inst.nodes[i].firstSaturated = noArc
		inst.nodes[i].parent = noArc
		inst.nodes[i].nextActive = noNode
	}
	inst.queue.reset()

	return inst
}

// NumNodes returns N, the number of implicit nodes.
func (inst *Instance[T]) NumNodes() int { return len(inst.nodes) }

// NumEdges returns the number of edges added so far via AddEdge.
func (inst *Instance[T]) NumEdges() int { return inst.numEdges }

// NumArcs returns 2*NumEdges, the number of forward+reverse arc records
// currently populated.
func (inst *Instance[T]) NumArcs() int { return 2 * inst.numEdges }

func (inst *Instance[T]) checkNode(i int) error {
	if i < 0 || i >= len(inst.nodes) {
		return ErrNodeOutOfRange
	}
	return nil
}

func (inst *Instance[T]) checkArc(e int) error {
	if e < 0 || e >= inst.NumArcs() {
		return ErrEdgeOutOfRange
	}
	return nil
}

// AddNodeExcess adds delta to node i's excess (positive = supply,
// negative = demand). If the node's excess becomes positive and it is
// not already on the active list, it is pushed onto the list's front.
func (inst *Instance[T]) AddNodeExcess(i int, delta T) error {
	if err := inst.checkNode(i); err != nil {
		return err
	}
	inst.nodes[nodeID(i)].excess += delta
	inst.activate(nodeID(i))

	return nil
}

// activate pushes i onto the front of the active list if it now has positive excess
// and is not already linked in.
func (inst *Instance[T]) activate(i nodeID) {
	n := &inst.nodes[i]
	if n.excess > 0 && !inst.active[i] {
		n.nextActive = inst.firstActive
		inst.firstActive = i
		inst.active[i] = true
	}
}

// Flow returns the amount of flow currently on forward arc e (e is an
// edge id as returned by AddEdge, i.e. arcs[2e]).
func (inst *Instance[T]) Flow(e int) (T, error) {
	if err := inst.checkEdgeID(e); err != nil {
		return 0, err
	}
	idx := 2 * e
	return inst.capacity[idx] - inst.arcs[idx].residual, nil
}

func (inst *Instance[T]) checkEdgeID(e int) error {
	if e < 0 || e >= inst.numEdges {
		return ErrEdgeOutOfRange
	}
	return nil
}

// ResidualCapacity returns the residual capacity of arc id a (a is a
// full arc index in [0, NumArcs()), i.e. 2e for the forward direction
// of edge e and 2e+1 for its reverse).
func (inst *Instance[T]) ResidualCapacity(a int) (T, error) {
	if err := inst.checkArc(a); err != nil {
		return 0, err
	}
	return inst.arcs[a].residual, nil
}

// Cost returns arc a's per-unit cost.
func (inst *Instance[T]) Cost(a int) (T, error) {
	if err := inst.checkArc(a); err != nil {
		return 0, err
	}
	return inst.arcs[a].cost, nil
}

// ReducedCost returns arc a's reduced cost: cost(a) + π(head(a)) − π(tail(a)).
func (inst *Instance[T]) ReducedCost(a int) (T, error) {
	if err := inst.checkArc(a); err != nil {
		return 0, err
	}
	return inst.reducedCost(arcID(a)), nil
}

func (inst *Instance[T]) reducedCost(a arcID) T {
	arcRef := &inst.arcs[a]
	tail := inst.arcs[arcRef.sister].head
	return arcRef.cost + inst.nodes[arcRef.head].potential - inst.nodes[tail].potential
}

// Potential returns node i's dual variable π.
func (inst *Instance[T]) Potential(i int) (T, error) {
	if err := inst.checkNode(i); err != nil {
		return 0, err
	}
	return inst.nodes[i].potential, nil
}

// Tail returns the tail node of arc a.
func (inst *Instance[T]) Tail(a int) (int, error) {
	if err := inst.checkArc(a); err != nil {
		return 0, err
	}
	return int(inst.arcs[inst.arcs[a].sister].head), nil
}

// Head returns the head node of arc a.
func (inst *Instance[T]) Head(a int) (int, error) {
	if err := inst.checkArc(a); err != nil {
		return 0, err
	}
	return int(inst.arcs[a].head), nil
}

// UpperBound returns edge e's original upper bound, as passed to AddEdge.
func (inst *Instance[T]) UpperBound(e int) (T, error) {
	if err := inst.checkEdgeID(e); err != nil {
		return 0, err
	}
	return inst.capacity[2*e], nil
}

// LowerBound returns edge e's original lower bound, as passed to AddEdge.
func (inst *Instance[T]) LowerBound(e int) (T, error) {
	if err := inst.checkEdgeID(e); err != nil {
		return 0, err
	}
	return -inst.capacity[2*e+1], nil
}

// FirstOutgoingArc returns the index of the first arc with tail i in
// the compacted arc array. Only meaningful after Order has run; returns
// ErrNotOrdered otherwise.
func (inst *Instance[T]) FirstOutgoingArc(i int) (int, error) {
	if err := inst.checkNode(i); err != nil {
		return 0, err
	}
	if !inst.ordered {
		return 0, ErrNotOrdered
	}
	return inst.outgoingStart[i], nil
}

// NoOutgoingArcs returns the number of arcs with tail i in the
// compacted arc array. Only meaningful after Order has run; returns
// ErrNotOrdered otherwise.
func (inst *Instance[T]) NoOutgoingArcs(i int) (int, error) {
	if err := inst.checkNode(i); err != nil {
		return 0, err
	}
	if !inst.ordered {
		return 0, ErrNotOrdered
	}
	return inst.outgoingStart[i+1] - inst.outgoingStart[i], nil
}
