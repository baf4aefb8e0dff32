// Package ssp implements minimum-cost flow via the Successive Shortest
// Paths (SSP) algorithm with reduced-cost Dijkstra.
//
// An Instance owns three flat allocations: a node array, an arc array of
// size 2*maxEdges (forward arc at index 2e, its reverse at 2e+1), and a
// capacity shadow array recording each arc's original upper/lower bound.
// Arcs belonging to the same tail node form one of two intrusive
// doubly-linked lists, split by saturation state (residual capacity == 0
// or > 0); moving an arc between the two lists is O(1) and happens only
// when its residual capacity crosses zero.
//
// Errors:
//
//	ErrEdgeCapacityExceeded — add_edge called after maxEdges arcs added.
//	ErrInvalidBounds        — upper < 0, lower > 0, or lower >= upper.
//	ErrSelfLoop             — add_edge called with i == j.
//	ErrNodeOutOfRange       — a node id outside [0, numNodes) was used.
//	ErrEdgeOutOfRange       — an edge/arc id outside its valid range was used.
//	ErrNotOrdered           — FirstOutgoingArc/NoOutgoingArcs called before Order.
package ssp

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the numeric domain mcfssp operates over: any signed integer
// or floating-point type. Flow and Cost share a single type parameter
// because Go, unlike the C++ template this package is ported from, does
// not permit arithmetic between two independently-constrained generic
// types without an explicit conversion at every operation; unifying the
// two keeps PushFlow's "delta * cost" and similar expressions valid
// generic code. See DESIGN.md for the full rationale.
type Number interface {
	constraints.Signed | constraints.Float
}

// Sentinel errors for precondition violations. Per the error-handling
// model in SPEC_FULL.md §7, these are programming errors: callers are
// expected to check indices and bounds themselves, and the exported
// methods that can fail this way return an error rather than panicking
// so library integrators can decide how fatal they consider it. The
// exception is construction-time functional options (see Option),
// which panic immediately like lvlath's WithMaxDistance does.
var (
	// ErrEdgeCapacityExceeded is returned by AddEdge once maxEdges arcs
	// have already been added to the Instance.
	ErrEdgeCapacityExceeded = errors.New("ssp: edge capacity exceeded")

	// ErrInvalidBounds is returned by AddEdge when upper < 0, lower > 0,
	// or lower >= upper.
	ErrInvalidBounds = errors.New("ssp: invalid arc bounds")

	// ErrSelfLoop is returned by AddEdge when the tail and head coincide.
	ErrSelfLoop = errors.New("ssp: self-loops are not supported")

	// ErrNodeOutOfRange is returned when a node id falls outside [0, N).
	ErrNodeOutOfRange = errors.New("ssp: node id out of range")

	// ErrEdgeOutOfRange is returned when an edge or arc id is invalid.
	ErrEdgeOutOfRange = errors.New("ssp: edge id out of range")

	// ErrNotOrdered is returned by FirstOutgoingArc/NoOutgoingArcs when
	// Order has never been called; their results are meaningless until
	// the arc array has been compacted by tail.
	ErrNotOrdered = errors.New("ssp: instance has not been ordered")
)

// nodeID indexes into Instance.nodes. noNode marks "no node" (the
// sentinel previously-pointer value in the C++ reference's firstActive
// chain, and the terminator of the Dijkstra parent chain).
type nodeID int

const noNode nodeID = -1

// arcID indexes into Instance.arcs. noArc marks "no arc" (an absent
// list neighbor, an absent parent pointer, or an absent sister — which
// never actually occurs since arcs are always allocated in pairs).
type arcID int

const noArc arcID = -1

// Logger is the minimal structured-logging seam mcfssp relies on for
// verbose tracing. *log.Logger satisfies it directly; so does any
// adapter around a richer logging library. Grounded on
// flow.FlowOptions.Verbose in the teacher corpus, generalized from a
// bare fmt.Printf call to an injectable interface so callers are not
// forced to accept output on stdout.
type Logger interface {
	Printf(format string, args ...interface{})
}

// discardLogger implements Logger by discarding everything; it is the
// zero-cost default when WithLogger/WithVerbose are not supplied.
type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// Options configures an Instance at construction time. Use the With*
// functions below rather than constructing Options directly — grounded
// on dijkstra.Options / flow.FlowOptions's functional-option pattern.
type Options struct {
	verbose bool
	logger  Logger
	epsilon float64
}

// Option is a functional option for New, applied left-to-right.
type Option func(*Options)

// WithVerbose enables tracing of every flow push made through pushFlow
// (AddEdge/Init/UpdateCost pre-saturation and PushFlow) via the
// configured Logger (log.Default() if WithLogger was not also
// supplied). Augmentations inside Solve's Dijkstra scans and
// saturation-list moves are not traced.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

// WithLogger installs a custom Logger for verbose tracing. Passing nil
// panics immediately, matching the teacher's convention of panicking in
// Option constructors on unusable arguments.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("ssp: WithLogger requires a non-nil Logger")
	}
	return func(o *Options) { o.logger = l }
}

// WithEpsilon overrides the tolerance TestOptimality and TestCosts use.
// The scaled tolerances apply to integer instantiations too: with the
// default they admit no integer error, but a larger epsilon loosens
// integer comparisons as well. Must be positive; zero or negative
// values panic.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("ssp: WithEpsilon requires a positive tolerance")
	}
	return func(o *Options) { o.epsilon = eps }
}

// defaultOptions mirrors dijkstra.DefaultOptions: sensible production
// defaults, overridden left-to-right by caller-supplied Option values.
func defaultOptions() Options {
	return Options{
		verbose: false,
		logger:  nil, // chosen by normalize from verbose
		epsilon: 1e-8,
	}
}

func (o *Options) normalize() {
	if o.logger == nil {
		if o.verbose {
			o.logger = defaultVerboseLogger()
		} else {
			o.logger = discardLogger{}
		}
	}
}

// tracef logs through the configured Logger when verbose tracing is on.
func (inst *Instance[T]) tracef(format string, args ...interface{}) {
	if inst.opts.verbose {
		inst.opts.logger.Printf(format, args...)
	}
}

// EdgeError reports an AddEdge precondition violation with the offending
// arguments attached, grounded on flow.EdgeError's shape in the teacher.
type EdgeError struct {
	Tail, Head   int
	Lower, Upper interface{}
	Err          error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("ssp: add_edge(%d, %d, lower=%v, upper=%v): %v", e.Tail, e.Head, e.Lower, e.Upper, e.Err)
}

func (e *EdgeError) Unwrap() error { return e.Err }
