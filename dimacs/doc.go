// Package dimacs reads and writes the DIMACS minimum-cost flow text
// format against an *ssp.Instance.
//
// A min-cost-flow DIMACS file is a sequence of lines of these forms:
//
//	c <comment text>                     ignored
//	p min <numNodes> <numArcs>           problem line, exactly one, first
//	n <node-id (1-based)> <excess>       node supply (positive) or demand (negative)
//	a <tail> <head> <lower> <upper> <cost>   arc, 1-based node ids
//
// Read streams such a file (or any io.Reader producing the same text)
// and drives ssp.New, Instance.AddNodeExcess, and Instance.AddEdge in
// that order, exactly as spec.md §6 describes for an external DIMACS
// parser. Write renders a solved Instance's non-zero flows back out in
// the same convention clbanning-pseudo's Session.flowPhaseOne dump
// uses, as 'f' lines. Read does not accept 'f' lines, so a flow dump
// cannot itself be read back; a second solve re-reads the problem text.
package dimacs

import "errors"

// ErrMultipleProblemLines is returned when a file contains more than
// one 'p' line.
var ErrMultipleProblemLines = errors.New("dimacs: more than one 'p' line")

// ErrNoProblemLine is returned when a file never supplied a 'p' line.
var ErrNoProblemLine = errors.New("dimacs: no 'p' line found")

// ErrUnknownLineType is returned for a line whose first field is not
// one of 'c', 'p', 'n', 'a'.
var ErrUnknownLineType = errors.New("dimacs: unknown line type")
