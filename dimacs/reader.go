package dimacs

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mcfssp/ssp"
)

// Read streams a DIMACS minimum-cost flow file from r and builds the
// ssp.Instance it describes. Malformed lines return an error naming
// the 1-based line number, grounded on clbanning-pseudo's readDimacsFile
// per-line error style ("p entry doesn't have 3 values, has: %d").
func Read[T ssp.Number](r io.Reader) (*ssp.Instance[T], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var inst *ssp.Instance[T]
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		fields := strings.Fields(string(line))
		switch fields[0] {
		case "c":
			continue

		case "p":
			if inst != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMultipleProblemLines)
			}
			if len(fields) != 4 {
				return nil, fmt.Errorf("dimacs: line %d: 'p' line needs 4 fields, has %d", lineNo, len(fields))
			}
			if fields[1] != "min" {
				return nil, fmt.Errorf("dimacs: line %d: 'p' line must read 'p min <n> <m>'", lineNo)
			}
			numNodes, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad node count: %w", lineNo, err)
			}
			numArcs, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad arc count: %w", lineNo, err)
			}
			inst = ssp.New[T](numNodes, numArcs)

		case "n":
			if inst == nil {
				return nil, fmt.Errorf("dimacs: line %d: %w: 'n' line before 'p' line", lineNo, ErrNoProblemLine)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("dimacs: line %d: 'n' line needs 3 fields, has %d", lineNo, len(fields))
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad node id: %w", lineNo, err)
			}
			excess, err := parseNumber[T](fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad excess: %w", lineNo, err)
			}
			if err := inst.AddNodeExcess(id-1, excess); err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}

		case "a":
			if inst == nil {
				return nil, fmt.Errorf("dimacs: line %d: %w: 'a' line before 'p' line", lineNo, ErrNoProblemLine)
			}
			if len(fields) != 6 {
				return nil, fmt.Errorf("dimacs: line %d: 'a' line needs 6 fields, has %d", lineNo, len(fields))
			}
			tail, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad tail: %w", lineNo, err)
			}
			head, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad head: %w", lineNo, err)
			}
			lower, err := parseNumber[T](fields[3])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad lower bound: %w", lineNo, err)
			}
			upper, err := parseNumber[T](fields[4])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad upper bound: %w", lineNo, err)
			}
			cost, err := parseNumber[T](fields[5])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad cost: %w", lineNo, err)
			}
			if _, err := inst.AddEdge(tail-1, head-1, lower, upper, cost); err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}

		default:
			return nil, fmt.Errorf("dimacs: line %d: %w: %q", lineNo, ErrUnknownLineType, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	if inst == nil {
		return nil, ErrNoProblemLine
	}

	return inst, nil
}

func parseNumber[T ssp.Number](s string) (T, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}
