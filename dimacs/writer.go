package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/mcfssp/ssp"
)

// Write renders a solved instance's non-zero-flow edges as DIMACS
// flow lines ("f <tail> <head> <flow>"), 1-based node ids, grounded on
// clbanning-pseudo's own flow dump convention. It does not re-emit the
// original problem ('p'/'n'/'a') lines; its output records a solution
// alongside the problem file that produced it. Read rejects 'f' lines,
// so the output is not readable by Read, alone or appended to the
// problem file.
func Write[T ssp.Number](w io.Writer, inst *ssp.Instance[T]) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "c flow dump, %d nodes, %d edges\n", inst.NumNodes(), inst.NumEdges()); err != nil {
		return err
	}

	for e := 0; e < inst.NumEdges(); e++ {
		flow, err := inst.Flow(e)
		if err != nil {
			return err
		}
		if flow == 0 {
			continue
		}
		tail, err := inst.Tail(2 * e)
		if err != nil {
			return err
		}
		head, err := inst.Head(2 * e)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "f %d %d %v\n", tail+1, head+1, flow); err != nil {
			return err
		}
	}

	return bw.Flush()
}
