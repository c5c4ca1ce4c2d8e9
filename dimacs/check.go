package dimacs

import (
	"errors"
	"fmt"
)

// maxViolations caps how many individual violations Check reports per class.
const maxViolations = 8

// Check verifies that p looks like a generated fixture:
//
//   - the number of arcs equals the count declared on the "p" line;
//   - every id lies in [1, Nodes] and no arc is a self-loop;
//   - no ordered pair (u,v) repeats (reverse pairs are fine);
//   - every capacity lies in [1, maxCap];
//   - node 1 is the source and node Nodes is the sink.
//
// All violations are joined into one error; errors.Is works for each
// sentinel. A nil p is reported as ErrNoProblemLine.
func Check(p *Problem, maxCap int64) error {
	if p == nil {
		return ErrNoProblemLine
	}

	var (
		errs   []error
		counts = map[error]int{}
		seen   = make(map[[2]int]struct{}, len(p.Edges))
	)
	report := func(sentinel error, format string, args ...interface{}) {
		counts[sentinel]++
		if counts[sentinel] > maxViolations {
			return
		}
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel))
	}

	if len(p.Edges) != p.Arcs {
		report(ErrArcCount, "declared %d arcs, found %d", p.Arcs, len(p.Edges))
	}
	if p.Source != 1 || p.Sink != p.Nodes {
		report(ErrTerminals, "source=%d sink=%d, want 1 and %d", p.Source, p.Sink, p.Nodes)
	}

	for i, a := range p.Edges {
		if a.From < 1 || a.From > p.Nodes || a.To < 1 || a.To > p.Nodes {
			report(ErrNodeOutOfRange, "arc #%d %d→%d", i+1, a.From, a.To)
			continue
		}
		if a.From == a.To {
			report(ErrSelfLoop, "arc #%d on node %d", i+1, a.From)
			continue
		}
		key := [2]int{a.From, a.To}
		if _, dup := seen[key]; dup {
			report(ErrDuplicateArc, "arc #%d %d→%d", i+1, a.From, a.To)
		}
		seen[key] = struct{}{}
		if a.Capacity < 1 || a.Capacity > maxCap {
			report(ErrCapacityRange, "arc #%d capacity %d not in [1,%d]", i+1, a.Capacity, maxCap)
		}
	}

	return errors.Join(errs...)
}
