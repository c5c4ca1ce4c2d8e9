package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxPrealloc bounds the Edges capacity reserved from the declared arc count,
// so a hostile header cannot force a huge allocation up front.
const maxPrealloc = 1 << 20

// Read parses a max-flow instance.
//
// Blank lines and "c" comment lines are skipped. Exactly one "p max" line is
// accepted and it must precede every "n" and "a" line. Node ids on "n" and
// "a" lines must lie in [1, nodes]. Capacities are parsed as-is; range rules
// belong to Check.
//
// Errors are *ParseError values unwrapping to ErrSyntax, ErrNoProblemLine or
// ErrNodeOutOfRange, or the reader's own error.
func Read(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		p      *Problem
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == lineComment {
			continue
		}
		fields := strings.Fields(line)
		if len(fields[0]) != 1 {
			return nil, syntaxErr(lineNo, "unknown line designator %q", fields[0])
		}

		switch fields[0][0] {
		case lineProblem:
			if p != nil {
				return nil, syntaxErr(lineNo, "duplicate problem line")
			}
			parsed, err := parseProblem(lineNo, fields)
			if err != nil {
				return nil, err
			}
			p = parsed

		case lineNode:
			if p == nil {
				return nil, &ParseError{Line: lineNo, Msg: "node line before problem line", Err: ErrNoProblemLine}
			}
			if err := parseNode(lineNo, fields, p); err != nil {
				return nil, err
			}

		case lineArc:
			if p == nil {
				return nil, &ParseError{Line: lineNo, Msg: "arc line before problem line", Err: ErrNoProblemLine}
			}
			a, err := parseArc(lineNo, fields, p.Nodes)
			if err != nil {
				return nil, err
			}
			p.Edges = append(p.Edges, a)

		default:
			return nil, syntaxErr(lineNo, "unknown line designator %q", fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}
	if p == nil {
		return nil, &ParseError{Line: lineNo, Msg: "no problem line", Err: ErrNoProblemLine}
	}

	return p, nil
}

func parseProblem(lineNo int, fields []string) (*Problem, error) {
	if len(fields) != 4 {
		return nil, syntaxErr(lineNo, "problem line wants 4 fields, got %d", len(fields))
	}
	if fields[1] != problemMax {
		return nil, syntaxErr(lineNo, "problem type %q, want %q", fields[1], problemMax)
	}
	nodes, err := strconv.Atoi(fields[2])
	if err != nil || nodes < 1 {
		return nil, syntaxErr(lineNo, "bad node count %q", fields[2])
	}
	arcs, err := strconv.Atoi(fields[3])
	if err != nil || arcs < 0 {
		return nil, syntaxErr(lineNo, "bad arc count %q", fields[3])
	}

	return &Problem{
		Nodes: nodes,
		Arcs:  arcs,
		Edges: make([]Arc, 0, min(arcs, maxPrealloc)),
	}, nil
}

func parseNode(lineNo int, fields []string, p *Problem) error {
	if len(fields) != 3 || len(fields[2]) != 1 {
		return syntaxErr(lineNo, "malformed node line")
	}
	id, err := parseID(lineNo, fields[1], p.Nodes)
	if err != nil {
		return err
	}
	switch fields[2][0] {
	case RoleSource:
		p.Source = id
	case RoleSink:
		p.Sink = id
	default:
		return syntaxErr(lineNo, "unknown node role %q", fields[2])
	}

	return nil
}

func parseArc(lineNo int, fields []string, nodes int) (Arc, error) {
	if len(fields) != 4 {
		return Arc{}, syntaxErr(lineNo, "arc line wants 4 fields, got %d", len(fields))
	}
	u, err := parseID(lineNo, fields[1], nodes)
	if err != nil {
		return Arc{}, err
	}
	v, err := parseID(lineNo, fields[2], nodes)
	if err != nil {
		return Arc{}, err
	}
	c, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return Arc{}, syntaxErr(lineNo, "bad capacity %q", fields[3])
	}

	return Arc{From: u, To: v, Capacity: c}, nil
}

func parseID(lineNo int, s string, nodes int) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, syntaxErr(lineNo, "bad node id %q", s)
	}
	if id < 1 || id > nodes {
		return 0, &ParseError{
			Line: lineNo,
			Msg:  fmt.Sprintf("node %d not in [1,%d]", id, nodes),
			Err:  ErrNodeOutOfRange,
		}
	}

	return id, nil
}

func syntaxErr(lineNo int, format string, args ...interface{}) error {
	return &ParseError{Line: lineNo, Msg: fmt.Sprintf(format, args...), Err: ErrSyntax}
}
