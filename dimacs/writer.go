package dimacs

import (
	"bufio"
	"io"
	"strconv"
)

// Writer emits the max-flow text format line by line through a buffered
// writer. Callers must Flush when done.
//
// Formats are exact:
//
//	p max <nodes> <arcs>
//	n <id> s|t
//	a <u> <v> <capacity>
//	c <text>
type Writer struct {
	bw  *bufio.Writer
	buf []byte
}

// NewWriter returns a Writer buffering output to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w), buf: make([]byte, 0, 64)}
}

// WriteProblem writes the "p max" header line.
func (w *Writer) WriteProblem(nodes, arcs int) error {
	b := append(w.buf[:0], lineProblem, ' ')
	b = append(b, problemMax...)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(nodes), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(arcs), 10)

	return w.line(b)
}

// WriteNode writes an "n" line designating id as RoleSource or RoleSink.
func (w *Writer) WriteNode(id int, role byte) error {
	b := append(w.buf[:0], lineNode, ' ')
	b = strconv.AppendInt(b, int64(id), 10)
	b = append(b, ' ', role)

	return w.line(b)
}

// WriteTerminals writes the two node lines of a generated fixture:
// node 1 is the source, node `nodes` the sink.
func (w *Writer) WriteTerminals(nodes int) error {
	if err := w.WriteNode(1, RoleSource); err != nil {
		return err
	}

	return w.WriteNode(nodes, RoleSink)
}

// WriteArc writes one "a" line.
func (w *Writer) WriteArc(a Arc) error {
	b := append(w.buf[:0], lineArc, ' ')
	b = strconv.AppendInt(b, int64(a.From), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(a.To), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, a.Capacity, 10)

	return w.line(b)
}

// WriteComment writes a "c" line.
func (w *Writer) WriteComment(text string) error {
	b := append(w.buf[:0], lineComment, ' ')
	b = append(b, text...)

	return w.line(b)
}

// WriteProblemFile writes a complete instance: header, terminal lines as
// recorded in p, then every arc.
func (w *Writer) WriteProblemFile(p *Problem) error {
	if err := w.WriteProblem(p.Nodes, p.Arcs); err != nil {
		return err
	}
	if p.Source > 0 {
		if err := w.WriteNode(p.Source, RoleSource); err != nil {
			return err
		}
	}
	if p.Sink > 0 {
		if err := w.WriteNode(p.Sink, RoleSink); err != nil {
			return err
		}
	}
	for _, a := range p.Edges {
		if err := w.WriteArc(a); err != nil {
			return err
		}
	}

	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

func (w *Writer) line(b []byte) error {
	b = append(b, '\n')
	w.buf = b
	_, err := w.bw.Write(b)

	return err
}
