package dimacs_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowgen/dimacs"
)

const fixture = `c generated
p max 4 3
n 1 s
n 4 t
a 1 2 57

a 3 4 12
a 2 1 99
`

func TestWriter_ExactFormat(t *testing.T) {
	var buf bytes.Buffer
	w := dimacs.NewWriter(&buf)
	require.NoError(t, w.WriteProblem(4, 3))
	require.NoError(t, w.WriteTerminals(4))
	require.NoError(t, w.WriteArc(dimacs.Arc{From: 1, To: 2, Capacity: 57}))
	require.NoError(t, w.WriteArc(dimacs.Arc{From: 3, To: 4, Capacity: 12}))
	require.NoError(t, w.WriteArc(dimacs.Arc{From: 2, To: 1, Capacity: 99}))
	require.Empty(t, buf.String(), "nothing reaches the sink before Flush")
	require.NoError(t, w.Flush())

	require.Equal(t, "p max 4 3\nn 1 s\nn 4 t\na 1 2 57\na 3 4 12\na 2 1 99\n", buf.String())
}

func TestWriter_Comment(t *testing.T) {
	var buf bytes.Buffer
	w := dimacs.NewWriter(&buf)
	require.NoError(t, w.WriteComment("seed 42"))
	require.NoError(t, w.Flush())
	require.Equal(t, "c seed 42\n", buf.String())
}

func TestArc_String(t *testing.T) {
	require.Equal(t, "a 3 7 100", dimacs.Arc{From: 3, To: 7, Capacity: 100}.String())
}

// ReadSuite covers the parser's accepted and rejected inputs.
type ReadSuite struct {
	suite.Suite
}

func (s *ReadSuite) TestFixture() {
	p, err := dimacs.Read(strings.NewReader(fixture))
	s.Require().NoError(err)
	s.Equal(4, p.Nodes)
	s.Equal(3, p.Arcs)
	s.Equal(1, p.Source)
	s.Equal(4, p.Sink)
	s.Equal([]dimacs.Arc{
		{From: 1, To: 2, Capacity: 57},
		{From: 3, To: 4, Capacity: 12},
		{From: 2, To: 1, Capacity: 99},
	}, p.Edges)
}

func (s *ReadSuite) TestRoundTrip() {
	p, err := dimacs.Read(strings.NewReader(fixture))
	s.Require().NoError(err)

	var buf bytes.Buffer
	w := dimacs.NewWriter(&buf)
	s.Require().NoError(w.WriteProblemFile(p))
	s.Require().NoError(w.Flush())

	again, err := dimacs.Read(&buf)
	s.Require().NoError(err)
	s.Equal(p, again)
}

func (s *ReadSuite) TestRejects() {
	tests := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{"empty", "", dimacs.ErrNoProblemLine, 0},
		{"comments only", "c a\nc b\n", dimacs.ErrNoProblemLine, 2},
		{"arc before header", "a 1 2 3\np max 2 1\n", dimacs.ErrNoProblemLine, 1},
		{"node before header", "n 1 s\n", dimacs.ErrNoProblemLine, 1},
		{"wrong problem", "p min 2 1\n", dimacs.ErrSyntax, 1},
		{"short problem", "p max 2\n", dimacs.ErrSyntax, 1},
		{"zero nodes", "p max 0 0\n", dimacs.ErrSyntax, 1},
		{"negative arcs", "p max 2 -1\n", dimacs.ErrSyntax, 1},
		{"duplicate header", "p max 2 0\np max 2 0\n", dimacs.ErrSyntax, 2},
		{"unknown designator", "p max 2 0\nx 1\n", dimacs.ErrSyntax, 2},
		{"long designator", "p max 2 0\narc 1 2 3\n", dimacs.ErrSyntax, 2},
		{"bad role", "p max 2 0\nn 1 q\n", dimacs.ErrSyntax, 2},
		{"bad capacity", "p max 2 1\na 1 2 x\n", dimacs.ErrSyntax, 2},
		{"short arc", "p max 2 1\na 1 2\n", dimacs.ErrSyntax, 2},
		{"node zero", "p max 2 1\na 0 2 5\n", dimacs.ErrNodeOutOfRange, 2},
		{"node past end", "p max 2 1\na 1 3 5\n", dimacs.ErrNodeOutOfRange, 2},
		{"terminal past end", "p max 2 0\nn 3 t\n", dimacs.ErrNodeOutOfRange, 2},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := dimacs.Read(strings.NewReader(tc.input))
			s.Require().ErrorIs(err, tc.want)
			var pe *dimacs.ParseError
			s.Require().True(errors.As(err, &pe))
			s.Equal(tc.line, pe.Line)
		})
	}
}

func TestReadSuite(t *testing.T) {
	suite.Run(t, new(ReadSuite))
}

func TestCheck_ValidFixture(t *testing.T) {
	p, err := dimacs.Read(strings.NewReader(fixture))
	require.NoError(t, err)
	require.NoError(t, dimacs.Check(p, dimacs.DefaultMaxCapacity))
}

func TestCheck_Violations(t *testing.T) {
	p := &dimacs.Problem{
		Nodes:  3,
		Arcs:   5,
		Source: 1,
		Sink:   2,
		Edges: []dimacs.Arc{
			{From: 1, To: 2, Capacity: 5},
			{From: 1, To: 2, Capacity: 6},
			{From: 2, To: 2, Capacity: 7},
			{From: 2, To: 3, Capacity: 0},
		},
	}
	err := dimacs.Check(p, dimacs.DefaultMaxCapacity)
	require.Error(t, err)
	for _, want := range []error{
		dimacs.ErrArcCount,
		dimacs.ErrTerminals,
		dimacs.ErrDuplicateArc,
		dimacs.ErrSelfLoop,
		dimacs.ErrCapacityRange,
	} {
		assert.ErrorIs(t, err, want)
	}
	assert.NotErrorIs(t, err, dimacs.ErrNodeOutOfRange)
}

func TestCheck_ReversePairsAllowed(t *testing.T) {
	p := &dimacs.Problem{
		Nodes: 2, Arcs: 2, Source: 1, Sink: 2,
		Edges: []dimacs.Arc{{From: 1, To: 2, Capacity: 1}, {From: 2, To: 1, Capacity: 100}},
	}
	require.NoError(t, dimacs.Check(p, 100))
	require.ErrorIs(t, dimacs.Check(p, 99), dimacs.ErrCapacityRange)
	require.ErrorIs(t, dimacs.Check(nil, 100), dimacs.ErrNoProblemLine)
}

func TestProblem_Graph(t *testing.T) {
	p := &dimacs.Problem{
		Nodes: 5, Arcs: 3, Source: 1, Sink: 5,
		Edges: []dimacs.Arc{
			{From: 1, To: 2, Capacity: 4},
			{From: 2, To: 1, Capacity: 3},
			{From: 2, To: 5, Capacity: 9},
		},
	}
	g, err := p.Graph()
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, g.Vertices())
	require.Equal(t, 3, g.EdgeCount())
	require.True(t, g.HasEdge("2", "1"))
	require.False(t, g.HasEdge("5", "2"))
	require.Equal(t, int64(16), g.Stats().TotalWeight)
}

func TestProblem_UndirectedEdges(t *testing.T) {
	p := &dimacs.Problem{
		Nodes: 3,
		Edges: []dimacs.Arc{
			{From: 2, To: 1, Capacity: 4},
			{From: 1, To: 2, Capacity: 1},
			{From: 3, To: 3, Capacity: 2},
			{From: 2, To: 3, Capacity: 8},
			{From: 2, To: 3, Capacity: 6},
		},
	}
	require.Equal(t, []dimacs.Arc{
		{From: 2, To: 1, Capacity: 4},
		{From: 2, To: 3, Capacity: 8},
	}, p.UndirectedEdges())
}

func TestProblem_UndirectedGraph(t *testing.T) {
	p := &dimacs.Problem{
		Nodes: 4,
		Edges: []dimacs.Arc{
			{From: 2, To: 1, Capacity: 4},
			{From: 1, To: 2, Capacity: 1},
			{From: 2, To: 3, Capacity: 8},
		},
	}
	g, err := p.UndirectedGraph()
	require.NoError(t, err)
	require.False(t, g.Directed())
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
	require.True(t, g.HasEdge("1", "2"))
	require.True(t, g.HasEdge("3", "2"))
	require.Equal(t, int64(12), g.Stats().TotalWeight)
}
