// Command flowbench reads a DIMACS max-flow instance, checks it, optionally
// writes it back normalized, solves it and benchmarks the minimum spanning
// forest algorithms over its undirected view:
//
//	flowbench [options] <file>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/flowgen/bfs"
	"github.com/katalvlaran/flowgen/core"
	"github.com/katalvlaran/flowgen/dimacs"
	"github.com/katalvlaran/flowgen/flow"
	"github.com/katalvlaran/flowgen/internal/cli"
	"github.com/katalvlaran/flowgen/mst"
)

// ErrCheckFailed is returned under -strict when the fixture check fails.
var ErrCheckFailed = errors.New("flowbench: fixture check failed")

// ErrForestMismatch is returned when the forest algorithms disagree on weight.
var ErrForestMismatch = errors.New("flowbench: forest weights disagree")

var solvers = map[string]func(*core.Graph, string, string, flow.FlowOptions) (int64, *core.Graph, error){
	cli.AlgoDinic:         flow.Dinic,
	cli.AlgoEdmondsKarp:   flow.EdmondsKarp,
	cli.AlgoFordFulkerson: flow.FordFulkerson,
}

// main is the entrypoint for flowbench.
func main() {
	err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "flowbench:", err)
	}
	os.Exit(cli.ExitCode(err))
}

// report collects what flowbench prints.
type report struct {
	path       string
	problem    *dimacs.Problem
	undirected int
	violations int
	hops       int // shortest s→t path in arcs with capacity; -1 if none
	algo       string
	maxFlow    int64
	flowTime   time.Duration
	forests    []forestResult
}

type forestResult struct {
	name    string
	weight  int64
	edges   int
	elapsed time.Duration
}

// run encapsulates the program for testing.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.ParseBench(args, stderr)
	if err != nil || shouldExit {
		return err
	}
	logger, err := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx)

	p, err := load(cfg.Path, stdin)
	if err != nil {
		return err
	}
	rep := &report{path: cfg.Path, problem: p, algo: cfg.Algo}

	if err = dimacs.Check(p, cfg.MaxCap); err != nil {
		rep.violations = len(unjoin(err))
		logger.Warn().Err(err).Int("violations", rep.violations).Msg("fixture check")
		if cfg.Strict {
			return fmt.Errorf("%w: %w", ErrCheckFailed, err)
		}
	}

	if cfg.Normalize != "" {
		if err = normalize(ctx, cfg.Normalize, cfg.Path, p); err != nil {
			return err
		}
	}

	if err = solve(ctx, cfg.Algo, p, rep); err != nil {
		return err
	}
	if err = forests(ctx, p, rep); err != nil {
		return err
	}

	writeReport(stdout, rep)
	for _, f := range rep.forests[1:] {
		if f.weight != rep.forests[0].weight {
			return fmt.Errorf("%w: %s=%d, %s=%d",
				ErrForestMismatch, rep.forests[0].name, rep.forests[0].weight, f.name, f.weight)
		}
	}

	return nil
}

func load(path string, stdin io.Reader) (*dimacs.Problem, error) {
	if path == "-" {
		return dimacs.Read(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := dimacs.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// normalize writes p to path with the declared arc count corrected, the
// terminals made explicit and a comment naming the source fixture.
func normalize(ctx context.Context, path, src string, p *dimacs.Problem) (err error) {
	q := *p
	q.Arcs = len(p.Edges)
	if q.Source == 0 {
		q.Source = 1
	}
	if q.Sink == 0 {
		q.Sink = q.Nodes
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("normalize: %w", cerr)
		}
	}()

	w := dimacs.NewWriter(f)
	if err = w.WriteComment("normalized from " + src); err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	if err = w.WriteProblemFile(&q); err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	zerolog.Ctx(ctx).Info().Str("path", path).Int("arcs", q.Arcs).Msg("normalized fixture written")

	return nil
}

// solve runs the chosen max-flow algorithm between the declared terminals,
// falling back to node 1 and node N when "n" lines are missing.
func solve(ctx context.Context, algo string, p *dimacs.Problem, rep *report) error {
	g, err := p.Graph()
	if err != nil {
		return err
	}
	source, sink := p.Source, p.Sink
	if source == 0 {
		source = 1
	}
	if sink == 0 {
		sink = p.Nodes
	}

	s, t := dimacs.NodeID(source), dimacs.NodeID(sink)
	reach, err := bfs.BFS(g, s, bfs.WithContext(ctx), bfs.WithMinWeight(1))
	if err != nil {
		return fmt.Errorf("reachability: %w", err)
	}
	rep.hops = -1
	if d, ok := reach.Depth[t]; ok {
		rep.hops = d
	}

	opts := flow.DefaultOptions()
	opts.Ctx = ctx
	// Augmentations log at trace level; skip the bookkeeping otherwise.
	opts.Verbose = zerolog.Ctx(ctx).GetLevel() <= zerolog.TraceLevel

	start := time.Now()
	rep.maxFlow, _, err = solvers[algo](g, s, t, opts)
	rep.flowTime = time.Since(start)
	if err != nil {
		return fmt.Errorf("max flow: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("algo", algo).Int64("max_flow", rep.maxFlow).Dur("elapsed", rep.flowTime).Msg("solved")

	return nil
}

// forests times Kruskal, Prim, the naive dynamic forest and the link-cut
// forest over the undirected edges; the first entry is the reference weight.
func forests(ctx context.Context, p *dimacs.Problem, rep *report) error {
	edges := p.UndirectedEdges()
	rep.undirected = len(edges)

	start := time.Now()
	k := mst.Kruskal(edges)
	rep.forests = append(rep.forests, forestResult{"kruskal offline", k.Weight, len(k.Edges), time.Since(start)})

	g, err := p.UndirectedGraph()
	if err != nil {
		return err
	}
	start = time.Now()
	pf, err := mst.Prim(g)
	if err != nil {
		return err
	}
	rep.forests = append(rep.forests, forestResult{"prim", pf.Weight, len(pf.Edges), time.Since(start)})

	start = time.Now()
	d := mst.NewDynamicForest()
	updates := 0
	for _, e := range edges {
		if d.Add(e.From, e.To, e.Capacity) {
			updates++
		}
	}
	rep.forests = append(rep.forests, forestResult{"dynamic naive", d.Weight(), d.Len(), time.Since(start)})
	zerolog.Ctx(ctx).Debug().Int("edges", len(edges)).Int("updates", updates).Msg("dynamic forest built")

	start = time.Now()
	lc := mst.NewLinkCutForest()
	for _, e := range edges {
		lc.Add(e.From, e.To, e.Capacity)
	}
	rep.forests = append(rep.forests, forestResult{"link-cut tree", lc.Weight(), lc.Len(), time.Since(start)})

	return nil
}

func writeReport(w io.Writer, rep *report) {
	p := rep.problem
	fmt.Fprintf(w, "filename: %s\n", rep.path)
	fmt.Fprintf(w, "nodes: %d arcs: %d undirected edges: %d\n", p.Nodes, len(p.Edges), rep.undirected)
	if rep.violations == 0 {
		fmt.Fprintln(w, "check: ok")
	} else {
		fmt.Fprintf(w, "check: %d violations\n", rep.violations)
	}
	if rep.hops < 0 {
		fmt.Fprintln(w, "s-t path: none")
	} else {
		fmt.Fprintf(w, "s-t path: %d hops\n", rep.hops)
	}
	fmt.Fprintf(w, "max flow (%s): %d in %s\n", rep.algo, rep.maxFlow, rep.flowTime)
	for _, f := range rep.forests {
		fmt.Fprintf(w, "%s: weight %d, %d edges in %s\n", f.name, f.weight, f.edges, f.elapsed)
	}
}

// unjoin flattens an errors.Join result.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
