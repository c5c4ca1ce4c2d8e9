package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgen/builder"
	"github.com/katalvlaran/flowgen/dimacs"
	"github.com/katalvlaran/flowgen/internal/cli"
)

// classic is the CLRS network with max flow 23 and a duplicate-free
// undirected view.
const classic = `c textbook network
p max 6 9
n 1 s
n 6 t
a 1 2 16
a 1 3 13
a 3 2 4
a 2 4 12
a 4 3 9
a 3 5 14
a 5 4 7
a 4 6 20
a 5 6 4
`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.max")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_ClassicNetwork(t *testing.T) {
	t.Parallel()

	for _, algo := range []string{cli.AlgoDinic, cli.AlgoEdmondsKarp, cli.AlgoFordFulkerson} {
		stdout := &bytes.Buffer{}
		err := run(context.Background(), nil, stdout, &bytes.Buffer{}, []string{"-algo", algo, writeFixture(t, classic)})
		require.NoError(t, err, algo)

		out := stdout.String()
		require.Contains(t, out, "nodes: 6 arcs: 9 undirected edges: 9\n")
		require.Contains(t, out, "check: ok\n")
		require.Contains(t, out, "s-t path: 3 hops\n")
		require.Contains(t, out, "max flow ("+algo+"): 23 in ")
		// Forest: 3-2 (4), 5-6 (4), 5-4 (7), 4-3 (9), 1-3 (13) = 37.
		require.Contains(t, out, "kruskal offline: weight 37, 5 edges in ")
		require.Contains(t, out, "prim: weight 37, 5 edges in ")
		require.Contains(t, out, "dynamic naive: weight 37, 5 edges in ")
		require.Contains(t, out, "link-cut tree: weight 37, 5 edges in ")
	}
}

func TestRun_GeneratedFixtureFromStdin(t *testing.T) {
	t.Parallel()

	var fixture bytes.Buffer
	_, err := builder.WriteInstance(context.Background(), &fixture, 40, 300, builder.WithSeed(5))
	require.NoError(t, err)

	stdout := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), &fixture, stdout, &bytes.Buffer{}, []string{"-strict", "-"}))
	require.Contains(t, stdout.String(), "filename: -\n")
	require.Contains(t, stdout.String(), "check: ok\n")
}

func TestRun_CheckViolations(t *testing.T) {
	t.Parallel()

	bad := strings.Replace(classic, "a 5 6 4", "a 5 6 400", 1)
	path := writeFixture(t, bad)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, run(context.Background(), nil, stdout, stderr, []string{path}))
	require.Contains(t, stdout.String(), "check: 1 violations\n")
	require.Contains(t, stderr.String(), "fixture check")

	err := run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{}, []string{"-strict", path})
	require.ErrorIs(t, err, ErrCheckFailed)
	require.ErrorIs(t, err, dimacs.ErrCapacityRange)
	require.Equal(t, cli.ExitFailure, cli.ExitCode(err))
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{}, nil)
	require.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	err = run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "missing.max")})
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Equal(t, cli.ExitFailure, cli.ExitCode(err))

	err = run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{}, []string{writeFixture(t, "a 1 2 3\n")})
	require.ErrorIs(t, err, dimacs.ErrNoProblemLine)
}

func TestRun_MissingTerminalsFallBack(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	err := run(context.Background(), nil, stdout, &bytes.Buffer{}, []string{writeFixture(t, "p max 3 2\na 1 2 5\na 2 3 4\n")})
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "check: 1 violations\n")
	require.Contains(t, stdout.String(), "s-t path: 2 hops\n")
	require.Contains(t, stdout.String(), "max flow (dinic): 4 in ")
}

func TestRun_NoPath(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	err := run(context.Background(), nil, stdout, &bytes.Buffer{}, []string{writeFixture(t, "p max 3 1\nn 1 s\nn 3 t\na 3 1 9\n")})
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "s-t path: none\n")
	require.Contains(t, stdout.String(), "max flow (dinic): 0 in ")
}

func TestRun_Normalize(t *testing.T) {
	t.Parallel()

	src := writeFixture(t, "c hand written\n\np max 3 2\na 1 2 5\n\na 2 3 4\n")
	dst := filepath.Join(t.TempDir(), "norm.max")
	stderr := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), nil, &bytes.Buffer{}, stderr, []string{"-normalize", dst, src}))
	require.Contains(t, stderr.String(), "normalized fixture written")

	body, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "c normalized from "+src+"\np max 3 2\nn 1 s\nn 3 t\na 1 2 5\na 2 3 4\n", string(body))

	p, err := dimacs.Read(bytes.NewReader(body))
	require.NoError(t, err)
	require.NoError(t, dimacs.Check(p, dimacs.DefaultMaxCapacity))

	err = run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{},
		[]string{"-normalize", filepath.Join(t.TempDir(), "missing", "norm.max"), src})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_AugmentationsLogAtTrace(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, classic)
	for level, want := range map[string]bool{"trace": true, "debug": false} {
		stderr := &bytes.Buffer{}
		require.NoError(t, run(context.Background(), nil, &bytes.Buffer{}, stderr,
			[]string{"-log-level", level, "-log-format", "json", path}))
		if want {
			require.Contains(t, stderr.String(), `"level":"trace"`, level)
			require.Contains(t, stderr.String(), `"method":"Dinic"`, level)
			require.Contains(t, stderr.String(), `"message":"augmented"`, level)
		} else {
			require.NotContains(t, stderr.String(), `"message":"augmented"`, level)
			require.Contains(t, stderr.String(), `"message":"solved"`, level)
		}
	}
}
