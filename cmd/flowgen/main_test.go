package main

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgen/builder"
	"github.com/katalvlaran/flowgen/dimacs"
	"github.com/katalvlaran/flowgen/internal/cli"
)

func TestRun_WritesInstance(t *testing.T) {
	t.Parallel()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), stdout, stderr, []string{"-seed", "7", "4", "3"})
	require.NoError(t, err)
	require.Empty(t, stderr.String(), "info level logs nothing on stdout runs")

	p, err := dimacs.Read(stdout)
	require.NoError(t, err)
	require.Equal(t, 4, p.Nodes)
	require.NoError(t, dimacs.Check(p, dimacs.DefaultMaxCapacity))
}

func TestRun_SingleNode(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), stdout, &bytes.Buffer{}, []string{"1", "0"}))
	require.Equal(t, "p max 1 0\nn 1 s\nn 1 t\n", stdout.String())
}

func TestRun_SeedReproducible(t *testing.T) {
	t.Parallel()

	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	args := []string{"-seed", "99", "30", "120"}
	require.NoError(t, run(context.Background(), a, &bytes.Buffer{}, args))
	require.NoError(t, run(context.Background(), b, &bytes.Buffer{}, args))
	require.Equal(t, a.String(), b.String())
}

func TestRun_DebugLogsToStderr(t *testing.T) {
	t.Parallel()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), stdout, stderr, []string{"-log-level", "debug", "-log-format", "json", "5", "4"})
	require.NoError(t, err)
	require.Contains(t, stderr.String(), `"message":"generating instance"`)
	require.Contains(t, stderr.String(), `"message":"arcs sampled"`)
	require.True(t, strings.HasPrefix(stdout.String(), "p max 5 4\n"))
}

func TestRun_LargeNodeCount(t *testing.T) {
	t.Parallel()

	// 40000 nodes need 1.6G matrix cells, past the default budget.
	stdout := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), stdout, &bytes.Buffer{}, []string{"-seed", "1", "40000", "10"}))

	p, err := dimacs.Read(stdout)
	require.NoError(t, err)
	require.Equal(t, 40000, p.Nodes)
	require.Len(t, p.Edges, 10)
	require.NoError(t, dimacs.Check(p, dimacs.DefaultMaxCapacity))
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		code int
		is   error
	}{
		{"missing args", []string{}, cli.ExitUsage, nil},
		{"non-numeric", []string{"x", "1"}, cli.ExitUsage, nil},
		{"too many arcs", []string{"1", "1"}, cli.ExitFailure, builder.ErrTooManyArcs},
		{"past complete digraph", []string{"3", "7"}, cli.ExitFailure, builder.ErrTooManyArcs},
		{"matrix overflows without budget", []string{"-max-cells", "0", strconv.Itoa(math.MaxInt), "1"}, cli.ExitFailure, builder.ErrAllocation},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			stdout := &bytes.Buffer{}
			err := run(context.Background(), stdout, &bytes.Buffer{}, tc.args)
			require.Error(t, err)
			require.Equal(t, tc.code, cli.ExitCode(err))
			if tc.is != nil {
				require.True(t, errors.Is(err, tc.is), err.Error())
			}
			require.Empty(t, stdout.String(), "failures write nothing to stdout")
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, run(context.Background(), stdout, stderr, []string{"-h"}))
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "Usage:")
}

func TestRun_OutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "net.max")
	stdout := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), stdout, &bytes.Buffer{}, []string{"-o", path, "-seed", "3", "6", "10"}))
	require.Empty(t, stdout.String())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	p, err := dimacs.Read(f)
	require.NoError(t, err)
	require.NoError(t, dimacs.Check(p, dimacs.DefaultMaxCapacity))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file is renamed away")
}

func TestRun_OutputFileFailureLeavesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "net.max")
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-o", path, "2", "3"})
	require.ErrorIs(t, err, builder.ErrTooManyArcs)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
