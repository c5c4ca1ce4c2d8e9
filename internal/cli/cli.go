package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowgen/builder"
	"github.com/katalvlaran/flowgen/dimacs"
)

// Config is the validated flowgen invocation.
type Config struct {
	Nodes     int
	Arcs      int
	Seed      int64
	HasSeed   bool   // -seed was given; otherwise the generator seeds from the clock
	MaxCells  int    // presence matrix budget; 0 forces the matrix
	Output    string // "" or "-" means stdout
	LogLevel  string
	LogFormat string
}

// Validate checks the values Parse cannot check by syntax alone.
func (c Config) Validate() error {
	if c.Nodes < 1 {
		return usagef("nodes must be at least 1, got %d", c.Nodes)
	}
	if c.Arcs < 0 {
		return usagef("edges must be non-negative, got %d", c.Arcs)
	}
	if c.MaxCells < 0 {
		return usagef("max-cells must be non-negative, got %d", c.MaxCells)
	}
	return validateLogFlags(c.LogLevel, c.LogFormat)
}

// Parse processes flowgen's command-line arguments. It returns the config,
// a boolean indicating the program should exit cleanly (help was printed),
// or a *UsageError. Usage and flag errors are printed to output.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet("flowgen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
flowgen - generate a random DIMACS max-flow instance.

Usage:
  flowgen [options] <nodes> <edges>

Arguments:
  nodes   number of nodes (>= 1); node 1 is the source, node <nodes> the sink
  edges   number of unique directed arcs (0 <= edges <= nodes*(nodes-1))

Options:
`)
		fs.PrintDefaults()
	}

	seed := fs.Int64("seed", 0, "Seed for the random source. Default: wall-clock time.")
	outPath := fs.String("o", "", "Write the instance to this file instead of stdout.")
	maxCells := fs.Int("max-cells", builder.DefaultMaxCells, "Presence matrix budget in cells; larger requests track pairs in a set. 0 always uses the matrix.")
	logLevel := fs.String("log-level", DefaultLogLevel, "Logging level: 'trace', 'debug', 'info', 'warn', 'error'.")
	logFormat := fs.String("log-format", LogFormatConsole, "Log output format: 'console' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &UsageError{Message: err.Error()}
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return nil, false, usagef("want 2 arguments <nodes> <edges>, got %d", fs.NArg())
	}
	nodes, err := parseCount("nodes", fs.Arg(0))
	if err != nil {
		return nil, false, err
	}
	arcs, err := parseCount("edges", fs.Arg(1))
	if err != nil {
		return nil, false, err
	}

	cfg := &Config{
		Nodes:     nodes,
		Arcs:      arcs,
		Seed:      *seed,
		MaxCells:  *maxCells,
		Output:    *outPath,
		LogLevel:  *logLevel,
		LogFormat: *logFormat,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.HasSeed = true
		}
	})
	if err = cfg.Validate(); err != nil {
		return nil, false, err
	}

	return cfg, false, nil
}

// Algorithms accepted by flowbench -algo.
const (
	AlgoDinic         = "dinic"
	AlgoEdmondsKarp   = "edmonds-karp"
	AlgoFordFulkerson = "ford-fulkerson"
)

// BenchConfig is the validated flowbench invocation.
type BenchConfig struct {
	Path      string
	MaxCap    int64
	Algo      string
	Strict    bool   // fail when the fixture check reports violations
	Normalize string // write the fixture back in canonical form to this path
	LogLevel  string
	LogFormat string
}

// Validate checks flag values.
func (c BenchConfig) Validate() error {
	if c.Path == "" {
		return usagef("missing fixture path")
	}
	if c.MaxCap < 1 {
		return usagef("max-cap must be at least 1, got %d", c.MaxCap)
	}
	switch c.Algo {
	case AlgoDinic, AlgoEdmondsKarp, AlgoFordFulkerson:
	default:
		return usagef("invalid algo %q: must be %q, %q or %q", c.Algo, AlgoDinic, AlgoEdmondsKarp, AlgoFordFulkerson)
	}
	return validateLogFlags(c.LogLevel, c.LogFormat)
}

// ParseBench processes flowbench's command-line arguments with the same
// contract as Parse.
func ParseBench(args []string, output io.Writer) (*BenchConfig, bool, error) {
	fs := flag.NewFlagSet("flowbench", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
flowbench - solve and benchmark a DIMACS max-flow instance.

Usage:
  flowbench [options] <file>

Arguments:
  file   DIMACS "p max" instance; "-" reads stdin

Options:
`)
		fs.PrintDefaults()
	}

	maxCap := fs.Int64("max-cap", dimacs.DefaultMaxCapacity, "Largest capacity accepted by the fixture check.")
	algo := fs.String("algo", AlgoDinic, "Max-flow algorithm: 'dinic', 'edmonds-karp' or 'ford-fulkerson'.")
	strict := fs.Bool("strict", false, "Exit with failure when the fixture check reports violations.")
	normalize := fs.String("normalize", "", "Write the fixture in canonical form (no blank lines, true arc count, explicit terminals) to this path.")
	logLevel := fs.String("log-level", DefaultLogLevel, "Logging level: 'trace', 'debug', 'info', 'warn', 'error'.")
	logFormat := fs.String("log-format", LogFormatConsole, "Log output format: 'console' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &UsageError{Message: err.Error()}
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, false, usagef("want 1 argument <file>, got %d", fs.NArg())
	}

	cfg := &BenchConfig{
		Path:      fs.Arg(0),
		MaxCap:    *maxCap,
		Algo:      strings.ToLower(*algo),
		Strict:    *strict,
		Normalize: *normalize,
		LogLevel:  *logLevel,
		LogFormat: *logFormat,
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}

	return cfg, false, nil
}

// parseCount parses a base-10 positional count.
func parseCount(name, s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, usagef("%s: %q is not a base-10 integer", name, s)
	}
	return int(n), nil
}

func validateLogFlags(level, format string) error {
	_, err := NewLogger(level, format, io.Discard)
	return err
}
