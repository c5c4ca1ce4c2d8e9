// Command flowgen writes a random DIMACS max-flow instance:
//
//	flowgen [options] <nodes> <edges>
//
// The instance goes to stdout (or -o); diagnostics go to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/flowgen/builder"
	"github.com/katalvlaran/flowgen/internal/cli"
)

// main is the entrypoint for flowgen.
func main() {
	err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "flowgen:", err)
	}
	os.Exit(cli.ExitCode(err))
}

// run encapsulates the program for testing: it parses args, builds the
// logger on stderr and writes the instance to stdout or the -o file.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stderr)
	if err != nil || shouldExit {
		return err
	}

	logger, err := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx)

	opts := []builder.Option{builder.WithMaxCells(cfg.MaxCells)}
	if cfg.HasSeed {
		opts = append(opts, builder.WithSeed(cfg.Seed))
	}
	logger.Debug().
		Int("nodes", cfg.Nodes).
		Int("edges", cfg.Arcs).
		Bool("seeded", cfg.HasSeed).
		Int64("seed", cfg.Seed).
		Int("max_cells", cfg.MaxCells).
		Str("output", cfg.Output).
		Msg("generating instance")

	if cfg.Output == "" || cfg.Output == "-" {
		_, err = builder.WriteInstance(ctx, stdout, cfg.Nodes, cfg.Arcs, opts...)
		return err
	}

	return writeFile(ctx, cfg.Output, func(w io.Writer) error {
		_, err := builder.WriteInstance(ctx, w, cfg.Nodes, cfg.Arcs, opts...)
		return err
	})
}

// writeFile writes through a temporary file in the target directory and
// renames it into place, so a failed run leaves no partial instance behind.
func writeFile(ctx context.Context, path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	zerolog.Ctx(ctx).Info().Str("path", path).Msg("instance written")

	return nil
}
