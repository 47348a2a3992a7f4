package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thruflo/tape/internal/config"
	"github.com/thruflo/tape/internal/engine"
	"github.com/thruflo/tape/internal/logging"
	"github.com/thruflo/tape/internal/program"
)

type runOptions struct {
	configPath string
	logLevel   string
	quiet      bool
}

func fileArg(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return &program.LoadError{Err: program.ErrNoFile}
	case 1:
		return nil
	default:
		return fmt.Errorf("expected a single file argument, received %d", len(args))
	}
}

func runProgram(cmd *cobra.Command, opts *runOptions, path string) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Level()
	if cmd.Flags().Changed("log-level") {
		level, err = logging.ParseLevel(opts.logLevel)
		if err != nil {
			return err
		}
	}
	quiet := cfg.Quiet
	if cmd.Flags().Changed("quiet") {
		quiet = opts.quiet
	}

	logging.SetOutput(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))
	logging.SetLevel(level)
	logger := logging.With("file", path)

	out := cmd.OutOrStdout()
	st := status{w: out, quiet: quiet}

	if err := st.printf("Parsing...\n"); err != nil {
		return err
	}

	prog, err := program.Load(path)
	if err != nil {
		logger.Warn("load failed", "error", err)
		return err
	}
	logger.Debug("program loaded",
		"instructions", len(prog),
		"loops", prog.Count(program.LoopStart),
		"outputs", prog.Count(program.Output),
	)

	if err := st.printf("Running program with %d instructions.\n", len(prog)); err != nil {
		return err
	}

	m := engine.New(out)
	if err := m.Run(prog); err != nil {
		logger.Error("run failed",
			"error", err,
			"ip", m.IP(),
			"pointer", m.Pointer(),
			"depth", m.Depth(),
			"steps", m.Steps(),
		)
		return err
	}
	logger.Info("run finished", "steps", m.Steps(), "pointer", m.Pointer())

	return st.printf("\nDone running!\n")
}

// status writes the human-readable lines around a run.
type status struct {
	w     io.Writer
	quiet bool
}

func (s status) printf(format string, args ...any) error {
	if s.quiet {
		return nil
	}
	if _, err := fmt.Fprintf(s.w, format, args...); err != nil {
		return fmt.Errorf("failed to write status: %w", err)
	}
	return nil
}
