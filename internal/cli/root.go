package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// newRootCmd builds the tape command. A fresh command is built per Execute
// so flag state never leaks between invocations.
func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "tape <file>",
		Short: "Run a program on a 60000-cell byte tape",
		Long: `Tape reads a program file, keeps only the eight instruction symbols
(+ - > < . , [ ]) and runs them directly against a byte tape.

The data pointer starts at cell 30000. Cells wrap modulo 256; moving the
pointer off either end of the tape is a fatal error. The , instruction
stores the last byte written by . rather than reading from stdin.

Example:
  tape hello.bf
  tape --quiet hello.bf
  tape --config tape.yaml --log-level debug hello.bf`,
		Args:          fileArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML or TOML config file")
	cmd.Flags().StringVarP(&opts.logLevel, "log-level", "l", "", "log level: debug, info, warn or error (overrides config)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status lines (overrides config)")

	cmd.Version = Version
	cmd.SetVersionTemplate("tape version {{.Version}}\n")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
