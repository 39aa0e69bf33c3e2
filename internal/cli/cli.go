package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "swtile"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrUsage marks invalid invocations (missing or malformed arguments).
var ErrUsage = errors.New("usage")

// UsageError carries the reason and the command's usage line.
// errors.Is(err, ErrUsage) matches it.
type UsageError struct {
	Reason string
	Line   string
	Cause  error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s\nUsage: %s", e.Reason, e.Line)
}

// Is makes errors.Is(err, ErrUsage) succeed.
func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// Unwrap returns the validation error behind the usage error, if any.
func (e *UsageError) Unwrap() error { return e.Cause }

func usageError(cmd *cobra.Command, format string, args ...any) error {
	return &UsageError{Reason: fmt.Sprintf(format, args...), Line: cmd.UseLine()}
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	flags  alignFlags
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the command tree. The root command itself scores random
// sequences; subcommands cover FASTA input and configuration output.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName + " <sequence_length>",
		Short: "Tiled wavefront-parallel Smith-Waterman scoring",
		Long: `swtile computes the optimal Smith-Waterman local alignment score of two
DNA sequences. The score matrix is split into tiles that are evaluated in
anti-diagonal wavefronts on a fixed-size worker pool.

With a single length argument, two random sequences over {A,C,G,T} are
generated from a fixed seed so runs are reproducible.`,
		Example:       "  swtile 10000\n  swtile 5000 --tile 256 --workers 8 --verify",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          lengthArg,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := parseLength(args[0]) // validated by lengthArg
			return runRandom(cmd, n, &c.flags)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	c.flags.register(root)

	root.AddCommand(c.fastaCommand())
	root.AddCommand(c.configCommand())

	return root
}

// Execute runs the command tree with args and returns the first error.
func (c *CLI) Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}
