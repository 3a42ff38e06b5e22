// Package commands implements the command line interface for rerun.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rerun/internal/app"
	"go.trai.ch/rerun/internal/build"
	"go.trai.ch/rerun/internal/core/domain"
)

// CLI represents the command line interface for rerun.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	dir     string
	sources []string
	targets []string
	verbose bool
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "rerun [options] -- <command> [args...]",
		Short:         "Run a command only when its sources are newer than its targets",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	flags := rootCmd.Flags()
	flags.StringVarP(&c.dir, "cwd", "c", "", "working directory")
	flags.StringArrayVarP(&c.sources, "source", "s", nil, "source files (glob expressions supported)")
	flags.StringArrayVarP(&c.targets, "target", "t", nil, "target files (glob expressions supported)")
	flags.BoolVar(&c.verbose, "verbose", false, "log the duration of every phase")
	_ = rootCmd.MarkFlagRequired("source")
	_ = rootCmd.MarkFlagRequired("target")

	rootCmd.InitDefaultVersionFlag()
	flags.Lookup("version").Usage = "output current version"

	rootCmd.InitDefaultHelpFlag()
	flags.Lookup("help").Usage = "show help for rerun"

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	command := args
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		command = args[dash:]
	}
	if len(command) == 0 {
		return domain.ErrNoCommand
	}

	return c.app.Run(cmd.Context(), app.RunOptions{
		Dir:     c.dir,
		Sources: c.sources,
		Targets: c.targets,
		Command: command,
		Verbose: c.verbose,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Values listed after
// -s or -t are split into one flag each, so "-s a b" means "-s a -s b".
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(normalizeArgs(args))
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
