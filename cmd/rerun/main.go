// Package main is the entry point for rerun.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rerun/cmd/rerun/commands"
	"go.trai.ch/rerun/internal/app"
	_ "go.trai.ch/rerun/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

// run executes rerun and returns the process exit code. The child command's
// own exit code never leaks into it.
//
// No signal handler is installed: an interrupt reaches rerun and the child
// together and both stop the default way.
func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
