// Package app implements the application layer for rerun.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/rerun/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rerun/internal/core/domain"
	"go.trai.ch/rerun/internal/core/ports"
	"go.trai.ch/zerr"
)

const tracerName = "rerun"

// App represents the main application logic.
type App struct {
	expander ports.PathExpander
	executor ports.Executor
	toucher  ports.Toucher
	logger   ports.Logger
	provider trace.TracerProvider
	now      func() time.Time
}

// New creates a new App instance.
func New(
	expander ports.PathExpander,
	executor ports.Executor,
	toucher ports.Toucher,
	log ports.Logger,
) *App {
	return &App{
		expander: expander,
		executor: executor,
		toucher:  toucher,
		logger:   log,
		now:      time.Now,
	}
}

// WithTracerProvider makes every run record its spans on tp, whether or not
// it is verbose.
func (a *App) WithTracerProvider(tp trace.TracerProvider) *App {
	a.provider = tp
	return a
}

// WithClock replaces the clock used to timestamp the failure touch.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Run performs one staleness check and, if the sources are newer than the
// targets, runs the command. A command that exits non-zero is not an error:
// the first source directory is touched so that the next run retries.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	if opts.Dir != "" {
		if err := os.Chdir(opts.Dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrChdirFailed.Error()), "dir", opts.Dir)
		}
	}

	tracer, shutdown := a.tracer(opts.Verbose)
	defer shutdown()

	cache := domain.NewStatCache()

	sources, err := a.expandAll(ctx, tracer, "expand.sources", opts.Sources, cache)
	if err != nil {
		return err
	}

	targets, err := a.expandAll(ctx, tracer, "expand.targets", opts.Targets, cache)
	if err != nil {
		return err
	}

	if !a.evaluate(ctx, tracer, sources, targets, cache) {
		if opts.Verbose {
			a.logger.Info("rerun: sources are not newer than targets, skipping")
		}
		return nil
	}

	code, err := a.execute(ctx, tracer, opts.Command)
	if err != nil {
		return err
	}
	if code == 0 {
		return nil
	}

	return a.touch(ctx, tracer, sources, cache, code)
}

// tracer returns the tracer for one run and a function releasing it.
func (a *App) tracer(verbose bool) (trace.Tracer, func()) {
	switch {
	case a.provider != nil:
		return a.provider.Tracer(tracerName), func() {}
	case verbose:
		tp := telemetry.NewProvider(a.logger)
		return tp.Tracer(tracerName), func() { _ = tp.Shutdown(context.Background()) }
	default:
		return otel.Tracer(tracerName), func() {}
	}
}

// expandAll expands patterns in order into one list. Duplicates are kept.
func (a *App) expandAll(
	ctx context.Context,
	tracer trace.Tracer,
	spanName string,
	patterns []string,
	cache *domain.StatCache,
) ([]string, error) {
	ctx, span := tracer.Start(ctx, spanName)
	defer span.End()

	var all []string
	for _, pattern := range patterns {
		paths, err := a.expander.Expand(ctx, pattern, cache)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		all = append(all, paths...)
	}

	span.SetAttributes(
		attribute.Int("patterns", len(patterns)),
		attribute.Int("paths", len(all)),
	)
	return all, nil
}

func (a *App) evaluate(
	ctx context.Context,
	tracer trace.Tracer,
	sources, targets []string,
	cache *domain.StatCache,
) bool {
	_, span := tracer.Start(ctx, "evaluate")
	defer span.End()

	sourceNewest := domain.NewestModTime(sources, cache)
	targetNewest := domain.NewestModTime(targets, cache)
	stale := domain.IsStale(sourceNewest, targetNewest)

	span.SetAttributes(
		attribute.String("source_newest", sourceNewest.UTC().Format(time.RFC3339Nano)),
		attribute.String("target_newest", targetNewest.UTC().Format(time.RFC3339Nano)),
		attribute.Bool("stale", stale),
	)
	return stale
}

func (a *App) execute(ctx context.Context, tracer trace.Tracer, command []string) (int, error) {
	ctx, span := tracer.Start(ctx, "execute")
	defer span.End()

	a.logger.Info(fmt.Sprintf("rerun: executing command '%s'", strings.Join(command, " ")))

	code, err := a.executor.Run(ctx, command)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int("exit_code", code))
	return code, nil
}

// touch bumps the first source directory so the next run sees the sources
// as newer than the targets. Without a source directory it does nothing.
func (a *App) touch(
	ctx context.Context,
	tracer trace.Tracer,
	sources []string,
	cache *domain.StatCache,
	code int,
) error {
	dir, ok := cache.FirstDir(sources)
	if !ok {
		return nil
	}

	_, span := tracer.Start(ctx, "touch", trace.WithAttributes(attribute.String("path", dir)))
	defer span.End()

	if err := a.toucher.Touch(dir, a.now()); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	a.logger.Info(fmt.Sprintf("rerun: command failed with exit code %d, touched folder '%s'", code, relativeToCwd(dir)))
	return nil
}

// relativeToCwd returns path relative to the working directory, or path
// itself when no relative form exists. The working directory itself is
// reported as an empty path.
func relativeToCwd(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	if rel == "." {
		return ""
	}
	return rel
}
