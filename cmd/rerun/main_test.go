package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rerun/internal/app"
	"go.trai.ch/rerun/internal/core/domain"
	"go.trai.ch/rerun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	expander *mocks.MockPathExpander
	executor *mocks.MockExecutor
	toucher  *mocks.MockToucher
	logger   *mocks.MockLogger
}

func newProvider(t *testing.T) (*testMocks, ComponentProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		expander: mocks.NewMockPathExpander(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		toucher:  mocks.NewMockToucher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	application := app.New(m.expander, m.executor, m.toucher, m.logger)

	return m, func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: m.logger}, func() {}, nil
	}
}

// stat serves one file per pattern with the given mtime.
func (m *testMocks) stat(mtimes map[string]int64, dirs ...string) {
	m.expander.EXPECT().Expand(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pattern string, cache *domain.StatCache) ([]string, error) {
			mtime, ok := mtimes[pattern]
			if !ok {
				return nil, nil
			}
			path := filepath.Join(string(filepath.Separator), pattern)
			isDir := false
			for _, d := range dirs {
				isDir = isDir || d == pattern
			}
			cache.Put(path, domain.FileStat{ModTime: time.Unix(mtime, 0), IsDir: isDir})
			return []string{path}, nil
		}).AnyTimes()
}

func TestRun_Version(t *testing.T) {
	_, provider := newProvider(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "rerun version")
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_UsageError(t *testing.T) {
	m, provider := newProvider(t)

	var logged error
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err })

	exitCode := run(context.Background(), []string{"--", "make"}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
	require.Error(t, logged)
	assert.Contains(t, logged.Error(), "required flag(s)")
}

func TestRun_ChildExitCodeIsNotPropagated(t *testing.T) {
	for _, code := range []int{0, 1, 2, 127} {
		m, provider := newProvider(t)
		m.stat(map[string]int64{"src": 100, "out": 50})
		m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
		m.executor.EXPECT().Run(gomock.Any(), []string{"make"}).Return(code, nil)

		exitCode := run(context.Background(), []string{"-s", "src", "-t", "out", "--", "make"},
			new(bytes.Buffer), new(bytes.Buffer), provider)
		assert.Equal(t, 0, exitCode, "child exit code %d", code)
	}
}

func TestRun_SkipExitsZero(t *testing.T) {
	m, provider := newProvider(t)
	m.stat(map[string]int64{"src": 50, "out": 100})

	exitCode := run(context.Background(), []string{"-s", "src", "-t", "out", "--", "make"},
		new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_LaunchErrorExitsOne(t *testing.T) {
	m, provider := newProvider(t)
	m.stat(map[string]int64{"src": 100})
	m.logger.EXPECT().Info(gomock.Any())
	launchErr := errors.New("exec: not found")
	m.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(0, launchErr)
	m.logger.EXPECT().Error(launchErr)

	exitCode := run(context.Background(), []string{"-s", "src", "-t", "out", "--", "nope"},
		new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_Options(t *testing.T) {
	m, provider := newProvider(t)
	m.stat(map[string]int64{"src": 100}, "src")
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(1, nil)

	now := time.Unix(9_999, 0)
	m.toucher.EXPECT().Touch(filepath.Join(string(filepath.Separator), "src"), now).Return(nil)

	exitCode := run(context.Background(), []string{"-s", "src", "-t", "out", "--", "make"},
		new(bytes.Buffer), new(bytes.Buffer), provider,
		func(a *app.App) { a.WithClock(func() time.Time { return now }) },
	)
	assert.Equal(t, 0, exitCode)
}
