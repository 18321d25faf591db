// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/pylot-dev/pylot/internal/config"
	"github.com/pylot-dev/pylot/internal/manifest"
	"github.com/pylot-dev/pylot/internal/venv"

	"github.com/charmbracelet/log"
)

type (
	// Options configures a Launcher. Config must be non-nil; everything else
	// has production defaults.
	Options struct {
		// Config is the effective configuration.
		Config *config.Config
		// Root is the project root; empty means the current directory.
		Root string
		// Args are passed through to the application after the entry point.
		Args []string
		// SkipInstall skips the dependency-installation step.
		SkipInstall bool
		// Strict aborts before launch when installation fails, overriding
		// install.continue_on_failure.
		Strict bool
		// Logger receives diagnostics; defaults to stderr.
		Logger *log.Logger
		// Stdout, Stderr, Stdin override the child's streams (tests).
		Stdout io.Writer
		Stderr io.Writer
		Stdin  io.Reader
		// GOOS overrides platform detection (tests).
		GOOS string
		// BaseEnviron overrides the base environment (tests); defaults to
		// os.Environ().
		BaseEnviron []string
	}

	// Launcher runs the whole startup sequence:
	// locate → activate → hooks → install → launch.
	Launcher struct {
		opts Options
	}
)

// NewLauncher creates a Launcher, filling in defaults for unset options.
func NewLauncher(opts Options) *Launcher {
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pylot"})
	}
	if opts.Root == "" {
		if cwd, err := os.Getwd(); err == nil {
			opts.Root = cwd
		}
	}
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if opts.BaseEnviron == nil {
		opts.BaseEnviron = os.Environ()
	}
	return &Launcher{opts: opts}
}

// Launch executes the startup sequence and returns the terminal Result.
// The application's exit code is passed through; stage failures yield a
// non-zero Result with the failing stage's error.
func (l *Launcher) Launch(ctx context.Context) *Result {
	cfg := l.opts.Config
	logger := l.opts.Logger

	// Locate: probe candidates in order, first match wins.
	candidates := make([]venv.Candidate, 0, len(cfg.Candidates))
	for _, c := range cfg.Candidates {
		candidates = append(candidates, venv.Candidate(c))
	}
	outcome := venv.Locate(l.opts.Root, candidates, l.opts.GOOS)

	// Activate: build the execution environment. Absence is advisory, a
	// corrupt descriptor is a warning; neither aborts the sequence.
	env, err := venv.Activate(outcome, l.opts.BaseEnviron, l.opts.GOOS)
	switch {
	case err != nil:
		logger.Warn("virtual environment unusable, falling back to system environment", "error", err)
	case !outcome.Found():
		logger.Warn("no virtual environment found, continuing with the system environment")
	default:
		logger.Debug("virtual environment activated", "root", outcome.Descriptor().Root)
	}

	execCtx := NewExecutionContext(ctx, env, l.opts.Root)
	execCtx.Verbose = cfg.UI.Verbose
	if l.opts.Stdout != nil {
		execCtx.Stdout = l.opts.Stdout
	}
	if l.opts.Stderr != nil {
		execCtx.Stderr = l.opts.Stderr
	}
	if l.opts.Stdin != nil {
		execCtx.Stdin = l.opts.Stdin
	}

	python, err := execCtx.ResolveInterpreter(cfg.Interpreter)
	if err != nil {
		return NewErrorResult(1, err)
	}
	logger.Debug("interpreter resolved", "python", python)

	if err := RunHook(execCtx, HookPreInstall, cfg.Hooks.PreInstall); err != nil {
		return NewErrorResult(1, err)
	}

	if res := l.install(execCtx, python); res != nil {
		return res
	}

	if err := RunHook(execCtx, HookPreLaunch, cfg.Hooks.PreLaunch); err != nil {
		return NewErrorResult(1, err)
	}

	runner := &Runner{LogFile: cfg.LogFile}
	return runner.Run(execCtx, python, cfg.Entrypoint, l.opts.Args)
}

// install runs the dependency-installation stage. It returns nil when the
// sequence should continue and a terminal Result when it must abort.
func (l *Launcher) install(execCtx *ExecutionContext, python string) *Result {
	cfg := l.opts.Config
	logger := l.opts.Logger

	if l.opts.SkipInstall {
		logger.Debug("dependency installation skipped")
		return nil
	}

	strict := l.opts.Strict || !cfg.Install.ContinueOnFailure

	m, err := manifest.Resolve(l.opts.Root, cfg.Manifest)
	if err != nil {
		// Only an explicitly configured manifest can fail to resolve.
		if strict {
			return NewErrorResult(1, err)
		}
		logger.Warn("dependency manifest missing, skipping install", "error", err)
		return nil
	}
	if !m.Found() {
		logger.Debug("no dependency manifest found, nothing to install")
		return nil
	}

	installer := &Installer{Command: cfg.Install.Command}
	res := installer.Install(execCtx, python, m)
	if res.Success() {
		return nil
	}

	if strict {
		if res.Error != nil {
			return res
		}
		return NewErrorResult(res.ExitCode, &InstallFailedError{ExitCode: res.ExitCode})
	}

	// Default policy: an install failure does not block the launch.
	logger.Warn("dependency installation failed, launching anyway",
		"exit_code", res.ExitCode, "error", res.Error)
	return nil
}
