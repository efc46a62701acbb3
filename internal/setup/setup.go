// Package setup runs the formatting/linting bootstrap sequence against a
// target project: dependency install, config file merging, hook install.
package setup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stylekit/stylekit-cli/internal/project"
	"github.com/stylekit/stylekit-cli/internal/runner"
	"github.com/stylekit/stylekit-cli/internal/ui"
)

// basePackages is the fixed dev-dependency set every project gets.
var basePackages = []string{
	"prettier",
	"eslint",
	"eslint-config-prettier",
	"eslint-plugin-prettier",
	"husky",
	"lint-staged",
}

// Options controls which steps run and how conflicts are resolved.
type Options struct {
	SkipInstall bool
	SkipHooks   bool
	Verbose     bool

	// Confirm is asked before a destructive or surprising action, such
	// as rewriting a malformed config file. A nil Confirm answers yes.
	Confirm func(question string) bool
}

// Setup bootstraps one project. Steps run strictly in sequence; two
// concurrent invocations against the same directory would race on the
// config files, which is acceptable for a one-shot tool.
type Setup struct {
	proj   *project.Project
	runner *runner.Runner
	opts   Options
}

// New creates a Setup for the detected project.
func New(proj *project.Project, opts Options) *Setup {
	return &Setup{
		proj:   proj,
		runner: runner.New(proj.Dir),
		opts:   opts,
	}
}

// Run executes the full sequence. Install and config-file failures abort;
// hook failures are reported and the run continues best-effort.
func (s *Setup) Run(ctx context.Context) error {
	ui.PrintInfo(fmt.Sprintf("Detected framework: %s", s.proj.Framework))
	ui.PrintInfo(fmt.Sprintf("Detected package manager: %s", s.proj.PackageManager))

	if !s.opts.SkipInstall {
		if err := s.installDependencies(ctx); err != nil {
			return err
		}
	}

	if err := s.writePrettierConfig(); err != nil {
		return err
	}
	if err := s.writePrettierIgnore(); err != nil {
		return err
	}
	if err := s.writeESLintConfig(); err != nil {
		return err
	}
	if err := s.patchManifest(); err != nil {
		return err
	}

	if !s.opts.SkipHooks {
		s.installHooks(ctx)
	}

	ui.PrintDone("Project is set up")
	return nil
}

// confirm asks the configured prompt, defaulting to yes when none is set.
func (s *Setup) confirm(question string) bool {
	if s.opts.Confirm == nil {
		return true
	}
	return s.opts.Confirm(question)
}

// packages returns the full dev-dependency set for the project's
// framework.
func (s *Setup) packages() []string {
	pkgs := append([]string{}, basePackages...)
	switch s.proj.Framework {
	case project.Vue:
		pkgs = append(pkgs, "eslint-plugin-vue")
	case project.React:
		pkgs = append(pkgs, "eslint-plugin-react")
	case project.JavaScript:
		// no framework plugin
	}
	return pkgs
}

// installDependencies runs the package manager's dev install. A failure
// here aborts the whole run: every later step assumes the tools exist.
func (s *Setup) installDependencies(ctx context.Context) error {
	pkgs := s.packages()
	name, args := s.proj.PackageManager.InstallArgs(pkgs)

	ui.PrintStep("INSTALL", fmt.Sprintf("Installing dev dependencies with %s", name))
	for _, pkg := range pkgs {
		ui.PrintIndent(pkg)
	}
	if s.opts.Verbose {
		ui.PrintInfo(fmt.Sprintf("Running: %s %s", name, strings.Join(args, " ")))
	}

	if !runner.LookPath(name) {
		return fmt.Errorf("%s not found: please install it first", name)
	}

	result, err := s.runner.Run(ctx, name, args...)
	if err != nil {
		return fmt.Errorf("dependency install failed: %w", err)
	}
	if !result.Ok() {
		return fmt.Errorf("%s exited with code %d: %s", name, result.ExitCode, result.Stderr)
	}

	ui.PrintOK(fmt.Sprintf("Dependencies installed in %s", result.Duration.Round(100*time.Millisecond)))
	return nil
}
