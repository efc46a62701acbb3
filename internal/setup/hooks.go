package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stylekit/stylekit-cli/internal/git"
	"github.com/stylekit/stylekit-cli/internal/runner"
	"github.com/stylekit/stylekit-cli/internal/ui"
)

const (
	hooksDir      = ".husky"
	preCommitFile = "pre-commit"
)

// preCommitScript is the hook body. husky v9 removed the add command,
// so the hook file is written directly instead of shelling out for it.
const preCommitScript = "npx lint-staged\n"

// installHooks wires lint-staged into a git pre-commit hook via husky.
// Every failure here is reported and skipped: the project is already
// formatted and configured, hooks are a convenience on top.
func (s *Setup) installHooks(ctx context.Context) {
	ui.PrintStep("HOOKS", "Installing git pre-commit hook")

	if !git.InRepo(s.proj.Dir) {
		ui.PrintWarn("Not a git repository, skipping hook setup")
		ui.PrintIndent("Run 'git init' and then 'npx husky' to enable hooks")
		return
	}

	if err := os.MkdirAll(filepath.Join(s.proj.Dir, hooksDir), 0755); err != nil {
		ui.PrintWarn(fmt.Sprintf("Failed to create %s directory: %v", hooksDir, err))
		return
	}

	if !runner.LookPath("npx") {
		ui.PrintWarn("npx not found, skipping hook setup")
		return
	}

	// The bare husky command points core.hooksPath at .husky, same as
	// what the prepare script runs after installs.
	if !s.runHookCommand(ctx, "husky") {
		return
	}

	if err := s.writePreCommitHook(); err != nil {
		ui.PrintWarn(fmt.Sprintf("Failed to write pre-commit hook: %v", err))
		return
	}

	ui.PrintOK("pre-commit hook installed (runs lint-staged)")
}

// writePreCommitHook writes .husky/pre-commit with the lint-staged
// invocation. The file must be executable for git to run it.
func (s *Setup) writePreCommitHook() error {
	path := filepath.Join(s.proj.Dir, hooksDir, preCommitFile)
	if err := os.WriteFile(path, []byte(preCommitScript), 0755); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// runHookCommand runs one hook-manager command through npx, reporting
// failures without aborting.
func (s *Setup) runHookCommand(ctx context.Context, args ...string) bool {
	result, err := s.runner.Run(ctx, "npx", args...)
	if err != nil {
		ui.PrintWarn(fmt.Sprintf("npx %v failed: %v", args, err))
		return false
	}
	if !result.Ok() {
		ui.PrintWarn(fmt.Sprintf("npx %v exited with code %d: %s", args, result.ExitCode, result.Stderr))
		return false
	}
	return true
}
