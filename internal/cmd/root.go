package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verbose is a global flag for verbose output
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stylekit <project_directory>",
	Short: "stylekit - Prettier/ESLint/pre-commit bootstrapper for JS projects",
	Long: `stylekit configures formatting and linting for a JavaScript project.

Given a project directory it:
  1. Detects the framework (vue, react, plain javascript) from package.json
  2. Detects the package manager from the lockfile (yarn, pnpm, npm)
  3. Installs prettier, eslint integration, husky and lint-staged
  4. Creates or merges .prettierrc, .prettierignore and the ESLint config
  5. Adds format scripts and a lint-staged block to package.json
  6. Installs a git pre-commit hook that formats staged files`,
	Args:          cobra.ExactArgs(1),
	RunE:          runSetup,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	initSetupFlags(rootCmd)
}
