package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/stylekit/stylekit-cli/internal/project"
	"github.com/stylekit/stylekit-cli/internal/setup"
	"github.com/stylekit/stylekit-cli/internal/ui"
)

var (
	assumeYes   bool
	skipInstall bool
	skipHooks   bool
)

func initSetupFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to all prompts")
	cmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Skip the dependency install step")
	cmd.Flags().BoolVar(&skipHooks, "skip-hooks", false, "Skip git hook installation")
}

func runSetup(cmd *cobra.Command, args []string) error {
	dir := args[0]

	proj, err := project.Detect(dir)
	if err != nil {
		return err
	}

	opts := setup.Options{
		SkipInstall: skipInstall,
		SkipHooks:   skipHooks,
		Verbose:     verbose,
	}
	if !assumeYes {
		opts.Confirm = promptConfirm
	}

	ui.PrintStep("SETUP", fmt.Sprintf("Configuring %s", proj.Dir))

	if err := setup.New(proj, opts).Run(cmd.Context()); err != nil {
		ui.PrintError(err.Error())
		return fmt.Errorf("setup failed for %s", proj.Dir)
	}

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println(ui.Indent("Run the format script to format the whole project"))
	fmt.Println(ui.Indent("Commit the generated config files"))
	return nil
}

// promptConfirm asks a yes/no question on the terminal.
func promptConfirm(question string) bool {
	prompt := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		return false
	}
	return strings.ToLower(result) == "y"
}
