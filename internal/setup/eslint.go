package setup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stylekit/stylekit-cli/internal/jsonconfig"
	"github.com/stylekit/stylekit-cli/internal/project"
	"github.com/stylekit/stylekit-cli/internal/ui"
)

// eslintJSONFiles are the data-based config filenames, in search order.
// The first one found is merged.
var eslintJSONFiles = []string{".eslintrc", ".eslintrc.json"}

// eslintScriptFiles are config formats this tool cannot merge. They are
// left untouched; the desired settings are printed for manual
// application instead.
var eslintScriptFiles = []string{".eslintrc.js", ".eslintrc.cjs"}

// eslintPatch is the baseline linter configuration plus the framework
// preset. plugin:prettier/recommended goes last so it disables any
// stylistic rules the presets enable.
func eslintPatch(fw project.Framework) jsonconfig.Document {
	extends := []any{}
	switch fw {
	case project.Vue:
		extends = append(extends, "plugin:vue/vue3-recommended")
	case project.React:
		extends = append(extends, "plugin:react/recommended")
	case project.JavaScript:
		extends = append(extends, "eslint:recommended")
	}
	extends = append(extends, "plugin:prettier/recommended")

	return jsonconfig.Document{
		"env": map[string]any{
			"browser": true,
			"es2021":  true,
			"node":    true,
		},
		"extends": extends,
	}
}

// writeESLintConfig merges the baseline into the first recognized config
// file, or creates .eslintrc.json when none exists. Script-based configs
// are not modified.
func (s *Setup) writeESLintConfig() error {
	patch := eslintPatch(s.proj.Framework)

	for _, name := range eslintJSONFiles {
		path := filepath.Join(s.proj.Dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if !s.confirm(fmt.Sprintf("Merge linter settings into existing %s?", name)) {
			ui.PrintIndent(fmt.Sprintf("Skipped %s", name))
			return nil
		}
		return s.mergeConfigFile(path, patch)
	}

	for _, name := range eslintScriptFiles {
		if _, err := os.Stat(filepath.Join(s.proj.Dir, name)); err != nil {
			continue
		}
		// Script configs can contain arbitrary code; rewriting one would
		// destroy it. Hand the settings to the user instead.
		ui.PrintWarn(fmt.Sprintf("%s is script-based and was not modified", name))
		ui.PrintIndent("Apply these settings manually:")
		pretty, err := json.MarshalIndent(patch, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render linter settings: %w", err)
		}
		fmt.Println(string(pretty))
		return nil
	}

	return s.mergeConfigFile(filepath.Join(s.proj.Dir, ".eslintrc.json"), patch)
}
