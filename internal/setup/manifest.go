package setup

import (
	"path/filepath"

	"github.com/stylekit/stylekit-cli/internal/jsonconfig"
	"github.com/stylekit/stylekit-cli/internal/project"
	"github.com/stylekit/stylekit-cli/internal/ui"
)

// lintStagedGlob returns the staged-file pattern formatted on commit.
func lintStagedGlob(fw project.Framework) string {
	switch fw {
	case project.Vue:
		return "*.{js,ts,vue,json,css,scss,md}"
	case project.React:
		return "*.{js,jsx,ts,tsx,json,css,scss,md}"
	case project.JavaScript:
		return "*.{js,ts,json,css,scss,md}"
	default:
		return "*.{js,ts,json,css,scss,md}"
	}
}

// manifestPatch is merged into package.json: format scripts, the husky
// prepare hook, and the lint-staged block.
func manifestPatch(fw project.Framework) jsonconfig.Document {
	return jsonconfig.Document{
		"scripts": map[string]any{
			"format":       "prettier --write .",
			"format:check": "prettier --check .",
			"prepare":      "husky",
		},
		"lint-staged": map[string]any{
			lintStagedGlob(fw): "prettier --write",
		},
	}
}

// patchManifest merges the script entries and lint-staged block into
// package.json, keeping every existing entry (script collisions are
// overwritten, siblings survive).
func (s *Setup) patchManifest() error {
	path := filepath.Join(s.proj.Dir, project.ManifestName)
	if err := s.mergeConfigFile(path, manifestPatch(s.proj.Framework)); err != nil {
		return err
	}
	ui.PrintIndent("Scripts: format, format:check, prepare")
	return nil
}
