package setup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stylekit/stylekit-cli/internal/jsonconfig"
	"github.com/stylekit/stylekit-cli/internal/project"
	"github.com/stylekit/stylekit-cli/internal/ui"
)

const (
	prettierConfigFile = ".prettierrc"
	prettierIgnoreFile = ".prettierignore"
)

// prettierIgnore is written verbatim, replacing any existing ignore
// file. The lockfiles are listed for all supported package managers so
// switching managers never reintroduces them.
const prettierIgnore = `node_modules/
dist/
build/
coverage/
.husky/
package-lock.json
yarn.lock
pnpm-lock.yaml
`

// prettierBase is the formatter configuration every project gets.
func prettierBase() jsonconfig.Document {
	return jsonconfig.Document{
		"arrowParens":   "avoid",
		"printWidth":    float64(100),
		"semi":          false,
		"singleQuote":   true,
		"tabWidth":      float64(2),
		"trailingComma": "es5",
	}
}

// writePrettierConfig merges the base formatter settings into .prettierrc,
// creating it when absent. Vue projects additionally get
// vueIndentScriptAndStyle so <script>/<style> blocks indent.
func (s *Setup) writePrettierConfig() error {
	patch := prettierBase()
	if s.proj.Framework == project.Vue {
		patch["vueIndentScriptAndStyle"] = true
	}

	path := filepath.Join(s.proj.Dir, prettierConfigFile)
	return s.mergeConfigFile(path, patch)
}

// writePrettierIgnore overwrites .prettierignore with the fixed list.
func (s *Setup) writePrettierIgnore() error {
	path := filepath.Join(s.proj.Dir, prettierIgnoreFile)
	if err := os.WriteFile(path, []byte(prettierIgnore), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", prettierIgnoreFile, err)
	}
	ui.PrintOK(fmt.Sprintf("%s written", prettierIgnoreFile))
	return nil
}

// mergeConfigFile merges patch into the file at path, asking before
// replacing a file whose contents did not parse (the old contents are
// lost in that case). The file is read exactly once.
func (s *Setup) mergeConfigFile(path string, patch jsonconfig.Document) error {
	name := filepath.Base(path)

	existing, err := jsonconfig.Load(path)
	malformed := errors.Is(err, jsonconfig.ErrMalformed)
	if err != nil && !malformed {
		return err
	}

	if malformed {
		ui.PrintWarn(fmt.Sprintf("%s exists but is not valid JSON", name))
		if !s.confirm(fmt.Sprintf("Replace %s (current contents will be lost)?", name)) {
			ui.PrintIndent(fmt.Sprintf("Skipped %s", name))
			return nil
		}
	}

	if err := jsonconfig.Save(path, jsonconfig.Merge(existing, patch)); err != nil {
		return err
	}

	if malformed {
		ui.PrintWarn(fmt.Sprintf("%s replaced (previous contents were not valid JSON)", name))
	} else {
		ui.PrintOK(fmt.Sprintf("%s updated", name))
	}
	return nil
}
