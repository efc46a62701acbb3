// Package git probes for a surrounding git repository. Hook
// installation only makes sense inside one.
package git

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot walks up from dir looking for a .git directory and returns
// the repository root.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("not in a git repository")
}

// InRepo reports whether dir is inside a git repository.
func InRepo(dir string) bool {
	_, err := FindRoot(dir)
	return err == nil
}
