// Package project detects a JavaScript project's framework and package
// manager from its manifest and lockfiles.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Framework is the detected frontend framework.
type Framework string

const (
	Vue        Framework = "vue"
	React      Framework = "react"
	JavaScript Framework = "javascript"
)

// PackageManager is the detected dependency installer.
type PackageManager string

const (
	Npm  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	Pnpm PackageManager = "pnpm"
)

// ManifestName is the project manifest filename.
const ManifestName = "package.json"

// frameworkProbes maps a dependency name to its framework, in detection
// order. Vue wins when both are declared.
var frameworkProbes = []struct {
	dep       string
	framework Framework
}{
	{"vue", Vue},
	{"react", React},
}

// Project describes a target directory after detection.
type Project struct {
	Dir            string
	Framework      Framework
	PackageManager PackageManager
}

// Detect inspects dir and returns its framework and package manager.
// A missing package.json is an error; everything else defaults.
func Detect(dir string) (*Project, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("target directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target %s is not a directory", dir)
	}

	manifest, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s found in %s", ManifestName, dir)
		}
		return nil, fmt.Errorf("failed to read %s: %w", ManifestName, err)
	}

	return &Project{
		Dir:            dir,
		Framework:      detectFramework(manifest),
		PackageManager: detectPackageManager(dir),
	}, nil
}

// ManifestPath returns the path to the project's package.json.
func (p *Project) ManifestPath() string {
	return filepath.Join(p.Dir, ManifestName)
}

// detectFramework classifies the project by probing dependencies and
// devDependencies in the raw manifest bytes.
func detectFramework(manifest []byte) Framework {
	for _, probe := range frameworkProbes {
		if gjson.GetBytes(manifest, "dependencies."+probe.dep).Exists() ||
			gjson.GetBytes(manifest, "devDependencies."+probe.dep).Exists() {
			return probe.framework
		}
	}
	return JavaScript
}

// detectPackageManager picks the installer from lockfile presence.
// No lockfile means npm.
func detectPackageManager(dir string) PackageManager {
	if fileExists(filepath.Join(dir, "yarn.lock")) {
		return Yarn
	}
	if fileExists(filepath.Join(dir, "pnpm-lock.yaml")) {
		return Pnpm
	}
	return Npm
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// InstallArgs returns the package manager invocation that installs the
// given packages as dev dependencies.
func (pm PackageManager) InstallArgs(packages []string) (string, []string) {
	switch pm {
	case Yarn:
		return "yarn", append([]string{"add", "--dev"}, packages...)
	case Pnpm:
		return "pnpm", append([]string{"add", "--save-dev"}, packages...)
	case Npm:
		return "npm", append([]string{"install", "--save-dev"}, packages...)
	default:
		panic(fmt.Sprintf("unknown package manager: %q", pm))
	}
}
