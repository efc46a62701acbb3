// Package jsonconfig loads, merges, and persists JSON configuration
// documents (.prettierrc, .eslintrc.json, package.json).
package jsonconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Document is the in-memory form of a JSON configuration file, as
// produced by encoding/json: nested map[string]any, []any, string,
// bool, float64.
type Document = map[string]any

// ErrMalformed reports that an existing config file did not parse as a
// JSON object. Load still returns an empty document in that case so the
// caller can decide whether to warn before overwriting.
var ErrMalformed = errors.New("existing config is not valid JSON")

// Load reads the document at path. A missing file yields an empty
// document and no error. A file that fails to parse yields an empty
// document and ErrMalformed (wrapped), so callers can surface the
// data-loss case without aborting.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %s", ErrMalformed, path)
	}
	return doc, nil
}

// Merge applies patch on top of existing and returns the result.
// Keys where both sides hold objects are merged recursively; everything
// else (scalars, arrays, and object-vs-non-object mismatches in either
// direction) is replaced by the patch value. Keys absent from the patch
// are kept. The inputs are not modified.
func Merge(existing, patch Document) Document {
	result := make(Document, len(existing))
	for k, v := range existing {
		result[k] = v
	}

	for k, patchVal := range patch {
		existingMap, existingIsMap := result[k].(map[string]any)
		patchMap, patchIsMap := patchVal.(map[string]any)

		if existingIsMap && patchIsMap {
			result[k] = Merge(existingMap, patchMap)
		} else {
			result[k] = patchVal
		}
	}

	return result
}

// Save serializes doc with two-space indentation and writes it to path
// atomically via a temp file in the same directory plus rename. Map keys
// marshal in sorted order, so saving the same document twice produces
// byte-identical files.
func Save(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".stylekit-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
