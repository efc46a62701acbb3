package jsonconfig

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMerge_AddsNewKeys(t *testing.T) {
	existing := Document{"semi": false}
	patch := Document{"tabWidth": float64(2)}

	got := Merge(existing, patch)

	want := Document{"semi": false, "tabWidth": float64(2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

func TestMerge_PreservesSiblingKeys(t *testing.T) {
	existing := Document{"a": map[string]any{"x": float64(1)}}
	patch := Document{"a": map[string]any{"y": float64(2)}}

	got := Merge(existing, patch)

	want := Document{"a": map[string]any{"x": float64(1), "y": float64(2)}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

func TestMerge_TypeMismatchOverwrites(t *testing.T) {
	tests := []struct {
		name     string
		existing Document
		patch    Document
		want     Document
	}{
		{
			name:     "object replaced by scalar",
			existing: Document{"a": map[string]any{"x": float64(1)}},
			patch:    Document{"a": "scalar"},
			want:     Document{"a": "scalar"},
		},
		{
			name:     "scalar replaced by object",
			existing: Document{"a": "scalar"},
			patch:    Document{"a": map[string]any{"x": float64(1)}},
			want:     Document{"a": map[string]any{"x": float64(1)}},
		},
		{
			name:     "arrays replaced wholesale",
			existing: Document{"extends": []any{"eslint:recommended"}},
			patch:    Document{"extends": []any{"plugin:prettier/recommended"}},
			want:     Document{"extends": []any{"plugin:prettier/recommended"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.existing, tt.patch)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	existing := Document{
		"env":   map[string]any{"node": true},
		"rules": map[string]any{"semi": "error"},
	}
	patch := Document{
		"env":     map[string]any{"browser": true},
		"extends": []any{"plugin:prettier/recommended"},
	}

	once := Merge(existing, patch)
	twice := Merge(once, patch)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge not idempotent: %v != %v", once, twice)
	}
}

func TestMerge_EmptyPatchIsNoOp(t *testing.T) {
	existing := Document{"a": map[string]any{"x": float64(1)}}

	got := Merge(existing, Document{})

	if !reflect.DeepEqual(got, existing) {
		t.Errorf("Merge() = %v, want %v", got, existing)
	}
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	existing := Document{"a": map[string]any{"x": float64(1)}}
	patch := Document{"a": map[string]any{"y": float64(2)}}

	_ = Merge(existing, patch)

	if _, ok := existing["a"].(map[string]any)["y"]; ok {
		t.Error("Merge modified the existing document")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(doc) != 0 {
		t.Errorf("Load() = %v, want empty document", doc)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want ErrMalformed")
	}
	if len(doc) != 0 {
		t.Errorf("Load() = %v, want empty document", doc)
	}
}

func TestSave_Deterministic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	doc := Document{
		"singleQuote": true,
		"semi":        false,
		"tabWidth":    float64(2),
	}

	if err := Save(path, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := Save(path, doc); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("repeated saves differ:\n%s\nvs\n%s", first, second)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Save(filepath.Join(dir, "config.json"), Document{"a": true}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.json" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestLoadMergeSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"a":{"x":1},"keep":true}`), 0644); err != nil {
		t.Fatal(err)
	}

	existing, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	merged := Merge(existing, Document{"a": map[string]any{"y": float64(2)}})
	if err := Save(path, merged); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Document{
		"a":    map[string]any{"x": float64(1), "y": float64(2)},
		"keep": true,
	}
	if !reflect.DeepEqual(doc, want) {
		t.Errorf("merged file = %v, want %v", doc, want)
	}
}

func TestLoadMergeSave_MalformedExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	existing, err := Load(path)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Load() error = %v, want ErrMalformed", err)
	}
	if err := Save(path, Merge(existing, Document{"semi": false})); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if doc["semi"] != false {
		t.Errorf("merged file = %v, want patch only", doc)
	}
}
