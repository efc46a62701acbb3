package runner

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	r := New("/tmp")
	if r == nil {
		t.Fatal("New() returned nil")
	}

	if r.Timeout != 5*time.Minute {
		t.Errorf("Default timeout = %v, want 5m", r.Timeout)
	}

	if r.WorkDir != "/tmp" {
		t.Errorf("WorkDir = %q, want /tmp", r.WorkDir)
	}

	if r.Env == nil {
		t.Error("Env map should be initialized")
	}
}

func TestRun_Success(t *testing.T) {
	r := New("")
	result, err := r.Run(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !result.Ok() {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}

	if !strings.Contains(result.Stdout, "hello") {
		t.Errorf("Stdout = %q, want to contain hello", result.Stdout)
	}
}

func TestRun_WorkDir(t *testing.T) {
	r := New(t.TempDir())
	result, err := r.Run(context.Background(), "pwd")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if strings.TrimSpace(result.Stdout) == "" {
		t.Error("Expected stdout output")
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	r := New("")
	result, err := r.Run(context.Background(), "sh", "-c", "exit 3")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Ok() {
		t.Error("Ok() = true for exit 3")
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
}

func TestRun_MissingBinary(t *testing.T) {
	r := New("")
	_, err := r.Run(context.Background(), "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestLookPath(t *testing.T) {
	if !LookPath("sh") {
		t.Error("LookPath(sh) = false")
	}
	if LookPath("definitely-not-a-real-binary-xyz") {
		t.Error("LookPath returned true for missing binary")
	}
}
