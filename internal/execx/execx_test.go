package execx

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestRun_CapturesStdout(t *testing.T) {
	requireGit(t)

	out, err := Run(context.Background(), "", "git", "version")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out == "" {
		t.Error("Run() returned empty output for 'git version'")
	}
}

func TestRun_MissingBinary(t *testing.T) {
	_, err := Run(context.Background(), "", "execx-test-no-such-binary")
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("Run() error = %v, want ErrNotInstalled", err)
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	requireGit(t)

	_, err := Run(context.Background(), t.TempDir(), "git", "rev-parse", "--is-inside-work-tree")
	if err == nil {
		t.Fatal("Run() succeeded outside a repository, want error")
	}

	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Run() error type = %T, want *Error", err)
	}
	if cmdErr.ExitCode == 0 {
		t.Errorf("ExitCode = 0, want non-zero")
	}
	if cmdErr.Output == "" {
		t.Error("Output is empty, want captured stderr")
	}
}

func TestRun_HonorsDir(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	if _, err := Run(context.Background(), dir, "git", "init"); err != nil {
		t.Fatalf("git init: %v", err)
	}

	out, err := Run(context.Background(), dir, "git", "rev-parse", "--is-inside-work-tree")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out != "true" {
		t.Errorf("Run() output = %q, want true", out)
	}
}

func TestLookPath(t *testing.T) {
	if LookPath("execx-test-no-such-binary") {
		t.Error("LookPath() = true for a missing binary")
	}
}
