package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestNotifier_SeverityRouting(t *testing.T) {
	var out, errOut bytes.Buffer
	n := NewNotifier(&out, &errOut, false)

	n.Info("created %s", "a.md")
	n.Warn("push failed")
	n.Error("not a repository")
	n.Title("Recent Notes")
	n.Line("%s:%d: %s", "a.md", 3, "text")

	stdout := out.String()
	stderr := errOut.String()

	for _, want := range []string{"created a.md", "Recent Notes", "a.md:3: text"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	for _, want := range []string{"Warning: push failed", "Error: not a repository"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
	if strings.Contains(stdout, "push failed") {
		t.Error("warning leaked to stdout")
	}
}

func TestNotifier_DimSkipsEmpty(t *testing.T) {
	var out, errOut bytes.Buffer
	n := NewNotifier(&out, &errOut, false)

	n.Dim("")
	if errOut.Len() != 0 {
		t.Errorf("Dim(\"\") wrote output: %q", errOut.String())
	}

	n.Dim("detail")
	if !strings.Contains(errOut.String(), "detail") {
		t.Errorf("Dim() output missing detail: %q", errOut.String())
	}
}
