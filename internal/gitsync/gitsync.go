// Package gitsync pushes and pulls the notes root through git.
//
// Sync is a strictly sequential, fail-fast pipeline: each git step runs
// only if the previous one succeeded, and the first failure is terminal.
// A later call starts over from the beginning; nothing is resumed.
package gitsync

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/vaultmd/vaultmd/internal/execx"
	"github.com/vaultmd/vaultmd/internal/notepath"
)

// commitPrefix tags every automatic commit message.
const commitPrefix = "Auto-sync notes: "

// commitTimeFormat renders the local timestamp embedded in the message.
const commitTimeFormat = "2006-01-02 15:04:05"

// Outcome is the terminal state of one sync invocation.
type Outcome int

const (
	// Success means pull, add, commit, and push all completed.
	Success Outcome = iota
	// NothingToSync means the working tree was clean after the pull. A
	// success-class outcome, not an error.
	NothingToSync
	// PushFailedLocalCommitted means the commit succeeded locally but the
	// push did not. Warning-class: the commit is not lost.
	PushFailedLocalCommitted
	// ToolMissing means the git binary is not installed.
	ToolMissing
	// DirMissing means the notes root does not exist or is not a directory.
	DirMissing
	// NotARepo means the notes root is not inside a git working tree, or
	// its state could not be read.
	NotARepo
	// PullFailed means git pull exited non-zero.
	PullFailed
	// AddFailed means git add exited non-zero.
	AddFailed
	// CommitFailed means git commit exited non-zero.
	CommitFailed
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "synced"
	case NothingToSync:
		return "nothing to sync"
	case PushFailedLocalCommitted:
		return "committed locally, push failed"
	case ToolMissing:
		return "git not installed"
	case DirMissing:
		return "notes directory missing"
	case NotARepo:
		return "not a git repository"
	case PullFailed:
		return "pull failed"
	case AddFailed:
		return "add failed"
	case CommitFailed:
		return "commit failed"
	}
	return "unknown"
}

// OK reports whether the outcome is success-class (Success or
// NothingToSync).
func (o Outcome) OK() bool {
	return o == Success || o == NothingToSync
}

// Warning reports whether the outcome should be surfaced as a warning
// rather than a hard error.
func (o Outcome) Warning() bool {
	return o == PushFailedLocalCommitted
}

// Report is the result of a sync run. Detail carries the captured output
// of the failing git command, when there is one.
type Report struct {
	Outcome Outcome
	Detail  string
}

// Sync runs the pipeline against root. Every git subprocess runs with its
// working directory set to root explicitly; the process-wide working
// directory is never touched, so concurrent unrelated work is unaffected.
func Sync(ctx context.Context, root string) Report {
	if !execx.LookPath("git") {
		return Report{Outcome: ToolMissing}
	}

	root = notepath.ExpandRoot(root)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return Report{Outcome: DirMissing, Detail: root}
	}

	git := func(args ...string) (string, error) {
		return execx.Run(ctx, root, "git", args...)
	}

	if _, err := git("rev-parse", "--is-inside-work-tree"); err != nil {
		return Report{Outcome: NotARepo, Detail: detail(err)}
	}

	if _, err := git("pull"); err != nil {
		return Report{Outcome: PullFailed, Detail: detail(err)}
	}

	status, err := git("status", "--porcelain")
	if err != nil {
		return Report{Outcome: NotARepo, Detail: detail(err)}
	}
	if status == "" {
		return Report{Outcome: NothingToSync}
	}

	if _, err := git("add", "."); err != nil {
		return Report{Outcome: AddFailed, Detail: detail(err)}
	}

	message := commitPrefix + time.Now().Format(commitTimeFormat)
	if _, err := git("commit", "-m", message); err != nil {
		return Report{Outcome: CommitFailed, Detail: detail(err)}
	}

	if _, err := git("push"); err != nil {
		return Report{Outcome: PushFailedLocalCommitted, Detail: detail(err)}
	}

	return Report{Outcome: Success}
}

func detail(err error) string {
	var cmdErr *execx.Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Output
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
