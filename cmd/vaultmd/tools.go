package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// NewNoteInput contains parameters for creating or opening a note.
	NewNoteInput struct {
		Path string `json:"path" jsonschema:"Path of the note relative to the notes root; .md is appended when missing"`
	}

	// NewNoteOutput contains the result of creating or opening a note.
	NewNoteOutput struct {
		Path    string `json:"path"`
		Created bool   `json:"created"`
	}

	// SearchNotesInput contains parameters for searching notes.
	SearchNotesInput struct {
		Query string `json:"query,omitempty" jsonschema:"Search query; empty lists the most recently modified notes"`
	}

	// SearchResultItem is one search hit.
	SearchResultItem struct {
		Path    string `json:"path"`
		RelPath string `json:"relPath"`
		Line    int    `json:"line"`
		Text    string `json:"text"`
	}

	// SearchNotesOutput contains search results.
	SearchNotesOutput struct {
		Title   string             `json:"title"`
		Results []SearchResultItem `json:"results"`
	}

	// SyncNotesInput contains parameters for syncing. There are none.
	SyncNotesInput struct{}

	// SyncNotesOutput contains the terminal state of the sync pipeline.
	SyncNotesOutput struct {
		Outcome string `json:"outcome"`
		Synced  bool   `json:"synced"`
		Warning string `json:"warning,omitempty"`
		Detail  string `json:"detail,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "new_note",
		Description: "Create a note under the notes root, or locate it if it already exists. New notes start with a 'tags:' line. Paths escaping the notes root are rejected.",
	}, handleNewNote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_notes",
		Description: "Search note contents (smart-case, ripgrep-backed), or list the ten most recently modified notes when the query is empty.",
	}, handleSearchNotes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sync_notes",
		Description: "Synchronize the notes root through git: pull, stage, commit with a timestamped message, and push. Stops at the first failing step.",
	}, handleSyncNotes)
}
