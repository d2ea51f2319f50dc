package main

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vaultmd/vaultmd/internal/gitsync"
	"github.com/vaultmd/vaultmd/internal/search"
)

func handleNewNote(ctx context.Context, req *mcp.CallToolRequest, input NewNoteInput) (*mcp.CallToolResult, NewNoteOutput, error) {
	path := strings.TrimSpace(input.Path)
	absPath, created, err := noteVault.EnsureNote(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, NewNoteOutput{}, err
	}

	return nil, NewNoteOutput{Path: absPath, Created: created}, nil
}

func handleSearchNotes(ctx context.Context, req *mcp.CallToolRequest, input SearchNotesInput) (*mcp.CallToolResult, SearchNotesOutput, error) {
	query := strings.TrimSpace(input.Query)

	results, err := searchService.Search(ctx, query)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SearchNotesOutput{}, err
	}

	items := []SearchResultItem{}
	for _, r := range results {
		items = append(items, SearchResultItem{
			Path:    r.Path,
			RelPath: r.RelPath,
			Line:    r.Line,
			Text:    r.Text,
		})
	}

	return nil, SearchNotesOutput{
		Title:   search.Title(query),
		Results: items,
	}, nil
}

func handleSyncNotes(ctx context.Context, req *mcp.CallToolRequest, input SyncNotesInput) (*mcp.CallToolResult, SyncNotesOutput, error) {
	report := gitsync.Sync(ctx, syncRoot)

	out := SyncNotesOutput{
		Outcome: report.Outcome.String(),
		Synced:  report.Outcome.OK(),
		Detail:  report.Detail,
	}

	switch {
	case report.Outcome.OK():
		return nil, out, nil
	case report.Outcome.Warning():
		out.Warning = report.Outcome.String()
		return nil, out, nil
	default:
		return &mcp.CallToolResult{IsError: true}, out, nil
	}
}
