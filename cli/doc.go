// Package cli implements the command-line interface for mcpdocs.
//
// The cli package provides:
// - The serve command running the MCP server on stdio
// - Listing, showing and editing documents from a terminal
// - Printing the prompt templates offered to MCP clients
// - Markdown rendering and a searchable pager for document content
package cli
