// Package mcp implements the Model Context Protocol server for mcpdocs.
//
// The mcp package provides:
// - Tools for reading and editing documents in the store
// - Resources listing document ids and serving document content
// - Prompt templates for formatting and summarising a document
// - The cobra command that serves all of the above over stdio
package mcp
