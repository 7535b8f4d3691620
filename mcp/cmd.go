package mcp

import (
	"github.com/spf13/cobra"
)

// ServerFunc builds the server the command runs.
// It is called after flags are parsed.
type ServerFunc func() (*Server, error)

// Command returns the MCP server command
func Command(newServer ServerFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"mcp"},
		Short:   "Start MCP server on stdio",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := newServer()
			if err != nil {
				return err
			}
			return server.Run()
		},
	}
}
