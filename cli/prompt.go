package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ka2n/mcpdocs/api"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var promptBuilders = map[string]func(docID string) string{
	"format":    api.FormatPrompt,
	"summarise": api.SummarisePrompt,
}

func promptNames() []string {
	names := lo.Keys(promptBuilders)
	slices.Sort(names)
	return names
}

func (a *app) promptCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "prompt <" + strings.Join(promptNames(), "|") + "> <doc_id>",
		Short:     "Print a prompt template for a document",
		Long:      "Print the prompt text MCP clients receive for the given template and document id",
		ValidArgs: promptNames(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return failure.New(InvalidArguments,
					failure.Message(fmt.Sprintf("prompt requires 2 arguments, but received %d", len(args))),
				)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := promptBuilders[args[0]]
			if !ok {
				return failure.New(UnknownPrompt,
					failure.Message(fmt.Sprintf("Unknown prompt %q, expected one of %s", args[0], strings.Join(promptNames(), ", "))),
					failure.Context{
						"prompt": args[0],
					},
				)
			}
			fmt.Fprint(cmd.OutOrStdout(), build(args[1]))
			return nil
		},
	}
}
