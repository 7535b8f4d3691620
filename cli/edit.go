package cli

import (
	"fmt"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

func (a *app) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <doc_id> <old_string> <new_string>",
		Short: "Replace text in a document and print the result",
		Long: `Replace every occurrence of old_string with new_string in the document and
print the updated content. Matching is exact, including whitespace.
The change only lives for this invocation.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return failure.New(InvalidArguments,
					failure.Message(fmt.Sprintf("edit requires 3 arguments, but received %d", len(args))),
				)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			docID := args[0]
			if err := store.Edit(docID, args[1], args[2]); err != nil {
				return failure.Wrap(err)
			}

			content, err := store.Read(docID)
			if err != nil {
				return failure.Wrap(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}
}
