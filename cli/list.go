package cli

import (
	"encoding/json"
	"fmt"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List document ids",
		Long:  "Display the ids of all documents in the order they were seeded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			ids := store.ListIDs()
			out := cmd.OutOrStdout()

			if asJSON {
				b, err := json.Marshal(ids)
				if err != nil {
					return failure.Wrap(err)
				}
				fmt.Fprintln(out, string(b))
				return nil
			}

			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print ids as a JSON array")
	return cmd
}
