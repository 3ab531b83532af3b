package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewQuorumCmd(deps *Dependencies) *cobra.Command {
	var term string

	cmd := &cobra.Command{
		Use:   "quorum",
		Short: "Print the number of members needed for quorum",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := deps.App.Term(term)
			if err != nil {
				return err
			}
			quorum, err := deps.App.Roster.Quorum(t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), quorum)
			return nil
		},
	}

	addTermFlag(cmd, &term)
	return cmd
}
