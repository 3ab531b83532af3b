package cli

import (
	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/output"
)

func NewTermCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Show the current term and its ledger path",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := deps.App.Term("")
			if err != nil {
				return err
			}
			output.NewFormatter(cmd.OutOrStdout()).Term(t, deps.App.Ledgers.Path(t), deps.App.Ledgers.Exists(t))
			return nil
		},
	}
}
