package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/domain/membership/usecases"
	"github.com/devbydaniel/minutes/internal/output"
)

func NewLsCmd(deps *Dependencies) *cobra.Command {
	var term string
	var state string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List members in the term's ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			t, err := deps.App.Term(term)
			if err != nil {
				return err
			}
			records, err := deps.App.Roster.List(t, state)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				formatter.Info("No members found")
				return nil
			}
			formatter.Ledger(records, deps.Config.IDWidth)
			return nil
		},
	}

	addTermFlag(cmd, &term)
	cmd.Flags().StringVarP(&state, "state", "s", "all", "Filter by state: "+strings.Join(usecases.StateFilters, ", "))
	return cmd
}
