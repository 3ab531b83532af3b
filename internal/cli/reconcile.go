package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/output"
)

func NewReconcileCmd(deps *Dependencies) *cobra.Command {
	var term string
	var through string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Accept the ledger on disk as the term's current state",
		Long: "Rewrite the term's journal to match its ledger.\n" +
			"Run this after creating or editing a ledger by hand. Meetings dated on or before\n" +
			"--applied-through are treated as already counted; later ones are counted by the next update.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			t, err := deps.App.Term(term)
			if err != nil {
				return err
			}
			state, err := deps.App.Reconcile.Execute(t, through)
			if err != nil {
				return err
			}
			formatter.Success(fmt.Sprintf("Reconciled %s with %d meeting(s) counted", t, len(state.Applied)))
			return nil
		},
	}

	addTermFlag(cmd, &term)
	cmd.Flags().StringVar(&through, "applied-through", "", "Last meeting (YYYY-MM-DD) already reflected in the ledger")
	return cmd
}
