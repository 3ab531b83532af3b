package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/output"
)

func NewSeedCmd(deps *Dependencies) *cobra.Command {
	var term string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Start a term's ledger from the previous term",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			t, err := deps.App.Term(term)
			if err != nil {
				return err
			}
			prior, err := deps.App.Seed.Execute(t)
			if err != nil {
				return err
			}
			formatter.Success(fmt.Sprintf("Seeded %s from %s (%s)", t, prior, deps.App.Ledgers.Path(t)))
			return nil
		},
	}

	addTermFlag(cmd, &term)
	return cmd
}
