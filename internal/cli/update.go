package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/app"
	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/domain/membership/usecases"
	"github.com/devbydaniel/minutes/internal/output"
)

func NewUpdateCmd(deps *Dependencies) *cobra.Command {
	var term string
	var dryRun bool
	var nonInteractive bool
	var answersFile string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the membership ledger from the term's minutes",
		Long: "Recompute the membership ledger after a meeting.\n" +
			"Members who missed the latest meeting are removed automatically; members who\n" +
			"reached the attendance threshold or are new are asked whether they want to join.\n" +
			"Use --non-interactive (or an answers file) when running unattended.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			t, err := deps.App.Term(term)
			if err != nil {
				return err
			}
			resolver, err := deps.App.Resolver(app.ResolverOptions{
				NonInteractive: nonInteractive,
				AnswersFile:    answersFile,
				In:             deps.Stdin,
				Out:            cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			result, err := deps.App.Update.Execute(&usecases.UpdateOptions{
				Term:     t,
				Resolver: resolver,
				DryRun:   dryRun,
			})
			if errors.Is(err, membership.ErrInsufficientHistory) {
				msg := err.Error() + "; skipping update"
				if result != nil && result.Seeded {
					msg += fmt.Sprintf(" (ledger was seeded from %s)", t.Prior())
				}
				formatter.Warning(msg)
				return nil
			}
			if err != nil {
				return err
			}

			formatter.UpdateResult(result)
			return nil
		},
	}

	addTermFlag(cmd, &term)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the result without writing the ledger")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Answer \"no\" to every join decision")
	cmd.Flags().StringVar(&answersFile, "answers", "", "YAML file of member: true|false answers")

	return cmd
}
