package cli

import (
	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/output"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	var term string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the term's meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			t, err := deps.App.Term(term)
			if err != nil {
				return err
			}
			meetings, err := deps.App.Meetings.List(t)
			if err != nil {
				return err
			}
			if len(meetings) == 0 {
				formatter.Info("No meetings found")
				return nil
			}

			formatter.MeetingListHeader(t)
			for _, m := range meetings {
				formatter.MeetingListItem(m)
			}
			return nil
		},
	}

	addTermFlag(cmd, &term)
	return cmd
}
