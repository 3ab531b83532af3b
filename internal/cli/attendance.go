package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/output"
)

func NewAttendanceCmd(deps *Dependencies) *cobra.Command {
	var term string

	cmd := &cobra.Command{
		Use:   "attendance <YYYY-MM-DD>",
		Short: "Print who attended a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !membership.IsMeetingID(args[0]) {
				return fmt.Errorf("meeting id must look like YYYY-MM-DD, got %q", args[0])
			}
			t, err := deps.App.Term(term)
			if err != nil {
				return err
			}
			attendees, err := deps.App.Meetings.Attendance(t, args[0])
			if err != nil {
				return err
			}
			output.NewFormatter(cmd.OutOrStdout()).Attendees(attendees)
			return nil
		},
	}

	addTermFlag(cmd, &term)
	return cmd
}
