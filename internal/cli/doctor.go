package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the minutes directory and ledgers are in place",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(cmd.OutOrStdout())
			ok := true

			if info, err := os.Stat(deps.Config.MinutesDir); err != nil || !info.IsDir() {
				f.SetupCheck("Minutes directory", false, deps.Config.MinutesDir+" not found. Set MINUTES_DIR or minutes_dir in config")
				ok = false
			} else {
				f.SetupCheck("Minutes directory", true, deps.Config.MinutesDir)
			}

			t, err := deps.App.Term("")
			if err != nil {
				return err
			}
			f.SetupCheck("Current term", true, t.String())

			switch {
			case deps.App.Ledgers.Exists(t):
				f.SetupCheck("Ledger", true, deps.App.Ledgers.Path(t))
				if err := checkJournal(deps, t); err != nil {
					f.SetupCheck("Journal", false, err.Error()+". Run minutes reconcile")
					ok = false
				} else {
					f.SetupCheck("Journal", true, deps.App.Journal.Path(t))
				}
			case deps.App.Ledgers.Exists(t.Prior()):
				f.SetupCheck("Ledger", true, fmt.Sprintf("will be seeded from %s on first update", t.Prior()))
			default:
				f.SetupCheck("Ledger", false, fmt.Sprintf("neither %s nor %s has a ledger; create %s by hand", t, t.Prior(), deps.App.Ledgers.Path(t)))
				ok = false
			}

			if deps.Config.AnswersFile != "" {
				if _, err := os.Stat(deps.Config.AnswersFile); err != nil {
					f.SetupCheck("Answers file", false, deps.Config.AnswersFile+" not readable")
					ok = false
				} else {
					f.SetupCheck("Answers file", true, deps.Config.AnswersFile)
				}
			}
			f.SetupCheck("Prompt mode", true, deps.Config.Interactive)

			if ok {
				f.Success("\nAll checks passed. Ready to update!")
			} else {
				f.Warning("\nSome checks failed.")
			}
			return nil
		},
	}
}

func checkJournal(deps *Dependencies, t membership.Term) error {
	_, digest, err := deps.App.Ledgers.LoadWithDigest(t)
	if err != nil {
		return err
	}
	state, err := deps.App.Journal.Load(t)
	if err != nil {
		return err
	}
	return state.Reconcile(digest)
}
