package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/devbydaniel/minutes/config"
	"github.com/devbydaniel/minutes/internal/app"
	"github.com/devbydaniel/minutes/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
	Level  zap.AtomicLevel
	Stdin  *os.File
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "minutes",
		Short: "Keep the board membership ledger in step with meeting minutes",
		Long: "A CLI tool that reads the attendance section of each meeting's minutes,\n" +
			"tracks attendance towards board eligibility, and rewrites the term's membership ledger.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				deps.Level.SetLevel(zapcore.DebugLevel)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if deps.App != nil && deps.App.Logger != nil {
				_ = deps.App.Logger.Sync()
			}
		},
	}

	rootCmd.Version = version.Current().Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(NewUpdateCmd(deps))
	rootCmd.AddCommand(NewSeedCmd(deps))
	rootCmd.AddCommand(NewReconcileCmd(deps))
	rootCmd.AddCommand(NewLsCmd(deps))
	rootCmd.AddCommand(NewQuorumCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewAttendanceCmd(deps))
	rootCmd.AddCommand(NewTermCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}

func addTermFlag(cmd *cobra.Command, term *string) {
	cmd.Flags().StringVarP(term, "term", "t", "", "Term as <year>/<Fall|Spring|Summer> (default: current term)")
}
