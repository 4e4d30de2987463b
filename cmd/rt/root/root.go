package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ritualist/internal/ui"
)

const Version = "0.1.0"

type rootOptions struct {
	dbPath      string
	catalogPath string
}

var opts rootOptions

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rt",
		Short:         "Ritualist: local-first habit and goal tracker",
		Long:          "Ritualist tracks daily rituals, goals and rewards with points, streaks and levels.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Database path (default ~/.ritualist.db)")
	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML catalog override")

	cmd.AddCommand(
		newStatusCmd(),
		newRitualCmd(),
		newAddCmd(),
		newDoCmd(),
		newRestoreCmd(),
		newListCmd(),
		newHistoryCmd(),
		newRewardsCmd(),
		newClaimCmd(),
		newBonusCmd(),
		newMoodCmd(),
		newAchievementsCmd(),
		newExportCmd(),
		newRunCmd(),
		newBoardCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
