package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordan-corbett-digital/gnomemode/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "gnome",
	Short:         "Spite-powered habit accountability with a garden gnome",
	Long:          "gnomemode is a local-first habit-accountability app: stake a wager, name a nemesis, check in daily and keep the garden alive.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newSetupCmd(),
		newCheckinCmd(),
		newStatusCmd(),
		newGoalsCmd(),
		newRitualCmd(),
		newQuestsCmd(),
		newShopCmd(),
		newInventoryCmd(),
		newInboxCmd(),
		newBoardCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
