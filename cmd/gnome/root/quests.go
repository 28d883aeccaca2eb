package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordan-corbett-digital/gnomemode/internal/engine"
	"github.com/jordan-corbett-digital/gnomemode/internal/gnome"
	"github.com/jordan-corbett-digital/gnomemode/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List and complete quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			printQuests(cmd, "Daily Quests", a.svc.Quests.Daily())
			fmt.Fprintln(cmd.OutOrStdout(), "")
			printQuests(cmd, "Special Quests", a.svc.Quests.Special())
			return nil
		},
	}
	cmd.AddCommand(newQuestDoneCmd())
	return cmd
}

func printQuests(cmd *cobra.Command, title string, quests []engine.Quest) {
	fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, title))
	if len(quests) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("None."))
		return
	}
	for _, q := range quests {
		reward := fmt.Sprintf("+%d XP, +%d %s", q.RewardXP, q.RewardCoins, ui.IconCoin)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s %s\n", ui.Checkbox(q.Completed), ui.Key.Render(q.Title), q.Description, ui.Muted.Render(reward))
		fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", ui.Muted.Render("id: "+q.ID))
	}
}

func newQuestDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a quest and claim its reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := a.svc.CompleteQuest(ctx, args[0])
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to do: quest missing or already complete."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Quest complete"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(res.Quest.Title, fmt.Sprintf("+%d XP, +%d coins", res.XPAwarded, res.CoinsAwarded)))
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s level %d\n", ui.IconSparkle, ui.BadgeLevelUp, a.svc.Progression.Level)
			}

			line := a.messenger.Generate(ctx, a.gnomeRequest(gnome.ContextQuestComplete))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel.Render(ui.PanelTitle.Render(a.svc.Profile.GnomeName+":")+" "+line))
			return nil
		},
	}
	return cmd
}
