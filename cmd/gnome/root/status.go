package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordan-corbett-digital/gnomemode/internal/engine"
	"github.com/jordan-corbett-digital/gnomemode/internal/gnome"
	"github.com/jordan-corbett-digital/gnomemode/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show garden, progression and next check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := a.svc.Progression
			info := engine.CalculateLevel(p.XP)
			now := a.svc.Clock().Now()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconGnome, "Garden Status"))

			healthy := p.GardenState == engine.GardenHealthy
			state := ui.Good.Render("healthy")
			if !healthy {
				state = ui.Bad.Render("failing")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Garden", ui.GardenIcon(healthy)+" "+state))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", fmt.Sprintf("%d  %s", p.Level, ui.ProgressBar(engine.ProgressPercent(info.XPIntoLevel, info.XPIntoLevel+info.XPToNext), 20))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d (%d to next level)", p.XP, info.XPToNext)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Coins", fmt.Sprintf("%s %d", ui.IconCoin, p.Coins)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Day", fmt.Sprintf("%d, streak %s %d", p.Day, ui.IconFire, p.Streak)))
			if p.StakeLost > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Stake lost", ui.Bad.Render(fmt.Sprintf("%.2f", p.StakeLost))))
			}

			if next := a.svc.CheckIn.NextScheduledTime(now); next != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Next check-in", fmt.Sprintf("%s %s (%s)", ui.IconClock, next.Format("Mon 15:04"), engine.FormatCountdown(*next, now))))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Next check-in", ui.Muted.Render("no schedule yet, run `gnome setup schedule`")))
			}
			if a.svc.Progression.CheckedInToday {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Checked in today."))
			}

			line := a.messenger.Generate(ctx, a.gnomeRequest(gnome.ContextDashboard))
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel.Render(ui.PanelTitle.Render(a.svc.Profile.GnomeName+":")+" "+line))
			return nil
		},
	}
	return cmd
}
