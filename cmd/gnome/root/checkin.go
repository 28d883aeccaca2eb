package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jordan-corbett-digital/gnomemode/internal/engine"
	"github.com/jordan-corbett-digital/gnomemode/internal/gnome"
	"github.com/jordan-corbett-digital/gnomemode/internal/ui"
)

func newCheckinCmd() *cobra.Command {
	var feeling string
	var didTheThing bool
	var note string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Submit today's check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if a.svc.Progression.CheckedInToday {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already checked in today."))
				return nil
			}

			if didTheThing {
				// Doing the thing you swore off is a failed check-in.
				return runCheckInFail(ctx, cmd, a)
			}

			resp := &engine.CheckInResponse{
				Feeling:     feeling,
				DidTheThing: false,
				Context:     note,
			}
			res, err := a.svc.CheckInSuccess(ctx, resp)
			if err != nil {
				return checkInErr(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconGarden, "Check-in complete"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Rewards", fmt.Sprintf("+%d XP, +%d coins", res.XPAwarded, res.CoinsAwarded)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconFire, res.Streak)))
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s level %d → %d\n", ui.IconSparkle, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}

			line := a.messenger.Generate(ctx, a.gnomeRequest(gnome.ContextCheckInSuccess))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel.Render(ui.PanelTitle.Render(a.svc.Profile.GnomeName+":")+" "+line))
			return nil
		},
	}

	cmd.Flags().StringVar(&feeling, "feeling", "", "How you're feeling")
	cmd.Flags().BoolVar(&didTheThing, "did-the-thing", false, "Confess: you did the thing you're quitting")
	cmd.Flags().StringVar(&note, "note", "", "Extra context")

	cmd.AddCommand(newCheckinFailCmd(), newCheckinPromiseCmd())
	return cmd
}

func newCheckinFailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fail",
		Short: "Record a failed check-in and transfer the stake",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if a.svc.Progression.CheckedInToday {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already checked in today."))
				return nil
			}
			return runCheckInFail(ctx, cmd, a)
		},
	}
	return cmd
}

func runCheckInFail(ctx context.Context, cmd *cobra.Command, a *app) error {
	penalty := a.svc.Profile.Wager
	if _, err := a.svc.CheckInFail(ctx, penalty); err != nil {
		return checkInErr(cmd, err)
	}

	p := a.svc.Progression
	fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconWilted, "Check-in failed"))
	fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Stake lost", ui.Bad.Render(fmt.Sprintf("%.2f → %s (total %.2f)", penalty, nemesisOr(a), p.StakeLost))))
	fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Streak reset. Make it right: gnome checkin promise \"%s\"", engine.FulfillmentPhrase)))

	line := a.messenger.Generate(ctx, a.gnomeRequest(gnome.ContextCheckInFail))
	fmt.Fprintln(cmd.OutOrStdout(), ui.Panel.Render(ui.PanelTitle.Render(a.svc.Profile.GnomeName+":")+" "+line))
	return nil
}

func checkInErr(cmd *cobra.Command, err error) error {
	var incomplete engine.SetupIncompleteError
	if errors.As(err, &incomplete) {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("No check-in schedule yet. Run: gnome setup schedule --time 09:00"))
		return nil
	}
	return err
}

func nemesisOr(a *app) string {
	if a.svc.Profile.Nemesis != "" {
		return a.svc.Profile.Nemesis
	}
	return "your nemesis"
}

func newCheckinPromiseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promise <phrase>",
		Short: "Type the fulfillment phrase to restore a failing garden",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := a.svc.FulfillPromise(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("The garden is unmoved. Type the exact phrase, garden must be failing."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconGarden+" Promise accepted. The garden recovers."))
			return nil
		},
	}
	return cmd
}
