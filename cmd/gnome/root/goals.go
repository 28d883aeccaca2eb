package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jordan-corbett-digital/gnomemode/internal/engine"
	"github.com/jordan-corbett-digital/gnomemode/internal/ui"
)

func newGoalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage daily goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listItems(cmd, engine.TrackerDailyGoals, "Daily Goals")
		},
	}
	cmd.AddCommand(
		newItemAddCmd(engine.TrackerDailyGoals, "goal"),
		newItemDoneCmd(engine.TrackerDailyGoals, "goal"),
		newItemRemoveCmd(engine.TrackerDailyGoals, "goal"),
		newSetupGoalsCmd(),
	)
	return cmd
}

// newSetupGoalsCmd exposes the onboarding goal list, the one tracker with
// reordering.
func newSetupGoalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Show and reorder setup goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listItems(cmd, engine.TrackerSetupGoals, "Setup Goals")
		},
	}
	cmd.AddCommand(newItemDoneCmd(engine.TrackerSetupGoals, "setup goal"), newReorderCmd())
	return cmd
}

func newReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder <dragged-id> <target-id>",
		Short: "Move a setup goal to another goal's position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.ReorderItems(ctx, engine.TrackerSetupGoals, args[0], args[1]); err != nil {
				return err
			}
			return listItems(cmd, engine.TrackerSetupGoals, "Setup Goals")
		},
	}
	return cmd
}

func listItems(cmd *cobra.Command, kind engine.TrackerKind, title string) error {
	ctx := context.Background()
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	t := a.svc.Tracker(kind)
	fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconDone, title))
	if len(t.Items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing here yet."))
		return nil
	}
	for _, item := range t.Items {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Checkbox(item.Completed), item.Text, ui.Muted.Render(shortID(item.ID)))
	}
	if t.AllComplete() {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("All complete!"))
	}
	return nil
}

func newItemAddCmd(kind engine.TrackerKind, noun string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: fmt.Sprintf("Add a %s", noun),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			item, err := a.svc.AddItem(ctx, kind, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %q %s\n", ui.IconDone, item.Text, ui.Muted.Render(shortID(item.ID)))
			return nil
		},
	}
	return cmd
}

func newItemDoneCmd(kind engine.TrackerKind, noun string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: fmt.Sprintf("Toggle a %s", noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveItemID(a.svc.Tracker(kind), args[0])
			if err != nil {
				return err
			}
			res, err := a.svc.ToggleItem(ctx, kind, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" Toggled.")
			if res.AllComplete {
				fmt.Fprintf(cmd.OutOrStdout(), "%s All complete! +%d XP, +%d coins\n", ui.IconSparkle, res.XPAwarded, res.CoinsAwarded)
			}
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s level %d\n", ui.IconSparkle, ui.BadgeLevelUp, a.svc.Progression.Level)
			}
			return nil
		},
	}
	return cmd
}

func newItemRemoveCmd(kind engine.TrackerKind, noun string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: fmt.Sprintf("Remove a %s", noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveItemID(a.svc.Tracker(kind), args[0])
			if err != nil {
				return err
			}
			if err := a.svc.RemoveItem(ctx, kind, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" Removed.")
			return nil
		},
	}
	return cmd
}

// resolveItemID accepts a full id or an unambiguous prefix.
func resolveItemID(t *engine.Tracker, input string) (string, error) {
	var match string
	for _, item := range t.Items {
		if item.ID == input {
			return input, nil
		}
		if strings.HasPrefix(item.ID, input) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", input)
			}
			match = item.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no item with id %q", input)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
