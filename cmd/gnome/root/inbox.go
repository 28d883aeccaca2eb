package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordan-corbett-digital/gnomemode/internal/ui"
)

func newInboxCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Read messages from your gnome",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			msgs := a.svc.Inbox.Messages
			if !all {
				msgs = a.svc.Inbox.Unread()
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconMail, "Inbox"))
			if len(msgs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No messages."))
				return nil
			}
			for _, m := range msgs {
				marker := ui.Gold.Render("●")
				if m.Read {
					marker = ui.Muted.Render("○")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s %s\n", marker, ui.Key.Render(m.Title), m.Content, ui.Muted.Render(shortID(m.ID)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include read messages")
	cmd.AddCommand(newInboxReadCmd(), newInboxRmCmd())
	return cmd
}

func newInboxReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a message read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.MarkMessageRead(ctx, resolveMessageID(a, args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" Read.")
			return nil
		},
	}
}

func newInboxRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.DeleteMessage(ctx, resolveMessageID(a, args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" Deleted.")
			return nil
		},
	}
}

// resolveMessageID expands an id prefix; unknown ids pass through and the
// engine treats them as a no-op.
func resolveMessageID(a *app, input string) string {
	for _, m := range a.svc.Inbox.Messages {
		if m.ID == input {
			return input
		}
	}
	for _, m := range a.svc.Inbox.Messages {
		if len(input) >= 4 && len(m.ID) >= len(input) && m.ID[:len(input)] == input {
			return m.ID
		}
	}
	return input
}
