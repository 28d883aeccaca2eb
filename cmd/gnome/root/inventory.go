package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordan-corbett-digital/gnomemode/internal/ui"
)

func newInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Show owned items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			items := a.svc.Inventory.Items
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconShop, "Inventory"))
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Empty. Visit the shop."))
				return nil
			}
			for _, item := range items {
				equipped := ""
				if item.Equipped {
					equipped = " " + ui.Good.Render("(equipped)")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s ×%d%s %s\n", ui.Key.Render(item.Name), item.Quantity, equipped, ui.Muted.Render("id: "+item.ItemID))
			}
			return nil
		},
	}
	cmd.AddCommand(newEquipCmd(), newUnequipCmd())
	return cmd
}

func newEquipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equip <item-id>",
		Short: "Equip an owned item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.EquipItem(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" Equipped.")
			return nil
		},
	}
}

func newUnequipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unequip <item-id>",
		Short: "Unequip an owned item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.UnequipItem(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" Unequipped.")
			return nil
		},
	}
}
