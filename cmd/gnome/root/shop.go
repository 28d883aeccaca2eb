package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordan-corbett-digital/gnomemode/internal/engine"
	"github.com/jordan-corbett-digital/gnomemode/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and buy gnome gear",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconShop, "Shop"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Your coins", fmt.Sprintf("%s %d", ui.IconCoin, a.svc.Progression.Coins)))
			fmt.Fprintln(cmd.OutOrStdout(), "")
			for _, t := range []engine.ItemType{engine.ItemCosmetic, engine.ItemPowerup} {
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(string(t)+"s"))
				for _, item := range engine.CatalogByType(t) {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s (%d %s) %s %s\n", ui.Key.Render(item.Name), item.Price, ui.IconCoin, item.Description, ui.Muted.Render("id: "+item.ID))
				}
			}
			return nil
		},
	}
	cmd.AddCommand(newShopBuyCmd())
	return cmd
}

func newShopBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a shop item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			item, err := a.svc.Purchase(ctx, args[0])
			var broke engine.InsufficientCoinsError
			if errors.As(err, &broke) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(fmt.Sprintf("Not enough coins: %s costs %d, you have %d.", args[0], broke.Price, broke.Coins)))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Bought %s for %d %s. Coins left: %d\n", ui.IconDone, ui.Key.Render(item.Name), item.Price, ui.IconCoin, a.svc.Progression.Coins)
			return nil
		},
	}
	return cmd
}
