package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordan-corbett-digital/gnomemode/internal/engine"
)

func newRitualCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ritual",
		Short: "Manage morning and evening rituals",
	}
	cmd.AddCommand(
		newRitualKindCmd("morning", engine.TrackerMorningRitual),
		newRitualKindCmd("evening", engine.TrackerEveningRitual),
	)
	return cmd
}

func newRitualKindCmd(name string, kind engine.TrackerKind) *cobra.Command {
	title := fmt.Sprintf("%s Ritual", titleCase(name))
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Manage the %s ritual", name),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listItems(cmd, kind, title)
		},
	}
	cmd.AddCommand(
		newItemAddCmd(kind, name+" ritual step"),
		newItemDoneCmd(kind, name+" ritual step"),
		newItemRemoveCmd(kind, name+" ritual step"),
	)
	return cmd
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
