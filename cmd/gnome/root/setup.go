package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jordan-corbett-digital/gnomemode/internal/engine"
	"github.com/jordan-corbett-digital/gnomemode/internal/ui"
)

func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the setup flows (schedule, profile)",
	}
	cmd.AddCommand(newSetupScheduleCmd(), newSetupProfileCmd())
	return cmd
}

func newSetupScheduleCmd() *cobra.Command {
	var times []string
	var grace int
	var reminder int
	var notify bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Set the daily check-in schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(times) == 0 {
				return errors.New("at least one --time is required")
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.SetSchedule(ctx, times, grace, reminder, notify); err != nil {
				return err
			}

			sched := a.svc.CheckIn.Schedule
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconClock, "Schedule saved"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Times", strings.Join(sched.Times, ", ")))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Grace period", fmt.Sprintf("%d min", sched.GracePeriodMinutes)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Reminder", fmt.Sprintf("%d min before", sched.ReminderMinutesBefore)))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&times, "time", "t", nil, "Check-in time (HH:MM, repeatable)")
	cmd.Flags().IntVar(&grace, "grace", 60, "Grace period in minutes")
	cmd.Flags().IntVar(&reminder, "reminder", 10, "Reminder minutes before each slot")
	cmd.Flags().BoolVar(&notify, "notify", true, "Enable reminders")

	return cmd
}

func newSetupProfileCmd() *cobra.Command {
	var name string
	var gnomeName string
	var gnomeColor string
	var tone string
	var intention []string
	var motivation []string
	var nemesis string
	var wager float64
	var duration int

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Set who you are, what you quit and who profits when you fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := a.svc.Profile
			if name != "" {
				p.UserName = name
			}
			if gnomeName != "" {
				p.GnomeName = gnomeName
			}
			if gnomeColor != "" {
				p.GnomeColor = gnomeColor
			}
			if tone != "" {
				p.GnomeTone = tone
			}
			if len(intention) > 0 {
				p.Intention = intention
			}
			if len(motivation) > 0 {
				p.Motivation = motivation
			}
			if nemesis != "" {
				p.Nemesis = nemesis
			}
			if wager > 0 {
				p.Wager = wager
			}
			if duration > 0 {
				p.Duration = duration
			}

			if err := a.svc.SetProfile(ctx, p); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconGnome, "Profile saved"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Gnome", fmt.Sprintf("%s (%s, %s)", p.GnomeName, p.GnomeColor, p.GnomeTone)))
			if p.Nemesis != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Nemesis", p.Nemesis))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Wager", fmt.Sprintf("%.0f for %d days", p.Wager, p.Duration)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&gnomeName, "gnome-name", "", "Gnome name")
	cmd.Flags().StringVar(&gnomeColor, "gnome-color", "", "Gnome color")
	cmd.Flags().StringVar(&tone, "tone", "", "Gnome tone (soft|spicy|cursed)")
	cmd.Flags().StringArrayVar(&intention, "intention", nil, "Habit you are avoiding (repeatable)")
	cmd.Flags().StringArrayVar(&motivation, "motivation", nil, "Why you are doing this (repeatable)")
	cmd.Flags().StringVar(&nemesis, "nemesis", "", fmt.Sprintf("Who profits when you fail (e.g. %s)", strings.Join(engine.NemesisOptions, " | ")))
	cmd.Flags().Float64Var(&wager, "wager", 0, "Simulated stake amount")
	cmd.Flags().IntVar(&duration, "duration", 0, "Commitment duration in days")

	return cmd
}
