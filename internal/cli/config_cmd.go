package cli

import (
	"context"
	"fmt"

	"github.com/akarlsen/pomoplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or change the default pomodoro cadence",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored pomodoro cadence",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Profile.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCadence(profile.Pomodoro()))
			return nil
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	var workMin, shortBreak, longBreak, cycles int

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Change the stored pomodoro cadence",
		Example: `  pomoplan config set --work 50 --short-break 10
  pomoplan config set --cycles 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			profile, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}
			cfg := profile.Pomodoro()

			if cmd.Flags().Changed("work") {
				cfg.WorkMin = workMin
			}
			if cmd.Flags().Changed("short-break") {
				cfg.ShortBreakMin = shortBreak
			}
			if cmd.Flags().Changed("long-break") {
				cfg.LongBreakMin = longBreak
			}
			if cmd.Flags().Changed("cycles") {
				cfg.CyclesBeforeLongBreak = cycles
			}

			if err := app.Profile.SetPomodoro(ctx, cfg); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCadence(cfg))
			return nil
		},
	}

	cmd.Flags().IntVar(&workMin, "work", 0, "Work block length in minutes")
	cmd.Flags().IntVar(&shortBreak, "short-break", 0, "Short break length in minutes")
	cmd.Flags().IntVar(&longBreak, "long-break", 0, "Long break length in minutes")
	cmd.Flags().IntVar(&cycles, "cycles", 0, "Work blocks between long breaks")

	return cmd
}
