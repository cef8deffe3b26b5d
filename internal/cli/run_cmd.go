package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var (
		subjectSpec string
		presetName  string
		minutes     int
		workMin     int
		shortBreak  int
		longBreak   int
		cycles      int
	)

	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Build a schedule and run it as a live timer",
		Example: `  pomoplan run --subjects "Math:2,History:1" --minutes 90
  pomoplan run --preset exams --minutes 120`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive {
				return fmt.Errorf("run needs an interactive terminal; use 'pomoplan plan' instead")
			}

			ctx := context.Background()

			req, err := buildPlanRequest(ctx, app, cmd, subjectSpec, presetName, minutes, "")
			if err != nil {
				return err
			}
			if req == nil {
				return nil
			}

			if err := applyCadenceFlags(ctx, app, cmd, req, workMin, shortBreak, longBreak, cycles); err != nil {
				return err
			}

			resp, err := app.Plans.BuildPlan(ctx, *req)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newRunModel(resp.Segments))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&subjectSpec, "subjects", "", "Weighted subject list, e.g. \"Math:2,History:1\"")
	cmd.Flags().StringVar(&presetName, "preset", "", "Use a saved subject preset instead of --subjects")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Total study minutes to distribute")
	cmd.Flags().IntVar(&workMin, "work", 0, "Work block length in minutes")
	cmd.Flags().IntVar(&shortBreak, "short-break", 0, "Short break length in minutes")
	cmd.Flags().IntVar(&longBreak, "long-break", 0, "Long break length in minutes")
	cmd.Flags().IntVar(&cycles, "cycles", 0, "Work blocks between long breaks")
	cmd.MarkFlagsMutuallyExclusive("subjects", "preset")

	return cmd
}
