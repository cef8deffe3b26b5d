package cli

import (
	"context"
	"fmt"

	"github.com/akarlsen/pomoplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPresetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved subject presets",
	}

	cmd.AddCommand(
		newPresetSaveCmd(app),
		newPresetListCmd(app),
		newPresetShowCmd(app),
		newPresetRemoveCmd(app),
	)

	return cmd
}

func newPresetSaveCmd(app *App) *cobra.Command {
	var subjectSpec string

	cmd := &cobra.Command{
		Use:     "save NAME",
		Short:   "Save a weighted subject list under a name",
		Args:    cobra.ExactArgs(1),
		Example: `  pomoplan preset save exams --subjects "Math:2,History:1"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := parseSubjects(subjectSpec)
			if err != nil {
				return err
			}

			preset, err := app.Presets.Save(context.Background(), args[0], subjects)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %s (%d subjects)\n", formatter.Bold(preset.Name), len(preset.Subjects))
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectSpec, "subjects", "", "Weighted subject list, e.g. \"Math:2,History:1\"")
	_ = cmd.MarkFlagRequired("subjects")

	return cmd
}

func newPresetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := app.Presets.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPresetList(presets))
			return nil
		},
	}
}

func newPresetShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a preset's subjects and weights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, err := app.Presets.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPreset(preset))
			return nil
		},
	}
}

func newPresetRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.IsInteractive {
				confirmed := false
				if err := wizardConfirm(fmt.Sprintf("Delete preset %q?", args[0]), &confirmed).Run(); err != nil || !confirmed {
					return nil
				}
			}

			if err := app.Presets.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed preset %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
