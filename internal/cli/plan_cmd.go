package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarlsen/pomoplan/internal/cli/formatter"
	"github.com/akarlsen/pomoplan/internal/contract"
	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/akarlsen/pomoplan/internal/repository"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		subjectSpec string
		presetName  string
		minutes     int
		startSpec   string
		workMin     int
		shortBreak  int
		longBreak   int
		cycles      int
	)

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Build a pomodoro schedule from weighted subjects",
		Example: `  pomoplan plan --subjects "Math:2,History:1" --minutes 90
  pomoplan plan --preset exams --minutes 120 --start 09:00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req, err := buildPlanRequest(ctx, app, cmd, subjectSpec, presetName, minutes, startSpec)
			if err != nil {
				return err
			}
			if req == nil {
				// Wizard cancelled.
				return nil
			}

			if err := applyCadenceFlags(ctx, app, cmd, req, workMin, shortBreak, longBreak, cycles); err != nil {
				return err
			}

			resp, err := app.Plans.BuildPlan(ctx, *req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectSpec, "subjects", "", "Weighted subject list, e.g. \"Math:2,History:1\"")
	cmd.Flags().StringVar(&presetName, "preset", "", "Use a saved subject preset instead of --subjects")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Total study minutes to distribute")
	cmd.Flags().StringVar(&startSpec, "start", "", "Wall-clock start time as HH:MM (default: now)")
	cmd.Flags().IntVar(&workMin, "work", 0, "Work block length in minutes")
	cmd.Flags().IntVar(&shortBreak, "short-break", 0, "Short break length in minutes")
	cmd.Flags().IntVar(&longBreak, "long-break", 0, "Long break length in minutes")
	cmd.Flags().IntVar(&cycles, "cycles", 0, "Work blocks between long breaks")
	cmd.MarkFlagsMutuallyExclusive("subjects", "preset")

	return cmd
}

// buildPlanRequest assembles the request from flags, a preset, or the
// interactive wizard. A nil request with nil error means the wizard was
// cancelled.
func buildPlanRequest(ctx context.Context, app *App, cmd *cobra.Command, subjectSpec, presetName string, minutes int, startSpec string) (*contract.PlanRequest, error) {
	var subjects []domain.Subject
	var err error

	switch {
	case presetName != "":
		preset, err := app.Presets.Get(ctx, presetName)
		if err != nil {
			return nil, fmt.Errorf("loading preset %q: %w", presetName, err)
		}
		subjects = preset.Subjects
	case subjectSpec != "":
		subjects, err = parseSubjects(subjectSpec)
		if err != nil {
			return nil, err
		}
	case app.IsInteractive:
		return runPlanWizard(app)
	default:
		return nil, fmt.Errorf("either --subjects or --preset is required")
	}

	if minutes <= 0 {
		return nil, fmt.Errorf("--minutes must be a positive number")
	}

	req := contract.PlanRequest{Subjects: subjects, TotalMinutes: minutes}
	if startSpec != "" {
		start, err := parseClock(startSpec)
		if err != nil {
			return nil, err
		}
		req.StartTime = &start
	}
	return &req, nil
}

// applyCadenceFlags overlays any explicitly-set cadence flags on the
// stored (or default) pomodoro config. With no cadence flags the request
// keeps a zero config and the plan service resolves it.
func applyCadenceFlags(ctx context.Context, app *App, cmd *cobra.Command, req *contract.PlanRequest, workMin, shortBreak, longBreak, cycles int) error {
	changed := cmd.Flags().Changed("work") ||
		cmd.Flags().Changed("short-break") ||
		cmd.Flags().Changed("long-break") ||
		cmd.Flags().Changed("cycles")
	if !changed {
		return nil
	}

	cfg, err := storedCadence(ctx, app)
	if err != nil {
		return err
	}
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
	req.Pomodoro = cfg
	return nil
}

// storedCadence returns the profile's cadence, or the built-in defaults
// when no profile row exists. Other lookup errors propagate.
func storedCadence(ctx context.Context, app *App) (domain.PomodoroConfig, error) {
	profile, err := app.Profile.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultPomodoroConfig(), nil
		}
		return domain.PomodoroConfig{}, fmt.Errorf("loading stored cadence: %w", err)
	}
	return profile.Pomodoro(), nil
}

// runPlanWizard walks the user through subjects, session length, and an
// optional start time.
func runPlanWizard(app *App) (*contract.PlanRequest, error) {
	var subjectSpec, minutesStr, startSpec string

	if err := wizardInputSubjects(&subjectSpec).Run(); err != nil {
		return nil, nil
	}
	if err := wizardInputMinutes(90, &minutesStr).Run(); err != nil {
		return nil, nil
	}
	if err := wizardInputStart(&startSpec).Run(); err != nil {
		return nil, nil
	}

	subjects, err := parseSubjects(subjectSpec)
	if err != nil {
		return nil, err
	}

	req := contract.PlanRequest{
		Subjects:     subjects,
		TotalMinutes: parsePositiveInt(minutesStr, 90),
	}
	if startSpec != "" {
		var start time.Time
		if start, err = parseClock(startSpec); err != nil {
			return nil, err
		}
		req.StartTime = &start
	}

	adjust := false
	if err := wizardConfirm("Adjust the pomodoro cadence for this plan?", &adjust).Run(); err != nil {
		return nil, nil
	}
	if adjust {
		cfg, err := runCadenceWizard(app)
		if err != nil {
			return nil, err
		}
		if cfg != nil {
			req.Pomodoro = *cfg
		}
	}

	return &req, nil
}

// runCadenceWizard collects per-plan cadence overrides, starting from the
// stored defaults. A nil config with nil error means the form was cancelled.
func runCadenceWizard(app *App) (*domain.PomodoroConfig, error) {
	base, err := storedCadence(context.Background(), app)
	if err != nil {
		return nil, err
	}

	var workStr, shortStr, longStr, cyclesStr string
	if err := wizardInputCadence(base, &workStr, &shortStr, &longStr, &cyclesStr).Run(); err != nil {
		return nil, nil
	}

	cfg := domain.PomodoroConfig{
		WorkMin:               parsePositiveInt(workStr, base.WorkMin),
		ShortBreakMin:         parsePositiveInt(shortStr, base.ShortBreakMin),
		LongBreakMin:          parsePositiveInt(longStr, base.LongBreakMin),
		CyclesBeforeLongBreak: parsePositiveInt(cyclesStr, base.CyclesBeforeLongBreak),
	}
	return &cfg, nil
}
