package cli

import (
	"fmt"
	"strconv"

	"github.com/akarlsen/pomoplan/internal/cli/formatter"
	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pomoplanHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func pomoplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardInputSubjects creates a huh form to enter the weighted subject list.
func wizardInputSubjects(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subjects").
				Description("Comma-separated, weight optional: Math:2,History:1").
				Placeholder("Math:2,History:1").
				Value(result).
				Validate(validateSubjectSpec),
		),
	).WithTheme(pomoplanHuhTheme()).WithShowHelp(false)
}

// wizardInputMinutes creates a huh form to enter the session length in minutes.
func wizardInputMinutes(defaultMin int, result *string) *huh.Form {
	defStr := strconv.Itoa(defaultMin)
	*result = defStr

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Total study minutes").
				Placeholder(defStr).
				Value(result).
				Validate(validatePositiveInt),
		),
	).WithTheme(pomoplanHuhTheme()).WithShowHelp(false)
}

// wizardInputStart creates a huh form to enter an optional HH:MM start time.
func wizardInputStart(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start time (optional)").
				Placeholder("09:00").
				Value(result).
				Validate(validateOptionalClock),
		),
	).WithTheme(pomoplanHuhTheme()).WithShowHelp(false)
}

// wizardInputCadence creates a huh form for the four cadence values, one
// group so they appear together. Placeholders show the current defaults.
func wizardInputCadence(base domain.PomodoroConfig, work, short, long, cycles *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Work block (minutes)").
				Placeholder(strconv.Itoa(base.WorkMin)).
				Value(work).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Short break (minutes)").
				Placeholder(strconv.Itoa(base.ShortBreakMin)).
				Value(short).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Long break (minutes)").
				Placeholder(strconv.Itoa(base.LongBreakMin)).
				Value(long).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Work blocks between long breaks").
				Placeholder(strconv.Itoa(base.CyclesBeforeLongBreak)).
				Value(cycles).
				Validate(validatePositiveInt),
		),
	).WithTheme(pomoplanHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(pomoplanHuhTheme()).WithShowHelp(false)
}

// validateSubjectSpec accepts a parseable weighted subject list.
func validateSubjectSpec(s string) error {
	_, err := parseSubjects(s)
	return err
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalClock accepts empty or an HH:MM time.
func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	_, err := parseClock(s)
	return err
}

// parsePositiveInt parses s as a positive integer, returning fallback if s is
// empty, non-numeric, or non-positive. Used after huh form validation has
// already ensured the string is valid, so this is a safe conversion.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
