package cli

import (
	"github.com/akarlsen/pomoplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans   service.PlanService
	Presets service.PresetService
	Profile service.ProfileService

	// IsInteractive reports whether stdin is a terminal; when true the
	// plan command falls back to a wizard if no flags are given.
	IsInteractive bool
}

// NewRootCmd creates the top-level "pomoplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pomoplan",
		Short: "Weighted pomodoro study scheduler",
	}

	root.AddCommand(
		newPlanCmd(app),
		newRunCmd(app),
		newPresetCmd(app),
		newConfigCmd(app),
	)

	return root
}
