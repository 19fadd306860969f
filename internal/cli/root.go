package cli

import (
	"github.com/alexanderramin/fete/internal/intelligence"
	"github.com/alexanderramin/fete/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Events  service.EventService
	Planner intelligence.PlannerService

	// IsInteractive reports whether stdin is a terminal. Form-based
	// commands fall back to flags-only mode when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "fete" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fete",
		Short: "AI-assisted event planner",
	}

	root.AddCommand(
		newEventCmd(app),
		newPlanCmd(app),
		newSuggestCmd(app),
	)

	return root
}
