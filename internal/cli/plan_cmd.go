package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/fete/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect event plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanEnhanceCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var showPrompt bool

	cmd := &cobra.Command{
		Use:   "generate ID",
		Short: "Generate (or regenerate) an event plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eventID, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}

			stop := formatter.StartSpinner("Generating plan...")
			event, genErr := app.Events.Generate(ctx, eventID)
			stop()

			if showPrompt {
				printLastPrompt(app)
			}
			if genErr != nil {
				return genErr
			}

			fmt.Printf("%s\n", formatter.FormatPlan(event.Plan))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPrompt, "show-prompt", false, "Print the prompt input block after generation")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the stored plan for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eventID, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			event, err := app.Events.Get(ctx, eventID)
			if err != nil {
				return err
			}

			text := event.CurrentPlanText()
			if text == "" {
				fmt.Printf("Event %s has no plan yet. Run `fete plan generate %s`.\n",
					event.DisplayTitle(), event.DisplayID())
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatPlanText(text))
			return nil
		},
	}
}

func newPlanEnhanceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "enhance ID [request]",
		Short: "Refine an event plan with a free-text request",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eventID, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			event, err := app.Events.Get(ctx, eventID)
			if err != nil {
				return err
			}

			// No request argument on a terminal: open the chat view.
			if len(args) < 2 {
				if app.IsInteractive != nil && app.IsInteractive() {
					return runEnhanceChat(app, event)
				}
				return fmt.Errorf("a request argument is required in non-interactive mode")
			}

			request := strings.TrimSpace(args[1])
			if request == "" {
				return fmt.Errorf("the enhancement request must not be empty")
			}

			stop := formatter.StartSpinner("Enhancing plan...")
			text, err := app.Events.Enhance(ctx, eventID, request)
			stop()
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPlanText(text))
			return nil
		},
	}
}
