package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fete/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	var eventType, location string
	var attendees int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest activities for an event type",
		RunE: func(cmd *cobra.Command, args []string) error {
			var attendeesPtr *int
			if cmd.Flags().Changed("attendees") {
				n := attendees
				attendeesPtr = &n
			}

			stop := formatter.StartSpinner("Gathering ideas...")
			suggestions, err := app.Planner.SuggestActivities(context.Background(), eventType, attendeesPtr, location)
			stop()
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatSuggestions(suggestions))
			return nil
		},
	}

	cmd.Flags().StringVar(&eventType, "type", "", "Event type (e.g. Birthday, Team offsite)")
	cmd.Flags().IntVar(&attendees, "attendees", 0, "Expected attendee count")
	cmd.Flags().StringVar(&location, "location", "", "Event location")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
