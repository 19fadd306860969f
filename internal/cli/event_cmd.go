package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fete/internal/cli/formatter"
	"github.com/alexanderramin/fete/internal/domain"
	"github.com/spf13/cobra"
)

// resolveEventID resolves a user-supplied identifier to a stored event ID.
// It accepts a full UUID or a unique UUID prefix (case-insensitive).
func resolveEventID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("event ID is required")
	}

	events, err := app.Events.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact UUID match
	for _, e := range events {
		if e.ID == input {
			return e.ID, nil
		}
	}

	// 2. UUID prefix match
	lower := strings.ToLower(input)
	var matches []string
	for _, e := range events {
		if strings.HasPrefix(e.ID, lower) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("event not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("event ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage events",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventListCmd(app),
		newEventShowCmd(app),
		newEventEditCmd(app),
		newEventRemoveCmd(app),
	)

	return cmd
}

// draftFlags holds the flag values shared by "event add" and "event edit".
type draftFlags struct {
	title       string
	description string
	attendees   int
	location    string
	purpose     string
	dates       []string
	startTime   string
	endTime     string
	recurring   bool
	frequency   string
	activities  []string
	questions   []string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Event title")
	cmd.Flags().StringVar(&f.description, "description", "", "Event description")
	cmd.Flags().IntVar(&f.attendees, "attendees", 0, "Expected attendee count")
	cmd.Flags().StringVar(&f.location, "location", "", "Event location")
	cmd.Flags().StringVar(&f.purpose, "purpose", "", "Event purpose (e.g. Birthday, Team offsite)")
	cmd.Flags().StringArrayVar(&f.dates, "date", nil, "Event date (YYYY-MM-DD, repeatable)")
	cmd.Flags().StringVar(&f.startTime, "start", "", "Start time (e.g. 6:00 PM)")
	cmd.Flags().StringVar(&f.endTime, "end", "", "End time (e.g. 10:00 PM)")
	cmd.Flags().BoolVar(&f.recurring, "recurring", false, "Mark the event as recurring")
	cmd.Flags().StringVar(&f.frequency, "frequency", "", "Recurrence frequency (weekly, monthly, ...)")
	cmd.Flags().StringArrayVar(&f.activities, "activity", nil, "Planned activity as name or name:description (repeatable)")
	cmd.Flags().StringArrayVar(&f.questions, "question", nil, "Question for the planner to address (repeatable)")
}

// apply copies the changed flag values onto the draft. For "add" every flag
// reads as changed-or-zero, so applying to an empty draft sets everything.
func (f *draftFlags) apply(cmd *cobra.Command, draft *domain.EventDraft) error {
	if cmd.Flags().Changed("title") {
		draft.Title = f.title
	}
	if cmd.Flags().Changed("description") {
		draft.Description = f.description
	}
	if cmd.Flags().Changed("attendees") {
		n := f.attendees
		draft.Attendees = &n
	}
	if cmd.Flags().Changed("location") {
		draft.Location = f.location
	}
	if cmd.Flags().Changed("purpose") {
		draft.Purpose = f.purpose
	}
	if cmd.Flags().Changed("date") {
		dates, err := parseDates(f.dates)
		if err != nil {
			return err
		}
		draft.Dates = dates
	}
	if cmd.Flags().Changed("start") {
		draft.StartTime = f.startTime
	}
	if cmd.Flags().Changed("end") {
		draft.EndTime = f.endTime
	}
	if cmd.Flags().Changed("recurring") {
		draft.Recurring = f.recurring
	}
	if cmd.Flags().Changed("frequency") {
		draft.Frequency = f.frequency
	}
	if cmd.Flags().Changed("activity") {
		draft.Activities = parseActivities(f.activities)
	}
	if cmd.Flags().Changed("question") {
		draft.Questions = f.questions
	}
	return nil
}

func parseDates(inputs []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(inputs))
	for _, s := range inputs {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func parseActivities(inputs []string) []domain.Activity {
	activities := make([]domain.Activity, 0, len(inputs))
	for _, s := range inputs {
		name, desc, _ := strings.Cut(s, ":")
		activities = append(activities, domain.Activity{
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(desc),
		})
	}
	return activities
}

func newEventAddCmd(app *App) *cobra.Command {
	var flags draftFlags
	var noPlan, showPrompt bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new event",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			draft := &domain.EventDraft{}

			// No flags on a terminal: collect the draft interactively.
			if cmd.Flags().NFlag() == 0 && app.IsInteractive != nil && app.IsInteractive() {
				if err := runEventForm(draft); err != nil {
					return err
				}
			} else if err := flags.apply(cmd, draft); err != nil {
				return err
			}

			event, err := app.Events.Create(ctx, draft)
			if err != nil {
				return err
			}
			fmt.Printf("Created event %s [%s]\n", event.DisplayTitle(), event.DisplayID())

			if noPlan {
				return nil
			}

			stop := formatter.StartSpinner("Generating plan...")
			event, genErr := app.Events.Generate(ctx, event.ID)
			stop()

			if showPrompt {
				printLastPrompt(app)
			}
			if genErr != nil {
				fmt.Printf("%s\n", formatter.StyleYellow.Render(
					fmt.Sprintf("Event saved without a plan: %v", genErr)))
				fmt.Printf("Run `fete plan generate %s` to retry.\n", event.DisplayID())
				return nil
			}

			fmt.Printf("\n%s\n", formatter.FormatPlan(event.Plan))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noPlan, "no-plan", false, "Save the event without generating a plan")
	cmd.Flags().BoolVar(&showPrompt, "show-prompt", false, "Print the prompt input block after generation")

	return cmd
}

func newEventListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Events.List(context.Background())
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Println("No events found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatEventList(events))
			return nil
		},
	}
}

func newEventShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show event details",
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

			fmt.Printf("%s\n", formatter.FormatEventDetail(event))
			return nil
		},
	}
}

func newEventEditCmd(app *App) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an event",
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

			draft := event.EventDraft
			if cmd.Flags().NFlag() == 0 && app.IsInteractive != nil && app.IsInteractive() {
				if err := runEventForm(&draft); err != nil {
					return err
				}
			} else if err := flags.apply(cmd, &draft); err != nil {
				return err
			}

			updated, err := app.Events.Update(ctx, eventID, &draft)
			if err != nil {
				return err
			}

			fmt.Printf("Updated event %s [%s]\n", updated.DisplayTitle(), updated.DisplayID())
			if updated.HasPlan() {
				fmt.Printf("%s\n", formatter.Dim(
					fmt.Sprintf("The stored plan is unchanged. Run `fete plan generate %s` to refresh it.", updated.DisplayID())))
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newEventRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eventID, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Events.Delete(ctx, eventID); err != nil {
				return err
			}
			fmt.Printf("Removed event %s\n", eventID)
			return nil
		},
	}
}

func printLastPrompt(app *App) {
	if app.Planner == nil {
		return
	}
	prompt := app.Planner.LastPrompt()
	if prompt == "" {
		return
	}
	fmt.Printf("\n%s\n%s\n", formatter.Header("Prompt input"), formatter.Dim(prompt))
}
