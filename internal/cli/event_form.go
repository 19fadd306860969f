package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/fete/internal/cli/formatter"
	"github.com/alexanderramin/fete/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// feteHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func feteHuhTheme() *huh.Theme {
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

// validateOptionalInt accepts empty or a positive integer.
func validateOptionalInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalDates accepts empty or comma-separated YYYY-MM-DD dates.
func validateOptionalDates(s string) error {
	if s == "" {
		return nil
	}
	for _, part := range strings.Split(s, ",") {
		if _, err := time.Parse("2006-01-02", strings.TrimSpace(part)); err != nil {
			return fmt.Errorf("use YYYY-MM-DD format, comma-separated")
		}
	}
	return nil
}

// eventFormValues holds the raw string answers of the interactive form.
// Conversion into the draft happens after the form completes, so every
// field is optional while filling in.
type eventFormValues struct {
	title       string
	description string
	attendees   string
	location    string
	purpose     string
	dates       string
	startTime   string
	endTime     string
	recurring   bool
	frequency   string
	activities  string
	questions   string
}

func newEventFormValues(draft *domain.EventDraft) eventFormValues {
	v := eventFormValues{
		title:       draft.Title,
		description: draft.Description,
		location:    draft.Location,
		purpose:     draft.Purpose,
		startTime:   draft.StartTime,
		endTime:     draft.EndTime,
		recurring:   draft.Recurring,
		frequency:   draft.Frequency,
	}
	if draft.Attendees != nil {
		v.attendees = strconv.Itoa(*draft.Attendees)
	}
	dateStrs := make([]string, 0, len(draft.Dates))
	for _, d := range draft.Dates {
		dateStrs = append(dateStrs, d.Format("2006-01-02"))
	}
	v.dates = strings.Join(dateStrs, ", ")

	activityStrs := make([]string, 0, len(draft.Activities))
	for _, a := range draft.Activities {
		if a.Description != "" {
			activityStrs = append(activityStrs, a.Name+":"+a.Description)
		} else {
			activityStrs = append(activityStrs, a.Name)
		}
	}
	v.activities = strings.Join(activityStrs, ", ")
	v.questions = strings.Join(draft.Questions, "; ")

	return v
}

func (v *eventFormValues) applyTo(draft *domain.EventDraft) error {
	draft.Title = strings.TrimSpace(v.title)
	draft.Description = strings.TrimSpace(v.description)
	draft.Location = strings.TrimSpace(v.location)
	draft.Purpose = strings.TrimSpace(v.purpose)
	draft.StartTime = strings.TrimSpace(v.startTime)
	draft.EndTime = strings.TrimSpace(v.endTime)
	draft.Recurring = v.recurring
	draft.Frequency = strings.TrimSpace(v.frequency)

	draft.Attendees = nil
	if s := strings.TrimSpace(v.attendees); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid attendee count %q: %w", s, err)
		}
		draft.Attendees = &n
	}

	draft.Dates = nil
	if s := strings.TrimSpace(v.dates); s != "" {
		dates, err := parseDates(splitCommaList(s))
		if err != nil {
			return err
		}
		draft.Dates = dates
	}

	draft.Activities = nil
	if s := strings.TrimSpace(v.activities); s != "" {
		draft.Activities = parseActivities(splitCommaList(s))
	}

	draft.Questions = nil
	if s := strings.TrimSpace(v.questions); s != "" {
		for _, q := range strings.Split(s, ";") {
			if q = strings.TrimSpace(q); q != "" {
				draft.Questions = append(draft.Questions, q)
			}
		}
	}

	return nil
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// runEventForm collects an event draft interactively. Existing draft values
// pre-fill the fields, so the same form serves both add and edit.
func runEventForm(draft *domain.EventDraft) error {
	values := newEventFormValues(draft)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Garden Party").
				Value(&values.title),
			huh.NewInput().
				Title("Description").
				Value(&values.description),
			huh.NewInput().
				Title("Purpose").
				Placeholder("Birthday").
				Value(&values.purpose),
			huh.NewInput().
				Title("Location").
				Value(&values.location),
			huh.NewInput().
				Title("Attendees").
				Placeholder("12").
				Value(&values.attendees).
				Validate(validateOptionalInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Dates (YYYY-MM-DD, comma-separated)").
				Placeholder("2026-06-30").
				Value(&values.dates).
				Validate(validateOptionalDates),
			huh.NewInput().
				Title("Start Time").
				Placeholder("6:00 PM").
				Value(&values.startTime),
			huh.NewInput().
				Title("End Time").
				Placeholder("10:00 PM").
				Value(&values.endTime),
			huh.NewConfirm().
				Title("Recurring?").
				Affirmative("Yes").
				Negative("No").
				Value(&values.recurring),
			huh.NewInput().
				Title("Frequency (if recurring)").
				Placeholder("monthly").
				Value(&values.frequency),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Activities (name or name:description, comma-separated)").
				Value(&values.activities),
			huh.NewInput().
				Title("Questions for the planner (semicolon-separated)").
				Value(&values.questions),
		),
	).WithTheme(feteHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	return values.applyTo(draft)
}
