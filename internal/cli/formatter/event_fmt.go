package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fete/internal/domain"
)

const dateLayout = "2006-01-02"

// FormatEventList renders a compact one-line-per-event listing.
func FormatEventList(events []*domain.Event) string {
	if len(events) == 0 {
		return Dim("No events yet. Create one with: fete event add")
	}

	var b strings.Builder
	b.WriteString(Header("Events"))
	for _, e := range events {
		b.WriteString("\n")
		b.WriteString(formatEventLine(e))
	}
	return b.String()
}

func formatEventLine(e *domain.Event) string {
	planMark := Dim("○ no plan")
	if e.HasPlan() {
		planMark = StyleGreen.Render("● planned")
	}

	date := Dim("date tbd")
	if len(e.Dates) > 0 {
		date = StyleBlue.Render(e.Dates[0].Format(dateLayout))
	}

	return fmt.Sprintf("%s  %s  %s  %s",
		StylePurple.Render(e.DisplayID()),
		Bold(e.DisplayTitle()),
		date,
		planMark,
	)
}

// FormatEventDetail renders the full event record as a box.
func FormatEventDetail(e *domain.Event) string {
	var b strings.Builder

	writeDetailRow(&b, "Title", e.Title)
	writeDetailRow(&b, "Description", e.Description)
	attendees := ""
	if e.Attendees != nil {
		attendees = fmt.Sprintf("%d", *e.Attendees)
	}
	writeDetailRow(&b, "Attendees", attendees)
	writeDetailRow(&b, "Location", e.Location)
	writeDetailRow(&b, "Purpose", e.Purpose)
	writeDetailRow(&b, "Date", formatDates(e.Dates))
	writeDetailRow(&b, "Start", e.StartTime)
	writeDetailRow(&b, "End", e.EndTime)
	writeDetailRow(&b, "Recurring", formatRecurring(e))
	writeDetailRow(&b, "Activities", formatActivityNames(e.Activities))
	writeDetailRow(&b, "Questions", strings.Join(e.Questions, "; "))

	b.WriteString("\n")
	if e.HasPlan() {
		b.WriteString(StyleGreen.Render("Plan generated."))
		b.WriteString(Dim(" View it with: fete plan show " + e.DisplayID()))
	} else {
		b.WriteString(Dim("No plan yet. Generate one with: fete plan generate " + e.DisplayID()))
	}
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Created %s · Updated %s · %s",
		e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339), e.ID)))

	return RenderBox(e.DisplayTitle(), b.String())
}

func writeDetailRow(b *strings.Builder, label, value string) {
	if value == "" {
		value = Dim("—")
	}
	fmt.Fprintf(b, "%s %s\n", StyleYellow.Render(label+":"), value)
}

func formatDates(dates []time.Time) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = d.Format(dateLayout)
	}
	return strings.Join(parts, ", ")
}

func formatRecurring(e *domain.Event) string {
	if !e.Recurring {
		return "No"
	}
	if strings.TrimSpace(e.Frequency) == "" {
		return "Yes"
	}
	return "Yes (" + e.Frequency + ")"
}

func formatActivityNames(activities []domain.Activity) string {
	parts := make([]string, len(activities))
	for i, a := range activities {
		parts[i] = a.Name
	}
	return strings.Join(parts, ", ")
}

// FormatSuggestions renders activity suggestions as a bulleted list.
func FormatSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return Dim("No suggestions available right now. Try again later.")
	}

	var b strings.Builder
	b.WriteString(Header("Suggested activities"))
	for _, s := range suggestions {
		b.WriteString("\n")
		b.WriteString(StyleGreen.Render("• "))
		b.WriteString(StyleFg.Render(s))
	}
	return b.String()
}
