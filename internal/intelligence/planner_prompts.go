package intelligence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/fete/internal/domain"
	"github.com/alexanderramin/fete/internal/llm"
)

const notSpecified = "Not specified"

const plannerSystemPrompt = `You are an expert event planner. You will receive a partially filled event description.

Rules:
- Never change or overwrite any detail the user has already provided.
- Fill in only the unspecified fields, with recommendations that fit the event's theme and purpose.
- If the user lists questions for the AI, address each one explicitly within the plan's recommendations.`

const plannerOutputPrompt = `Return ONLY a JSON object with exactly these keys:
{
  "overview": "short overview of the event plan",
  "timeline": [{"time": "7:00 PM", "activity": "what happens at that time"}],
  "schedule": [{"activity": "name", "details": "what it involves", "location": "where"}],
  "logistics": ["logistics item"],
  "materials": ["material or supply"],
  "recommendations": ["recommendation"],
  "tips": ["practical tip"]
}

Format every time as a 12-hour clock value like "7:00 PM" (H:MM AM/PM).
When the plan is rendered as text, present the schedule as a bulleted list, not as subheadings.
No markdown fences. No text outside the JSON object.`

// promptField couples a field's label, its specified-check, and its rendering.
// The closing "Not specified fields" summary is derived from the same
// specified predicates that drive the per-line values, so the two derivations
// cannot drift apart.
type promptField struct {
	label     string
	specified func(d *domain.EventDraft) bool
	render    func(d *domain.EventDraft) string
}

var planPromptFields = []promptField{
	{
		label:     "Title",
		specified: func(d *domain.EventDraft) bool { return strings.TrimSpace(d.Title) != "" },
		render:    func(d *domain.EventDraft) string { return d.Title },
	},
	{
		label:     "Description",
		specified: func(d *domain.EventDraft) bool { return strings.TrimSpace(d.Description) != "" },
		render:    func(d *domain.EventDraft) string { return d.Description },
	},
	{
		label:     "Attendees",
		specified: func(d *domain.EventDraft) bool { return d.Attendees != nil },
		render:    func(d *domain.EventDraft) string { return strconv.Itoa(*d.Attendees) },
	},
	{
		label:     "Location",
		specified: func(d *domain.EventDraft) bool { return strings.TrimSpace(d.Location) != "" },
		render:    func(d *domain.EventDraft) string { return d.Location },
	},
	{
		label:     "Purpose",
		specified: func(d *domain.EventDraft) bool { return strings.TrimSpace(d.Purpose) != "" },
		render:    func(d *domain.EventDraft) string { return d.Purpose },
	},
	{
		label:     "Date",
		specified: func(d *domain.EventDraft) bool { return len(d.Dates) > 0 },
		render:    renderDates,
	},
	{
		label:     "Start Time",
		specified: func(d *domain.EventDraft) bool { return strings.TrimSpace(d.StartTime) != "" },
		render:    func(d *domain.EventDraft) string { return d.StartTime },
	},
	{
		label:     "End Time",
		specified: func(d *domain.EventDraft) bool { return strings.TrimSpace(d.EndTime) != "" },
		render:    func(d *domain.EventDraft) string { return d.EndTime },
	},
	{
		// Recurring always renders Yes/No and is never counted as missing.
		label:     "Recurring",
		specified: func(d *domain.EventDraft) bool { return true },
		render:    renderRecurring,
	},
	{
		label:     "Activities",
		specified: func(d *domain.EventDraft) bool { return len(d.Activities) > 0 },
		render:    renderActivities,
	},
	{
		label:     "Questions for AI",
		specified: func(d *domain.EventDraft) bool { return len(d.Questions) > 0 },
		render:    func(d *domain.EventDraft) string { return strings.Join(d.Questions, "; ") },
	},
}

func renderDates(d *domain.EventDraft) string {
	parts := make([]string, len(d.Dates))
	for i, dt := range d.Dates {
		parts[i] = dt.Format("2006-01-02")
	}
	return strings.Join(parts, ", ")
}

func renderRecurring(d *domain.EventDraft) string {
	if !d.Recurring {
		return "No"
	}
	freq := strings.TrimSpace(d.Frequency)
	if freq == "" {
		freq = "frequency not specified"
	}
	return fmt.Sprintf("Yes (%s)", freq)
}

func renderActivities(d *domain.EventDraft) string {
	parts := make([]string, len(d.Activities))
	for i, a := range d.Activities {
		if strings.TrimSpace(a.Description) != "" {
			parts[i] = fmt.Sprintf("%s (%s)", a.Name, a.Description)
		} else {
			parts[i] = a.Name
		}
	}
	return strings.Join(parts, ", ")
}

// buildUserInputBlock renders the draft as the fixed-order line block sent to
// the model, closing with the summary of unspecified field labels.
func buildUserInputBlock(d *domain.EventDraft) string {
	var b strings.Builder
	var missing []string

	for _, f := range planPromptFields {
		value := notSpecified
		if f.specified(d) {
			value = f.render(d)
		} else {
			missing = append(missing, f.label)
		}
		fmt.Fprintf(&b, "- **%s:** %s\n", f.label, value)
	}

	summary := "None"
	if len(missing) > 0 {
		summary = strings.Join(missing, ", ")
	}
	fmt.Fprintf(&b, "Not specified fields: %s", summary)

	return b.String()
}

// PromptPayload is the ordered message list for one completion call.
// One payload corresponds to exactly one call; it is not mutated after build.
type PromptPayload struct {
	Messages []llm.Message
}

// BuildPlanPrompt turns a draft into the three-block plan-generation payload:
// fixed system instructions, the rendered user input, and the fixed output
// requirements. The user-input block is recorded into the trace before
// returning so it can be inspected regardless of the call's outcome.
func BuildPlanPrompt(draft *domain.EventDraft, trace *PromptTrace) PromptPayload {
	input := buildUserInputBlock(draft)
	if trace != nil {
		trace.Record(input)
	}
	return PromptPayload{Messages: []llm.Message{
		{Role: llm.RoleSystem, Content: plannerSystemPrompt},
		{Role: llm.RoleUser, Content: input},
		{Role: llm.RoleUser, Content: plannerOutputPrompt},
	}}
}

func buildEnhancePrompt(planText, request string) string {
	var b strings.Builder
	b.WriteString("Here is an event plan:\n\n")
	b.WriteString(planText)
	b.WriteString("\n\nThe user asks: ")
	b.WriteString(request)
	b.WriteString("\n\nRevise or extend the plan accordingly. Keep every detail the user did not ask to change.")
	return b.String()
}

func buildSuggestPrompt(eventType string, attendees *int, location string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest 5-10 activity names for a %s event", eventType)
	if attendees != nil {
		fmt.Fprintf(&b, " with %d attendees", *attendees)
	}
	if strings.TrimSpace(location) != "" {
		fmt.Fprintf(&b, " at %s", location)
	}
	b.WriteString(".\nReturn one activity name per line. Names only, no descriptions.")
	return b.String()
}
