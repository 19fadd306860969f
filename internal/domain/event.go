package domain

import "time"

// Activity is a single planned activity within an event draft.
type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// EventDraft holds the user-entered, possibly incomplete description of an
// event. Every field is optional; an absent field means "not specified" and is
// rendered literally as such when the draft becomes a prompt.
type EventDraft struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Attendees   *int        `json:"attendees,omitempty"`
	Location    string      `json:"location,omitempty"`
	Purpose     string      `json:"purpose,omitempty"`
	Dates       []time.Time `json:"dates,omitempty"`
	StartTime   string      `json:"start_time,omitempty"`
	EndTime     string      `json:"end_time,omitempty"`
	Recurring   bool        `json:"recurring,omitempty"`
	Frequency   string      `json:"frequency,omitempty"`
	Activities  []Activity  `json:"activities,omitempty"`
	Questions   []string    `json:"questions,omitempty"`
}

// Event is the persisted record: the draft fields plus identity, timestamps,
// and the most recently generated plan. PlanText is the flattened rendering of
// Plan; records written before the structured field existed may carry only
// PlanText.
type Event struct {
	EventDraft

	ID        string          `json:"id"`
	Plan      *StructuredPlan `json:"plan,omitempty"`
	PlanText  *string         `json:"plan_text,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// HasPlan reports whether the event carries a generated plan in either form.
func (e *Event) HasPlan() bool {
	return e.Plan != nil || (e.PlanText != nil && *e.PlanText != "")
}

// CurrentPlanText returns the flattened plan text for display. It prefers the
// stored rendering and falls back to flattening the structured plan, so older
// records that carry only one of the two forms still render.
func (e *Event) CurrentPlanText() string {
	if e.PlanText != nil && *e.PlanText != "" {
		return *e.PlanText
	}
	if e.Plan != nil {
		return e.Plan.Flatten()
	}
	return ""
}

// DisplayTitle returns the event title, or a placeholder when untitled.
func (e *Event) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return "(untitled event)"
}

// DisplayID returns a short identifier for display.
// It truncates the UUID to 8 characters.
func (e *Event) DisplayID() string {
	if len(e.ID) >= 8 {
		return e.ID[:8]
	}
	return e.ID
}
