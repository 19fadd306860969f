package testutil

import (
	"time"

	"github.com/alexanderramin/fete/internal/domain"
	"github.com/google/uuid"
)

// Draft options
type DraftOption func(*domain.EventDraft)

func WithAttendees(n int) DraftOption {
	return func(d *domain.EventDraft) {
		d.Attendees = &n
	}
}

func WithDates(dates ...time.Time) DraftOption {
	return func(d *domain.EventDraft) {
		d.Dates = dates
	}
}

func WithRecurring(frequency string) DraftOption {
	return func(d *domain.EventDraft) {
		d.Recurring = true
		d.Frequency = frequency
	}
}

func WithActivities(activities ...domain.Activity) DraftOption {
	return func(d *domain.EventDraft) {
		d.Activities = activities
	}
}

func WithQuestions(questions ...string) DraftOption {
	return func(d *domain.EventDraft) {
		d.Questions = questions
	}
}

// NewDraft builds an event draft with the common fields filled in.
func NewDraft(title string, opts ...DraftOption) *domain.EventDraft {
	d := &domain.EventDraft{
		Title:       title,
		Description: "A " + title + " to remember",
		Location:    "Community Hall",
		Purpose:     "Celebration",
		StartTime:   "6:00 PM",
		EndTime:     "10:00 PM",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewEvent builds a persisted event around the given draft.
func NewEvent(draft *domain.EventDraft) *domain.Event {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Event{
		EventDraft: *draft,
		ID:         uuid.New().String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewPlan builds a fully populated structured plan.
func NewPlan() *domain.StructuredPlan {
	return &domain.StructuredPlan{
		Overview: "An evening garden party with dinner and games.",
		Timeline: []domain.TimelineEntry{
			{Time: "6:00 PM", Activity: "Guests arrive"},
			{Time: "7:00 PM", Activity: "Dinner is served"},
		},
		Schedule: []domain.ScheduleEntry{
			{Activity: "Dinner", Details: "Three-course meal", Location: "Main tent"},
		},
		Logistics:       []string{"Book the caterer two weeks ahead"},
		Materials:       []string{"String lights", "Folding chairs"},
		Recommendations: []string{"Have a rain plan"},
		Tips:            []string{"Greet guests at the gate"},
	}
}
