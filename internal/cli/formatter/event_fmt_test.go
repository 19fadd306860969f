package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/fete/internal/domain"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func testEvent() *domain.Event {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Event{
		EventDraft: domain.EventDraft{
			Title:     "Garden Party",
			Attendees: intPtr(12),
			Location:  "Community Hall",
			Purpose:   "Birthday",
			Dates:     []time.Time{time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)},
			StartTime: "6:00 PM",
			EndTime:   "10:00 PM",
			Recurring: true,
			Frequency: "monthly",
			Activities: []domain.Activity{
				{Name: "Karaoke", Description: "open mic"},
				{Name: "Quiz"},
			},
			Questions: []string{"What food fits a summer theme?"},
		},
		ID:        "a1b2c3d4-0000-0000-0000-000000000000",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestFormatEventList_Empty(t *testing.T) {
	out := FormatEventList(nil)

	assert.Contains(t, out, "No events yet")
	assert.Contains(t, out, "fete event add")
}

func TestFormatEventList_ShowsIDTitleDateAndPlanMark(t *testing.T) {
	e := testEvent()
	out := FormatEventList([]*domain.Event{e})

	assert.Contains(t, out, "a1b2c3d4")
	assert.Contains(t, out, "Garden Party")
	assert.Contains(t, out, "2026-06-30")
	assert.Contains(t, out, "no plan")
}

func TestFormatEventList_PlannedMark(t *testing.T) {
	e := testEvent()
	e.Plan = &domain.StructuredPlan{Overview: "Overview."}

	out := FormatEventList([]*domain.Event{e})

	assert.Contains(t, out, "planned")
	assert.NotContains(t, out, "no plan")
}

func TestFormatEventDetail_ShowsFields(t *testing.T) {
	out := FormatEventDetail(testEvent())

	assert.Contains(t, out, "Garden Party")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "Community Hall")
	assert.Contains(t, out, "Birthday")
	assert.Contains(t, out, "2026-06-30")
	assert.Contains(t, out, "6:00 PM")
	assert.Contains(t, out, "Yes (monthly)")
	assert.Contains(t, out, "Karaoke, Quiz")
	assert.Contains(t, out, "What food fits a summer theme?")
	assert.Contains(t, out, "fete plan generate a1b2c3d4")
}

func TestFormatEventDetail_WithPlanShowsHint(t *testing.T) {
	e := testEvent()
	e.Plan = &domain.StructuredPlan{Overview: "Overview."}

	out := FormatEventDetail(e)

	assert.Contains(t, out, "Plan generated")
	assert.Contains(t, out, "fete plan show a1b2c3d4")
}

func TestFormatSuggestions(t *testing.T) {
	out := FormatSuggestions([]string{"Karaoke", "Quiz night"})

	assert.Contains(t, out, "Karaoke")
	assert.Contains(t, out, "Quiz night")

	empty := FormatSuggestions(nil)
	assert.Contains(t, empty, "No suggestions available")
}
