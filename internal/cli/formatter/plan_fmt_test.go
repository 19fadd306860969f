package formatter

import (
	"testing"

	"github.com/alexanderramin/fete/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlan_ShowsAllSections(t *testing.T) {
	plan := &domain.StructuredPlan{
		Overview: "A relaxed garden party.",
		Timeline: []domain.TimelineEntry{
			{Time: "6:00 PM", Activity: "Guests arrive"},
		},
		Schedule: []domain.ScheduleEntry{
			{Activity: "Dinner", Details: "Buffet", Location: "Patio"},
		},
		Logistics:       []string{"Rent chairs"},
		Materials:       []string{"String lights"},
		Recommendations: []string{"Have a rain backup"},
		Tips:            []string{"Send reminders"},
	}

	out := FormatPlan(plan)

	assert.Contains(t, out, "A relaxed garden party.")
	assert.Contains(t, out, "6:00 PM")
	assert.Contains(t, out, "Guests arrive")
	assert.Contains(t, out, "Dinner")
	assert.Contains(t, out, "Patio")
	assert.Contains(t, out, "Rent chairs")
	assert.Contains(t, out, "String lights")
	assert.Contains(t, out, "Have a rain backup")
	assert.Contains(t, out, "Send reminders")
}

func TestFormatPlan_OmitsEmptySections(t *testing.T) {
	plan := &domain.StructuredPlan{Overview: "Just an overview."}

	out := FormatPlan(plan)

	assert.Contains(t, out, "Just an overview.")
	assert.NotContains(t, out, "TIMELINE")
	assert.NotContains(t, out, "SCHEDULE")
	assert.NotContains(t, out, "LOGISTICS")
}

func TestFormatPlanText_RendersHeadersAndBullets(t *testing.T) {
	text := "## Event Plan\n\nOverview.\n\n### Tips\n- Keep it simple"

	out := FormatPlanText(text)

	assert.Contains(t, out, "Event Plan")
	assert.NotContains(t, out, "##")
	assert.Contains(t, out, "• Keep it simple")
	assert.Contains(t, out, "Overview.")
}
