package intelligence

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/fete/internal/domain"
	"github.com/alexanderramin/fete/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func fullDraft() *domain.EventDraft {
	return &domain.EventDraft{
		Title:       "Garden Party",
		Description: "A relaxed afternoon outdoors",
		Attendees:   intPtr(12),
		Location:    "Community Hall",
		Purpose:     "Birthday",
		Dates: []time.Time{
			time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		StartTime: "6:00 PM",
		EndTime:   "10:00 PM",
		Recurring: true,
		Frequency: "monthly",
		Activities: []domain.Activity{
			{Name: "Karaoke", Description: "open mic in the garden"},
			{Name: "Quiz"},
		},
		Questions: []string{"What food fits a summer theme?", "How early should we set up?"},
	}
}

func TestBuildUserInputBlock_FullySpecified(t *testing.T) {
	block := buildUserInputBlock(fullDraft())

	assert.Contains(t, block, "- **Title:** Garden Party\n")
	assert.Contains(t, block, "- **Description:** A relaxed afternoon outdoors\n")
	assert.Contains(t, block, "- **Attendees:** 12\n")
	assert.Contains(t, block, "- **Location:** Community Hall\n")
	assert.Contains(t, block, "- **Purpose:** Birthday\n")
	assert.Contains(t, block, "- **Date:** 2026-06-30, 2026-07-01\n")
	assert.Contains(t, block, "- **Start Time:** 6:00 PM\n")
	assert.Contains(t, block, "- **End Time:** 10:00 PM\n")
	assert.Contains(t, block, "- **Recurring:** Yes (monthly)\n")
	assert.Contains(t, block, "- **Activities:** Karaoke (open mic in the garden), Quiz\n")
	assert.Contains(t, block, "- **Questions for AI:** What food fits a summer theme?; How early should we set up?\n")
	assert.True(t, strings.HasSuffix(block, "Not specified fields: None"))
}

func TestBuildUserInputBlock_EmptyDraft(t *testing.T) {
	block := buildUserInputBlock(&domain.EventDraft{})

	assert.Contains(t, block, "- **Title:** Not specified\n")
	assert.Contains(t, block, "- **Attendees:** Not specified\n")
	assert.Contains(t, block, "- **Recurring:** No\n")
	assert.True(t, strings.HasSuffix(block,
		"Not specified fields: Title, Description, Attendees, Location, Purpose, Date, Start Time, End Time, Activities, Questions for AI"))
	// Recurring always renders a value, so it never counts as missing.
	assert.NotContains(t, block, "Recurring,")
}

// Every field that renders "Not specified" must also appear in the closing
// summary, and vice versa. This is the property that keeps the two
// derivations from drifting.
func TestBuildUserInputBlock_NoDriftPerField(t *testing.T) {
	full := fullDraft()

	clear := []struct {
		label string
		apply func(d *domain.EventDraft)
	}{
		{"Title", func(d *domain.EventDraft) { d.Title = "" }},
		{"Description", func(d *domain.EventDraft) { d.Description = "" }},
		{"Attendees", func(d *domain.EventDraft) { d.Attendees = nil }},
		{"Location", func(d *domain.EventDraft) { d.Location = "" }},
		{"Purpose", func(d *domain.EventDraft) { d.Purpose = "" }},
		{"Date", func(d *domain.EventDraft) { d.Dates = nil }},
		{"Start Time", func(d *domain.EventDraft) { d.StartTime = "" }},
		{"End Time", func(d *domain.EventDraft) { d.EndTime = "" }},
		{"Activities", func(d *domain.EventDraft) { d.Activities = nil }},
		{"Questions for AI", func(d *domain.EventDraft) { d.Questions = nil }},
	}

	for _, tc := range clear {
		t.Run(tc.label, func(t *testing.T) {
			draft := *full
			tc.apply(&draft)

			block := buildUserInputBlock(&draft)

			assert.Contains(t, block, "- **"+tc.label+":** Not specified\n")
			assert.True(t, strings.HasSuffix(block, "Not specified fields: "+tc.label),
				"summary should list exactly the cleared field, got: %s", block[strings.LastIndex(block, "Not specified fields"):])
		})
	}
}

func TestBuildUserInputBlock_RecurringWithoutFrequency(t *testing.T) {
	block := buildUserInputBlock(&domain.EventDraft{Recurring: true})

	assert.Contains(t, block, "- **Recurring:** Yes (frequency not specified)\n")
}

func TestBuildUserInputBlock_Deterministic(t *testing.T) {
	draft := fullDraft()

	assert.Equal(t, buildUserInputBlock(draft), buildUserInputBlock(draft))
}

func TestBuildPlanPrompt_ThreeBlocks(t *testing.T) {
	trace := &PromptTrace{}
	payload := BuildPlanPrompt(fullDraft(), trace)

	require.Len(t, payload.Messages, 3)
	assert.Equal(t, llm.RoleSystem, payload.Messages[0].Role)
	assert.Equal(t, plannerSystemPrompt, payload.Messages[0].Content)
	assert.Equal(t, llm.RoleUser, payload.Messages[1].Role)
	assert.Contains(t, payload.Messages[1].Content, "- **Title:** Garden Party")
	assert.Equal(t, llm.RoleUser, payload.Messages[2].Role)
	assert.Equal(t, plannerOutputPrompt, payload.Messages[2].Content)
}

func TestBuildPlanPrompt_RecordsTrace(t *testing.T) {
	trace := &PromptTrace{}
	payload := BuildPlanPrompt(fullDraft(), trace)

	assert.Equal(t, payload.Messages[1].Content, trace.Last())
}

func TestBuildPlanPrompt_NilTrace(t *testing.T) {
	assert.NotPanics(t, func() {
		BuildPlanPrompt(fullDraft(), nil)
	})
}

func TestOutputPrompt_StatesSchemaAndTimeFormat(t *testing.T) {
	assert.Contains(t, plannerOutputPrompt, `"overview"`)
	assert.Contains(t, plannerOutputPrompt, `"timeline"`)
	assert.Contains(t, plannerOutputPrompt, `"schedule"`)
	assert.Contains(t, plannerOutputPrompt, `"logistics"`)
	assert.Contains(t, plannerOutputPrompt, `"materials"`)
	assert.Contains(t, plannerOutputPrompt, `"recommendations"`)
	assert.Contains(t, plannerOutputPrompt, `"tips"`)
	assert.Contains(t, plannerOutputPrompt, `"7:00 PM"`)
	assert.Contains(t, plannerOutputPrompt, "bulleted list")
}

func TestBuildSuggestPrompt_Variants(t *testing.T) {
	base := buildSuggestPrompt("Birthday", nil, "")
	assert.Contains(t, base, "Suggest 5-10 activity names for a Birthday event.")
	assert.Contains(t, base, "one activity name per line")

	withAll := buildSuggestPrompt("Birthday", intPtr(12), "the park")
	assert.Contains(t, withAll, "for a Birthday event with 12 attendees at the park.")
}

func TestBuildEnhancePrompt_EmbedsPlanAndRequest(t *testing.T) {
	prompt := buildEnhancePrompt("## Event Plan\n\nOverview.", "add a rain backup")

	assert.True(t, strings.HasPrefix(prompt, "Here is an event plan:\n\n## Event Plan"))
	assert.Contains(t, prompt, "The user asks: add a rain backup")
	assert.Contains(t, prompt, "Keep every detail the user did not ask to change.")
}
