package domain

import (
	"fmt"
	"strings"
)

// TimelineEntry is one timeline row of a plan. Time is a 12-hour clock label
// such as "7:00 PM".
type TimelineEntry struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

// ScheduleEntry is one scheduled activity with its details and location.
type ScheduleEntry struct {
	Activity string `json:"activity"`
	Details  string `json:"details"`
	Location string `json:"location"`
}

// StructuredPlan is the canonical result of plan generation. Collection fields
// default to empty when absent from the decoded response; consumers never
// treat an absent list as an error.
type StructuredPlan struct {
	Overview        string          `json:"overview"`
	Timeline        []TimelineEntry `json:"timeline"`
	Schedule        []ScheduleEntry `json:"schedule"`
	Logistics       []string        `json:"logistics"`
	Materials       []string        `json:"materials"`
	Recommendations []string        `json:"recommendations"`
	Tips            []string        `json:"tips"`
}

// Flatten renders the plan as a single display string: a header, the overview,
// then one labeled section per non-empty collection in fixed order. Sections
// with zero entries are omitted entirely. The output is a pure function of the
// plan's fields, so a stored flattened plan can always be reproduced from its
// structured form.
func (p *StructuredPlan) Flatten() string {
	var b strings.Builder

	b.WriteString("## Event Plan\n\n")
	b.WriteString(p.Overview)

	if len(p.Timeline) > 0 {
		b.WriteString("\n\n### Timeline")
		for _, e := range p.Timeline {
			fmt.Fprintf(&b, "\n- **%s:** %s", e.Time, e.Activity)
		}
	}

	if len(p.Schedule) > 0 {
		b.WriteString("\n\n### Schedule")
		for _, e := range p.Schedule {
			fmt.Fprintf(&b, "\n- **%s** - %s (Location: %s)", e.Activity, e.Details, e.Location)
		}
	}

	writeListSection(&b, "Logistics", p.Logistics)
	writeListSection(&b, "Materials", p.Materials)
	writeListSection(&b, "Recommendations", p.Recommendations)
	writeListSection(&b, "Tips", p.Tips)

	return b.String()
}

func writeListSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n\n### ")
	b.WriteString(title)
	for _, item := range items {
		b.WriteString("\n- ")
		b.WriteString(item)
	}
}
