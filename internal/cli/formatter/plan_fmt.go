package formatter

import (
	"strings"

	"github.com/alexanderramin/fete/internal/domain"
)

// FormatPlan renders a structured plan with styled section headers.
func FormatPlan(p *domain.StructuredPlan) string {
	var b strings.Builder

	b.WriteString(Header("Event plan"))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(p.Overview))

	if len(p.Timeline) > 0 {
		b.WriteString("\n\n")
		b.WriteString(Header("Timeline"))
		for _, e := range p.Timeline {
			b.WriteString("\n")
			b.WriteString(StyleYellow.Render(e.Time))
			b.WriteString(Dim(" · "))
			b.WriteString(StyleFg.Render(e.Activity))
		}
	}

	if len(p.Schedule) > 0 {
		b.WriteString("\n\n")
		b.WriteString(Header("Schedule"))
		for _, e := range p.Schedule {
			b.WriteString("\n")
			b.WriteString(Bold(e.Activity))
			b.WriteString(Dim(" — "))
			b.WriteString(StyleFg.Render(e.Details))
			if e.Location != "" {
				b.WriteString(Dim(" @ " + e.Location))
			}
		}
	}

	writeStyledSection(&b, "Logistics", p.Logistics)
	writeStyledSection(&b, "Materials", p.Materials)
	writeStyledSection(&b, "Recommendations", p.Recommendations)
	writeStyledSection(&b, "Tips", p.Tips)

	return b.String()
}

func writeStyledSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n\n")
	b.WriteString(Header(title))
	for _, item := range items {
		b.WriteString("\n")
		b.WriteString(StyleGreen.Render("• "))
		b.WriteString(StyleFg.Render(item))
	}
}

// FormatPlanText renders flattened plan text, dimming the markdown headers
// so stored renderings read cleanly in the terminal.
func FormatPlanText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "##"):
			lines[i] = StyleHeader.Render(strings.TrimSpace(strings.TrimLeft(trimmed, "#")))
		case strings.HasPrefix(trimmed, "- "):
			lines[i] = StyleGreen.Render("• ") + StyleFg.Render(strings.TrimPrefix(trimmed, "- "))
		default:
			lines[i] = StyleFg.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
