package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/domain"
)

const rateBarWidth = 10

// FormatSummary renders one domain: the summary card, its groups and, for
// priorities, any conflicts.
func FormatSummary(resp *app.SummaryResponse) string {
	var b strings.Builder
	b.WriteString(summaryBody(resp.Summary))

	if len(resp.Groups) > 0 {
		b.WriteString("\n\n")
		b.WriteString(groupsBody(resp.Groups, resp.Summary.GeneratedAt))
	}
	if len(resp.Conflicts) > 0 {
		b.WriteString("\n\n")
		b.WriteString(conflictsBody(resp.Conflicts))
	}
	return RenderBox(string(resp.Summary.Domain), b.String())
}

func summaryBody(s app.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", LevelIndicator(s.Level), Dim(s.GeneratedAt.Format(time.RFC1123)))
	fmt.Fprintf(&b, "%s %s\n\n", InsightBadge(s.Insight.Type), s.Insight.Message)

	rows := [][]string{
		{"Active", fmt.Sprint(s.TotalActive)},
		{"Overdue", countStyled(s.OverdueCount, StyleRed.Render)},
		{"Due today", countStyled(s.DueToday, StyleYellow.Render)},
		{"Due this week", fmt.Sprint(s.DueThisWeek)},
		{"Critical", countStyled(s.CriticalCount, StyleRed.Render)},
		{"Completed today", countStyled(s.CompletedToday, StyleGreen.Render)},
		{"Without date", fmt.Sprint(s.WithoutDateCount)},
	}
	if rate := rateCell(s); rate != "" {
		rows = append(rows, []string{rateLabel(s.Domain), rate})
	}
	b.WriteString(RenderTable([]Column{{Title: "METRIC"}, {Title: "VALUE", Numeric: true}}, rows))

	if s.HintMismatches > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s with a stale overdue status", count(s.HintMismatches, "item"))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func countStyled(n int, style func(...string) string) string {
	if n == 0 {
		return Dim("0")
	}
	return style(fmt.Sprint(n))
}

func rateCell(s app.Summary) string {
	switch s.Domain {
	case domain.KindHabit, domain.KindRoutine, domain.KindHealth:
	default:
		return ""
	}
	if !s.RateAvailable {
		return Dim("--")
	}
	return RenderRate(s.AverageRate, rateBarWidth)
}

func rateLabel(k domain.Kind) string {
	switch k {
	case domain.KindHabit:
		return "Consistency"
	case domain.KindRoutine:
		return "Execution"
	default:
		return "Wellness"
	}
}
