package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lifedash/internal/app"
)

// FormatDashboard renders every domain as one table row followed by the
// per-domain insights, priority conflicts and data warnings.
func FormatDashboard(resp *app.DashboardResponse) string {
	var b strings.Builder

	b.WriteString(Dim(resp.GeneratedAt.Format(time.RFC1123)) + "\n\n")

	cols := []Column{
		{Title: "DOMAIN"},
		{Title: "ACTIVE", Numeric: true},
		{Title: "OVERDUE", Numeric: true},
		{Title: "TODAY", Numeric: true},
		{Title: "WEEK", Numeric: true},
		{Title: "CRITICAL", Numeric: true},
		{Title: "RATE"},
		{Title: "LEVEL"},
	}
	rows := make([][]string, 0, len(resp.Summaries))
	for _, s := range resp.Summaries {
		rate := rateCell(s)
		if rate == "" {
			rate = Dim("--")
		}
		rows = append(rows, []string{
			KindBadge(s.Domain),
			fmt.Sprint(s.TotalActive),
			countStyled(s.OverdueCount, StyleRed.Render),
			countStyled(s.DueToday, StyleYellow.Render),
			fmt.Sprint(s.DueThisWeek),
			countStyled(s.CriticalCount, StyleRed.Render),
			rate,
			LevelIndicator(s.Level),
		})
	}
	b.WriteString(RenderTable(cols, rows))

	b.WriteString("\n" + Header("Insights") + "\n")
	for _, s := range resp.Summaries {
		fmt.Fprintf(&b, "%s %s %s\n", InsightBadge(s.Insight.Type), KindBadge(s.Domain)+":", s.Insight.Message)
	}

	b.WriteString("\n" + Header("Conflicts") + "\n")
	b.WriteString(conflictsBody(resp.Conflicts) + "\n")

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
		}
	}
	return RenderBox("Dashboard", b.String())
}
