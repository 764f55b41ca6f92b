package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/domain"
)

// FormatGroups renders grouped entities, one section per non-empty group.
// Empty groups are listed on a single trailing line.
func FormatGroups(groups []app.Group, now time.Time) string {
	return RenderBox("Groups", groupsBody(groups, now))
}

func groupsBody(groups []app.Group, now time.Time) string {
	var b strings.Builder
	var empty []string

	for _, g := range groups {
		if g.Count == 0 {
			empty = append(empty, g.Label)
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", Bold(g.Label), Dim(fmt.Sprintf("(%d)", g.Count)))
		for _, e := range g.Items {
			b.WriteString("  " + entityLine(e, now) + "\n")
		}
	}
	if len(empty) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Dim("Empty: " + strings.Join(empty, ", ")))
	}
	if b.Len() == 0 {
		return Dim("No groups.")
	}
	return strings.TrimRight(b.String(), "\n")
}

func entityLine(e domain.Entity, now time.Time) string {
	r := e.Common()
	parts := []string{TruncID(r.ID), r.Title}
	if r.DueDate != nil {
		parts = append(parts, RelativeDayStyled(*r.DueDate, now))
	}
	if r.Rank >= domain.RankHigh {
		parts = append(parts, StyleRed.Render(r.Rank.String()))
	}
	if r.Status != domain.StatusPending {
		parts = append(parts, StatusPill(r.Status))
	}
	return strings.Join(parts, "  ")
}
