package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lifedash/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	content = strings.TrimRight(content, "\n")
	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

func daysUntil(due, now time.Time) int {
	loc := now.Location()
	return domain.DaysBetween(now, domain.CalendarDay(due, loc), loc)
}

// RelativeDay describes a calendar due date relative to now's day.
func RelativeDay(due, now time.Time) string {
	days := daysUntil(due, now)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// RelativeDayStyled colours RelativeDay by urgency: past and the next two
// days red, the rest of the week yellow.
func RelativeDayStyled(due, now time.Time) string {
	text := RelativeDay(due, now)
	days := daysUntil(due, now)

	switch {
	case days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// KindBadge returns a capitalized, purple-styled domain label.
func KindBadge(k domain.Kind) string {
	if k == "" {
		return StyleDim.Render("--")
	}
	s := string(k)
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// StatusPill returns a colored lifecycle status indicator.
func StatusPill(status domain.Status) string {
	switch status {
	case domain.StatusPending:
		return StyleBlue.Render("○ Pending")
	case domain.StatusInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.StatusOverdue:
		return StyleRed.Render("▲ Overdue")
	case domain.StatusRescheduled:
		return StyleYellow.Render("↻ Rescheduled")
	case domain.StatusCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.StatusCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

func count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
