package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifedash/internal/app"
)

func FormatConflicts(conflicts []app.Conflict) string {
	return RenderBox("Conflicts", conflictsBody(conflicts))
}

func conflictsBody(conflicts []app.Conflict) string {
	if len(conflicts) == 0 {
		return StyleGreen.Render("✔ No priority conflicts")
	}
	var b strings.Builder
	for _, c := range conflicts {
		style := SeverityColor(c.Severity)
		fmt.Fprintf(&b, "%s %s\n", style.Render("▲ "+strings.ToUpper(string(c.Severity))), c.Message)
		if len(c.RelatedIDs) > 0 {
			ids := make([]string, len(c.RelatedIDs))
			for i, id := range c.RelatedIDs {
				ids[i] = TruncID(id)
			}
			fmt.Fprintf(&b, "  %s %s\n", Dim("related:"), strings.Join(ids, " "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
