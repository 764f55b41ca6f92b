package analyzer

import (
	"fmt"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/domain"
)

// MaxStrategicPriorities is the most strategic-tier priorities that can be
// active before they compete with each other.
const MaxStrategicPriorities = 2

// DetectConflicts scans active priorities once and reports structural
// problems: too many strategic entries first, then entries with no linked
// actions. Related ids keep input order.
func DetectConflicts(priorities []domain.Priority) []app.Conflict {
	var strategic, unlinked []string
	for _, p := range priorities {
		if !p.IsActive() {
			continue
		}
		if p.Tier == domain.TierStrategic {
			strategic = append(strategic, p.ID)
		}
		if len(p.LinkedItems) == 0 {
			unlinked = append(unlinked, p.ID)
		}
	}

	var conflicts []app.Conflict
	if len(strategic) > MaxStrategicPriorities {
		conflicts = append(conflicts, app.Conflict{
			Type:       app.ConflictTooManyStrategic,
			Message:    fmt.Sprintf("%d strategic priorities are active; keep at most %d.", len(strategic), MaxStrategicPriorities),
			Severity:   domain.SeverityWarning,
			RelatedIDs: strategic,
		})
	}
	if len(unlinked) > 0 {
		conflicts = append(conflicts, app.Conflict{
			Type:       app.ConflictNoActions,
			Message:    fmt.Sprintf("Priorities without linked actions: %d.", len(unlinked)),
			Severity:   domain.SeverityInfo,
			RelatedIDs: unlinked,
		})
	}
	return conflicts
}
