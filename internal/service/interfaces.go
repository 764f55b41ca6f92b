package service

import (
	"context"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/domain"
	"github.com/alexanderramin/lifedash/internal/importer"
)

// DashboardService derives summaries, groups and conflicts from a snapshot.
type DashboardService interface {
	Summarize(ctx context.Context, req app.SummaryRequest) (*app.SummaryResponse, error)
	Dashboard(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error)
}

// SnapshotResult holds a converted snapshot and how many entities of each
// kind it contains.
type SnapshotResult struct {
	Snapshot domain.Snapshot
	Counts   map[domain.Kind]int
}

type SnapshotService interface {
	Load(ctx context.Context, path string) (*SnapshotResult, error)
	FromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*SnapshotResult, error)
}
