package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lifedash/internal/domain"
	"github.com/alexanderramin/lifedash/internal/importer"
)

type snapshotService struct {
	loc      *time.Location
	observer UseCaseObserver
}

// NewSnapshotService reads snapshot dates as calendar dates in loc.
func NewSnapshotService(loc *time.Location, observers ...UseCaseObserver) SnapshotService {
	if loc == nil {
		loc = time.UTC
	}
	return &snapshotService{
		loc:      loc,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *snapshotService) Load(ctx context.Context, path string) (*SnapshotResult, error) {
	schema, err := importer.LoadSnapshot(path)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot file: %w", err)
	}
	return s.FromSchema(ctx, schema)
}

func (s *snapshotService) FromSchema(ctx context.Context, schema *importer.SnapshotSchema) (res *SnapshotResult, err error) {
	fields := map[string]any{"timezone": s.loc.String()}
	done := track(ctx, s.observer, "load-snapshot", fields)
	defer func() { done(err) }()

	if errs := importer.ValidateSnapshot(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, &importer.ValidationError{Errs: errs}
	}

	snap, err := importer.Convert(schema, s.loc)
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}

	counts := make(map[domain.Kind]int, len(domain.Kinds))
	for _, kind := range domain.Kinds {
		n := len(snap.Entities(kind))
		counts[kind] = n
		fields[string(kind)] = n
	}
	return &SnapshotResult{Snapshot: snap, Counts: counts}, nil
}
