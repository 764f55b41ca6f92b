package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lifedash/internal/analyzer"
	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Clock supplies "now" when a request does not carry one.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

type dashboardService struct {
	clock    Clock
	observer UseCaseObserver
}

func NewDashboardService(clock Clock, observers ...UseCaseObserver) DashboardService {
	if clock == nil {
		clock = systemClock
	}
	return &dashboardService{
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) now(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return s.clock()
}

func (s *dashboardService) Summarize(ctx context.Context, req app.SummaryRequest) (resp *app.SummaryResponse, err error) {
	fields := map[string]any{
		"domain":   string(req.Domain),
		"group_by": req.GroupBy,
	}
	done := track(ctx, s.observer, "summarize", fields)
	defer func() { done(err) }()

	kind, ok := domain.ParseKind(string(req.Domain))
	if !ok {
		return nil, &app.SummaryError{
			Code:    app.SummaryErrUnknownDomain,
			Message: fmt.Sprintf("unknown domain %q", req.Domain),
		}
	}
	dim := analyzer.DimTemporal
	if req.GroupBy != "" {
		if dim, ok = analyzer.ParseDimension(req.GroupBy); !ok {
			return nil, &app.SummaryError{
				Code:    app.SummaryErrUnknownDimension,
				Message: fmt.Sprintf("unknown grouping %q", req.GroupBy),
			}
		}
	}

	now := s.now(req.Now)
	entities := req.Snapshot.Entities(kind)

	// Classification and grouping read the same immutable input and do not
	// depend on each other.
	var (
		summary app.Summary
		groups  []app.Group
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		summary, err = analyzer.Summarize(kind, entities, now)
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		groups, err = analyzer.Group(entities, dim, now)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, summaryError(err)
	}

	resp = &app.SummaryResponse{Summary: summary, Groups: groups}
	if kind == domain.KindPriority {
		resp.Conflicts = analyzer.DetectConflicts(req.Snapshot.Priorities)
	}

	fields["total_active"] = summary.TotalActive
	fields["level"] = string(summary.Level)
	fields["conflicts"] = len(resp.Conflicts)
	return resp, nil
}

func (s *dashboardService) Dashboard(ctx context.Context, req app.DashboardRequest) (resp *app.DashboardResponse, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, "dashboard", fields)
	defer func() { done(err) }()

	now := s.now(req.Now)

	summaries := make([]app.Summary, len(domain.Kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range domain.Kinds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := analyzer.Summarize(kind, req.Snapshot.Entities(kind), now)
			if err != nil {
				return err
			}
			summaries[i] = sum
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, summaryError(err)
	}

	resp = &app.DashboardResponse{
		GeneratedAt: now,
		Summaries:   summaries,
		Conflicts:   analyzer.DetectConflicts(req.Snapshot.Priorities),
	}
	for _, sum := range summaries {
		if sum.HintMismatches > 0 {
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("%s: stored overdue status disagrees with the due date on %d item(s)", sum.Domain, sum.HintMismatches))
		}
	}
	if err := domain.ValidateDominance(req.Snapshot.Priorities); err != nil {
		resp.Warnings = append(resp.Warnings, err.Error())
	}

	fields["conflicts"] = len(resp.Conflicts)
	fields["warnings"] = len(resp.Warnings)
	return resp, nil
}

// summaryError maps analyzer failures onto request error codes. Context
// errors pass through unchanged.
func summaryError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, analyzer.ErrUnsupportedDimension):
		return &app.SummaryError{Code: app.SummaryErrUnsupportedDimension, Message: err.Error(), Err: err}
	case errors.Is(err, analyzer.ErrInvalidInput):
		return &app.SummaryError{Code: app.SummaryErrInvalidInput, Message: err.Error(), Err: err}
	default:
		return err
	}
}
