package app

import (
	"time"

	"github.com/alexanderramin/lifedash/internal/domain"
)

type SummaryRequest struct {
	Now      *time.Time
	Domain   domain.Kind
	GroupBy  string
	Snapshot domain.Snapshot
}

// NewSummaryRequest groups by temporal bucket unless the caller changes it.
func NewSummaryRequest(kind domain.Kind, snap domain.Snapshot) SummaryRequest {
	return SummaryRequest{
		Domain:   kind,
		GroupBy:  "temporal",
		Snapshot: snap,
	}
}

type SummaryResponse struct {
	Summary   Summary
	Groups    []Group
	Conflicts []Conflict
}

type DashboardRequest struct {
	Now      *time.Time
	Snapshot domain.Snapshot
}

type DashboardResponse struct {
	GeneratedAt time.Time
	Summaries   []Summary
	Conflicts   []Conflict
	Warnings    []string
}

type SummaryErrorCode string

const (
	SummaryErrUnknownDomain        SummaryErrorCode = "UNKNOWN_DOMAIN"
	SummaryErrUnknownDimension     SummaryErrorCode = "UNKNOWN_DIMENSION"
	SummaryErrUnsupportedDimension SummaryErrorCode = "UNSUPPORTED_DIMENSION"
	SummaryErrInvalidInput         SummaryErrorCode = "INVALID_INPUT"
)

// SummaryError reports a request the engine refused. Err, when set, is the
// underlying analyzer error.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

func (e *SummaryError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *SummaryError) Unwrap() error { return e.Err }
