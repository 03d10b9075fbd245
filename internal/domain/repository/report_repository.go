package repository

import (
	"context"
	"time"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
)

// ReportSideEffect selects the occupancy mutation applied atomically with
// a report insert.
type ReportSideEffect int

const (
	SideEffectNone ReportSideEffect = iota
	// SideEffectFreeSpots decrements car occupancy by 5, floored at 0.
	SideEffectFreeSpots
	// SideEffectMarkFull saturates car occupancy to car capacity.
	SideEffectMarkFull
)

// ReportRepository owns the crowdsourced report store.
type ReportRepository interface {
	// CreateWithRateLimit inserts the report if the submitter has fewer
	// than limit reports in the trailing window, applying sideEffect to
	// the report's zone inside the same transaction. The window check
	// and the insert are atomic per submitter across processes; a racing
	// submission that would push the submitter over the limit fails with
	// ErrRateLimited.
	CreateWithRateLimit(
		ctx context.Context,
		report *domain.Report,
		limit int,
		window time.Duration,
		sideEffect ReportSideEffect,
	) (*domain.Report, error)

	// ListActive returns reports with active=true and expires_at in the
	// future, newest first, with zone name/slug joined.
	ListActive(ctx context.Context) ([]*domain.Report, error)

	// ListActiveByZone returns the zone's currently active reports.
	ListActiveByZone(ctx context.Context, zoneID string) ([]*domain.Report, error)

	// Feed returns the most recent reports regardless of active/expiry
	// state, newest first.
	Feed(ctx context.Context, limit int) ([]*domain.Report, error)

	// Deactivate soft-deletes a report, or ErrReportNotFound.
	Deactivate(ctx context.Context, id string) error
}
