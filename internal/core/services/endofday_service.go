package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sabaipos/pos_backend/internal/apperrors"
	"github.com/sabaipos/pos_backend/internal/core/domain"
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/internal/middleware"
)

// endOfDayService runs the daily aggregation and archival pipeline.
type endOfDayService struct {
	txnRepo     portsrepo.TransactionRepositoryFacade
	expenseRepo portsrepo.ExpenseRepositoryFacade
	summaryRepo portsrepo.SummaryRepositoryFacade
	rosterSvc   portssvc.RosterSvcFacade
	loc         *time.Location
	now         func() time.Time
}

// EndOfDayOption customizes an endOfDayService.
type EndOfDayOption func(*endOfDayService)

// WithEndOfDayClock overrides the wall clock, primarily for tests.
func WithEndOfDayClock(now func() time.Time) EndOfDayOption {
	return func(s *endOfDayService) {
		s.now = now
	}
}

// NewEndOfDayService creates the end-of-day pipeline service.
func NewEndOfDayService(txnRepo portsrepo.TransactionRepositoryFacade, expenseRepo portsrepo.ExpenseRepositoryFacade, summaryRepo portsrepo.SummaryRepositoryFacade, rosterSvc portssvc.RosterSvcFacade, loc *time.Location, opts ...EndOfDayOption) portssvc.EndOfDaySvcFacade {
	s := &endOfDayService{
		txnRepo:     txnRepo,
		expenseRepo: expenseRepo,
		summaryRepo: summaryRepo,
		rosterSvc:   rosterSvc,
		loc:         loc,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.EndOfDaySvcFacade = (*endOfDayService)(nil)

// Run executes the three pipeline steps in order: summary upsert, archival of
// pre-current-month rows, roster reset. The archive boundary is the first day
// of the current month, not today, so a mid-month run keeps the whole month
// queryable. A fatal archival inconsistency halts the run before the roster
// reset and is propagated, never swallowed.
func (s *endOfDayService) Run(ctx context.Context, asOfDate string) (*domain.EndOfDayResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := s.now()
	if asOfDate == "" {
		asOfDate = now.In(s.loc).Format("2006-01-02")
	}
	if _, err := time.ParseInLocation("2006-01-02", asOfDate, s.loc); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, asOfDate)
	}

	// Step 1: aggregate the day and upsert the summary. Re-running for the
	// same date replaces the row.
	agg, err := s.txnRepo.AggregateForDate(ctx, asOfDate)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ledger for %s: %w", asOfDate, err)
	}
	expenses, err := s.expenseRepo.SumExpensesForDate(ctx, asOfDate)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses for %s: %w", asOfDate, err)
	}

	summary := domain.DailySummary{
		Date:             asOfDate,
		TransactionCount: agg.Count,
		TotalRevenue:     agg.Revenue,
		TotalFees:        agg.Fees,
		TotalExpenses:    expenses,
		GeneratedAt:      now,
	}
	if err := s.summaryRepo.UpsertSummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to upsert daily summary for %s: %w", asOfDate, err)
	}

	// Step 2: archive everything dated strictly before the first day of the
	// current month.
	local := now.In(s.loc)
	cutoff := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, s.loc).Format("2006-01-02")
	archived, err := s.txnRepo.ArchiveBefore(ctx, cutoff, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrFatal) {
			// The archive and live stores disagree; stop here, leave the
			// roster untouched and demand operator attention.
			logger.Error("Fatal archival inconsistency, halting end-of-day run",
				slog.String("cutoff", cutoff), slog.String("error", err.Error()))
			return nil, err
		}
		return nil, fmt.Errorf("failed to archive ledger rows before %s: %w", cutoff, err)
	}

	// Step 3: reset the roster for the new day.
	reset, err := s.rosterSvc.ResetForNewDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset roster: %w", err)
	}

	logger.Info("End-of-day run complete",
		slog.String("date", asOfDate),
		slog.Int("transactions", agg.Count),
		slog.Int("archived", archived),
		slog.Int("roster_slots_reset", reset))

	return &domain.EndOfDayResult{
		Summary:          summary,
		ArchivedCount:    archived,
		RosterSlotsReset: reset,
	}, nil
}

func (s *endOfDayService) GetSummary(ctx context.Context, date string) (*domain.DailySummary, error) {
	summary, err := s.summaryRepo.FindSummaryByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find summary for %s: %w", date, err)
	}
	return summary, nil
}
