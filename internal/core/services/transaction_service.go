package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sabaipos/pos_backend/internal/apperrors"
	"github.com/sabaipos/pos_backend/internal/core/domain"
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/internal/dto"
	"github.com/sabaipos/pos_backend/internal/middleware"
)

// txnIDLayout derives the externally visible transaction id from the creation
// instant with second-plus-millisecond granularity, which is unique in
// practice at walk-in request rates. Collisions surface as conflicts and are
// retried once with a fresh instant.
const txnIDLayout = "20060102150405.000"

// transactionService implements the ledger state machine and the correction
// protocol.
type transactionService struct {
	txnRepo    portsrepo.TransactionRepositoryFacade
	rateRepo   portsrepo.RateRepositoryFacade
	rosterRepo portsrepo.RosterWriter
	loc        *time.Location
	now        func() time.Time
}

// TransactionOption customizes a transactionService.
type TransactionOption func(*transactionService)

// WithTransactionClock overrides the wall clock, primarily for tests.
func WithTransactionClock(now func() time.Time) TransactionOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates the ledger service. The roster writer receives
// the staff fee credit after each successful ledger write.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, rateRepo portsrepo.RateRepositoryFacade, rosterRepo portsrepo.RosterWriter, loc *time.Location, opts ...TransactionOption) portssvc.TransactionSvcFacade {
	s := &transactionService{
		txnRepo:    txnRepo,
		rateRepo:   rateRepo,
		rosterRepo: rosterRepo,
		loc:        loc,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// buildTransaction prices the request from the catalog and assembles an
// Active ledger row stamped with the creation instant.
func (s *transactionService) buildTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	rate, err := s.rateRepo.LookupActiveRate(ctx, req.ServiceType, req.DurationMinutes, req.Location)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no active rate for %s, %d min, %s", apperrors.ErrNotFound, req.ServiceType, req.DurationMinutes, req.Location)
		}
		return nil, fmt.Errorf("failed to look up service rate: %w", err)
	}

	amount := rate.Price
	if req.PaymentAmount != nil {
		amount = *req.PaymentAmount
	}

	ts := s.now()
	local := ts.In(s.loc)
	return &domain.Transaction{
		ID:              uuid.NewString(),
		TransactionID:   local.Format(txnIDLayout),
		Timestamp:       ts,
		Date:            local.Format("2006-01-02"),
		StaffName:       req.StaffName,
		ServiceType:     req.ServiceType,
		Location:        req.Location,
		DurationMinutes: req.DurationMinutes,
		PaymentAmount:   amount,
		PaymentMethod:   req.PaymentMethod,
		StaffFee:        rate.StaffFee,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		CustomerContact: req.CustomerContact,
		Status:          domain.TxnActive,
	}, nil
}

// creditStaffFee credits the staff member's roster fee total. Sequenced after
// the ledger write has succeeded, never before.
func (s *transactionService) creditStaffFee(ctx context.Context, txn *domain.Transaction) error {
	if err := s.rosterRepo.IncrementFeeTotal(ctx, txn.StaffName, txn.StaffFee, s.now()); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Ledger row saved but fee credit failed",
			slog.String("transaction_id", txn.TransactionID), slog.String("staff_name", txn.StaffName), slog.String("error", err.Error()))
		return fmt.Errorf("transaction %s recorded but fee credit failed: %w", txn.TransactionID, err)
	}
	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var txn *domain.Transaction
	// A timestamp-derived id can collide under concurrent creation; retry the
	// whole build once so the second attempt gets a fresh instant.
	for attempt := 0; ; attempt++ {
		var err error
		txn, err = s.buildTransaction(ctx, req)
		if err != nil {
			return nil, err
		}
		err = s.txnRepo.SaveTransaction(ctx, *txn)
		if err == nil {
			break
		}
		if (errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrConflict)) && attempt == 0 {
			logger.Warn("Transaction id collision, retrying with fresh instant", slog.String("transaction_id", txn.TransactionID))
			continue
		}
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if err := s.creditStaffFee(ctx, txn); err != nil {
		return nil, err
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("staff_name", txn.StaffName))
	return txn, nil
}

// CorrectMostRecent voids the most recent Active transaction and records a
// linked replacement. Void and insert happen in one database transaction, so
// the two-step protocol is never observable half-done.
func (s *transactionService) CorrectMostRecent(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var voided, created *domain.Transaction
	for attempt := 0; ; attempt++ {
		replacement, err := s.buildTransaction(ctx, req)
		if err != nil {
			return nil, nil, err
		}
		replacement.Status = domain.TxnCorrected

		voided, created, err = s.txnRepo.CorrectMostRecentActive(ctx, *replacement)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrInvalidState) {
			return nil, nil, fmt.Errorf("%w: nothing to correct", apperrors.ErrInvalidState)
		}
		if (errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrConflict)) && attempt == 0 {
			logger.Warn("Correction conflicted, retrying once")
			continue
		}
		return nil, nil, fmt.Errorf("failed to correct most recent transaction: %w", err)
	}

	if err := s.creditStaffFee(ctx, created); err != nil {
		return nil, nil, err
	}

	logger.Info("Transaction corrected",
		slog.String("voided_id", voided.TransactionID),
		slog.String("replacement_id", created.TransactionID))
	return voided, created, nil
}

func (s *transactionService) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListByDate(ctx context.Context, date string) ([]domain.Transaction, error) {
	if date == "" {
		date = s.now().In(s.loc).Format("2006-01-02")
	}
	txns, err := s.txnRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %s: %w", date, err)
	}
	return txns, nil
}

func (s *transactionService) MostRecentActive(ctx context.Context) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindMostRecentActive(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no active transaction", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find most recent active transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) ListArchivedByMonth(ctx context.Context, month string) ([]domain.ArchivedTransaction, error) {
	rows, err := s.txnRepo.ListArchivedByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived transactions for %s: %w", month, err)
	}
	return rows, nil
}
