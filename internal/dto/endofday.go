package dto

import (
	"time"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunEndOfDayRequest triggers the end-of-day pipeline. Date defaults to the
// shop-local current date when omitted.
type RunEndOfDayRequest struct {
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// DailySummaryResponse is the API shape of one aggregated day.
type DailySummaryResponse struct {
	Date             string          `json:"date"`
	TransactionCount int             `json:"transactionCount"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalFees        decimal.Decimal `json:"totalFees"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	GeneratedAt      time.Time       `json:"generatedAt"`
}

// ToDailySummaryResponse converts a domain summary.
func ToDailySummaryResponse(s domain.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		Date:             s.Date,
		TransactionCount: s.TransactionCount,
		TotalRevenue:     s.TotalRevenue,
		TotalFees:        s.TotalFees,
		TotalExpenses:    s.TotalExpenses,
		GeneratedAt:      s.GeneratedAt,
	}
}

// EndOfDayResponse reports what the run did.
type EndOfDayResponse struct {
	Summary          DailySummaryResponse `json:"summary"`
	ArchivedCount    int                  `json:"archivedCount"`
	RosterSlotsReset int                  `json:"rosterSlotsReset"`
}

// ToEndOfDayResponse converts a domain result.
func ToEndOfDayResponse(r domain.EndOfDayResult) EndOfDayResponse {
	return EndOfDayResponse{
		Summary:          ToDailySummaryResponse(r.Summary),
		ArchivedCount:    r.ArchivedCount,
		RosterSlotsReset: r.RosterSlotsReset,
	}
}
