package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary is one row per calendar date, written only by the end-of-day
// run. Re-running for the same date replaces the row.
type DailySummary struct {
	Date             string          `json:"date"`
	TransactionCount int             `json:"transactionCount"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalFees        decimal.Decimal `json:"totalFees"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	GeneratedAt      time.Time       `json:"generatedAt"`
}

// LedgerAggregate is the rollup of a single date's Active transactions.
type LedgerAggregate struct {
	Count   int
	Revenue decimal.Decimal
	Fees    decimal.Decimal
}

// EndOfDayResult reports what a completed end-of-day run did.
type EndOfDayResult struct {
	Summary          DailySummary `json:"summary"`
	ArchivedCount    int          `json:"archivedCount"`
	RosterSlotsReset int          `json:"rosterSlotsReset"`
}
