package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceRate is one priced entry of the service catalog, keyed by
// (serviceType, durationMinutes, location). Inactive rates are kept for
// history but never matched by lookups.
type ServiceRate struct {
	RateID          string          `json:"rateID"`
	ServiceType     string          `json:"serviceType"`
	DurationMinutes int             `json:"durationMinutes"`
	Location        string          `json:"location"`
	Price           decimal.Decimal `json:"price"`
	StaffFee        decimal.Decimal `json:"staffFee"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Expense is a dated outgoing amount, summed per day by the end-of-day run.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// StaffUser is a staff login credential. Only the authentication layer reads
// it; the roster references staff by display name.
type StaffUser struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"displayName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
