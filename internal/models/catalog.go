package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceRate is the persistence shape of a service catalog entry.
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

// Expense is the persistence shape of a dated expense row.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// DailySummary is the persistence shape of one aggregated day.
type DailySummary struct {
	Date             string          `json:"date"`
	TransactionCount int             `json:"transactionCount"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalFees        decimal.Decimal `json:"totalFees"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	GeneratedAt      time.Time       `json:"generatedAt"`
}

// StaffUser is the persistence shape of a staff login credential.
type StaffUser struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"displayName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
