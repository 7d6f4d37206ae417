package dto

import (
	"time"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRateRequest adds a service catalog entry.
type CreateRateRequest struct {
	ServiceType     string          `json:"serviceType" binding:"required"`
	DurationMinutes int             `json:"durationMinutes" binding:"required,gt=0"`
	Location        string          `json:"location" binding:"required"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	StaffFee        decimal.Decimal `json:"staffFee" binding:"required"`
}

// RateResponse is the API shape of a catalog entry.
type RateResponse struct {
	RateID          string          `json:"rateID"`
	ServiceType     string          `json:"serviceType"`
	DurationMinutes int             `json:"durationMinutes"`
	Location        string          `json:"location"`
	Price           decimal.Decimal `json:"price"`
	StaffFee        decimal.Decimal `json:"staffFee"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToRateResponse converts a domain rate.
func ToRateResponse(r domain.ServiceRate) RateResponse {
	return RateResponse(r)
}

// ToRateResponses converts a catalog listing.
func ToRateResponses(rates []domain.ServiceRate) []RateResponse {
	out := make([]RateResponse, len(rates))
	for i, r := range rates {
		out[i] = ToRateResponse(r)
	}
	return out
}

// CreateExpenseRequest records a dated expense.
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ExpenseResponse is the API shape of an expense row.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain expense.
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse(e)
}

// ToExpenseResponses converts an expense listing.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return out
}
