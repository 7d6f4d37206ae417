package dto

import (
	"time"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the entry form for a billable service. Price and
// staff fee are resolved from the service catalog; PaymentAmount may override
// the catalog price (discounts, gratuities), nil means charge the catalog rate.
type CreateTransactionRequest struct {
	StaffName       string           `json:"staffName" binding:"required"`
	ServiceType     string           `json:"serviceType" binding:"required"`
	Location        string           `json:"location" binding:"required"`
	DurationMinutes int              `json:"durationMinutes" binding:"required,gt=0"`
	PaymentMethod   string           `json:"paymentMethod" binding:"required"`
	PaymentAmount   *decimal.Decimal `json:"paymentAmount,omitempty"`
	StartTime       string           `json:"startTime,omitempty"`
	EndTime         string           `json:"endTime,omitempty"`
	CustomerContact string           `json:"customerContact,omitempty"`
}

// TransactionResponse is the API shape of a ledger row.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Timestamp       time.Time       `json:"timestamp"`
	Date            string          `json:"date"`
	StaffName       string          `json:"staffName"`
	ServiceType     string          `json:"serviceType"`
	Location        string          `json:"location"`
	DurationMinutes int             `json:"durationMinutes"`
	PaymentAmount   decimal.Decimal `json:"paymentAmount"`
	PaymentMethod   string          `json:"paymentMethod"`
	StaffFee        decimal.Decimal `json:"staffFee"`
	StartTime       string          `json:"startTime,omitempty"`
	EndTime         string          `json:"endTime,omitempty"`
	CustomerContact string          `json:"customerContact,omitempty"`
	Status          string          `json:"status"`
	CorrectedFromID string          `json:"correctedFromID,omitempty"`
}

// ToTransactionResponse converts a domain transaction.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Timestamp:       t.Timestamp,
		Date:            t.Date,
		StaffName:       t.StaffName,
		ServiceType:     t.ServiceType,
		Location:        t.Location,
		DurationMinutes: t.DurationMinutes,
		PaymentAmount:   t.PaymentAmount,
		PaymentMethod:   t.PaymentMethod,
		StaffFee:        t.StaffFee,
		StartTime:       t.StartTime,
		EndTime:         t.EndTime,
		CustomerContact: t.CustomerContact,
		Status:          string(t.Status),
		CorrectedFromID: t.CorrectedFromID,
	}
}

// ToTransactionResponses converts a listing.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return out
}

// ArchivedTransactionResponse is the API shape of an archived ledger row.
type ArchivedTransactionResponse struct {
	TransactionResponse
	OriginalID string    `json:"originalID"`
	ArchivedAt time.Time `json:"archivedAt"`
}

// ToArchivedTransactionResponses converts an archive listing.
func ToArchivedTransactionResponses(rows []domain.ArchivedTransaction) []ArchivedTransactionResponse {
	out := make([]ArchivedTransactionResponse, len(rows))
	for i, r := range rows {
		out[i] = ArchivedTransactionResponse{
			TransactionResponse: ToTransactionResponse(r.Transaction),
			OriginalID:          r.OriginalID,
			ArchivedAt:          r.ArchivedAt,
		}
	}
	return out
}

// CorrectionResponse reports both sides of a completed correction.
type CorrectionResponse struct {
	Voided      TransactionResponse `json:"voided"`
	Replacement TransactionResponse `json:"replacement"`
}
