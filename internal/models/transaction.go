package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnStatus is the ledger lifecycle column value.
type TxnStatus string

const (
	TxnActive    TxnStatus = "ACTIVE"
	TxnVoid      TxnStatus = "VOID"
	TxnCorrected TxnStatus = "CORRECTED"
)

// Transaction is the persistence shape of a ledger row. CorrectedFromID is a
// nullable self-reference to the voided original's transaction_id.
type Transaction struct {
	ID              string          `json:"id"`
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
	StartTime       string          `json:"startTime"`
	EndTime         string          `json:"endTime"`
	CustomerContact *string         `json:"customerContact,omitempty"`
	Status          TxnStatus       `json:"status"`
	CorrectedFromID *string         `json:"correctedFromID,omitempty"`
}

// ArchivedTransaction mirrors Transaction in the archive table plus the
// archival stamp and the original live-row id.
type ArchivedTransaction struct {
	Transaction
	OriginalID string    `json:"originalID"`
	ArchivedAt time.Time `json:"archivedAt"`
}
