package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnStatus is the lifecycle state of a ledger row.
type TxnStatus string

const (
	// TxnActive is the state every transaction is created in.
	TxnActive TxnStatus = "ACTIVE"
	// TxnVoid marks a transaction superseded by a correction.
	TxnVoid TxnStatus = "VOID"
	// TxnCorrected marks a replacement row; CorrectedFromID links it to the
	// voided original.
	TxnCorrected TxnStatus = "CORRECTED"
)

// Transaction is one billable service entry in the ledger. Date is derived
// from Timestamp at creation time (in the shop's location) and is the key for
// all daily aggregation; it is never recomputed from the wall clock at query
// time.
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
	CustomerContact string          `json:"customerContact,omitempty"`
	Status          TxnStatus       `json:"status"`
	CorrectedFromID string          `json:"correctedFromID,omitempty"`
}

// ArchivedTransaction is a ledger row moved out of the live table by the
// end-of-day archiver, verbatim plus the archival stamp.
type ArchivedTransaction struct {
	Transaction
	OriginalID string    `json:"originalID"`
	ArchivedAt time.Time `json:"archivedAt"`
}
