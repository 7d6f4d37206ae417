package mapping

import (
	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/sabaipos/pos_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to its persistence shape.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		ID:              d.ID,
		TransactionID:   d.TransactionID,
		Timestamp:       d.Timestamp,
		Date:            d.Date,
		StaffName:       d.StaffName,
		ServiceType:     d.ServiceType,
		Location:        d.Location,
		DurationMinutes: d.DurationMinutes,
		PaymentAmount:   d.PaymentAmount,
		PaymentMethod:   d.PaymentMethod,
		StaffFee:        d.StaffFee,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		Status:          models.TxnStatus(d.Status),
	}
	if d.CustomerContact != "" {
		contact := d.CustomerContact
		m.CustomerContact = &contact
	}
	if d.CorrectedFromID != "" {
		link := d.CorrectedFromID
		m.CorrectedFromID = &link
	}
	return m
}

// ToDomainTransaction converts a persistence Transaction to its domain shape.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		ID:              m.ID,
		TransactionID:   m.TransactionID,
		Timestamp:       m.Timestamp,
		Date:            m.Date,
		StaffName:       m.StaffName,
		ServiceType:     m.ServiceType,
		Location:        m.Location,
		DurationMinutes: m.DurationMinutes,
		PaymentAmount:   m.PaymentAmount,
		PaymentMethod:   m.PaymentMethod,
		StaffFee:        m.StaffFee,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		Status:          domain.TxnStatus(m.Status),
	}
	if m.CustomerContact != nil {
		d.CustomerContact = *m.CustomerContact
	}
	if m.CorrectedFromID != nil {
		d.CorrectedFromID = *m.CorrectedFromID
	}
	return d
}

// ToDomainArchivedTransaction converts an archive row to its domain shape.
func ToDomainArchivedTransaction(m models.ArchivedTransaction) domain.ArchivedTransaction {
	return domain.ArchivedTransaction{
		Transaction: ToDomainTransaction(m.Transaction),
		OriginalID:  m.OriginalID,
		ArchivedAt:  m.ArchivedAt,
	}
}
