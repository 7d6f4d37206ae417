package mapping

import (
	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/sabaipos/pos_backend/internal/models"
)

// ToModelRosterEntry converts a domain RosterEntry to its persistence shape.
func ToModelRosterEntry(d domain.RosterEntry) models.RosterEntry {
	return models.RosterEntry{
		Position:    d.Position,
		StaffName:   d.StaffName,
		StatusKind:  models.RosterStatusKind(d.Status.Kind),
		BusyUntil:   d.Status.BusyUntil,
		TodayCount:  d.TodayCount,
		FeeTotal:    d.FeeTotal,
		LastUpdated: d.LastUpdated,
	}
}

// ToDomainRosterEntry converts a persistence RosterEntry to its domain shape.
func ToDomainRosterEntry(m models.RosterEntry) domain.RosterEntry {
	status := domain.RosterStatus{Kind: domain.RosterStatusKind(m.StatusKind)}
	if status.Kind == domain.StatusBusyUntil {
		status.BusyUntil = m.BusyUntil
	}
	return domain.RosterEntry{
		Position:    m.Position,
		StaffName:   m.StaffName,
		Status:      status,
		TodayCount:  m.TodayCount,
		FeeTotal:    m.FeeTotal,
		LastUpdated: m.LastUpdated,
	}
}
