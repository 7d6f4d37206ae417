package mapping

import (
	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/sabaipos/pos_backend/internal/models"
)

func ToModelServiceRate(d domain.ServiceRate) models.ServiceRate {
	return models.ServiceRate(d)
}

func ToDomainServiceRate(m models.ServiceRate) domain.ServiceRate {
	return domain.ServiceRate(m)
}

func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense(d)
}

func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense(m)
}

func ToModelDailySummary(d domain.DailySummary) models.DailySummary {
	return models.DailySummary(d)
}

func ToDomainDailySummary(m models.DailySummary) domain.DailySummary {
	return domain.DailySummary(m)
}

func ToModelStaffUser(d domain.StaffUser) models.StaffUser {
	return models.StaffUser(d)
}

func ToDomainStaffUser(m models.StaffUser) domain.StaffUser {
	return domain.StaffUser(m)
}
