package mapping

import (
	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/models"
)

func ToModelPlanningList(d domain.PlanningList) models.PlanningList {
	return models.PlanningList{
		ListID:      d.ListID,
		UserID:      d.UserID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPlanningList converts a list row; transactions are attached by the caller.
func ToDomainPlanningList(m models.PlanningList) domain.PlanningList {
	return domain.PlanningList{
		ListID:       m.ListID,
		UserID:       m.UserID,
		Name:         m.Name,
		Transactions: []domain.Transaction{},
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		ListID:          d.ListID,
		UserID:          d.UserID,
		Description:     d.Description,
		Amount:          d.Amount,
		TransactionType: string(d.Type),
		CategoryID:      string(d.CategoryID),
		TransactionDate: d.Date,
		IsPaid:          d.IsPaid,
		Observation:     toNullString(d.Observation),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction keeps category identifiers as stored, even ones outside the closed set,
// so that reads never fail on legacy rows.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ListID:        m.ListID,
		UserID:        m.UserID,
		Description:   m.Description,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.TransactionType),
		CategoryID:    domain.TransactionCategory(m.CategoryID),
		Date:          m.TransactionDate,
		IsPaid:        m.IsPaid,
		Observation:   fromNullString(m.Observation),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
