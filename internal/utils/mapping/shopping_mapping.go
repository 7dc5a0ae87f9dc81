package mapping

import (
	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/models"
)

func ToModelShoppingList(d domain.ShoppingList) models.ShoppingList {
	return models.ShoppingList{
		ListID:      d.ListID,
		UserID:      d.UserID,
		Name:        d.Name,
		Budget:      d.Budget,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShoppingList converts a list row; items are attached by the caller.
func ToDomainShoppingList(m models.ShoppingList) domain.ShoppingList {
	return domain.ShoppingList{
		ListID:      m.ListID,
		UserID:      m.UserID,
		Name:        m.Name,
		Budget:      m.Budget,
		Items:       []domain.ShoppingItem{},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelShoppingItem(d domain.ShoppingItem) models.ShoppingItem {
	return models.ShoppingItem{
		ItemID:      d.ItemID,
		ListID:      d.ListID,
		UserID:      d.UserID,
		ProductID:   d.ProductID,
		Quantity:    d.Quantity,
		Price:       d.Price,
		Checked:     d.Checked,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainShoppingItem(m models.ShoppingItem) domain.ShoppingItem {
	return domain.ShoppingItem{
		ItemID:      m.ItemID,
		ListID:      m.ListID,
		UserID:      m.UserID,
		ProductID:   m.ProductID,
		Quantity:    m.Quantity,
		Price:       m.Price,
		Checked:     m.Checked,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
