package mapping

import (
	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/models"
	"github.com/shopspring/decimal"
)

func ToModelProduct(d domain.Product) models.Product {
	m := models.Product{
		ProductID:   d.ProductID,
		UserID:      d.UserID,
		Name:        d.Name,
		Brand:       toNullString(d.Brand),
		Category:    string(d.Category),
		Unit:        string(d.Unit),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.LastPrice != nil {
		m.LastPrice = decimal.NewNullDecimal(*d.LastPrice)
	}
	return m
}

func ToDomainProduct(m models.Product) domain.Product {
	d := domain.Product{
		ProductID:   m.ProductID,
		UserID:      m.UserID,
		Name:        m.Name,
		Brand:       fromNullString(m.Brand),
		Category:    domain.ProductCategory(m.Category),
		Unit:        domain.Unit(m.Unit),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.LastPrice.Valid {
		p := m.LastPrice.Decimal
		d.LastPrice = &p
	}
	return d
}
