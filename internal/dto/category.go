package dto

import "github.com/SscSPs/fluxora_app/internal/core/domain"

// Option groups shown by the category pickers.
const (
	GroupIncome  = "Receitas"
	GroupExpense = "Despesas"
)

// CategoryOption is one entry of a category picker.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Group string `json:"group,omitempty"`
}

type CategoriesResponse struct {
	Transaction []CategoryOption `json:"transaction"`
	Product     []CategoryOption `json:"product"`
	Units       []string         `json:"units"`
}

// NewCategoriesResponse lists every closed enumeration in display order.
// A category shared by both groups appears once per group.
func NewCategoriesResponse() CategoriesResponse {
	res := CategoriesResponse{}
	for _, c := range domain.IncomeCategories() {
		res.Transaction = append(res.Transaction, CategoryOption{Value: string(c), Label: c.Label(), Group: GroupIncome})
	}
	for _, c := range domain.ExpenseCategories() {
		res.Transaction = append(res.Transaction, CategoryOption{Value: string(c), Label: c.Label(), Group: GroupExpense})
	}
	for _, c := range domain.ProductCategories() {
		res.Product = append(res.Product, CategoryOption{Value: string(c), Label: c.Label()})
	}
	for _, u := range domain.Units() {
		res.Units = append(res.Units, string(u))
	}
	return res
}

// Rows stored before a category was retired keep their raw identifier as the label.
func transactionCategoryLabel(c domain.TransactionCategory) string {
	label, err := domain.FormatTransactionCategory(string(c))
	if err != nil {
		return string(c)
	}
	return label
}

func productCategoryLabel(c domain.ProductCategory) string {
	label, err := domain.FormatProductCategory(string(c))
	if err != nil {
		return string(c)
	}
	return label
}
