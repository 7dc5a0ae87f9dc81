package domain

import (
	"fmt"

	"github.com/SscSPs/fluxora_app/internal/apperrors"
)

// TransactionType indicates whether a planning transaction adds to or subtracts from the balance.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// ParseTransactionType validates a raw transaction type.
func ParseTransactionType(raw string) (TransactionType, error) {
	switch t := TransactionType(raw); t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, raw)
}

// TransactionCategory is the closed set of categories a planning transaction can carry.
// The same identifier may appear in both the income and the expense group.
type TransactionCategory string

const (
	CategorySalario       TransactionCategory = "salario"
	CategoryFreelance     TransactionCategory = "freelance"
	CategoryBeneficio     TransactionCategory = "beneficio"
	CategoryPresente      TransactionCategory = "presente"
	CategoryAluguel       TransactionCategory = "aluguel"
	CategoryDividendos    TransactionCategory = "dividendos"
	CategoryInvestimentos TransactionCategory = "investimentos"
	CategoryOutrosGanhos  TransactionCategory = "outros_ganhos"

	CategoryMoradia      TransactionCategory = "moradia"
	CategoryAlimentacao  TransactionCategory = "alimentacao"
	CategoryTransporte   TransactionCategory = "transporte"
	CategorySaude        TransactionCategory = "saude"
	CategoryEducacao     TransactionCategory = "educacao"
	CategoryLazer        TransactionCategory = "lazer"
	CategoryVestuario    TransactionCategory = "vestuario"
	CategoryContas       TransactionCategory = "contas"
	CategoryCredito      TransactionCategory = "credito"
	CategoryPets         TransactionCategory = "pets"
	CategoryViagens      TransactionCategory = "viagens"
	CategoryTecnologia   TransactionCategory = "tecnologia"
	CategoryBeleza       TransactionCategory = "beleza"
	CategoryEsportes     TransactionCategory = "esportes"
	CategoryCultura      TransactionCategory = "cultura"
	CategoryPresentes    TransactionCategory = "presentes"
	CategoryDoacoes      TransactionCategory = "doacoes"
	CategorySeguros      TransactionCategory = "seguros"
	CategoryImpostos     TransactionCategory = "impostos"
	CategoryOutrosGastos TransactionCategory = "outros_gastos"
)

var incomeCategories = []TransactionCategory{
	CategorySalario, CategoryFreelance, CategoryBeneficio, CategoryPresente,
	CategoryAluguel, CategoryDividendos, CategoryInvestimentos, CategoryOutrosGanhos,
}

var expenseCategories = []TransactionCategory{
	CategoryMoradia, CategoryAlimentacao, CategoryTransporte, CategorySaude, CategoryEducacao,
	CategoryLazer, CategoryVestuario, CategoryContas, CategoryCredito, CategoryPets,
	CategoryViagens, CategoryTecnologia, CategoryBeleza, CategoryEsportes, CategoryCultura,
	CategoryPresentes, CategoryDoacoes, CategorySeguros, CategoryImpostos, CategoryInvestimentos,
	CategoryOutrosGastos,
}

var transactionCategoryLabels = map[TransactionCategory]string{
	CategorySalario:       "Salário",
	CategoryFreelance:     "Freelance",
	CategoryBeneficio:     "Benefício",
	CategoryPresente:      "Presente",
	CategoryAluguel:       "Aluguel",
	CategoryDividendos:    "Dividendos",
	CategoryInvestimentos: "Investimentos",
	CategoryOutrosGanhos:  "Outros Ganhos",
	CategoryMoradia:       "Moradia",
	CategoryAlimentacao:   "Alimentação",
	CategoryTransporte:    "Transporte",
	CategorySaude:         "Saúde",
	CategoryEducacao:      "Educação",
	CategoryLazer:         "Lazer",
	CategoryVestuario:     "Vestuário",
	CategoryContas:        "Contas",
	CategoryCredito:       "Crédito",
	CategoryPets:          "Pets",
	CategoryViagens:       "Viagens",
	CategoryTecnologia:    "Tecnologia",
	CategoryBeleza:        "Beleza",
	CategoryEsportes:      "Esportes",
	CategoryCultura:       "Cultura",
	CategoryPresentes:     "Presentes",
	CategoryDoacoes:       "Doações",
	CategorySeguros:       "Seguros",
	CategoryImpostos:      "Impostos",
	CategoryOutrosGastos:  "Outros Gastos",
}

// IncomeCategories returns the income group in display order.
func IncomeCategories() []TransactionCategory {
	return append([]TransactionCategory(nil), incomeCategories...)
}

// ExpenseCategories returns the expense group in display order.
func ExpenseCategories() []TransactionCategory {
	return append([]TransactionCategory(nil), expenseCategories...)
}

// ParseTransactionCategory returns apperrors.ErrInvalidCategory for identifiers outside the closed set.
func ParseTransactionCategory(raw string) (TransactionCategory, error) {
	c := TransactionCategory(raw)
	if _, ok := transactionCategoryLabels[c]; !ok {
		return "", fmt.Errorf("%w: transaction category %q", apperrors.ErrInvalidCategory, raw)
	}
	return c, nil
}

// Label returns the display label. Known values always have one.
func (c TransactionCategory) Label() string {
	if l, ok := transactionCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// IsKnown reports whether c belongs to the closed set.
func (c TransactionCategory) IsKnown() bool {
	_, ok := transactionCategoryLabels[c]
	return ok
}

// AllowedFor reports whether the category belongs to the group of the given transaction type.
func (c TransactionCategory) AllowedFor(t TransactionType) bool {
	group := expenseCategories
	if t == TransactionTypeIncome {
		group = incomeCategories
	}
	for _, g := range group {
		if g == c {
			return true
		}
	}
	return false
}

// FormatTransactionCategory maps a raw identifier to its label.
func FormatTransactionCategory(raw string) (string, error) {
	c, err := ParseTransactionCategory(raw)
	if err != nil {
		return "", err
	}
	return c.Label(), nil
}

// ProductCategory is the closed set of catalog categories.
type ProductCategory string

var productCategories = []ProductCategory{
	"laticinios", "carnes", "graos", "bebidas", "hortifruti", "padaria", "higiene", "limpeza", "outros",
	"bebidas_alcoolicas", "bebidas_nao_alcoolicas",
	"carnes_bovinas", "carnes_suinas", "carnes_aves", "carnes_peixes", "carnes_frios",
	"massas_frescas", "massas_secas",
	"graos_cereais", "graos_leguminosas",
	"hortifruti_verduras", "hortifruti_legumes", "hortifruti_frutas",
	"padaria_paes", "padaria_bolos", "padaria_salgados",
	"laticinios_leites", "laticinios_queijos", "laticinios_iogurtes", "laticinios_manteigas",
	"higiene_pessoal", "higiene_bucal",
	"limpeza_roupas", "limpeza_casa", "limpeza_cozinha",
	"pet_shop", "bebes", "congelados", "enlatados", "temperos", "doces", "snacks", "cafe", "chas",
	"suplementos", "medicamentos",
}

var productCategoryLabels = map[ProductCategory]string{
	"laticinios":             "Laticínios",
	"carnes":                 "Carnes",
	"graos":                  "Grãos",
	"bebidas":                "Bebidas",
	"hortifruti":             "Hortifruti",
	"padaria":                "Padaria",
	"higiene":                "Higiene",
	"limpeza":                "Limpeza",
	"outros":                 "Outros",
	"bebidas_alcoolicas":     "Bebidas Alcoólicas",
	"bebidas_nao_alcoolicas": "Bebidas Não Alcoólicas",
	"carnes_bovinas":         "Carnes Bovinas",
	"carnes_suinas":          "Carnes Suínas",
	"carnes_aves":            "Aves",
	"carnes_peixes":          "Peixes",
	"carnes_frios":           "Frios",
	"massas_frescas":         "Massas Frescas",
	"massas_secas":           "Massas Secas",
	"graos_cereais":          "Cereais",
	"graos_leguminosas":      "Leguminosas",
	"hortifruti_verduras":    "Verduras",
	"hortifruti_legumes":     "Legumes",
	"hortifruti_frutas":      "Frutas",
	"padaria_paes":           "Pães",
	"padaria_bolos":          "Bolos",
	"padaria_salgados":       "Salgados",
	"laticinios_leites":      "Leites",
	"laticinios_queijos":     "Queijos",
	"laticinios_iogurtes":    "Iogurtes",
	"laticinios_manteigas":   "Manteigas",
	"higiene_pessoal":        "Higiene Pessoal",
	"higiene_bucal":          "Higiene Bucal",
	"limpeza_roupas":         "Limpeza de Roupas",
	"limpeza_casa":           "Limpeza da Casa",
	"limpeza_cozinha":        "Limpeza da Cozinha",
	"pet_shop":               "Pet Shop",
	"bebes":                  "Bebês",
	"congelados":             "Congelados",
	"enlatados":              "Enlatados",
	"temperos":               "Temperos",
	"doces":                  "Doces",
	"snacks":                 "Snacks",
	"cafe":                   "Café",
	"chas":                   "Chás",
	"suplementos":            "Suplementos",
	"medicamentos":           "Medicamentos",
}

// ProductCategories returns every catalog category in display order.
func ProductCategories() []ProductCategory {
	return append([]ProductCategory(nil), productCategories...)
}

func ParseProductCategory(raw string) (ProductCategory, error) {
	c := ProductCategory(raw)
	if _, ok := productCategoryLabels[c]; !ok {
		return "", fmt.Errorf("%w: product category %q", apperrors.ErrInvalidCategory, raw)
	}
	return c, nil
}

func (c ProductCategory) Label() string {
	if l, ok := productCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func FormatProductCategory(raw string) (string, error) {
	c, err := ParseProductCategory(raw)
	if err != nil {
		return "", err
	}
	return c.Label(), nil
}

// Unit is the measure a product is sold in.
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitPiece      Unit = "un"
)

var units = []Unit{UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitPiece}

func Units() []Unit {
	return append([]Unit(nil), units...)
}

func ParseUnit(raw string) (Unit, error) {
	for _, u := range units {
		if string(u) == raw {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: unit %q", apperrors.ErrInvalidCategory, raw)
}
