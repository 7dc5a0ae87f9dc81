package aggregation

import (
	"slices"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TopN is the number of categories and products the dashboard ranks.
const TopN = 5

type priceObservation struct {
	price  decimal.Decimal
	listAt time.Time
}

// SummarizeDashboard aggregates every planning list, shopping list and product of a user.
// Shopping items whose product is missing count towards spent totals but not towards product stats.
func SummarizeDashboard(planning []domain.PlanningList, shopping []domain.ShoppingList, products []domain.Product) domain.DashboardSummary {
	summary := domain.DashboardSummary{
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
		TotalBudget:      decimal.Zero,
		TotalSpent:       decimal.Zero,
		PlanningBalances: make([]domain.ListBalance, 0, len(planning)),
	}

	for _, list := range planning {
		totals := ComputeTransactionTotals(list.Transactions)
		summary.TotalIncome = summary.TotalIncome.Add(totals.Income)
		summary.TotalExpense = summary.TotalExpense.Add(totals.Expense)
		summary.PlanningBalances = append(summary.PlanningBalances, domain.ListBalance{
			ListID:  list.ListID,
			Name:    list.Name,
			Income:  totals.Income,
			Expense: totals.Expense,
			Balance: totals.Balance,
		})
	}
	summary.TotalBalance = summary.TotalIncome.Sub(summary.TotalExpense)

	for _, list := range shopping {
		totals := ComputeShoppingTotals(list.Items, list.Budget)
		summary.TotalBudget = summary.TotalBudget.Add(list.Budget)
		summary.TotalSpent = summary.TotalSpent.Add(totals.Spent)
	}
	summary.TotalRemaining = summary.TotalBudget.Sub(summary.TotalSpent)

	summary.TopCategories = topExpenseCategories(planning)
	summary.TopProducts = topProducts(shopping, products)
	return summary
}

func topExpenseCategories(planning []domain.PlanningList) []domain.CategoryTotal {
	var order []domain.TransactionCategory
	totals := make(map[domain.TransactionCategory]decimal.Decimal)
	for _, list := range planning {
		for _, t := range list.Transactions {
			if t.Type != domain.TransactionTypeExpense {
				continue
			}
			current, seen := totals[t.CategoryID]
			if !seen {
				order = append(order, t.CategoryID)
				current = decimal.Zero
			}
			totals[t.CategoryID] = current.Add(t.Amount)
		}
	}

	out := make([]domain.CategoryTotal, 0, len(order))
	for _, id := range order {
		label, err := domain.FormatTransactionCategory(string(id))
		if err != nil {
			label = string(id)
		}
		out = append(out, domain.CategoryTotal{
			CategoryID: id,
			Label:      label,
			Known:      err == nil,
			Total:      totals[id],
		})
	}
	slices.SortStableFunc(out, func(a, b domain.CategoryTotal) int { return b.Total.Cmp(a.Total) })
	return out[:min(TopN, len(out))]
}

func topProducts(shopping []domain.ShoppingList, products []domain.Product) []domain.ProductStat {
	idx := ProductIndex(products)
	history := make(map[string][]priceObservation)
	for _, list := range shopping {
		for _, item := range list.Items {
			history[item.ProductID] = append(history[item.ProductID], priceObservation{price: item.Price, listAt: list.CreatedAt})
		}
	}

	var order []string
	stats := make(map[string]*domain.ProductStat)
	for _, list := range shopping {
		for _, item := range list.Items {
			p, ok := idx[item.ProductID]
			if !ok {
				continue
			}
			if s, seen := stats[p.ProductID]; seen {
				s.Frequency++
				s.TotalSpent = s.TotalSpent.Add(item.LineTotal())
				continue
			}
			order = append(order, p.ProductID)
			stats[p.ProductID] = &domain.ProductStat{
				ProductID:   p.ProductID,
				Name:        p.Name,
				Brand:       p.Brand,
				Frequency:   1,
				TotalSpent:  item.LineTotal(),
				PriceChange: priceChange(history[p.ProductID]),
			}
		}
	}

	out := make([]domain.ProductStat, 0, len(order))
	for _, id := range order {
		out = append(out, *stats[id])
	}
	slices.SortStableFunc(out, func(a, b domain.ProductStat) int { return b.TotalSpent.Cmp(a.TotalSpent) })
	return out[:min(TopN, len(out))]
}

// priceChange is the rounded percentage between the oldest and the latest observed price,
// ordered by the creation time of the list each observation belongs to. It is zero with fewer
// than two observations or when the oldest price is zero. Halves round up.
func priceChange(observations []priceObservation) int64 {
	if len(observations) < 2 {
		return 0
	}
	sorted := SortedBy(observations, func(a, b priceObservation) int { return a.listAt.Compare(b.listAt) })
	oldest, latest := sorted[0].price, sorted[len(sorted)-1].price
	if !oldest.IsPositive() {
		return 0
	}
	pct := latest.Sub(oldest).Div(oldest).Mul(hundred)
	return pct.Add(decimal.NewFromFloat(0.5)).Floor().IntPart()
}
