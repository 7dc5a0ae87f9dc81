package domain

// PlanningList groups income and expense transactions for a budget period or purpose.
type PlanningList struct {
	ListID       string        `json:"listID"`
	UserID       string        `json:"userID"`
	Name         string        `json:"name"`
	Transactions []Transaction `json:"transactions"`
	AuditFields
}

// PlanningListView is a planning list with its totals and the filtered, sorted transactions
// the caller asked for. Totals always cover every transaction of the list.
type PlanningListView struct {
	List         PlanningList      `json:"list"`
	Totals       TransactionTotals `json:"totals"`
	Transactions []Transaction     `json:"transactions"`
}

// PlanningListSummary is a list row of the index page, with totals over all of its transactions.
type PlanningListSummary struct {
	List   PlanningList      `json:"list"`
	Totals TransactionTotals `json:"totals"`
}
