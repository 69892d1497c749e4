package domain

import "strconv"

// Expense is one categorized spend entry. Color is display-only metadata
// chosen by the client; the server stores it verbatim.
type Expense struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Color  string  `json:"color"`
}

// Budget is the combined per-user ledger record: the expense list plus the
// budget ceiling. Limit is kept as the user entered it; an empty string
// means unset.
type Budget struct {
	Expenses []Expense `json:"expenses"`
	Limit    string    `json:"limit"`
}

type CategoryTotal struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"` // share of total spend
}

// BudgetSummary is the derived view of a Budget. It is recomputed on every
// read and never persisted.
type BudgetSummary struct {
	TotalSpent float64         `json:"totalSpent"`
	Limit      float64         `json:"limit"`
	Remaining  float64         `json:"remaining"`
	Percentage float64         `json:"percentage"` // spend vs limit, clamped to [0,100]
	Categories []CategoryTotal `json:"categories"`
}

// Summarize derives budget totals from a ledger. An unset or unparseable
// limit counts as zero, and a non-positive limit yields 0% rather than a
// division by zero.
func Summarize(b Budget) BudgetSummary {
	limit, err := strconv.ParseFloat(b.Limit, 64)
	if err != nil || limit < 0 {
		limit = 0
	}

	var spent float64
	for _, e := range b.Expenses {
		spent += e.Amount
	}

	var pct float64
	if limit > 0 {
		pct = spent / limit * 100
		if pct > 100 {
			pct = 100
		}
	}

	// Category totals preserve first-seen order.
	idx := make(map[string]int)
	cats := []CategoryTotal{}
	for _, e := range b.Expenses {
		i, ok := idx[e.Name]
		if !ok {
			i = len(cats)
			idx[e.Name] = i
			cats = append(cats, CategoryTotal{Name: e.Name, Color: e.Color})
		}
		cats[i].Total += e.Amount
	}
	for i := range cats {
		if spent > 0 {
			cats[i].Percentage = cats[i].Total / spent * 100
		}
	}

	return BudgetSummary{
		TotalSpent: spent,
		Limit:      limit,
		Remaining:  limit - spent,
		Percentage: pct,
		Categories: cats,
	}
}
