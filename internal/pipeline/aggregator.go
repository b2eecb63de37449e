// Package pipeline derives read-only views (totals, shares, trends) from a ledger snapshot.
// Nothing here mutates its input or caches results; views are recomputed on every read.
package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/theirongolddev/cyros/internal/model"

	"github.com/shopspring/decimal"
)

// TrendMonths is the default length of the monthly trend.
const TrendMonths = 6

// TopCategoryCount is how many categories the Home view highlights.
const TopCategoryCount = 3

// Sum adds amounts as decimals so repeated cents do not drift.
func Sum(expenses []model.Expense) float64 {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total.InexactFloat64()
}

// MonthlyTotal sums the expenses whose date falls in now's calendar month.
// Months are matched by month number only, so the same month of another year counts too.
func MonthlyTotal(expenses []model.Expense, now time.Time) float64 {
	return Sum(FilterByMonth(expenses, now.Month()))
}

// CategoryTotals computes all-time spend per category in the category set.
// Categories without spend are dropped; the result is sorted by amount descending.
func CategoryTotals(data model.ExpenseData) []model.CategoryStat {
	return categoryStats(data.Categories, data.Expenses)
}

// CategoryBreakdown computes this month's spend per category with percentage shares.
// Shares are taken against the month's total across the category set; a zero total
// yields zero percentages.
func CategoryBreakdown(data model.ExpenseData, now time.Time) []model.CategoryStat {
	stats := categoryStats(data.Categories, FilterByMonth(data.Expenses, now.Month()))

	total := decimal.Zero
	for _, s := range stats {
		total = total.Add(decimal.NewFromFloat(s.Amount))
	}
	for i := range stats {
		stats[i].Percent = Percent(stats[i].Amount, total.InexactFloat64())
	}
	return stats
}

func categoryStats(categories []string, expenses []model.Expense) []model.CategoryStat {
	totals := make(map[string]decimal.Decimal, len(categories))
	counts := make(map[string]int, len(categories))
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(decimal.NewFromFloat(e.Amount))
		counts[e.Category]++
	}

	stats := make([]model.CategoryStat, 0, len(categories))
	for _, c := range categories {
		amount := totals[c].InexactFloat64()
		if amount <= 0 {
			continue
		}
		stats = append(stats, model.CategoryStat{Category: c, Amount: amount, Count: counts[c]})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Amount > stats[j].Amount
	})
	return stats
}

// TopCategories returns at most n entries of CategoryTotals.
func TopCategories(data model.ExpenseData, n int) []model.CategoryStat {
	stats := CategoryTotals(data)
	if n >= 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// Percent returns part/total as a rounded integer percentage, 0 when total is 0.
func Percent(part, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(part / total * 100))
}

// Trend buckets spend over the n calendar months ending at now's month, oldest first.
// Each bucket matches expenses by month number only.
func Trend(expenses []model.Expense, now time.Time, n int) []model.MonthBucket {
	if n <= 0 {
		return nil
	}

	// Anchor on the first of the month so AddDate never skips a short month.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]model.MonthBucket, n)
	for i := 0; i < n; i++ {
		m := anchor.AddDate(0, i-(n-1), 0)
		matched := FilterByMonth(expenses, m.Month())
		buckets[i] = model.MonthBucket{
			Month: m.Month(),
			Label: m.Format("Jan"),
			Total: Sum(matched),
			Count: len(matched),
		}
	}
	return buckets
}

// Budget compares this month's spend to the snapshot's budget.
func Budget(data model.ExpenseData, now time.Time) model.BudgetStats {
	spent := MonthlyTotal(data.Expenses, now)
	bs := model.BudgetStats{
		Budget:    data.MonthlyBudget,
		Spent:     spent,
		Remaining: decimal.NewFromFloat(data.MonthlyBudget).Sub(decimal.NewFromFloat(spent)).InexactFloat64(),
	}
	if data.MonthlyBudget > 0 {
		bs.UsedPercent = spent / data.MonthlyBudget
	}
	bs.OverBudget = spent > data.MonthlyBudget
	return bs
}

// Summarize builds the Home view for now's month.
func Summarize(data model.ExpenseData, now time.Time) model.MonthSummary {
	return model.MonthSummary{
		Month:         now.Month(),
		ExpenseCount:  len(FilterByMonth(data.Expenses, now.Month())),
		Budget:        Budget(data, now),
		TopCategories: TopCategories(data, TopCategoryCount),
		Breakdown:     CategoryBreakdown(data, now),
	}
}
