package model

import "time"

// CategoryStat holds the spend attributed to one category.
type CategoryStat struct {
	Category string
	Amount   float64
	Count    int
	Percent  int // share of the period total, rounded to the nearest integer
}

// MonthBucket is one entry of the monthly trend.
type MonthBucket struct {
	Month time.Month
	Label string // short month name, e.g. "Jan"
	Total float64
	Count int
}

// BudgetStats compares the current month's spend to the monthly budget.
type BudgetStats struct {
	Budget      float64
	Spent       float64
	Remaining   float64
	UsedPercent float64 // 0-1, unclamped; 0 when the budget is not positive
	OverBudget  bool
}

// MonthSummary is the Home view: budget status plus category data.
type MonthSummary struct {
	Month         time.Month
	ExpenseCount  int
	Budget        BudgetStats
	TopCategories []CategoryStat
	Breakdown     []CategoryStat
}
