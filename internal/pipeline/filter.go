package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/theirongolddev/cyros/internal/model"
)

// FilterByMonth returns expenses whose date has the given month number, any year.
func FilterByMonth(expenses []model.Expense, month time.Month) []model.Expense {
	var result []model.Expense
	for _, e := range expenses {
		if e.Date.IsZero() {
			continue
		}
		if e.Date.Month() == month {
			result = append(result, e)
		}
	}
	return result
}

// FilterByCategory returns expenses in the given category (case-insensitive).
func FilterByCategory(expenses []model.Expense, category string) []model.Expense {
	if category == "" {
		return expenses
	}
	var result []model.Expense
	for _, e := range expenses {
		if strings.EqualFold(e.Category, category) {
			result = append(result, e)
		}
	}
	return result
}

// FilterBySearch returns expenses whose category or notes contain query (case-insensitive).
func FilterBySearch(expenses []model.Expense, query string) []model.Expense {
	if query == "" {
		return expenses
	}
	q := strings.ToLower(query)
	var result []model.Expense
	for _, e := range expenses {
		if strings.Contains(strings.ToLower(e.Category), q) ||
			strings.Contains(strings.ToLower(e.Notes), q) {
			result = append(result, e)
		}
	}
	return result
}

// SortByDate returns a copy of expenses ordered newest first.
// Expenses on the same day keep their insertion order reversed, so the latest entry leads.
func SortByDate(expenses []model.Expense) []model.Expense {
	out := make([]model.Expense, len(expenses))
	for i, e := range expenses {
		out[len(expenses)-1-i] = e
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}
