// Package model defines domain types for cyros expenses and derived stats.
package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the day-granularity layout used on disk and on the command line.
const DateLayout = "2006-01-02"

// DefaultMonthlyBudget is the budget of a fresh snapshot.
const DefaultMonthlyBudget = 3000

// DefaultCategories returns the seed category set of a fresh snapshot.
func DefaultCategories() []string {
	return []string{"Food", "Transport", "Shopping", "Entertainment", "Bills"}
}

// Date is a calendar date. The time component is always midnight UTC.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" and full RFC 3339 timestamps.
// Timestamps are truncated to their calendar day.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Expense is a single recorded transaction.
type Expense struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     Date    `json:"date"`
	Notes    string  `json:"notes,omitempty"`
}

// NewExpense holds the caller-supplied fields of an expense; the ledger assigns the id.
type NewExpense struct {
	Amount   float64
	Category string
	Date     Date
	Notes    string
}

// ExpenseData is one complete snapshot of the application data.
type ExpenseData struct {
	Expenses      []Expense `json:"expenses"`
	Categories    []string  `json:"categories"`
	MonthlyBudget float64   `json:"monthlyBudget"`
}

// DefaultData returns the snapshot used at startup and after a clear.
func DefaultData() ExpenseData {
	return ExpenseData{
		Expenses:      []Expense{},
		Categories:    DefaultCategories(),
		MonthlyBudget: DefaultMonthlyBudget,
	}
}

// Clone returns a deep copy that shares no slices with d.
func (d ExpenseData) Clone() ExpenseData {
	out := ExpenseData{
		Expenses:      make([]Expense, len(d.Expenses)),
		Categories:    make([]string, len(d.Categories)),
		MonthlyBudget: d.MonthlyBudget,
	}
	copy(out.Expenses, d.Expenses)
	copy(out.Categories, d.Categories)
	return out
}

// HasCategory reports whether name is in the category set (exact match).
func (d ExpenseData) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// FindExpense returns the first expense with the given id.
func (d ExpenseData) FindExpense(id string) (Expense, bool) {
	for _, e := range d.Expenses {
		if e.ID == id {
			return e, true
		}
	}
	return Expense{}, false
}

// Validate checks the snapshot invariants: unique ids and unique categories.
func (d ExpenseData) Validate() error {
	ids := make(map[string]struct{}, len(d.Expenses))
	for _, e := range d.Expenses {
		if e.ID == "" {
			return fmt.Errorf("expense with empty id")
		}
		if _, dup := ids[e.ID]; dup {
			return fmt.Errorf("duplicate expense id %q", e.ID)
		}
		ids[e.ID] = struct{}{}
	}
	cats := make(map[string]struct{}, len(d.Categories))
	for _, c := range d.Categories {
		if _, dup := cats[c]; dup {
			return fmt.Errorf("duplicate category %q", c)
		}
		cats[c] = struct{}{}
	}
	return nil
}
