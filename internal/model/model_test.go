package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"45.50", 45.5},
		{"12,34", 12.34},
		{" 7 ", 7},
		{"$19.99", 19.99},
		{"0", 0},
		{"12.345", 12.35},
		{"12.344", 12.34},
		{"1,234.50", 1234.5},
		{"1.234,50", 1234.5},
		{"1,234,567.8", 1234567.8},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if err != nil {
			t.Errorf("ParseAmount(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAmount_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "-5", "1.2.3", "$"} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) err = %v, want ErrInvalidAmount", in, err)
		}
	}
}

func TestParseBudget_RejectsZero(t *testing.T) {
	if _, err := ParseBudget("0"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("ParseBudget(0) err = %v, want ErrInvalidAmount", err)
	}
	v, err := ParseBudget("2500")
	if err != nil || v != 2500 {
		t.Fatalf("ParseBudget(2500) = %v, %v", v, err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-10")
	if err != nil {
		t.Fatal(err)
	}
	if d != NewDate(2024, time.June, 10) {
		t.Errorf("ParseDate = %v, want 2024-06-10", d)
	}

	d, err = ParseDate("2024-03-05T18:30:00.000Z")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "2024-03-05" {
		t.Errorf("timestamp truncated to %s, want 2024-03-05", d)
	}

	if _, err := ParseDate("10/06/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ParseDate(10/06/2024) err = %v, want ErrInvalidDate", err)
	}
}

func TestDateJSON(t *testing.T) {
	e := Expense{ID: "x", Amount: 1, Category: "Food", Date: NewDate(2024, time.March, 5)}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"x","amount":1,"category":"Food","date":"2024-03-05"}`
	if string(b) != want {
		t.Fatalf("Marshal = %s, want %s", b, want)
	}

	var back Expense
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != e {
		t.Fatalf("round trip = %+v, want %+v", back, e)
	}
}

func TestDefaultData(t *testing.T) {
	d := DefaultData()
	if len(d.Expenses) != 0 {
		t.Errorf("default expenses = %d, want 0", len(d.Expenses))
	}
	if d.MonthlyBudget != 3000 {
		t.Errorf("default budget = %v, want 3000", d.MonthlyBudget)
	}
	want := []string{"Food", "Transport", "Shopping", "Entertainment", "Bills"}
	if len(d.Categories) != len(want) {
		t.Fatalf("default categories = %v, want %v", d.Categories, want)
	}
	for i := range want {
		if d.Categories[i] != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, d.Categories[i], want[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := DefaultData()
	d.Expenses = append(d.Expenses, Expense{ID: "a", Amount: 3})

	c := d.Clone()
	c.Expenses[0].Amount = 99
	c.Categories[0] = "Changed"

	if d.Expenses[0].Amount != 3 {
		t.Error("Clone shares the expenses slice")
	}
	if d.Categories[0] != "Food" {
		t.Error("Clone shares the categories slice")
	}
}

func TestValidate(t *testing.T) {
	d := DefaultData()
	d.Expenses = []Expense{{ID: "a"}, {ID: "a"}}
	if err := d.Validate(); err == nil {
		t.Error("Validate accepted duplicate ids")
	}

	d = DefaultData()
	d.Categories = append(d.Categories, "Food")
	if err := d.Validate(); err == nil {
		t.Error("Validate accepted duplicate categories")
	}

	if err := DefaultData().Validate(); err != nil {
		t.Errorf("Validate(default) = %v", err)
	}
}
