package store

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/cyros/internal/model"
)

func TestEncode_WritesVersion(t *testing.T) {
	raw, err := Encode(model.DefaultData())
	if err != nil {
		t.Fatal(err)
	}
	s := string(raw)
	if !strings.Contains(s, `"version":1`) {
		t.Errorf("blob missing version tag: %s", s)
	}
	if !strings.Contains(s, `"expenses":[]`) {
		t.Errorf("empty expenses should encode as []: %s", s)
	}
}

func TestDecode_Version0(t *testing.T) {
	raw := `{
		"expenses": [
			{"id":"1718000000000","amount":45.5,"category":"Food","date":"2024-06-10T14:22:05.123Z"},
			{"id":"1718000000001","amount":3,"category":"Bills","date":"2024-06-11","notes":"fee"}
		],
		"categories": ["Food","Bills","Food"]
	}`
	data, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if data.MonthlyBudget != model.DefaultMonthlyBudget {
		t.Errorf("budget = %v, want default", data.MonthlyBudget)
	}
	if len(data.Categories) != 2 {
		t.Errorf("categories = %v, want duplicates dropped", data.Categories)
	}
	if got := data.Expenses[0].Date; got != model.NewDate(2024, time.June, 10) {
		t.Errorf("timestamp date = %v, want 2024-06-10", got)
	}
	if data.Expenses[1].Notes != "fee" {
		t.Errorf("notes = %q", data.Expenses[1].Notes)
	}
}

func TestDecode_UnknownVersion(t *testing.T) {
	_, err := Decode([]byte(`{"version":2,"expenses":[],"categories":[],"monthlyBudget":1}`))
	if !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("err = %v, want ErrUnknownVersion", err)
	}
}

func TestDecode_BadShape(t *testing.T) {
	for _, raw := range []string{
		`{"version":1,"expenses":{},"categories":[],"monthlyBudget":1}`,
		`{"version":1,"expenses":[],"monthlyBudget":1}`,
		`{"categories":[]}`,
		`{"version":1,"expenses":[{"id":"x","date":"yesterday"}],"categories":[],"monthlyBudget":1}`,
	} {
		if _, err := Decode([]byte(raw)); err == nil {
			t.Errorf("Decode(%s) succeeded, want error", raw)
		}
	}
}

func TestDecode_EncodeRoundTrip(t *testing.T) {
	want := sampleData()
	raw, err := Encode(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got.MonthlyBudget != want.MonthlyBudget || len(got.Expenses) != len(want.Expenses) {
		t.Errorf("round trip = %+v", got)
	}
}

func TestDecode_Version1RepairsBudgetAndCategories(t *testing.T) {
	raw := `{"version":1,"expenses":[],"categories":["Food","Bills","Food"],"monthlyBudget":null}`
	data, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if data.MonthlyBudget != model.DefaultMonthlyBudget {
		t.Errorf("null budget = %v, want default %v", data.MonthlyBudget, model.DefaultMonthlyBudget)
	}
	if want := []string{"Food", "Bills"}; !reflect.DeepEqual(data.Categories, want) {
		t.Errorf("categories = %v, want %v", data.Categories, want)
	}
}
