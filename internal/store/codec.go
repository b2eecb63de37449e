package store

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/theirongolddev/cyros/internal/model"
)

// CurrentVersion is the blob format written by Encode.
const CurrentVersion = 1

// ErrUnknownVersion is returned for blobs written by a newer release.
var ErrUnknownVersion = errors.New("unknown blob version")

// ErrBadShape is returned when a blob lacks the fields of a snapshot.
var ErrBadShape = errors.New("blob does not look like expense data")

type blob struct {
	Version       int             `json:"version"`
	Expenses      []model.Expense `json:"expenses"`
	Categories    []string        `json:"categories"`
	MonthlyBudget float64         `json:"monthlyBudget"`
}

// fields is a blob being upgraded: top-level keys with undecoded values.
type fields map[string]json.RawMessage

// migration upgrades a blob from version N to N+1.
type migration func(fields) (fields, error)

// migrations is keyed by the version a step upgrades from.
var migrations = map[int]migration{
	0: upgradeV0,
}

// Encode serialises a snapshot at CurrentVersion.
func Encode(data model.ExpenseData) ([]byte, error) {
	b := blob{
		Version:       CurrentVersion,
		Expenses:      data.Expenses,
		Categories:    data.Categories,
		MonthlyBudget: data.MonthlyBudget,
	}
	if b.Expenses == nil {
		b.Expenses = []model.Expense{}
	}
	if b.Categories == nil {
		b.Categories = []string{}
	}
	out, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return out, nil
}

// Decode parses a blob of any known version, running migrations up to CurrentVersion.
func Decode(raw []byte) (model.ExpenseData, error) {
	var f fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return model.ExpenseData{}, fmt.Errorf("%w: %v", ErrBadShape, err)
	}
	if f == nil {
		return model.ExpenseData{}, ErrBadShape
	}

	version := 0
	if v, ok := f["version"]; ok {
		if err := json.Unmarshal(v, &version); err != nil {
			return model.ExpenseData{}, fmt.Errorf("%w: version: %v", ErrBadShape, err)
		}
	}
	if version > CurrentVersion || version < 0 {
		return model.ExpenseData{}, fmt.Errorf("%w: %d", ErrUnknownVersion, version)
	}

	for v := version; v < CurrentVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			return model.ExpenseData{}, fmt.Errorf("%w: no migration from %d", ErrUnknownVersion, v)
		}
		var err error
		if f, err = step(f); err != nil {
			return model.ExpenseData{}, fmt.Errorf("migrating from version %d: %w", v, err)
		}
	}

	for _, key := range []string{"expenses", "categories", "monthlyBudget"} {
		if _, ok := f[key]; !ok {
			return model.ExpenseData{}, fmt.Errorf("%w: missing %s", ErrBadShape, key)
		}
	}
	if err := normalize(f); err != nil {
		return model.ExpenseData{}, err
	}

	upgraded, err := json.Marshal(f)
	if err != nil {
		return model.ExpenseData{}, fmt.Errorf("re-encoding blob: %w", err)
	}
	var b blob
	if err := json.Unmarshal(upgraded, &b); err != nil {
		return model.ExpenseData{}, fmt.Errorf("%w: %v", ErrBadShape, err)
	}

	data := model.ExpenseData{
		Expenses:      b.Expenses,
		Categories:    b.Categories,
		MonthlyBudget: b.MonthlyBudget,
	}
	if data.Expenses == nil {
		data.Expenses = []model.Expense{}
	}
	if data.Categories == nil {
		data.Categories = []string{}
	}
	return data, nil
}

// upgradeV0 accepts the untagged format: dates may be full ISO timestamps
// (handled by model.Date), the budget may be missing and categories may be absent.
func upgradeV0(f fields) (fields, error) {
	if _, ok := f["expenses"]; !ok {
		return nil, fmt.Errorf("%w: missing expenses", ErrBadShape)
	}
	if _, ok := f["monthlyBudget"]; !ok {
		f["monthlyBudget"] = json.RawMessage("null")
	}
	if _, ok := f["categories"]; !ok {
		f["categories"] = json.RawMessage("null")
	}
	f["version"] = json.RawMessage("1")
	return f, nil
}

// normalize repairs what every version can carry: a null budget becomes the
// default, null categories become the seed set and repeated categories collapse.
func normalize(f fields) error {
	if string(f["monthlyBudget"]) == "null" {
		f["monthlyBudget"] = json.RawMessage(fmt.Sprint(model.DefaultMonthlyBudget))
	}

	var cats []string
	if raw := f["categories"]; string(raw) != "null" {
		if err := json.Unmarshal(raw, &cats); err != nil {
			return fmt.Errorf("%w: categories: %v", ErrBadShape, err)
		}
	} else {
		cats = model.DefaultCategories()
	}
	seen := make(map[string]struct{}, len(cats))
	deduped := make([]string, 0, len(cats))
	for _, c := range cats {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		deduped = append(deduped, c)
	}
	encoded, err := json.Marshal(deduped)
	if err != nil {
		return err
	}
	f["categories"] = encoded
	return nil
}
