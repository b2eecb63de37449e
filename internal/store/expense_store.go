package store

import (
	"context"
	"sync"

	"github.com/theirongolddev/cyros/internal/log"
	"github.com/theirongolddev/cyros/internal/model"
)

// StorageKey is the fixed key the snapshot blob lives under.
const StorageKey = "@cyros_expense_data"

// ExpenseStore loads and saves whole snapshots. Failures are logged, never returned.
type ExpenseStore struct {
	kv  KV
	log *log.Logger

	mu       sync.Mutex
	lastSeq  uint64
	anySaved bool
}

// NewExpenseStore wraps kv. A nil logger discards records.
func NewExpenseStore(kv KV, logger *log.Logger) *ExpenseStore {
	if logger == nil {
		logger = log.Discard()
	}
	return &ExpenseStore{kv: kv, log: logger.WithComponent(log.ComponentStore)}
}

// Load returns the persisted snapshot. ok is false when nothing is stored, the
// stored blob cannot be read or it breaks the snapshot invariants (duplicate
// ids); the caller keeps its defaults in that case.
func (s *ExpenseStore) Load(ctx context.Context) (data model.ExpenseData, ok bool) {
	raw, found, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.log.Error("failed to load expense data", log.FieldKey, StorageKey, log.FieldError, err)
		return model.ExpenseData{}, false
	}
	if !found {
		s.log.Debug("no stored expense data", log.FieldKey, StorageKey)
		return model.ExpenseData{}, false
	}

	data, err = Decode(raw)
	if err != nil {
		s.log.Error("failed to decode expense data", log.FieldBytes, len(raw), log.FieldError, err)
		return model.ExpenseData{}, false
	}
	if err := data.Validate(); err != nil {
		s.log.Error("stored expense data violates invariants", log.FieldError, err)
		return model.ExpenseData{}, false
	}

	s.log.Debug("loaded expense data", log.FieldCount, len(data.Expenses), log.FieldBytes, len(raw))
	return data, true
}

// Save writes data if seq is not older than the last completed save.
// It reports whether the write happened; errors are logged and swallowed.
func (s *ExpenseStore) Save(ctx context.Context, seq uint64, data model.ExpenseData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.anySaved && seq < s.lastSeq {
		s.log.Debug("discarding stale save", log.FieldSeq, seq, "last_seq", s.lastSeq)
		return false
	}

	raw, err := Encode(data)
	if err != nil {
		s.log.Error("failed to save expense data", log.FieldSeq, seq, log.FieldError, err)
		return false
	}
	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		s.log.Error("failed to save expense data", log.FieldSeq, seq, log.FieldError, err)
		return false
	}

	s.lastSeq = seq
	s.anySaved = true
	s.log.Debug("saved expense data", log.FieldSeq, seq, log.FieldBytes, len(raw))
	return true
}

// LastSeq returns the sequence number of the last completed save.
func (s *ExpenseStore) LastSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeq
}
