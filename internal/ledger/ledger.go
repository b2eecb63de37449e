// Package ledger owns the current expense snapshot and its mutations.
//
// Every mutation replaces the snapshot with a new value and queues an
// asynchronous save. Callers never wait for persistence; Flush exists for
// process exit and tests.
package ledger

import (
	"context"
	"sync"

	"github.com/theirongolddev/cyros/internal/log"
	"github.com/theirongolddev/cyros/internal/model"

	"github.com/google/uuid"
)

// Store is the persistence the ledger writes through to.
type Store interface {
	Load(ctx context.Context) (model.ExpenseData, bool)
	Save(ctx context.Context, seq uint64, data model.ExpenseData) bool
}

// Ledger holds the in-memory snapshot. It is safe for concurrent use.
type Ledger struct {
	store Store
	log   *log.Logger
	newID func() string
	ctx   context.Context

	mu       sync.RWMutex
	data     model.ExpenseData
	seq      uint64
	restored bool

	saves sync.WaitGroup
}

// Config controls optional ledger behavior. The zero value is usable.
type Config struct {
	Logger  *log.Logger
	NewID   func() string   // expense id generator; uuid when nil
	Context context.Context // background saves run under it; Background when nil
}

// New returns a ledger holding the default snapshot.
func New(store Store, cfg Config) *Ledger {
	l := &Ledger{
		store: store,
		log:   cfg.Logger,
		newID: cfg.NewID,
		ctx:   cfg.Context,
		data:  model.DefaultData(),
	}
	if l.log == nil {
		l.log = log.Discard()
	}
	if l.newID == nil {
		l.newID = uuid.NewString
	}
	if l.ctx == nil {
		l.ctx = context.Background()
	}
	l.log = l.log.WithComponent(log.ComponentLedger)
	return l
}

// Restore loads the persisted snapshot. Only the first call loads; later calls
// return false and keep the current snapshot. When nothing usable is stored
// the defaults stay in place. It reports whether stored data was applied.
func (l *Ledger) Restore(ctx context.Context) bool {
	if l.Restored() {
		return false
	}
	data, ok := l.store.Load(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.restored {
		return false
	}
	l.restored = true
	if !ok {
		return false
	}
	l.data = data
	l.log.Info("restored snapshot", log.FieldCount, len(data.Expenses))
	return true
}

// Restored reports whether Restore has completed.
func (l *Ledger) Restored() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.restored
}

// Snapshot returns a deep copy of the current snapshot.
func (l *Ledger) Snapshot() model.ExpenseData {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data.Clone()
}

// AddExpense appends a new expense with a fresh id. Input is not validated.
func (l *Ledger) AddExpense(in model.NewExpense) model.Expense {
	e := model.Expense{
		ID:       l.newID(),
		Amount:   in.Amount,
		Category: in.Category,
		Date:     in.Date,
		Notes:    in.Notes,
	}

	l.mu.Lock()
	next := l.data.Clone()
	next.Expenses = append(next.Expenses, e)
	l.commit(next)
	l.mu.Unlock()

	l.log.Debug("added expense", log.FieldExpenseID, e.ID, log.FieldCategory, e.Category, log.FieldAmount, e.Amount)
	return e
}

// DeleteExpense removes every expense with id. An unknown id changes nothing
// and queues no save. It reports whether anything was removed.
func (l *Ledger) DeleteExpense(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := make([]model.Expense, 0, len(l.data.Expenses))
	for _, e := range l.data.Expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(l.data.Expenses) {
		return false
	}

	next := l.data.Clone()
	next.Expenses = kept
	l.commit(next)
	l.log.Debug("deleted expense", log.FieldExpenseID, id)
	return true
}

// UpdateBudget replaces the monthly budget. Any value is accepted here;
// callers that take user input reject non-positive amounts.
func (l *Ledger) UpdateBudget(amount float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.data.Clone()
	next.MonthlyBudget = amount
	l.commit(next)
	l.log.Debug("updated budget", log.FieldAmount, amount)
}

// AddCategory appends name unless it is already present (exact match).
// It reports whether the category was added.
func (l *Ledger) AddCategory(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.data.HasCategory(name) {
		return false
	}
	next := l.data.Clone()
	next.Categories = append(next.Categories, name)
	l.commit(next)
	l.log.Debug("added category", log.FieldCategory, name)
	return true
}

// ClearAllData resets to the default snapshot and persists it.
func (l *Ledger) ClearAllData() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.commit(model.DefaultData())
	l.log.Info("cleared all data")
}

// Flush waits for every queued save to finish or for ctx to end.
func (l *Ledger) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.saves.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// commit installs next and queues its save. l.mu must be held.
func (l *Ledger) commit(next model.ExpenseData) {
	l.data = next
	l.seq++
	seq := l.seq
	snapshot := next.Clone()

	l.saves.Add(1)
	go func() {
		defer l.saves.Done()
		l.store.Save(l.ctx, seq, snapshot)
	}()
}
