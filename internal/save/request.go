// Package save implements the diff-based month save engine: request
// validation, the editable-month policy, category reference checks, batch
// compilation with the optimistic-lock guard, and conflict detection.
//
// Everything here is storage-agnostic. The batch produced by Compile is
// applied by a BatchApplier (see internal/store) as one atomic unit.
package save

import (
	"sort"

	"monthbook/internal/models"
	"monthbook/internal/monthkey"
)

// Request is a fully validated save request for one user's month.
type Request struct {
	MonthKey        monthkey.Key
	ExpectedVersion int64
	Ops             Ops
}

// EntryFields are the user-editable columns of an entry.
type EntryFields struct {
	Date          string
	Type          models.EntryType
	Amount        int64
	CategoryID    string
	Memo          *string
	PaymentMethod *models.PaymentMethod
}

// Op is one validated operation. The set of implementations is closed.
type Op interface {
	op()
}

// CreateEntry inserts a new entry. EntryID is empty when the client did not
// supply one; the compiler assigns it.
type CreateEntry struct {
	EntryID string
	EntryFields
}

// UpdateEntry overwrites an existing entry's fields.
type UpdateEntry struct {
	EntryID string
	EntryFields
}

// DeleteEntry removes an entry.
type DeleteEntry struct {
	EntryID string
}

// UpsertDailyBudget sets the budget override for a day.
type UpsertDailyBudget struct {
	Date     string
	Override int64
}

// DeleteDailyBudget clears the budget override for a day.
type DeleteDailyBudget struct {
	Date string
}

func (CreateEntry) op()       {}
func (UpdateEntry) op()       {}
func (DeleteEntry) op()       {}
func (UpsertDailyBudget) op() {}
func (DeleteDailyBudget) op() {}

// Ops groups a request's operations by kind.
type Ops struct {
	CreateEntries      []CreateEntry
	UpdateEntries      []UpdateEntry
	DeleteEntries      []DeleteEntry
	UpsertDailyBudgets []UpsertDailyBudget
	DeleteDailyBudgets []DeleteDailyBudget
}

// Count returns the total number of operations across all kinds.
func (o Ops) Count() int {
	return len(o.CreateEntries) + len(o.UpdateEntries) + len(o.DeleteEntries) +
		len(o.UpsertDailyBudgets) + len(o.DeleteDailyBudgets)
}

// All lists every operation in application order: creates, updates, entry
// deletes, budget upserts, budget deletes.
func (o Ops) All() []Op {
	all := make([]Op, 0, o.Count())
	for _, op := range o.CreateEntries {
		all = append(all, op)
	}
	for _, op := range o.UpdateEntries {
		all = append(all, op)
	}
	for _, op := range o.DeleteEntries {
		all = append(all, op)
	}
	for _, op := range o.UpsertDailyBudgets {
		all = append(all, op)
	}
	for _, op := range o.DeleteDailyBudgets {
		all = append(all, op)
	}
	return all
}

// CategoryIDs returns the distinct category ids referenced by creates and
// updates, sorted.
func (o Ops) CategoryIDs() []string {
	seen := make(map[string]struct{})
	for _, op := range o.CreateEntries {
		seen[op.CategoryID] = struct{}{}
	}
	for _, op := range o.UpdateEntries {
		seen[op.CategoryID] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
