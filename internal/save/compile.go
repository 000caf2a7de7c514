package save

import (
	"time"

	"monthbook/internal/uuid"
)

// Compiler turns a checked request into a storage batch.
type Compiler struct {
	// NewID assigns ids to created entries that arrive without one.
	NewID uuid.Generator
}

// Compile builds the batch for userID's request. The order is fixed: ensure
// the month row, bump the version (the guard), then entry inserts, updates
// and deletes, then daily budget upserts and deletes.
func (c Compiler) Compile(userID string, req Request, now time.Time) Batch {
	newID := c.NewID
	if newID == nil {
		newID = uuid.New
	}

	key := req.MonthKey
	cmds := make([]Command, 0, 2+req.Ops.Count())
	cmds = append(cmds,
		EnsureMonthRow{UserID: userID, MonthKey: key, At: now},
		BumpVersion{UserID: userID, MonthKey: key, ExpectedVersion: req.ExpectedVersion, At: now},
	)
	guard := len(cmds) - 1

	for _, op := range req.Ops.All() {
		switch op := op.(type) {
		case CreateEntry:
			id := op.EntryID
			if id == "" {
				id = newID()
			}
			cmds = append(cmds, InsertEntryRow{UserID: userID, MonthKey: key, EntryID: id, Fields: op.EntryFields, At: now})
		case UpdateEntry:
			cmds = append(cmds, UpdateEntryRow{UserID: userID, MonthKey: key, EntryID: op.EntryID, Fields: op.EntryFields, At: now})
		case DeleteEntry:
			cmds = append(cmds, DeleteEntryRow{UserID: userID, MonthKey: key, EntryID: op.EntryID})
		case UpsertDailyBudget:
			cmds = append(cmds, UpsertDailyBudgetRow{UserID: userID, MonthKey: key, Date: op.Date, Override: op.Override, At: now})
		case DeleteDailyBudget:
			cmds = append(cmds, DeleteDailyBudgetRow{UserID: userID, MonthKey: key, Date: op.Date})
		}
	}

	return Batch{Commands: cmds, Guard: guard}
}
