package save

import (
	"time"

	"monthbook/internal/monthkey"
)

// Command is one storage statement of a save batch. The set of
// implementations is closed; appliers switch over them exhaustively.
type Command interface {
	command()
}

// EnsureMonthRow inserts the month header at version 0 unless it exists.
type EnsureMonthRow struct {
	UserID   string
	MonthKey monthkey.Key
	At       time.Time
}

// BumpVersion advances the month version by one where it still equals
// ExpectedVersion. It is both the concurrency guard and the version bump.
type BumpVersion struct {
	UserID          string
	MonthKey        monthkey.Key
	ExpectedVersion int64
	At              time.Time
}

// InsertEntryRow creates an entry.
type InsertEntryRow struct {
	UserID   string
	MonthKey monthkey.Key
	EntryID  string
	Fields   EntryFields
	At       time.Time
}

// UpdateEntryRow overwrites an entry, scoped by id, user and month.
type UpdateEntryRow struct {
	UserID   string
	MonthKey monthkey.Key
	EntryID  string
	Fields   EntryFields
	At       time.Time
}

// DeleteEntryRow removes an entry, scoped by id, user and month.
type DeleteEntryRow struct {
	UserID   string
	MonthKey monthkey.Key
	EntryID  string
}

// UpsertDailyBudgetRow inserts a day's override or updates it in place.
type UpsertDailyBudgetRow struct {
	UserID   string
	MonthKey monthkey.Key
	Date     string
	Override int64
	At       time.Time
}

// DeleteDailyBudgetRow removes a day's override.
type DeleteDailyBudgetRow struct {
	UserID   string
	MonthKey monthkey.Key
	Date     string
}

func (EnsureMonthRow) command()       {}
func (BumpVersion) command()          {}
func (InsertEntryRow) command()       {}
func (UpdateEntryRow) command()       {}
func (DeleteEntryRow) command()       {}
func (UpsertDailyBudgetRow) command() {}
func (DeleteDailyBudgetRow) command() {}

// Batch is an ordered list of commands that must commit together or not at
// all. Guard is the index of the BumpVersion command.
type Batch struct {
	Commands []Command
	Guard    int
}

// BatchResult is what an applier reports back. RowsAffected[i] belongs to
// Commands[i]; it may be shorter than Commands when the applier stopped at a
// failed guard. Committed is false whenever the unit was rolled back.
type BatchResult struct {
	RowsAffected []int64
	Committed    bool
}
