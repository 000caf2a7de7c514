package save

import (
	"fmt"

	apperrors "monthbook/internal/errors"
	"monthbook/internal/monthkey"
)

// Applied counts the operations a successful save applied, by kind.
type Applied struct {
	CreatedEntries       int `json:"created_entries"`
	UpdatedEntries       int `json:"updated_entries"`
	DeletedEntries       int `json:"deleted_entries"`
	UpsertedDailyBudgets int `json:"upserted_daily_budgets"`
	DeletedDailyBudgets  int `json:"deleted_daily_budgets"`
}

// Total returns the number of operations across all kinds.
func (a Applied) Total() int {
	return a.CreatedEntries + a.UpdatedEntries + a.DeletedEntries + a.UpsertedDailyBudgets + a.DeletedDailyBudgets
}

// Outcome is the result of a successful save.
type Outcome struct {
	MonthKey   monthkey.Key
	NewVersion int64
	Applied    Applied
}

// NoOp is the outcome of a request without operations: nothing is written
// and the version does not move.
func NoOp(req Request) *Outcome {
	return &Outcome{MonthKey: req.MonthKey, NewVersion: req.ExpectedVersion}
}

// Detect interprets an applied batch. Zero rows on the guard means another
// save advanced the version first: ErrVersionConflict. One row on a
// committed batch is success. Anything else breaks the applier contract.
func Detect(req Request, batch Batch, res BatchResult) (*Outcome, error) {
	if batch.Guard < 0 || batch.Guard >= len(res.RowsAffected) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer,
			fmt.Errorf("batch result has %d row counts, guard at %d", len(res.RowsAffected), batch.Guard))
	}

	switch n := res.RowsAffected[batch.Guard]; {
	case n == 0:
		if res.Committed {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer,
				fmt.Errorf("batch for %s committed although the version guard matched no row", req.MonthKey))
		}
		return nil, apperrors.ErrVersionConflict
	case n == 1 && res.Committed:
		return &Outcome{
			MonthKey:   req.MonthKey,
			NewVersion: req.ExpectedVersion + 1,
			Applied: Applied{
				CreatedEntries:       len(req.Ops.CreateEntries),
				UpdatedEntries:       len(req.Ops.UpdateEntries),
				DeletedEntries:       len(req.Ops.DeleteEntries),
				UpsertedDailyBudgets: len(req.Ops.UpsertDailyBudgets),
				DeletedDailyBudgets:  len(req.Ops.DeleteDailyBudgets),
			},
		}, nil
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer,
			fmt.Errorf("version guard for %s affected %d rows (committed=%t)", req.MonthKey, n, res.Committed))
	}
}
