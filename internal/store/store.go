// Package store applies save batches to the relational database with gorm.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"monthbook/internal/models"
	"monthbook/internal/save"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errGuardMissed aborts the transaction when the version guard matches no row.
var errGuardMissed = errors.New("version guard matched no row")

// Store is the gorm-backed batch applier and category lookup.
type Store struct {
	db *gorm.DB
}

// New creates a Store over db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ApplyBatch runs every command of batch inside one transaction. When the
// guard command affects zero rows the transaction is rolled back and the
// result reports the rows seen so far with Committed false. Any statement
// error also rolls back and is returned.
func (s *Store) ApplyBatch(ctx context.Context, batch save.Batch) (save.BatchResult, error) {
	res := save.BatchResult{RowsAffected: make([]int64, 0, len(batch.Commands))}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, cmd := range batch.Commands {
			n, err := apply(tx, cmd)
			if err != nil {
				return fmt.Errorf("command %d (%T): %w", i, cmd, err)
			}
			res.RowsAffected = append(res.RowsAffected, n)
			if i == batch.Guard && n == 0 {
				return errGuardMissed
			}
		}
		return nil
	})

	switch {
	case err == nil:
		res.Committed = true
		return res, nil
	case errors.Is(err, errGuardMissed):
		return res, nil
	default:
		return save.BatchResult{}, err
	}
}

func apply(tx *gorm.DB, cmd save.Command) (int64, error) {
	var result *gorm.DB

	switch c := cmd.(type) {
	case save.EnsureMonthRow:
		result = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "month_key"}},
			DoNothing: true,
		}).Create(&models.Month{
			UserID:       c.UserID,
			MonthKey:     c.MonthKey.String(),
			CutoffPolicy: models.CutoffPolicyCalendar,
			CreatedAt:    c.At,
			UpdatedAt:    c.At,
		})

	case save.BumpVersion:
		result = tx.Model(&models.Month{}).
			Where("user_id = ? AND month_key = ? AND version = ?", c.UserID, c.MonthKey.String(), c.ExpectedVersion).
			Updates(map[string]interface{}{
				"version":    gorm.Expr("version + ?", 1),
				"updated_at": c.At,
			})

	case save.InsertEntryRow:
		entry := &models.Entry{
			Base:     models.Base{ID: c.EntryID, CreatedAt: c.At, UpdatedAt: c.At},
			UserID:   c.UserID,
			MonthKey: c.MonthKey.String(),
		}
		setEntryFields(entry, c.Fields)
		result = tx.Create(entry)

	case save.UpdateEntryRow:
		result = tx.Model(&models.Entry{}).
			Where("id = ? AND user_id = ? AND month_key = ?", c.EntryID, c.UserID, c.MonthKey.String()).
			Updates(entryColumns(c.Fields, c.At))

	case save.DeleteEntryRow:
		result = tx.
			Where("id = ? AND user_id = ? AND month_key = ?", c.EntryID, c.UserID, c.MonthKey.String()).
			Delete(&models.Entry{})

	case save.UpsertDailyBudgetRow:
		result = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "month_key"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"daily_budget_override": c.Override,
				"updated_at":            c.At,
			}),
		}).Create(&models.DailyBudget{
			UserID:              c.UserID,
			MonthKey:            c.MonthKey.String(),
			Date:                c.Date,
			DailyBudgetOverride: c.Override,
			CreatedAt:           c.At,
			UpdatedAt:           c.At,
		})

	case save.DeleteDailyBudgetRow:
		result = tx.
			Where("user_id = ? AND month_key = ? AND date = ?", c.UserID, c.MonthKey.String(), c.Date).
			Delete(&models.DailyBudget{})

	default:
		return 0, fmt.Errorf("unsupported command %T", cmd)
	}

	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func setEntryFields(e *models.Entry, f save.EntryFields) {
	e.Date = f.Date
	e.Type = f.Type
	e.Amount = f.Amount
	e.CategoryID = f.CategoryID
	e.Memo = f.Memo
	e.PaymentMethod = f.PaymentMethod
}

// entryColumns lists every editable column so that nil memo and payment
// method clear the stored values.
func entryColumns(f save.EntryFields, at time.Time) map[string]interface{} {
	cols := map[string]interface{}{
		"date":           f.Date,
		"type":           string(f.Type),
		"amount":         f.Amount,
		"category_id":    f.CategoryID,
		"memo":           nil,
		"payment_method": nil,
		"updated_at":     at,
	}
	if f.Memo != nil {
		cols["memo"] = *f.Memo
	}
	if f.PaymentMethod != nil {
		cols["payment_method"] = string(*f.PaymentMethod)
	}
	return cols
}

// CategoryIDs lists the ids of every category owned by userID.
func (s *Store) CategoryIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Where("user_id = ?", userID).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return ids, nil
}
