package testutil_test

import (
	"testing"

	"monthbook/internal/errors"
	"monthbook/internal/models"
	"monthbook/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"categories", "months", "entries", "daily_budgets"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	userID := testutil.NewUserID()
	cat := testutil.CreateTestCategory(t, db, userID, models.CategoryKindExpense)
	if cat.ID == "" {
		t.Fatal("category should have an ID")
	}

	month := testutil.CreateTestMonth(t, db, userID, "2026-02", 3)
	if month.Version != 3 {
		t.Errorf("expected version 3, got %d", month.Version)
	}
	if got := testutil.GetMonth(t, db, userID, "2026-02"); got == nil || got.Version != 3 {
		t.Errorf("expected stored version 3, got %+v", got)
	}
	if got := testutil.GetMonth(t, db, userID, "2026-01"); got != nil {
		t.Errorf("expected no row for 2026-01, got %+v", got)
	}

	testutil.CreateTestEntry(t, db, userID, "2026-02", "2026-02-03", cat.ID, 500)
	if n := testutil.CountEntries(t, db, userID, "2026-02"); n != 1 {
		t.Errorf("expected 1 entry, got %d", n)
	}

	budget := testutil.CreateTestDailyBudget(t, db, userID, "2026-02", "2026-02-03", 1000)
	if budget.DailyBudgetOverride != 1000 {
		t.Errorf("expected override 1000, got %d", budget.DailyBudgetOverride)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrVersionConflict, "VERSION_CONFLICT")
	testutil.AssertAppError(t, errors.Wrap(errors.ErrInternalServer, nil), "INTERNAL_ERROR")
}
