package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"monthbook/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewUserID returns a fresh user identifier. Users live in the external
// identity provider, so there is no row to create.
func NewUserID() string {
	return fmt.Sprintf("user-%d", nextID())
}

// CreateTestCategory creates an active category owned by userID.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, kind models.CategoryKind) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:   userID,
		Name:     fmt.Sprintf("Category %d", nextID()),
		Kind:     kind,
		IsActive: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestMonth creates the month header row at the given version.
func CreateTestMonth(t *testing.T, db *gorm.DB, userID, monthKey string, version int64) *models.Month {
	t.Helper()

	month := &models.Month{
		UserID:       userID,
		MonthKey:     monthKey,
		Version:      version,
		CutoffPolicy: models.CutoffPolicyCalendar,
	}
	if err := db.Create(month).Error; err != nil {
		t.Fatalf("failed to create test month: %v", err)
	}
	return month
}

// CreateTestEntry creates an expense entry in the given month.
func CreateTestEntry(t *testing.T, db *gorm.DB, userID, monthKey, date, categoryID string, amount int64) *models.Entry {
	t.Helper()

	entry := &models.Entry{
		UserID:     userID,
		MonthKey:   monthKey,
		Date:       date,
		Type:       models.EntryTypeExpense,
		Amount:     amount,
		CategoryID: categoryID,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}
	return entry
}

// CreateTestDailyBudget creates a daily budget override.
func CreateTestDailyBudget(t *testing.T, db *gorm.DB, userID, monthKey, date string, override int64) *models.DailyBudget {
	t.Helper()

	budget := &models.DailyBudget{
		UserID:              userID,
		MonthKey:            monthKey,
		Date:                date,
		DailyBudgetOverride: override,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test daily budget: %v", err)
	}
	return budget
}

// GetMonth reloads a month row; it returns nil when the row does not exist.
func GetMonth(t *testing.T, db *gorm.DB, userID, monthKey string) *models.Month {
	t.Helper()

	var month models.Month
	err := db.Where("user_id = ? AND month_key = ?", userID, monthKey).Take(&month).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		t.Fatalf("failed to load month: %v", err)
	}
	return &month
}

// CountEntries counts the entries stored for a user's month.
func CountEntries(t *testing.T, db *gorm.DB, userID, monthKey string) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.Entry{}).Where("user_id = ? AND month_key = ?", userID, monthKey).Count(&n).Error; err != nil {
		t.Fatalf("failed to count entries: %v", err)
	}
	return n
}
