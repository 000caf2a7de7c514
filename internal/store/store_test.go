package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monthbook/internal/models"
	"monthbook/internal/save"
	"monthbook/internal/testutil"
)

var now = time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC)

func compile(t *testing.T, userID, body string) (save.Request, save.Batch) {
	t.Helper()
	req, err := save.Parse([]byte(body))
	require.NoError(t, err)
	n := 0
	batch := save.Compiler{NewID: func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}}.Compile(userID, req, now)
	return req, batch
}

func TestApplyBatch_FirstSaveCreatesMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	userID := testutil.NewUserID()
	cat := testutil.CreateTestCategory(t, db, userID, models.CategoryKindExpense)

	_, batch := compile(t, userID, `{"month_key":"2026-02","expected_version":0,"ops":{
		"create_entries":[{"date":"2026-02-10","type":"expense","amount":1200,"category_id":"`+cat.ID+`","memo":"lunch","payment_method":"cash"}],
		"upsert_daily_budgets":[{"date":"2026-02-10","daily_budget_override":3000}]
	}}`)

	res, err := s.ApplyBatch(context.Background(), batch)
	require.NoError(t, err)
	assert.True(t, res.Committed)
	assert.Equal(t, []int64{1, 1, 1, 1}, res.RowsAffected)

	month := testutil.GetMonth(t, db, userID, "2026-02")
	require.NotNil(t, month)
	assert.Equal(t, int64(1), month.Version)

	var entry models.Entry
	require.NoError(t, db.Where("id = ?", "gen-1").Take(&entry).Error)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, int64(1200), entry.Amount)
	require.NotNil(t, entry.Memo)
	assert.Equal(t, "lunch", *entry.Memo)
	require.NotNil(t, entry.PaymentMethod)
	assert.Equal(t, models.PaymentMethodCash, *entry.PaymentMethod)
}

func TestApplyBatch_UpdatesDeletesAndUpserts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	userID := testutil.NewUserID()
	cat := testutil.CreateTestCategory(t, db, userID, models.CategoryKindExpense)
	testutil.CreateTestMonth(t, db, userID, "2026-02", 2)
	keep := testutil.CreateTestEntry(t, db, userID, "2026-02", "2026-02-01", cat.ID, 100)
	gone := testutil.CreateTestEntry(t, db, userID, "2026-02", "2026-02-02", cat.ID, 200)
	testutil.CreateTestDailyBudget(t, db, userID, "2026-02", "2026-02-05", 1000)
	testutil.CreateTestDailyBudget(t, db, userID, "2026-02", "2026-02-06", 1000)

	_, batch := compile(t, userID, `{"month_key":"2026-02","expected_version":2,"ops":{
		"update_entries":[{"entry_id":"`+keep.ID+`","date":"2026-02-03","type":"income","amount":900,"category_id":"`+cat.ID+`"}],
		"delete_entry_ids":["`+gone.ID+`"],
		"upsert_daily_budgets":[{"date":"2026-02-05","daily_budget_override":0}],
		"delete_daily_budget_dates":["2026-02-06"]
	}}`)

	res, err := s.ApplyBatch(context.Background(), batch)
	require.NoError(t, err)
	assert.True(t, res.Committed)
	assert.Equal(t, []int64{0, 1, 1, 1, 1, 1}, res.RowsAffected)

	assert.Equal(t, int64(3), testutil.GetMonth(t, db, userID, "2026-02").Version)

	var updated models.Entry
	require.NoError(t, db.Where("id = ?", keep.ID).Take(&updated).Error)
	assert.Equal(t, "2026-02-03", updated.Date)
	assert.Equal(t, models.EntryTypeIncome, updated.Type)
	assert.Equal(t, int64(900), updated.Amount)
	assert.Equal(t, int64(1), testutil.CountEntries(t, db, userID, "2026-02"))

	var budgets []models.DailyBudget
	require.NoError(t, db.Where("user_id = ?", userID).Find(&budgets).Error)
	require.Len(t, budgets, 1)
	assert.Equal(t, "2026-02-05", budgets[0].Date)
	assert.Equal(t, int64(0), budgets[0].DailyBudgetOverride)
}

func TestApplyBatch_StaleVersionRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	userID := testutil.NewUserID()
	cat := testutil.CreateTestCategory(t, db, userID, models.CategoryKindExpense)

	body := `{"month_key":"2026-02","expected_version":0,"ops":{
		"create_entries":[{"entry_id":"e-client","date":"2026-02-10","type":"expense","amount":500,"category_id":"` + cat.ID + `"}]
	}}`

	req, batch := compile(t, userID, body)
	res, err := s.ApplyBatch(context.Background(), batch)
	require.NoError(t, err)
	_, err = save.Detect(req, batch, res)
	require.NoError(t, err)

	// Resubmitting the same batch carries a stale expected version.
	req, batch = compile(t, userID, body)
	res, err = s.ApplyBatch(context.Background(), batch)
	require.NoError(t, err)
	assert.False(t, res.Committed)
	assert.Equal(t, []int64{0, 0}, res.RowsAffected)

	_, err = save.Detect(req, batch, res)
	testutil.AssertAppError(t, err, "VERSION_CONFLICT")

	assert.Equal(t, int64(1), testutil.GetMonth(t, db, userID, "2026-02").Version)
	assert.Equal(t, int64(1), testutil.CountEntries(t, db, userID, "2026-02"))
}

func TestApplyBatch_ConflictOnFreshMonthLeavesNoRow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	userID := testutil.NewUserID()

	_, batch := compile(t, userID, `{"month_key":"2026-01","expected_version":4,"ops":{
		"upsert_daily_budgets":[{"date":"2026-01-02","daily_budget_override":10}]
	}}`)

	res, err := s.ApplyBatch(context.Background(), batch)
	require.NoError(t, err)
	assert.False(t, res.Committed)
	assert.Nil(t, testutil.GetMonth(t, db, userID, "2026-01"))
}

func TestApplyBatch_ScopesByUserAndMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	owner := testutil.NewUserID()
	other := testutil.NewUserID()
	cat := testutil.CreateTestCategory(t, db, owner, models.CategoryKindExpense)
	otherCat := testutil.CreateTestCategory(t, db, other, models.CategoryKindExpense)
	testutil.CreateTestMonth(t, db, owner, "2026-01", 0)
	january := testutil.CreateTestEntry(t, db, owner, "2026-01", "2026-01-10", cat.ID, 100)
	kept := testutil.CreateTestEntry(t, db, owner, "2026-01", "2026-01-12", cat.ID, 300)

	_, batch := compile(t, other, `{"month_key":"2026-01","expected_version":0,"ops":{
		"update_entries":[{"entry_id":"`+january.ID+`","date":"2026-01-11","type":"expense","amount":1,"category_id":"`+otherCat.ID+`"}],
		"delete_entry_ids":["`+kept.ID+`"]
	}}`)

	res, err := s.ApplyBatch(context.Background(), batch)
	require.NoError(t, err)
	assert.True(t, res.Committed)
	assert.Equal(t, []int64{1, 1, 0, 0}, res.RowsAffected)

	var stored models.Entry
	require.NoError(t, db.Where("id = ?", january.ID).Take(&stored).Error)
	assert.Equal(t, int64(100), stored.Amount)
	assert.Equal(t, owner, stored.UserID)
	assert.Equal(t, int64(2), testutil.CountEntries(t, db, owner, "2026-01"))
}

func TestApplyBatch_StatementErrorRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	userID := testutil.NewUserID()
	cat := testutil.CreateTestCategory(t, db, userID, models.CategoryKindExpense)
	testutil.CreateTestMonth(t, db, userID, "2026-02", 0)
	existing := testutil.CreateTestEntry(t, db, userID, "2026-02", "2026-02-01", cat.ID, 100)

	_, batch := compile(t, userID, `{"month_key":"2026-02","expected_version":0,"ops":{
		"create_entries":[{"entry_id":"`+existing.ID+`","date":"2026-02-10","type":"expense","amount":500,"category_id":"`+cat.ID+`"}]
	}}`)

	_, err := s.ApplyBatch(context.Background(), batch)
	require.Error(t, err)
	assert.Equal(t, int64(0), testutil.GetMonth(t, db, userID, "2026-02").Version)
}

func TestCategoryIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	userID := testutil.NewUserID()
	a := testutil.CreateTestCategory(t, db, userID, models.CategoryKindExpense)
	b := testutil.CreateTestCategory(t, db, userID, models.CategoryKindIncome)
	testutil.CreateTestCategory(t, db, testutil.NewUserID(), models.CategoryKindBoth)

	ids, err := s.CategoryIDs(context.Background(), userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)

	ids, err = s.CategoryIDs(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
