package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monthbook/internal/save"
)

func TestMonthSavedJSON(t *testing.T) {
	savedAt := time.Date(2026, 2, 15, 18, 30, 0, 0, time.FixedZone("JST", 9*3600))
	msg := NewMonthSaved("user-1", &save.Outcome{
		MonthKey:   "2026-02",
		NewVersion: 5,
		Applied:    save.Applied{CreatedEntries: 2, DeletedDailyBudgets: 1},
	}, savedAt)

	body, err := msg.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"user_id": "user-1",
		"month_key": "2026-02",
		"version": 5,
		"applied": {"created_entries": 2, "updated_entries": 0, "deleted_entries": 0, "upserted_daily_budgets": 0, "deleted_daily_budgets": 1},
		"saved_at": "2026-02-15T09:30:00Z"
	}`, string(body))

	decoded, err := MonthSavedFromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, msg.Version, decoded.Version)
	assert.True(t, msg.SavedAt.Equal(decoded.SavedAt))

	_, err = MonthSavedFromJSON([]byte("{"))
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.PublishMonthSaved(context.Background(), &MonthSaved{}))
	assert.NoError(t, p.Close())
}

func TestNewAMQPPublisher_BadURL(t *testing.T) {
	_, err := NewAMQPPublisher("not-a-url", "monthbook")
	assert.Error(t, err)
}
