// Package events publishes domain events for committed month saves.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"monthbook/internal/save"
)

// RoutingKeyMonthSaved is the routing key of MonthSaved messages.
const RoutingKeyMonthSaved = "month.saved"

// MonthSaved announces that a save committed and advanced a month's version.
type MonthSaved struct {
	UserID   string       `json:"user_id"`
	MonthKey string       `json:"month_key"`
	Version  int64        `json:"version"`
	Applied  save.Applied `json:"applied"`
	SavedAt  time.Time    `json:"saved_at"`
}

// NewMonthSaved builds the event for a committed outcome.
func NewMonthSaved(userID string, out *save.Outcome, savedAt time.Time) *MonthSaved {
	return &MonthSaved{
		UserID:   userID,
		MonthKey: out.MonthKey.String(),
		Version:  out.NewVersion,
		Applied:  out.Applied,
		SavedAt:  savedAt.UTC(),
	}
}

// ToJSON encodes the message body.
func (m *MonthSaved) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// MonthSavedFromJSON decodes a message body.
func MonthSavedFromJSON(data []byte) (*MonthSaved, error) {
	var m MonthSaved
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal month saved: %w", err)
	}
	return &m, nil
}
